package mem

import (
	"sort"
	"sync"

	"clubserver/internal/domain"
	"clubserver/internal/normalize"
	"clubserver/internal/rating"
)

// Cache keeps the player list indexed by normalized name for web/bot
// lookups, plus the single process-wide ranking config. Both are plain
// read-through caches; storage stays the source of truth.
type Cache struct {
	mu      sync.RWMutex
	valid   bool
	players map[string]domain.Player

	cfgMu    sync.RWMutex
	cfgValid bool
	cfg      rating.Config
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
	}
}

func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player)
	for i := range players {
		name := normalize.Name(players[i].Name)
		c.players[name] = players[i]
	}
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return domain.Player{}, false
	}
	player, ok := c.players[normalize.Name(name)]
	if !ok {
		return domain.Player{}, false
	}
	return player, true
}

func (c *Cache) GetRatings() []domain.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()

	players := make([]domain.Player, 0, len(c.players))
	for _, player := range c.players {
		players = append(players, player)
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Rating > players[j].Rating
	})
	return players
}

func (c *Cache) GetConfig() (rating.Config, bool) {
	c.cfgMu.RLock()
	defer c.cfgMu.RUnlock()
	return c.cfg, c.cfgValid
}

func (c *Cache) SetConfig(cfg rating.Config) {
	c.cfgMu.Lock()
	defer c.cfgMu.Unlock()
	c.cfg = cfg.Clamp()
	c.cfgValid = true
}
