package tgbot

import (
	"sync"

	botmodel "clubserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type subscriptions struct {
	mu   *sync.Mutex
	data map[botmodel.EventType]mapset.Set[int]
}

func newSubs() subscriptions {
	return subscriptions{
		mu:   &sync.Mutex{},
		data: make(map[botmodel.EventType]mapset.Set[int]),
	}
}

func (s *subscriptions) Add(event botmodel.EventType, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.data[event]
	if !ok {
		set = mapset.NewThreadUnsafeSet[int]()
		s.data[event] = set
	}
	set.Add(userID)
}

func (s *subscriptions) Remove(event botmodel.EventType, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.data[event]
	if !ok {
		return
	}
	set.Remove(userID)
}

func (s *subscriptions) GetUserIDs(event botmodel.EventType) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.data[event]
	if !ok {
		return nil
	}
	return set.ToSlice()
}
