package tgbot

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"clubserver/bot/model"
	"clubserver/internal/domain"
	"clubserver/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type InfoCommand struct {
	playerService *service.PlayerService
}

func (c *InfoCommand) Run(_ model.User, args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) < 1 {
		return "", errors.New(`player name goes in the same message, e.g. "/info john"`)
	}
	player, err := c.playerService.GetByName(fields[0])
	if err != nil {
		return "", err
	}
	return printPlayer(player), nil
}

func (c *InfoCommand) Help() string {
	return `Player card. Usage: /info and a player name.`
}

func printPlayer(player domain.Player) string {
	var buf strings.Builder
	buf.WriteString("ID: ")
	buf.WriteString(player.ID.String())
	buf.WriteString("\n")
	buf.WriteString("Name: ")
	buf.WriteString(player.Name)
	buf.WriteString("\n")
	buf.WriteString("Rank: ")
	buf.WriteString(prettifyRank(player))
	buf.WriteString("\n")
	buf.WriteString("Rating: ")
	buf.WriteString(strconv.Itoa(int(player.Rating)))
	buf.WriteString("\n")
	buf.WriteString("Handicap: ")
	buf.WriteString(strconv.Itoa(player.Handicap))
	buf.WriteString("\n")
	buf.WriteString("Games played: ")
	buf.WriteString(strconv.Itoa(player.GamesPlayed))
	buf.WriteString("\n")
	buf.WriteString("Registered: ")
	buf.WriteString(player.RegisteredAt.Format(time.RFC1123))
	return buf.String()
}

func prettifyRank(player domain.Player) string {
	if player.RatingRank == 1 {
		return "🥇"
	}
	if player.RatingRank == 2 {
		return "🥈"
	}
	if player.RatingRank == 3 {
		return "🥉"
	}
	return strconv.Itoa(player.RatingRank)
}

func (c *InfoCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *InfoCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
