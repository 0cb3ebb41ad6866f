package tgbot

import (
	"clubserver/bot/botstorage"
	"clubserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(event model.EventType, id int)
}

func (c *UnsubCommand) Run(user model.User, args string) (string, error) {
	events, err := parseEvents(args)
	if err != nil {
		return "", err
	}
	for _, event := range events {
		if err := c.botStorage.Unsubscribe(user, event); err != nil {
			return "", err
		}
		c.unsub(event, user.ID)
	}
	return "Unsubscribed", nil
}

func (c *UnsubCommand) Help() string {
	return `Unsubscribe from notifications. Usage: /unsub, /unsub matches or /unsub notices`
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
