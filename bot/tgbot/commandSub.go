package tgbot

import (
	"clubserver/bot/botstorage"
	"clubserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(event model.EventType, id int)
}

func (c *SubCommand) Run(user model.User, args string) (string, error) {
	events, err := parseEvents(args)
	if err != nil {
		return "", err
	}
	for _, event := range events {
		if err := c.botStorage.Subscribe(user, event); err != nil {
			return "", err
		}
		c.sub(event, user.ID)
	}
	return "Subscribed. To stop notifications: /unsub", nil
}

func (c *SubCommand) Help() string {
	return `Subscribe to notifications. Usage: /sub, /sub matches or /sub notices`
}

func parseEvents(args string) ([]model.EventType, error) {
	switch args {
	case "":
		return []model.EventType{model.NewMatch, model.NewNotice}, nil
	case "matches":
		return []model.EventType{model.NewMatch}, nil
	case "notices":
		return []model.EventType{model.NewNotice}, nil
	}
	return nil, ErrBadRequest
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
