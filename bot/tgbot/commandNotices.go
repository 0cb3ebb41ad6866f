package tgbot

import (
	"strings"
	"time"

	"clubserver/bot/model"
	"clubserver/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type NoticesCommand struct {
	noticeService *service.NoticeService
}

func (c *NoticesCommand) Run(_ model.User, _ string) (string, error) {
	notices, err := c.noticeService.List()
	if err != nil {
		return "", err
	}
	if len(notices) == 0 {
		return "No notices", nil
	}
	var buf strings.Builder
	for i := range notices {
		if i > 4 {
			break
		}
		if notices[i].Pinned {
			buf.WriteString("📌 ")
		}
		buf.WriteString(notices[i].Title)
		buf.WriteString(" (")
		buf.WriteString(notices[i].CreatedAt.Format(time.DateOnly))
		buf.WriteString(")\n")
		buf.WriteString(notices[i].Body)
		buf.WriteString("\n\n")
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func (c *NoticesCommand) Help() string {
	return `Latest club notices`
}

func (c *NoticesCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *NoticesCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
