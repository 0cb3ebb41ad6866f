package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_api_token"`
	AdminPass        string `toml:"admin_pass"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	SqliteFile   string `toml:"sqlite_file"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	Debug        bool   `toml:"debug_mode"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

func New() (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if serverCfg.SqliteFile == "" {
		serverCfg.SqliteFile = "club.sqlite"
	}

	var tgBotCfg TgBot
	if serverCfg.TgBotEnabled {
		_, err = toml.DecodeFile("configs/bot.toml", &tgBotCfg)
		if err != nil {
			return Config{}, err
		}
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		tgBotCfg.TelegramApiToken = token
	}
	if tgBotCfg.SqliteFile == "" {
		tgBotCfg.SqliteFile = "bot.sqlite"
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
