package config

import (
	"strconv"

	"github.com/consolelabs/mochi-toolkit/config"
	"github.com/go-faster/errors"
)

const (
	DefaultAddr        = ":8081"
	DefaultToken       = "12345:test-token"
	DefaultBotID int64 = 1234567890
	DefaultUsername    = "mock_bot"
	DefaultBotName     = "Bot"
)

type Config struct {
	Addr        string
	Token       string
	BotID       int64
	BotUsername string
	BotName     string
	Development bool
	// ExportPath is the parquet file the response log is written to on
	// shutdown. Empty disables the export.
	ExportPath string
}

// Getter is the part of the environment config Load reads from.
type Getter interface {
	GetString(key string) string
}

type GetterFunc func(key string) string

func (f GetterFunc) GetString(key string) string { return f(key) }

// Load reads the server settings from the environment.
func Load() (Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return FromGetter(GetterFunc(cfg.GetString))
}

func FromGetter(g Getter) (Config, error) {
	c := Config{
		Addr:        orDefault(g.GetString("TELEGRAM_MOCK_ADDR"), DefaultAddr),
		Token:       orDefault(g.GetString("TELEGRAM_BOT_TOKEN"), DefaultToken),
		BotID:       DefaultBotID,
		BotUsername: orDefault(g.GetString("TELEGRAM_BOT_USERNAME"), DefaultUsername),
		BotName:     orDefault(g.GetString("TELEGRAM_BOT_NAME"), DefaultBotName),
		ExportPath:  g.GetString("TELEGRAM_MOCK_EXPORT"),
	}

	if s := g.GetString("TELEGRAM_BOT_ID"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse bot id")
		}
		c.BotID = id
	}
	if s := g.GetString("LOG_DEVELOPMENT"); s != "" {
		dev, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse log development")
		}
		c.Development = dev
	}
	return c, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
