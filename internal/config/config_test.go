package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env map[string]string

func (e env) GetString(key string) string { return e[key] }

func TestFromGetter(t *testing.T) {
	tests := []struct {
		name    string
		env     env
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  env{},
			want: Config{
				Addr:        DefaultAddr,
				Token:       DefaultToken,
				BotID:       DefaultBotID,
				BotUsername: DefaultUsername,
				BotName:     DefaultBotName,
			},
		},
		{
			name: "overrides",
			env: env{
				"TELEGRAM_MOCK_ADDR":    "127.0.0.1:9000",
				"TELEGRAM_BOT_TOKEN":    "1:abc",
				"TELEGRAM_BOT_ID":       "42",
				"TELEGRAM_BOT_USERNAME": "echo_bot",
				"TELEGRAM_BOT_NAME":     "Echo",
				"LOG_DEVELOPMENT":       "true",
				"TELEGRAM_MOCK_EXPORT":  "/tmp/log.parquet",
			},
			want: Config{
				Addr:        "127.0.0.1:9000",
				Token:       "1:abc",
				BotID:       42,
				BotUsername: "echo_bot",
				BotName:     "Echo",
				Development: true,
				ExportPath:  "/tmp/log.parquet",
			},
		},
		{name: "bad bot id", env: env{"TELEGRAM_BOT_ID": "x"}, wantErr: true},
		{name: "bad bool", env: env{"LOG_DEVELOPMENT": "maybe"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGetter(tt.env)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
