package config_test

import (
	"bytes"
	"testing"

	"github.com/clambin/remeha-exporter/internal/cmd/config"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemeha(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr assert.ErrorAssertionFunc
		want    remeha.Config
	}{
		{
			name: "valid",
			config: `
remeha:
  refreshToken: token
  apiURL: http://localhost:8888/api
`,
			wantErr: assert.NoError,
			want: remeha.Config{
				APIURL:          "http://localhost:8888/api",
				TokenURL:        remeha.DefaultTokenURL,
				ClientID:        remeha.DefaultClientID,
				SubscriptionKey: remeha.DefaultSubscriptionKey,
				RefreshToken:    "token",
			},
		},
		{
			name: "missing token",
			config: `
remeha:
  apiURL: http://localhost:8888/api
`,
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := viper.New()
			for key, arg := range config.Arguments {
				v.SetDefault(key, arg.Default)
			}
			v.SetConfigType("yaml")
			require.NoError(t, v.ReadConfig(bytes.NewBufferString(tt.config)))

			cfg, err := config.Remeha(v)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
