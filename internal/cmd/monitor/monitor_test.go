package monitor

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_makeTasks(t *testing.T) {
	testCases := []struct {
		name   string
		config string
		length int
	}{
		{
			name: "minimal",
			config: `
health:
  addr: :9091
`,
			length: 5,
		},
		{
			name: "mqtt",
			config: `
mqtt:
  broker: tcp://localhost:1883
`,
			length: 6,
		},
		{
			name: "slack",
			config: `
slack:
  token: 1234
  channel: "#home"
`,
			length: 7,
		},
		{
			name: "all",
			config: `
mqtt:
  broker: tcp://localhost:1883
slack:
  token: 1234
`,
			length: 8,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := viper.New()
			cfg.SetConfigType("yaml")
			require.NoError(t, cfg.ReadConfig(bytes.NewBufferString(tt.config)))

			tasks := makeTasks(cfg, nil, prometheus.NewPedanticRegistry(), "1.0", slog.Default())
			assert.Len(t, tasks, tt.length)
		})
	}
}

func Test_run_MissingRefreshToken(t *testing.T) {
	cfg := viper.New()
	assert.Error(t, run(context.Background(), cfg, "1.0", slog.Default()))
}

func TestHTTPServer_Run(t *testing.T) {
	s := httpServer{addr: "127.0.0.1:0"}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- s.Run(ctx) }()
	cancel()
	assert.NoError(t, <-errCh)

	s = httpServer{addr: "invalid address"}
	assert.Error(t, s.Run(context.Background()))
}
