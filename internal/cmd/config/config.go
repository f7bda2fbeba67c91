// Package config holds the configuration keys of remeha-exporter and turns them into component configurations.
package config

import (
	"errors"
	"time"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/remeha-exporter/internal/mqtt"
	"github.com/clambin/remeha-exporter/internal/poller"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/spf13/viper"
)

var Arguments = charmer.Arguments{
	"debug":                  {Default: false, Help: "Log debug messages"},
	"remeha.refreshToken":    {Default: "", Help: "Remeha Home refresh token"},
	"remeha.clientID":        {Default: remeha.DefaultClientID, Help: "Remeha Home OAuth2 client ID"},
	"remeha.tokenURL":        {Default: remeha.DefaultTokenURL, Help: "Remeha Home token endpoint"},
	"remeha.apiURL":          {Default: remeha.DefaultAPIURL, Help: "Remeha Home API URL"},
	"remeha.subscriptionKey": {Default: remeha.DefaultSubscriptionKey, Help: "Remeha Home API subscription key"},
	"poller.interval":        {Default: time.Minute, Help: "Poller interval"},
	"poller.timeout":         {Default: poller.DefaultDashboardTimeout, Help: "Timeout of the dashboard call"},
	"exporter.addr":          {Default: ":9090", Help: "Address of Prometheus exporter"},
	"health.addr":            {Default: ":8080", Help: "Address of /health endpoint"},
	"mqtt.broker":            {Default: "", Help: "MQTT broker URL (blank: don't publish to MQTT)"},
	"mqtt.prefix":            {Default: mqtt.DefaultPrefix, Help: "MQTT topic prefix"},
	"mqtt.clientID":          {Default: "remeha-exporter", Help: "MQTT client ID"},
	"slack.token":            {Default: "", Help: "Slack token (blank: don't run the Slack bot)"},
	"slack.channel":          {Default: "", Help: "Slack channel for notifications"},
}

var ErrMissingRefreshToken = errors.New("remeha.refreshToken not set")

// Remeha returns the API client configuration.
func Remeha(v *viper.Viper) (remeha.Config, error) {
	cfg := remeha.Config{
		APIURL:          v.GetString("remeha.apiURL"),
		TokenURL:        v.GetString("remeha.tokenURL"),
		ClientID:        v.GetString("remeha.clientID"),
		SubscriptionKey: v.GetString("remeha.subscriptionKey"),
		RefreshToken:    v.GetString("remeha.refreshToken"),
	}
	if cfg.RefreshToken == "" {
		return remeha.Config{}, ErrMissingRefreshToken
	}
	return cfg, nil
}
