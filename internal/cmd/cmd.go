package cmd

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/remeha-exporter/internal/cmd/config"
	"github.com/clambin/remeha-exporter/internal/cmd/monitor"
	"github.com/clambin/remeha-exporter/internal/cmd/show"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "remeha-exporter",
		Short: "Prometheus exporter for Remeha Home heat pumps",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			charmer.SetJSONLogger(cmd, viper.GetBool("debug"))
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	_ = charmer.SetPersistentFlags(&RootCmd, viper.GetViper(), config.Arguments)

	RootCmd.AddCommand(&monitor.Cmd, &show.Cmd)
}

func initConfig() {
	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/remeha-exporter/")
		viper.AddConfigPath("$HOME/.remeha-exporter")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	// secrets (e.g. REMEHA_EXPORTER_REMEHA_REFRESHTOKEN) may be kept in a .env file
	_ = godotenv.Load()

	viper.SetEnvPrefix("REMEHA_EXPORTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFilename != "" || !errors.As(err, &notFound) {
			slog.Error("failed to read config file", "err", err)
			os.Exit(1)
		}
	}
}
