package show

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/clambin/go-common/charmer"
	"github.com/clambin/remeha-exporter/internal/cmd/config"
	"github.com/clambin/remeha-exporter/internal/poller"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	format string
	Cmd    = cobra.Command{
		Use:   "show",
		Short: "run one update cycle and show the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Remeha(viper.GetViper())
			if err != nil {
				return err
			}
			e, err := newEncoder(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}
			client := remeha.New(cmd.Context(), cfg, http.DefaultTransport)
			return Show(cmd.Context(), client, e, charmer.GetLogger(cmd))
		},
	}
)

func init() {
	Cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml|json)")
}

type Encoder interface {
	Encode(any) error
}

func newEncoder(w io.Writer, format string) (Encoder, error) {
	switch format {
	case "yaml":
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		return e, nil
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e, nil
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// Show runs one update cycle and encodes the result.
func Show(ctx context.Context, source remeha.DataSource, e Encoder, logger *slog.Logger) error {
	update, err := poller.NewCoordinator(source, logger).Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("remeha: %w", err)
	}
	return e.Encode(update)
}
