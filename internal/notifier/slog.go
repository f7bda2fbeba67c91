package notifier

import (
	"log/slog"

	"github.com/clambin/remeha-exporter/internal/poller"
)

type SLogNotifier struct {
	Logger *slog.Logger
}

var _ poller.Notifier = &SLogNotifier{}

func (s SLogNotifier) Notify(event poller.Event) {
	title, _ := buildMessage(event)
	if event.Kind == poller.Paused {
		s.Logger.Warn(title, "err", event.Err)
		return
	}
	s.Logger.Info(title)
}
