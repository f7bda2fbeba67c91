package notifier

import (
	"log/slog"

	"github.com/clambin/remeha-exporter/internal/poller"
	"github.com/slack-go/slack"
)

//go:generate mockery --name SlackSender
type SlackSender interface {
	Send(channel string, attachments []slack.Attachment) error
}

type SlackNotifier struct {
	Bot     SlackSender
	Channel string
	Logger  *slog.Logger
}

var _ poller.Notifier = &SlackNotifier{}

func (s SlackNotifier) Notify(event poller.Event) {
	color := "good"
	if event.Kind == poller.Paused {
		color = "danger"
	}
	title, text := buildMessage(event)
	if err := s.Bot.Send(s.Channel, []slack.Attachment{{
		Color: color,
		Title: title,
		Text:  text,
	}}); err != nil {
		s.Logger.Error("notifier failed to post message", "err", err, "event", event.Kind.String())
	}
}
