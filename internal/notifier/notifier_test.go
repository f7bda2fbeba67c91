package notifier_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/clambin/remeha-exporter/internal/notifier"
	"github.com/clambin/remeha-exporter/internal/notifier/mocks"
	"github.com/clambin/remeha-exporter/internal/poller"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifiers_Notify(t *testing.T) {
	var testCases = []struct {
		name  string
		event poller.Event
		color string
		title string
		text  string
	}{
		{
			name:  "paused",
			event: poller.Event{Kind: poller.Paused, Err: errors.New("authentication required")},
			color: "danger",
			title: "remeha: polling paused",
			text:  "Remeha Home rejected the credentials. Renew the refresh token and request a refresh to resume.\nauthentication required",
		},
		{
			name:  "resumed",
			event: poller.Event{Kind: poller.Resumed},
			color: "good",
			title: "remeha: polling resumed",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			b := mocks.NewSlackSender(t)
			l := notifier.Notifiers{
				&notifier.SLogNotifier{Logger: slog.Default()},
				&notifier.SlackNotifier{Bot: b, Channel: "#home", Logger: slog.Default()},
			}

			b.EXPECT().Send("#home", mock.AnythingOfType("[]slack.Attachment")).RunAndReturn(func(_ string, attachments []slack.Attachment) error {
				require.Len(t, attachments, 1)
				assert.Equal(t, tt.color, attachments[0].Color)
				assert.Equal(t, tt.title, attachments[0].Title)
				assert.Equal(t, tt.text, attachments[0].Text)
				return nil
			}).Once()
			l.Notify(tt.event)
		})
	}
}

func TestSlackNotifier_Notify_Failure(t *testing.T) {
	var out bytes.Buffer
	b := mocks.NewSlackSender(t)
	b.EXPECT().Send("#home", mock.Anything).Return(errors.New("channel_not_found")).Once()

	n := notifier.SlackNotifier{Bot: b, Channel: "#home", Logger: slog.New(slog.NewTextHandler(&out, nil))}
	n.Notify(poller.Event{Kind: poller.Paused, Err: errors.New("authentication required")})

	assert.Contains(t, out.String(), "level=ERROR")
	assert.Contains(t, out.String(), `msg="notifier failed to post message"`)
	assert.Contains(t, out.String(), "err=channel_not_found")
}
