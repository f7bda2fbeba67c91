// Package notifier reports changes in the poller's state.
package notifier

import (
	"github.com/clambin/remeha-exporter/internal/poller"
)

var _ poller.Notifier = Notifiers{}

type Notifiers []poller.Notifier

func (n Notifiers) Notify(event poller.Event) {
	for _, l := range n {
		l.Notify(event)
	}
}

func buildMessage(event poller.Event) (title string, text string) {
	switch event.Kind {
	case poller.Paused:
		title = "remeha: polling paused"
		text = "Remeha Home rejected the credentials. Renew the refresh token and request a refresh to resume."
		if event.Err != nil {
			text += "\n" + event.Err.Error()
		}
	case poller.Resumed:
		title = "remeha: polling resumed"
	default:
		title = "remeha: polling " + event.Kind.String()
	}
	return title, text
}
