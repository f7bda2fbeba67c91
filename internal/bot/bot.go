package bot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/remeha-exporter/internal/poller"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/slack-go/slack"
)

type Bot struct {
	slack   SlackBot
	poller  poller.Poller
	logger  *slog.Logger
	lock    sync.RWMutex
	update  poller.Update
	updated bool
}

//go:generate mockery --name SlackBot
type SlackBot interface {
	Add(commands slackbot.Commands)
	Run(ctx context.Context) error
	Send(channel string, attachments []slack.Attachment) error
}

func New(remehaBot SlackBot, p poller.Poller, logger *slog.Logger) *Bot {
	b := &Bot{
		slack:  remehaBot,
		poller: p,
		logger: logger,
	}
	remehaBot.Add(slackbot.Commands{
		"appliances":  slackbot.HandlerFunc(b.ReportAppliances),
		"zones":       slackbot.HandlerFunc(b.ReportZones),
		"consumption": slackbot.HandlerFunc(b.ReportConsumption),
		"refresh":     slackbot.HandlerFunc(b.DoRefresh),
	})

	return b
}

// Run the bot
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Debug("started")
	defer b.logger.Debug("stopped")

	ch := b.poller.Subscribe()
	defer b.poller.Unsubscribe(ch)
	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			b.lock.Lock()
			b.update = update
			b.updated = true
			b.lock.Unlock()
		}
	}
}

var noUpdate = []slack.Attachment{{
	Color: "bad",
	Text:  "no updates yet. please check back later",
}}

func (b *Bot) ReportAppliances(_ context.Context, _ ...string) []slack.Attachment {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if !b.updated {
		return noUpdate
	}

	text := make([]string, 0, len(b.update.Dashboard.Appliances))
	for _, appliance := range b.update.Dashboard.Appliances {
		line := fmt.Sprintf("%s: %.1f bar", appliance.HouseName, appliance.WaterPressure)
		if !appliance.WaterPressureOK {
			line += " (LOW)"
		}
		if appliance.OutdoorTemperature != nil {
			line += fmt.Sprintf(", outside: %.1fºC", *appliance.OutdoorTemperature)
		}
		if appliance.ErrorStatus != "" && appliance.ErrorStatus != "Running" {
			line += ", status: " + appliance.ErrorStatus
		}
		text = append(text, line)
	}

	return report("appliances:", "no appliances found", text)
}

func (b *Bot) ReportZones(_ context.Context, _ ...string) []slack.Attachment {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if !b.updated {
		return noUpdate
	}

	text := make([]string, 0)
	for _, appliance := range b.update.Dashboard.Appliances {
		for _, zone := range appliance.ClimateZones {
			text = append(text, climateZoneState(zone))
		}
		for _, zone := range appliance.HotWaterZones {
			state := "idle"
			if zone.Heating() {
				state = "heating"
			}
			text = append(text, fmt.Sprintf("%s: %.1fºC (target: %.1f, %s)", zone.Name, zone.DHWTemperature, zone.TargetSetpoint, state))
		}
	}

	return report("zones:", "no zones found", text)
}

func climateZoneState(zone remeha.ClimateZone) string {
	temperature := "n/a"
	if zone.RoomTemperature != nil {
		temperature = fmt.Sprintf("%.1fºC", *zone.RoomTemperature)
	}
	state := fmt.Sprintf("target: %.1f, %s", zone.SetPoint, zone.ZoneMode)
	if zone.Demanding() {
		state += ", heating"
	}
	return zone.Name + ": " + temperature + " (" + state + ")"
}

func (b *Bot) ReportConsumption(_ context.Context, _ ...string) []slack.Attachment {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if !b.updated {
		return noUpdate
	}

	text := make([]string, 0, len(b.update.Dashboard.Appliances))
	for _, appliance := range b.update.Dashboard.Appliances {
		today, total := appliance.ConsumptionData, appliance.TotalConsumptionData
		if today == nil || total == nil {
			continue
		}
		text = append(text, fmt.Sprintf("%s: today: %.1f kWh (COP: %s), total: %.0f kWh (COP: %s)",
			appliance.HouseName,
			today.HeatingEnergyConsumed+today.HotWaterEnergyConsumed+today.CoolingEnergyConsumed,
			today.HeatingCOP,
			total.HeatingEnergyConsumed+total.HotWaterEnergyConsumed+total.CoolingEnergyConsumed,
			total.HeatingCOP,
		))
	}

	return report("consumption:", "no consumption data found", text)
}

func (b *Bot) DoRefresh(_ context.Context, _ ...string) []slack.Attachment {
	b.poller.Refresh()
	return []slack.Attachment{{
		Text: "refreshing Remeha data",
	}}
}

func report(title, empty string, text []string) []slack.Attachment {
	if len(text) == 0 {
		return []slack.Attachment{{
			Color: "bad",
			Text:  empty,
		}}
	}
	slices.Sort(text)
	return []slack.Attachment{{
		Color: "good",
		Title: title,
		Text:  strings.Join(text, "\n"),
	}}
}
