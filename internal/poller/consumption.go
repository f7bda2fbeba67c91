package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clambin/remeha-exporter/internal/remeha"
)

// todayRefreshInterval is how often today's consumption is requested: every 15 minutes, with some slack for scheduler jitter.
const todayRefreshInterval = 15*time.Minute - 15*time.Second

// applianceState holds everything the poller remembers about an appliance between update cycles.
type applianceState struct {
	technicalInfo *remeha.TechnicalInfo

	today     remeha.PowerRecord
	increase  remeha.PowerRecord
	lifetime  remeha.PowerRecord
	thisYear  remeha.PowerRecord
	thisMonth remeha.PowerRecord

	// zero if never refreshed
	lastTodayRefresh  time.Time
	lastTotalsRefresh time.Time
}

func newApplianceState() *applianceState {
	zero := remeha.ZeroPowerRecord()
	return &applianceState{
		today:     zero,
		increase:  zero,
		lifetime:  zero,
		thisYear:  zero,
		thisMonth: zero,
	}
}

func (s *applianceState) totalsDue(now time.Time) bool {
	return s.lastTotalsRefresh.IsZero() || beforeDate(s.lastTotalsRefresh, now)
}

func (s *applianceState) todayDue(now time.Time) bool {
	return s.lastTodayRefresh.IsZero() || now.Sub(s.lastTodayRefresh) >= todayRefreshInterval
}

// beforeDate reports whether the calendar date of t is strictly before the calendar date of now, in now's location.
func beforeDate(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC).Before(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC))
}

// refreshConsumption updates the consumption caches that are due at time now.
// Failures are logged and leave the caches untouched.
func (s *applianceState) refreshConsumption(ctx context.Context, source remeha.DataSource, applianceID string, now time.Time, logger *slog.Logger) {
	if s.totalsDue(now) {
		if err := s.refreshTotals(ctx, source, applianceID, now); err != nil {
			logger.Warn("failed to request consumption totals", slog.String("appliance", applianceID), slog.Any("err", err))
		}
	}
	if s.todayDue(now) {
		if err := s.refreshToday(ctx, source, applianceID, now); err != nil {
			logger.Warn("failed to request consumption data", slog.String("appliance", applianceID), slog.Any("err", err))
		} else {
			logger.Debug("consumption data updated", slog.String("appliance", applianceID), slog.Any("today", s.today))
		}
	}
}

func (s *applianceState) refreshTotals(ctx context.Context, source remeha.DataSource, applianceID string, now time.Time) error {
	lifetime, err := source.GetLifetimeConsumption(ctx, applianceID)
	if err != nil {
		return fmt.Errorf("lifetime: %w", err)
	}
	thisYear, err := source.GetYearConsumption(ctx, applianceID)
	if err != nil {
		return fmt.Errorf("year: %w", err)
	}
	thisMonth, err := source.GetMonthConsumption(ctx, applianceID)
	if err != nil {
		return fmt.Errorf("month: %w", err)
	}
	s.lifetime = lifetime.WithCOP()
	s.thisYear = thisYear.WithCOP()
	s.thisMonth = thisMonth.WithCOP()
	s.lastTotalsRefresh = now
	return nil
}

func (s *applianceState) refreshToday(ctx context.Context, source remeha.DataSource, applianceID string, now time.Time) error {
	today, err := source.GetTodayConsumption(ctx, applianceID)
	if err != nil {
		return fmt.Errorf("today: %w", err)
	}
	current := remeha.ZeroPowerRecord()
	if today != nil {
		current = today.WithCOP()
	}
	s.increase = current.Diff(s.today)
	s.today = current
	s.lastTodayRefresh = now
	return nil
}

// apply copies the consumption blocks into the appliance. Totals, yearly and monthly figures include today's consumption.
func (s *applianceState) apply(appliance *remeha.Appliance) {
	today := s.today
	increase := s.increase
	total := s.lifetime.Add(s.today)
	yearly := s.thisYear.Add(s.today)
	monthly := s.thisMonth.Add(s.today)

	appliance.ConsumptionData = &today
	appliance.IncreaseConsumptionData = &increase
	appliance.TotalConsumptionData = &total
	appliance.YearlyConsumptionData = &yearly
	appliance.MonthlyConsumptionData = &monthly
}
