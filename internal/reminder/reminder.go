// Package reminder implements the daily reminder check: a fixed-cadence
// poll that fires a notification when the configured time arrives and no
// entry has been logged for today.
package reminder

import (
	"fmt"
	"time"

	"github.com/julianstephens/moodlog/internal/constants"
	"github.com/julianstephens/moodlog/internal/logger"
	"github.com/julianstephens/moodlog/internal/models"
	"github.com/julianstephens/moodlog/internal/notify"
	"github.com/julianstephens/moodlog/internal/storage"
)

// Clock abstracts wall-clock time for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// TickInterval is the cadence of reminder checks.
const TickInterval = 60 * time.Second

// Scheduler polls the store on a fixed interval and notifies when the
// reminder condition holds. It is single-threaded: each tick is a quick
// synchronous check and ticks never overlap.
type Scheduler struct {
	store     storage.Provider
	notifier  notify.Notifier
	clock     Clock
	interval  time.Duration
	stopCh    chan struct{}
	lastFired string
}

func New(store storage.Provider, notifier notify.Notifier, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		store:    store,
		notifier: notifier,
		clock:    clock,
		interval: TickInterval,
		stopCh:   make(chan struct{}),
	}
}

// Run checks immediately and then once per interval until Stop is called.
func (s *Scheduler) Run() error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.Check(); err != nil {
			logger.Warn("reminder check failed", "error", err)
		}

		select {
		case <-ticker.C:
		case <-s.stopCh:
			return nil
		}
	}
}

// Stop terminates the Run loop. Safe to call once.
func (s *Scheduler) Stop() {
	close(s.stopCh)
}

// Check performs a single reminder tick. It returns true when a
// notification was fired. The match is exact-minute equality: if a tick is
// missed (e.g. system sleep), the reminder is skipped for that day rather
// than fired late.
func (s *Scheduler) Check() (bool, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return false, fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.ReminderEnabled {
		return false, nil
	}

	reminderAt, err := time.Parse(constants.TimeFormat, settings.ReminderTime)
	if err != nil {
		return false, fmt.Errorf("invalid reminder time %q: %w", settings.ReminderTime, err)
	}

	now := s.clock.Now()
	if now.Hour() != reminderAt.Hour() || now.Minute() != reminderAt.Minute() {
		return false, nil
	}

	// Fire at most once per matched minute even with sub-minute ticks.
	minuteKey := models.DayOf(now).Format(constants.DateFormat) + " " + now.Format(constants.TimeFormat)
	if s.lastFired == minuteKey {
		return false, nil
	}

	_, exists, err := s.store.GetEntryForDay(now)
	if err != nil {
		return false, fmt.Errorf("failed to check today's entry: %w", err)
	}
	if exists {
		return false, nil
	}

	s.lastFired = minuteKey

	if err := s.notifier.Notify(constants.ReminderTitle, constants.ReminderBody); err != nil {
		// Notification delivery failures degrade silently: the reminder
		// setting stays on and the loop keeps running.
		logger.Warn("failed to deliver reminder notification", "error", err)
		return false, nil
	}

	logger.Info("reminder notification sent", "time", settings.ReminderTime)
	return true, nil
}
