// Package jobs holds the periodic background work run by cron.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const sweepTimeout = time.Minute

// BookingCompleter marks finished bookings as completed.
type BookingCompleter interface {
	CompleteFinished(ctx context.Context, now time.Time) (int, error)
}

// CompleteFinishedBookings runs one sweep.
func CompleteFinishedBookings(ctx context.Context, bookings BookingCompleter, now time.Time) {
	logrus.Debug("Running job: CompleteFinishedBookings")
	n, err := bookings.CompleteFinished(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("booking sweep failed")
		return
	}
	if n > 0 {
		logrus.WithField("count", n).Info("marked finished bookings as completed")
	}
}

// Start schedules the booking sweep on spec and starts the scheduler.
// The caller stops it with Stop.
func Start(spec string, bookings BookingCompleter) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		CompleteFinishedBookings(ctx, bookings, time.Now())
	})
	if err != nil {
		return nil, fmt.Errorf("schedule booking sweep %q: %w", spec, err)
	}
	c.Start()
	logrus.WithField("spec", spec).Info("booking sweep scheduled")
	return c, nil
}
