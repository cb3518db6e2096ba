package service

import (
	"context"
	"time"

	"admin-dashboard/internal/metrics"

	"github.com/rs/zerolog"
)

// dashboardService implements DashboardService.
type dashboardService struct {
	store    Store
	location *time.Location
	now      Clock
	logger   zerolog.Logger
}

// NewDashboardService creates a dashboard service bucketing days in loc.
func NewDashboardService(st Store, loc *time.Location, now Clock, logger zerolog.Logger) DashboardService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = defaultClock
	}
	return &dashboardService{
		store:    st,
		location: loc,
		now:      now,
		logger:   logger.With().Str("service", "dashboard").Logger(),
	}
}

// Summary derives every dashboard metric from the current snapshot.
func (s *dashboardService) Summary(ctx context.Context) metrics.Summary {
	summary := metrics.Summarize(s.store.Snapshot(), s.now().In(s.location))
	s.logger.Debug().
		Int("orders", summary.TotalOrders).
		Float64("revenue", summary.Revenue).
		Msg("dashboard summary computed")
	return summary
}
