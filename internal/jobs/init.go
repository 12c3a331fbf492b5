package jobs

import (
	"context"

	"stayflow/backoffice/internal/config"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/services"
)

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	roomRepo *repositories.RoomRepository,
	syncer *services.CalendarSyncService,
	cfg config.SyncConfig,
) *CalendarSyncJob {
	calendarSyncJob := NewCalendarSyncJob(roomRepo, syncer, cfg)

	// Start scheduled import in background
	go calendarSyncJob.RunScheduled(ctx, cfg.Interval)

	return calendarSyncJob
}
