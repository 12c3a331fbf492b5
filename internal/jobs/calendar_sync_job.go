package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"stayflow/backoffice/internal/config"
	"stayflow/backoffice/internal/constants"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/services"
)

// CalendarSyncJob periodically imports every configured room feed. The cron
// path runs import-only: removal of vanished bookings is reserved for the
// manual sync endpoints where a human is watching the result.
type CalendarSyncJob struct {
	roomRepo *repositories.RoomRepository
	syncer   *services.CalendarSyncService
	cfg      config.SyncConfig
}

// NewCalendarSyncJob creates a new calendar sync job instance
func NewCalendarSyncJob(roomRepo *repositories.RoomRepository, syncer *services.CalendarSyncService, cfg config.SyncConfig) *CalendarSyncJob {
	return &CalendarSyncJob{
		roomRepo: roomRepo,
		syncer:   syncer,
		cfg:      cfg,
	}
}

// Run executes one import pass over all feed-bearing rooms
func (j *CalendarSyncJob) Run(ctx context.Context) error {
	start := time.Now()
	log.Printf("[CalendarSyncJob] Starting calendar import at %s", start.Format(time.RFC3339))

	rooms, err := j.roomRepo.ListWithFeeds(ctx, 0)
	if err != nil {
		log.Printf("[CalendarSyncJob] Error listing rooms: %v", err)
		return err
	}

	if len(rooms) == 0 {
		log.Printf("[CalendarSyncJob] No rooms with calendar feeds configured")
		return nil
	}

	log.Printf("[CalendarSyncJob] Found %d rooms with calendar feeds", len(rooms))

	opts := services.SyncOptions{
		Mode:          constants.SyncModeImport,
		RetentionDays: j.cfg.RetentionDaysCron,
	}

	totalImported := 0
	for _, room := range rooms {
		for _, feed := range services.RoomFeeds(&room) {
			result, err := j.syncer.SyncRoomFeed(ctx, room.ID, feed.URL, feed.Source, 0, opts)
			if err != nil {
				if errors.Is(err, services.ErrSyncInProgress) {
					log.Printf("[CalendarSyncJob] Room %d %s: sync already running, skipping", room.ID, feed.Source)
					continue
				}
				log.Printf("[CalendarSyncJob] Room %d %s: %v", room.ID, feed.Source, err)
				// Continue with other rooms even if one feed fails
				continue
			}
			totalImported += result.Imported
		}
	}

	log.Printf("[CalendarSyncJob] Completed calendar import in %s. Total bookings imported: %d",
		time.Since(start).Truncate(time.Millisecond), totalImported)

	return nil
}

// RunScheduled runs the import on a fixed interval until the context ends
func (j *CalendarSyncJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run once on start so a fresh deployment catches up immediately
	if err := j.Run(ctx); err != nil {
		log.Printf("[CalendarSyncJob] Error in initial run: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("[CalendarSyncJob] Scheduler stopping: %v", ctx.Err())
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				log.Printf("[CalendarSyncJob] Error in scheduled run: %v", err)
			}
		}
	}
}
