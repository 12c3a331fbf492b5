package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stayflow/backoffice/internal/common"
	"stayflow/backoffice/internal/config"
	"stayflow/backoffice/internal/constants"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/ical"
	"stayflow/backoffice/internal/logging"
	"stayflow/backoffice/internal/metrics"
	models "stayflow/backoffice/internal/models/gorm"
)

// Placeholder guest name for feed events published without a summary
const importedGuestPlaceholder = "Imported Guest"

// SyncOptions selects the reconciliation mode and retention cutoff for one run
type SyncOptions struct {
	Mode          constants.SyncMode
	RetentionDays int
}

// SyncResult is the outcome of reconciling one (room, source) feed
type SyncResult struct {
	Imported int
	Updated  int
	Removed  int
	Errors   []string
}

// FeedFetcher retrieves the raw feed document
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (string, error)
}

// CalendarSyncService reconciles a room's locally stored bookings with the
// events of an external calendar feed. One instance serves the cron
// importer, the per-room endpoint, and the batch endpoint.
type CalendarSyncService struct {
	bookingRepo *repositories.BookingRepository
	roomRepo    *repositories.RoomRepository
	syncLogRepo *repositories.SyncLogRepository
	feedClient  FeedFetcher
	locker      common.SyncLocker
	metricsReg  *metrics.MetricsRegistry
	cfg         config.SyncConfig
}

// NewCalendarSyncService creates a new calendar sync service
func NewCalendarSyncService(
	bookingRepo *repositories.BookingRepository,
	roomRepo *repositories.RoomRepository,
	syncLogRepo *repositories.SyncLogRepository,
	feedClient FeedFetcher,
	locker common.SyncLocker,
	metricsReg *metrics.MetricsRegistry,
	cfg config.SyncConfig,
) *CalendarSyncService {
	return &CalendarSyncService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		syncLogRepo: syncLogRepo,
		feedClient:  feedClient,
		locker:      locker,
		metricsReg:  metricsReg,
		cfg:         cfg,
	}
}

// SyncRoomFeed synchronizes the bookings of one room with one external feed.
//
// Feed-level failures (unreachable feed, unparseable document) fail the whole
// call and are logged with a failed SyncLog row. Per-event failures are
// collected into the result's Errors slice and never abort the batch. Every
// invocation that got past the room lookup writes exactly one SyncLog row.
func (s *CalendarSyncService) SyncRoomFeed(ctx context.Context, roomID uint, feedURL string, source constants.CalendarSource, actorID uint, opts SyncOptions) (*SyncResult, error) {
	start := time.Now()
	log := logging.WithSync(roomID, string(source))

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	locked, err := s.locker.TryLock(ctx, roomID, string(source), s.cfg.LockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrSyncInProgress
	}
	defer func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), roomID, string(source)); err != nil {
			log.Warnw("failed to release sync lock", "error", err.Error())
		}
	}()

	body, err := s.feedClient.Fetch(ctx, feedURL)
	if err != nil {
		s.finishFailed(ctx, roomID, source, err)
		return nil, err
	}

	events, err := ical.ParseFeed(strings.NewReader(body))
	if err != nil {
		s.finishFailed(ctx, roomID, source, err)
		return nil, err
	}

	retentionDays := opts.RetentionDays
	if retentionDays <= 0 {
		retentionDays = s.cfg.RetentionDaysManual
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	result := &SyncResult{}
	seenUIDs := make([]string, 0, len(events))

	for _, ev := range events {
		// Only events with both instants resolvable to concrete dates are
		// reconciled; half-open blocks stay untouched.
		if !ev.HasDates() {
			continue
		}
		// Long-finished stays are not worth importing and are not errors.
		if ev.End.Before(cutoff) {
			continue
		}

		seenUIDs = append(seenUIDs, ev.UID)

		if err := s.applyEvent(ctx, room, ev, source, actorID, result); err != nil {
			procErr := &EventProcessingError{UID: ev.UID, Err: err}
			result.Errors = append(result.Errors, procErr.Error())
			log.Warnw("event processing failed", "uid", ev.UID, "error", err.Error())
		}
	}

	if opts.Mode == constants.SyncModeReconcile {
		removed, err := s.removeVanishedBookings(ctx, roomID, source, seenUIDs)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("removal pass: %v", err))
		}
		result.Removed = removed
	}

	now := time.Now()
	if err := s.roomRepo.TouchLastSyncedAt(ctx, roomID, now); err != nil {
		log.Warnw("failed to stamp last_synced_at", "error", err.Error())
	}

	if err := s.syncLogRepo.Record(ctx, roomID, string(source), true, result.Imported, ""); err != nil {
		log.Warnw("failed to record sync log", "error", err.Error())
	}

	s.observe(source, "success", result, time.Since(start))
	log.Infow("calendar sync finished",
		"imported", result.Imported,
		"updated", result.Updated,
		"removed", result.Removed,
		"event_errors", len(result.Errors),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}

// applyEvent classifies one feed event against the room's bookings and
// creates or updates accordingly.
func (s *CalendarSyncService) applyEvent(ctx context.Context, room *models.Room, ev ical.FeedEvent, source constants.CalendarSource, actorID uint, result *SyncResult) error {
	existing, err := s.bookingRepo.FindByExternalID(ctx, room.ID, ev.UID)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if existing == nil {
		code, err := GenerateBookingCode(ctx, s.bookingRepo)
		if err != nil {
			return err
		}

		guestName := ev.Summary
		if guestName == "" {
			guestName = importedGuestPlaceholder
		}

		uid := ev.UID
		booking := &models.Booking{
			Code:               code,
			PropertyID:         room.PropertyID,
			RoomID:             room.ID,
			GuestName:          guestName,
			GuestEmail:         source.GuestPlaceholderEmail(),
			CheckIn:            ev.Start,
			CheckOut:           ev.End,
			GuestCount:         1,
			TotalPrice:         0,
			Status:             constants.BookingStatusConfirmed,
			Channel:            source.Channel(),
			ImportedFromIcal:   true,
			ExternalCalendarID: &uid,
			CreatedBy:          actorID,
		}

		if err := s.bookingRepo.Create(ctx, booking); err != nil {
			return fmt.Errorf("create failed: %w", err)
		}

		result.Imported++
		return nil
	}

	checkIns, err := s.bookingRepo.CountCheckIns(ctx, existing.ID)
	if err != nil {
		return fmt.Errorf("check-in count failed: %w", err)
	}

	fields := map[string]interface{}{
		"check_in":  ev.Start,
		"check_out": ev.End,
	}
	// A guest-data-bearing booking keeps its guest fields: an upstream
	// rename of the reservation must not clobber submitted registration
	// data. Without check-ins a full overwrite is safe.
	if checkIns == 0 && ev.Summary != "" {
		fields["guest_name"] = ev.Summary
	}

	if err := s.bookingRepo.UpdateFields(ctx, existing.ID, fields); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	result.Updated++
	return nil
}

// removeVanishedBookings deletes imported future bookings whose event left
// the feed, meaning the upstream platform cancelled or removed the
// reservation. Guest-data-bearing bookings are never deleted automatically.
func (s *CalendarSyncService) removeVanishedBookings(ctx context.Context, roomID uint, source constants.CalendarSource, feedUIDs []string) (int, error) {
	today := time.Now().Truncate(24 * time.Hour)

	candidates, err := s.bookingRepo.ListImportedMissingFromFeed(ctx, roomID, source.Channel(), feedUIDs, today)
	if err != nil {
		return 0, fmt.Errorf("candidate lookup failed: %w", err)
	}

	removed := 0
	for i := range candidates {
		b := &candidates[i]

		checkIns, err := s.bookingRepo.CountCheckIns(ctx, b.ID)
		if err != nil {
			return removed, fmt.Errorf("check-in count failed for booking %d: %w", b.ID, err)
		}
		if checkIns > 0 {
			continue
		}

		if err := s.bookingRepo.Delete(ctx, b.ID); err != nil {
			return removed, fmt.Errorf("delete failed for booking %d: %w", b.ID, err)
		}
		removed++
	}

	if removed > 0 && s.metricsReg != nil {
		s.metricsReg.BookingsRemoved.WithLabelValues(string(source)).Add(float64(removed))
	}

	return removed, nil
}

// finishFailed records the audit row for a feed-level failure
func (s *CalendarSyncService) finishFailed(ctx context.Context, roomID uint, source constants.CalendarSource, cause error) {
	if err := s.syncLogRepo.Record(ctx, roomID, string(source), false, 0, cause.Error()); err != nil {
		logging.WithSync(roomID, string(source)).Warnw("failed to record sync log", "error", err.Error())
	}
	if s.metricsReg != nil {
		s.metricsReg.SyncsTotal.WithLabelValues(string(source), "failure").Inc()
	}
}

func (s *CalendarSyncService) observe(source constants.CalendarSource, outcome string, result *SyncResult, elapsed time.Duration) {
	if s.metricsReg == nil {
		return
	}
	s.metricsReg.SyncsTotal.WithLabelValues(string(source), outcome).Inc()
	s.metricsReg.SyncDuration.WithLabelValues(string(source)).Observe(elapsed.Seconds())
	if result.Imported > 0 {
		s.metricsReg.SyncEventsImported.WithLabelValues(string(source)).Add(float64(result.Imported))
	}
}

// RoomFeed pairs a configured feed URL with its source platform
type RoomFeed struct {
	URL    string
	Source constants.CalendarSource
}

// RoomFeeds lists the feeds configured on a room in a stable order
func RoomFeeds(room *models.Room) []RoomFeed {
	var feeds []RoomFeed
	if room.AirbnbIcalURL != "" {
		feeds = append(feeds, RoomFeed{URL: room.AirbnbIcalURL, Source: constants.SourceAirbnb})
	}
	if room.BookingIcalURL != "" {
		feeds = append(feeds, RoomFeed{URL: room.BookingIcalURL, Source: constants.SourceBookingCom})
	}
	return feeds
}
