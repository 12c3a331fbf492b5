package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"

	"stayflow/backoffice/internal/common"
	"stayflow/backoffice/internal/config"
	"stayflow/backoffice/internal/constants"
	"stayflow/backoffice/internal/db/repositories"
	models "stayflow/backoffice/internal/models/gorm"
)

// Mock feed fetcher
type stubFetcher struct {
	body  string
	err   error
	calls int
}

func (f *stubFetcher) Fetch(ctx context.Context, feedURL string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.body, nil
}

// Setup test database
func setupTestDB(t *testing.T) *gormlib.DB {
	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&models.Property{},
		&models.Room{},
		&models.Booking{},
		&models.GuestCheckIn{},
		&models.SyncLog{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func seedRoom(t *testing.T, db *gormlib.DB) *models.Room {
	property := models.Property{Name: "Casa Azul", City: "Lisbon"}
	if err := db.Create(&property).Error; err != nil {
		t.Fatalf("Failed to seed property: %v", err)
	}

	room := models.Room{
		PropertyID:    property.ID,
		Name:          "Seaview",
		AirbnbIcalURL: "https://airbnb.example/calendar.ics?s=token",
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("Failed to seed room: %v", err)
	}

	return &room
}

func newSyncService(db *gormlib.DB, fetcher FeedFetcher) *CalendarSyncService {
	cfg := config.SyncConfig{
		RetentionDaysManual: 30,
		RetentionDaysCron:   90,
		LockTTL:             time.Minute,
	}
	locker := common.NewLocalSyncLocker(common.NewCacheService(60, 600))

	return NewCalendarSyncService(
		repositories.NewBookingRepository(db),
		repositories.NewRoomRepository(db),
		repositories.NewSyncLogRepository(db),
		fetcher,
		locker,
		nil, // metrics are global, keep them out of unit tests
		cfg,
	)
}

func icalDate(t time.Time) string {
	return t.Format("20060102")
}

func feedWithEvents(events ...string) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"PRODID:-//Airbnb Inc//Hosting Calendar 1.0//EN",
		"VERSION:2.0",
	}
	lines = append(lines, events...)
	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n")
}

func vevent(uid, summary string, start, end time.Time) string {
	return strings.Join([]string{
		"BEGIN:VEVENT",
		"DTSTAMP:20250301T000000Z",
		"DTSTART;VALUE=DATE:" + icalDate(start),
		"DTEND;VALUE=DATE:" + icalDate(end),
		"UID:" + uid,
		"SUMMARY:" + summary,
		"END:VEVENT",
	}, "\r\n")
}

func TestSyncRoomFeed_CreatesBookingFromNewEvent(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 14)
	checkOut := checkIn.AddDate(0, 0, 3)
	fetcher := &stubFetcher{body: feedWithEvents(vevent("abc-123", "John Doe", checkIn, checkOut))}
	service := newSyncService(db, fetcher)

	result, err := service.SyncRoomFeed(context.Background(), room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeImport})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Imported != 1 {
		t.Errorf("Expected 1 imported, got %d", result.Imported)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Expected no event errors, got %v", result.Errors)
	}

	var booking models.Booking
	if err := db.Where("room_id = ? AND external_calendar_id = ?", room.ID, "abc-123").First(&booking).Error; err != nil {
		t.Fatalf("Expected booking to exist: %v", err)
	}

	if booking.GuestName != "John Doe" {
		t.Errorf("Expected guest name John Doe, got %s", booking.GuestName)
	}
	if booking.Status != constants.BookingStatusConfirmed {
		t.Errorf("Expected status CONFIRMED, got %s", booking.Status)
	}
	if booking.Channel != constants.ChannelAirbnb {
		t.Errorf("Expected channel AIRBNB, got %s", booking.Channel)
	}
	if !booking.ImportedFromIcal {
		t.Error("Expected imported_from_ical to be true")
	}
	if booking.GuestEmail == "" {
		t.Error("Expected a placeholder guest email, got empty string")
	}
	if booking.GuestCount != 1 {
		t.Errorf("Expected guest count 1, got %d", booking.GuestCount)
	}
	if booking.TotalPrice != 0 {
		t.Errorf("Expected total price 0, got %f", booking.TotalPrice)
	}
	if !strings.HasPrefix(booking.Code, "BK-") {
		t.Errorf("Expected generated booking code, got %s", booking.Code)
	}

	// Audit row
	var syncLog models.SyncLog
	if err := db.Where("room_id = ?", room.ID).First(&syncLog).Error; err != nil {
		t.Fatalf("Expected sync log row: %v", err)
	}
	if !syncLog.Success {
		t.Error("Expected successful sync log")
	}
	if syncLog.EventsImported != 1 {
		t.Errorf("Expected 1 event imported in log, got %d", syncLog.EventsImported)
	}

	// Room stamped
	var got models.Room
	db.First(&got, room.ID)
	if got.LastSyncedAt == nil {
		t.Error("Expected last_synced_at to be stamped")
	}
}

func TestSyncRoomFeed_SecondRunIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 14)
	fetcher := &stubFetcher{body: feedWithEvents(vevent("abc-123", "John Doe", checkIn, checkIn.AddDate(0, 0, 3)))}
	service := newSyncService(db, fetcher)

	ctx := context.Background()
	opts := SyncOptions{Mode: constants.SyncModeImport}

	if _, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, opts); err != nil {
		t.Fatalf("First sync failed: %v", err)
	}

	result, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, opts)
	if err != nil {
		t.Fatalf("Second sync failed: %v", err)
	}

	if result.Imported != 0 {
		t.Errorf("Expected 0 imported on second run, got %d", result.Imported)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 booking, got %d", count)
	}
}

func TestSyncRoomFeed_SummaryChangeUpdatesNameWithoutCheckIns(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 14)
	checkOut := checkIn.AddDate(0, 0, 3)
	fetcher := &stubFetcher{body: feedWithEvents(vevent("abc-123", "John Doe", checkIn, checkOut))}
	service := newSyncService(db, fetcher)

	ctx := context.Background()
	opts := SyncOptions{Mode: constants.SyncModeImport}

	if _, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, opts); err != nil {
		t.Fatalf("First sync failed: %v", err)
	}

	// Host renamed the reservation upstream
	fetcher.body = feedWithEvents(vevent("abc-123", "Jane Doe", checkIn, checkOut))

	result, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, opts)
	if err != nil {
		t.Fatalf("Second sync failed: %v", err)
	}
	if result.Updated != 1 {
		t.Errorf("Expected 1 updated, got %d", result.Updated)
	}

	var booking models.Booking
	db.Where("external_calendar_id = ?", "abc-123").First(&booking)
	if booking.GuestName != "Jane Doe" {
		t.Errorf("Expected guest name Jane Doe, got %s", booking.GuestName)
	}
}

func TestSyncRoomFeed_GuestDataBearingBookingKeepsGuestFields(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 14)
	checkOut := checkIn.AddDate(0, 0, 3)
	fetcher := &stubFetcher{body: feedWithEvents(vevent("abc-123", "Jane Doe", checkIn, checkOut))}
	service := newSyncService(db, fetcher)

	ctx := context.Background()
	opts := SyncOptions{Mode: constants.SyncModeImport}

	if _, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, opts); err != nil {
		t.Fatalf("First sync failed: %v", err)
	}

	var booking models.Booking
	db.Where("external_calendar_id = ?", "abc-123").First(&booking)

	// Guest submits registration data
	checkInRow := models.GuestCheckIn{BookingID: booking.ID, FullName: "Jane Doe", IsMainGuest: true}
	if err := db.Create(&checkInRow).Error; err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	// Upstream renames the reservation and shifts the dates
	newCheckOut := checkOut.AddDate(0, 0, 1)
	fetcher.body = feedWithEvents(vevent("abc-123", "Someone Else", checkIn, newCheckOut))

	if _, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, opts); err != nil {
		t.Fatalf("Second sync failed: %v", err)
	}

	var updated models.Booking
	db.Where("external_calendar_id = ?", "abc-123").First(&updated)

	if updated.GuestName != "Jane Doe" {
		t.Errorf("Guest name must not be clobbered, got %s", updated.GuestName)
	}
	if updated.GuestEmail != booking.GuestEmail {
		t.Errorf("Guest email must not change, got %s", updated.GuestEmail)
	}
	if updated.GuestPhone != booking.GuestPhone {
		t.Errorf("Guest phone must not change, got %s", updated.GuestPhone)
	}
	wantOut := time.Date(newCheckOut.Year(), newCheckOut.Month(), newCheckOut.Day(), 0, 0, 0, 0, time.UTC)
	if !updated.CheckOut.Equal(wantOut) {
		t.Errorf("Expected check-out to move to %v, got %v", wantOut, updated.CheckOut)
	}
}

func TestSyncRoomFeed_OldEventsAreSilentlySkipped(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	// Ended well beyond the 30 day retention cutoff
	oldStart := time.Now().AddDate(0, 0, -120)
	fetcher := &stubFetcher{body: feedWithEvents(vevent("old-1", "Ancient Guest", oldStart, oldStart.AddDate(0, 0, 2)))}
	service := newSyncService(db, fetcher)

	result, err := service.SyncRoomFeed(context.Background(), room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeImport})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Imported != 0 {
		t.Errorf("Expected 0 imported, got %d", result.Imported)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Old events must not count as errors, got %v", result.Errors)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no bookings, got %d", count)
	}
}

func TestSyncRoomFeed_EventsWithoutDatesAreSkipped(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	halfOpen := strings.Join([]string{
		"BEGIN:VEVENT",
		"DTSTAMP:20250301T000000Z",
		"DTSTART;VALUE=DATE:" + icalDate(time.Now().AddDate(0, 0, 7)),
		"UID:half-open",
		"SUMMARY:CLOSED - Not available",
		"END:VEVENT",
	}, "\r\n")
	fetcher := &stubFetcher{body: feedWithEvents(halfOpen)}
	service := newSyncService(db, fetcher)

	result, err := service.SyncRoomFeed(context.Background(), room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeImport})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Imported != 0 || len(result.Errors) != 0 {
		t.Errorf("Half-open events must be skipped quietly, got %+v", result)
	}
}

func TestSyncRoomFeed_FetchFailureLogsAndReturnsError(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	fetcher := &stubFetcher{err: &FeedFetchError{Status: 503, BodyExcerpt: "upstream down"}}
	service := newSyncService(db, fetcher)

	_, err := service.SyncRoomFeed(context.Background(), room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeImport})
	if err == nil {
		t.Fatal("Expected error for unreachable feed")
	}

	var fetchErr *FeedFetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("Expected FeedFetchError, got %T", err)
	}

	var syncLog models.SyncLog
	if err := db.Where("room_id = ?", room.ID).First(&syncLog).Error; err != nil {
		t.Fatalf("Expected a failure sync log row: %v", err)
	}
	if syncLog.Success {
		t.Error("Expected sync log success=false")
	}
	if syncLog.Error == nil || *syncLog.Error == "" {
		t.Error("Expected sync log to carry an error message")
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("No bookings may be created on fetch failure, got %d", count)
	}
}

func TestSyncRoomFeed_ExpiredFeedIsDistinguishable(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	fetcher := &stubFetcher{err: &FeedExpiredError{Status: 403}}
	service := newSyncService(db, fetcher)

	_, err := service.SyncRoomFeed(context.Background(), room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeImport})

	var expiredErr *FeedExpiredError
	if !errors.As(err, &expiredErr) {
		t.Errorf("Expected FeedExpiredError, got %v", err)
	}
}

func TestSyncRoomFeed_RoomNotFoundFailsBeforeFetch(t *testing.T) {
	db := setupTestDB(t)

	fetcher := &stubFetcher{body: feedWithEvents()}
	service := newSyncService(db, fetcher)

	_, err := service.SyncRoomFeed(context.Background(), 9999, "https://example.com/feed.ics", constants.SourceAirbnb, 1, SyncOptions{})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("Fetch must not happen for an unknown room, got %d calls", fetcher.calls)
	}
}

func TestSyncRoomFeed_ReconcileRemovesVanishedFutureBooking(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 14)
	fetcher := &stubFetcher{body: feedWithEvents(
		vevent("stays-1", "Keeper", checkIn, checkIn.AddDate(0, 0, 2)),
		vevent("gone-1", "Vanisher", checkIn.AddDate(0, 0, 10), checkIn.AddDate(0, 0, 12)),
	)}
	service := newSyncService(db, fetcher)

	ctx := context.Background()

	if _, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeReconcile}); err != nil {
		t.Fatalf("First sync failed: %v", err)
	}

	// Upstream cancelled gone-1
	fetcher.body = feedWithEvents(vevent("stays-1", "Keeper", checkIn, checkIn.AddDate(0, 0, 2)))

	result, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeReconcile})
	if err != nil {
		t.Fatalf("Second sync failed: %v", err)
	}

	if result.Removed != 1 {
		t.Errorf("Expected 1 removed, got %d", result.Removed)
	}

	var count int64
	db.Model(&models.Booking{}).Where("external_calendar_id = ?", "gone-1").Count(&count)
	if count != 0 {
		t.Error("Expected vanished booking to be deleted")
	}
	db.Model(&models.Booking{}).Where("external_calendar_id = ?", "stays-1").Count(&count)
	if count != 1 {
		t.Error("Expected surviving booking to stay")
	}
}

func TestSyncRoomFeed_ReconcileNeverRemovesGuestDataBearingBooking(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 14)
	fetcher := &stubFetcher{body: feedWithEvents(vevent("gone-2", "Registered Guest", checkIn, checkIn.AddDate(0, 0, 2)))}
	service := newSyncService(db, fetcher)

	ctx := context.Background()

	if _, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeReconcile}); err != nil {
		t.Fatalf("First sync failed: %v", err)
	}

	var booking models.Booking
	db.Where("external_calendar_id = ?", "gone-2").First(&booking)
	if err := db.Create(&models.GuestCheckIn{BookingID: booking.ID, FullName: "Registered Guest"}).Error; err != nil {
		t.Fatalf("Failed to create check-in: %v", err)
	}

	// Event disappears upstream, but the booking carries guest data
	fetcher.body = feedWithEvents()

	result, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeReconcile})
	if err != nil {
		t.Fatalf("Second sync failed: %v", err)
	}

	if result.Removed != 0 {
		t.Errorf("Guest-data-bearing booking must not be removed, got %d removals", result.Removed)
	}

	var count int64
	db.Model(&models.Booking{}).Where("external_calendar_id = ?", "gone-2").Count(&count)
	if count != 1 {
		t.Error("Expected booking to survive reconciliation")
	}
}

func TestSyncRoomFeed_ImportModeDoesNotRemove(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 14)
	fetcher := &stubFetcher{body: feedWithEvents(vevent("gone-3", "Import Guest", checkIn, checkIn.AddDate(0, 0, 2)))}
	service := newSyncService(db, fetcher)

	ctx := context.Background()

	if _, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeImport}); err != nil {
		t.Fatalf("First sync failed: %v", err)
	}

	fetcher.body = feedWithEvents()

	result, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeImport})
	if err != nil {
		t.Fatalf("Second sync failed: %v", err)
	}

	if result.Removed != 0 {
		t.Errorf("Import mode must never remove, got %d", result.Removed)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 1 {
		t.Error("Expected booking to survive an import-only sync")
	}
}

func TestSyncRoomFeed_LockPreventsOverlappingRuns(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	cache := common.NewCacheService(60, 600)
	locker := common.NewLocalSyncLocker(cache)

	cfg := config.SyncConfig{RetentionDaysManual: 30, LockTTL: time.Minute}
	fetcher := &stubFetcher{body: feedWithEvents()}
	service := NewCalendarSyncService(
		repositories.NewBookingRepository(db),
		repositories.NewRoomRepository(db),
		repositories.NewSyncLogRepository(db),
		fetcher,
		locker,
		nil,
		cfg,
	)

	ctx := context.Background()

	// Simulate a sync in flight
	if ok, _ := locker.TryLock(ctx, room.ID, string(constants.SourceAirbnb), time.Minute); !ok {
		t.Fatal("Failed to pre-acquire lock")
	}

	_, err := service.SyncRoomFeed(ctx, room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeImport})
	if !errors.Is(err, ErrSyncInProgress) {
		t.Errorf("Expected ErrSyncInProgress, got %v", err)
	}
}

func TestGenerateBookingCode_Unique(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewBookingRepository(db)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateBookingCode(context.Background(), repo)
		if err != nil {
			t.Fatalf("Code generation failed: %v", err)
		}
		if !strings.HasPrefix(code, "BK-") || len(code) != 11 {
			t.Errorf("Unexpected code format: %s", code)
		}
		if seen[code] {
			t.Errorf("Duplicate code generated: %s", code)
		}
		seen[code] = true
	}
}

// exhaustedChecker reports every code as taken
type exhaustedChecker struct{}

func (exhaustedChecker) CodeExists(ctx context.Context, code string) (bool, error) {
	return true, nil
}

func TestGenerateBookingCode_BoundedRetries(t *testing.T) {
	_, err := GenerateBookingCode(context.Background(), exhaustedChecker{})
	if !errors.Is(err, ErrCodeGenerationExhausted) {
		t.Errorf("Expected ErrCodeGenerationExhausted, got %v", err)
	}
}

func TestSyncRoomFeed_ImportsMultipleEvents(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db)

	checkIn := time.Now().AddDate(0, 0, 14)
	fetcher := &stubFetcher{body: feedWithEvents(
		vevent("ok-1", "Fine Guest", checkIn, checkIn.AddDate(0, 0, 2)),
		vevent("ok-2", "Also Fine", checkIn.AddDate(0, 0, 5), checkIn.AddDate(0, 0, 7)),
	)}
	service := newSyncService(db, fetcher)

	result, err := service.SyncRoomFeed(context.Background(), room.ID, room.AirbnbIcalURL, constants.SourceAirbnb, 1, SyncOptions{Mode: constants.SyncModeImport})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Imported != 2 {
		t.Errorf("Expected 2 imported, got %d", result.Imported)
	}
}

func TestRoomFeeds(t *testing.T) {
	room := &models.Room{
		AirbnbIcalURL:  "https://airbnb.example/a.ics",
		BookingIcalURL: "https://booking.example/b.ics",
	}

	feeds := RoomFeeds(room)
	if len(feeds) != 2 {
		t.Fatalf("Expected 2 feeds, got %d", len(feeds))
	}
	if feeds[0].Source != constants.SourceAirbnb || feeds[1].Source != constants.SourceBookingCom {
		t.Errorf("Unexpected feed order: %+v", feeds)
	}

	feeds = RoomFeeds(&models.Room{BookingIcalURL: "https://booking.example/b.ics"})
	if len(feeds) != 1 || feeds[0].Source != constants.SourceBookingCom {
		t.Errorf("Expected only the Booking.com feed, got %+v", feeds)
	}

	if got := RoomFeeds(&models.Room{}); len(got) != 0 {
		t.Errorf("Expected no feeds, got %+v", got)
	}
}
