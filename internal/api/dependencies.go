package api

import (
	"os"

	"github.com/redis/go-redis/v9"

	"stayflow/backoffice/internal/common"
	"stayflow/backoffice/internal/config"
	"stayflow/backoffice/internal/db"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/metrics"
	"stayflow/backoffice/internal/services"
)

type Repositories struct {
	Property *repositories.PropertyRepository
	Room     *repositories.RoomRepository
	Booking  *repositories.BookingRepository
	CheckIn  *repositories.CheckInRepository
	SyncLog  *repositories.SyncLogRepository
	User     *repositories.UserRepository
	Staff    *repositories.StaffAssignmentRepository
	Message  *repositories.MessageRepository
	Report   *repositories.ReportRepository
}

type Services struct {
	Cache        *common.CacheService
	Settings     *services.SettingsService
	CalendarSync *services.CalendarSyncService
}

type Dependencies struct {
	Repo       *Repositories
	Services   *Services
	Redis      *redis.Client
	SyncConfig config.SyncConfig
	JWTSecret  string
	Metrics    *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Property: repositories.NewPropertyRepository(db.PgDB),
		Room:     repositories.NewRoomRepository(db.PgDB),
		Booking:  repositories.NewBookingRepository(db.PgDB),
		CheckIn:  repositories.NewCheckInRepository(db.PgDB),
		SyncLog:  repositories.NewSyncLogRepository(db.PgDB),
		User:     repositories.NewUserRepository(db.PgDB),
		Staff:    repositories.NewStaffAssignmentRepository(db.PgDB),
		Message:  repositories.NewMessageRepository(db.PgDB),
		Report:   repositories.NewReportRepository(db.DB),
	}

	syncCfg := config.LoadSyncConfig()
	cacheSvc := common.NewCacheService(60, 600)

	// Redis backs the sync locks when configured; a single instance can run
	// on the local cache alone.
	var redisClient *redis.Client
	var locker common.SyncLocker = common.NewLocalSyncLocker(cacheSvc)
	if os.Getenv("REDIS_HOST") != "" {
		redisClient = common.NewRedisClient()
		locker = common.NewRedisSyncLocker(redisClient)
	}

	feedClient := services.NewFeedClient(syncCfg.FetchTimeout, syncCfg.UserAgent)

	svcs := &Services{
		Cache:    cacheSvc,
		Settings: services.NewSettingsService(db.PgDB, cacheSvc),
		CalendarSync: services.NewCalendarSyncService(
			repos.Booking,
			repos.Room,
			repos.SyncLog,
			feedClient,
			locker,
			metricsReg,
			syncCfg,
		),
	}

	return &Dependencies{
		Repo:       repos,
		Services:   svcs,
		Redis:      redisClient,
		SyncConfig: syncCfg,
		JWTSecret:  config.JWTSecret(),
		Metrics:    metricsReg,
	}, nil
}
