package routes

import (
	"github.com/go-chi/chi/v5"

	"stayflow/backoffice/internal/api"
	"stayflow/backoffice/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	repos := deps.Repo
	svcs := deps.Services

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public: staff login and guest self check-in by booking code
		v1.Post("/auth/login", api.LoginHandler(repos.User, deps.JWTSecret))
		v1.Post("/checkin", api.SubmitCheckInHandler(repos.Booking, repos.CheckIn))

		// Public: exported availability feed, polled by the platforms
		v1.Get("/rooms/{roomID}/calendar.ics", api.ExportRoomCalendarHandler(repos.Room, repos.Booking))

		// Staff routes
		v1.Group(func(staff chi.Router) {
			staff.Use(middleware.AuthMiddleware(deps.JWTSecret))

			staff.Get("/properties", api.ListPropertiesHandler(repos.Property))
			staff.Get("/properties/{propertyID}", api.GetPropertyHandler(repos.Property))
			staff.Get("/rooms", api.ListRoomsHandler(repos.Room))
			staff.Get("/rooms/{roomID}", api.GetRoomHandler(repos.Room))

			staff.Post("/bookings", api.CreateBookingHandler(repos.Booking, repos.Room, svcs.Settings))
			staff.Get("/bookings", api.ListBookingsHandler(repos.Booking))
			staff.Get("/bookings/{bookingID}", api.GetBookingHandler(repos.Booking))
			staff.Patch("/bookings/{bookingID}/status", api.UpdateBookingStatusHandler(repos.Booking))
			staff.Get("/bookings/{bookingID}/checkins", api.ListCheckInsHandler(repos.CheckIn))

			staff.Post("/messages", api.CreateMessageHandler(repos.Message, repos.Booking))
			staff.Get("/bookings/{bookingID}/messages", api.ListMessagesHandler(repos.Message))

			staff.Post("/rooms/{roomID}/calendar/sync",
				api.SyncRoomHandler(svcs.CalendarSync, repos.Room, deps.SyncConfig.RetentionDaysManual))
			staff.Post("/calendar/sync",
				api.TriggerCalendarSyncHandler(svcs.CalendarSync, repos.Room,
					deps.SyncConfig.RetentionDaysManual, deps.SyncConfig.MaxConcurrentRooms))
			staff.Get("/rooms/{roomID}/sync-logs", api.ListSyncLogsHandler(repos.SyncLog))

			staff.Get("/reports/occupancy", api.OccupancyReportHandler(repos.Report))

			// Owner/manager group
			staff.Group(func(managerial chi.Router) {
				managerial.Use(middleware.RequireManagerial())

				managerial.Post("/properties", api.CreatePropertyHandler(repos.Property))
				managerial.Delete("/properties/{propertyID}", api.DeletePropertyHandler(repos.Property))
				managerial.Post("/rooms", api.CreateRoomHandler(repos.Room, repos.Property))
				managerial.Put("/rooms/{roomID}/feeds", api.UpdateRoomFeedsHandler(repos.Room))

				managerial.Post("/staff-assignments",
					api.CreateStaffAssignmentHandler(repos.Staff, repos.User, repos.Property))
				managerial.Get("/properties/{propertyID}/staff", api.ListStaffAssignmentsHandler(repos.Staff))
			})
		})
	})
}
