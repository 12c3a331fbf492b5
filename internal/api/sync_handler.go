package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"stayflow/backoffice/internal/auth"
	"stayflow/backoffice/internal/constants"
	"stayflow/backoffice/internal/db/repositories"
	"stayflow/backoffice/internal/models/dtos"
	"stayflow/backoffice/internal/services"
)

// CalendarSyncer is the surface of CalendarSyncService the handlers need
type CalendarSyncer interface {
	SyncRoomFeed(ctx context.Context, roomID uint, feedURL string, source constants.CalendarSource, actorID uint, opts services.SyncOptions) (*services.SyncResult, error)
}

// SyncRoomHandler handles POST /api/v1/rooms/{roomID}/calendar/sync
//
// Manual per-room sync runs in reconcile mode: vanished events remove their
// imported bookings.
func SyncRoomHandler(syncer CalendarSyncer, roomRepo *repositories.RoomRepository, retentionDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := parseUintParam(r, "roomID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid room ID")
			return
		}

		room, err := roomRepo.FindByID(r.Context(), roomID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load room")
			return
		}
		if room == nil {
			respondWithError(w, http.StatusNotFound, "Room not found")
			return
		}

		feeds := services.RoomFeeds(room)
		if len(feeds) == 0 {
			respondWithError(w, http.StatusBadRequest, "Room has no calendar feeds configured")
			return
		}

		var actorID uint
		if claims := auth.GetStaffClaims(r.Context()); claims != nil {
			actorID = claims.UserID
		}

		opts := services.SyncOptions{
			Mode:          constants.SyncModeReconcile,
			RetentionDays: retentionDays,
		}

		summary := dtos.CalendarSyncSummary{Success: true, Timestamp: time.Now().UTC()}
		for _, feed := range feeds {
			result, err := syncer.SyncRoomFeed(r.Context(), room.ID, feed.URL, feed.Source, actorID, opts)
			if errors.Is(err, services.ErrSyncInProgress) {
				respondWithError(w, http.StatusConflict, "A sync for this room is already running")
				return
			}
			summary.Details = append(summary.Details, sourceResult(room.ID, feed.Source, result, err))
			mergeResult(&summary, result, err)
		}

		respondWithSuccess(w, http.StatusOK, &summary)
	}
}

// TriggerCalendarSyncHandler handles POST /api/v1/calendar/sync
//
// Batch sync over every feed-bearing room, optionally narrowed to one
// property. Rooms run concurrently with a bounded worker count.
func TriggerCalendarSyncHandler(syncer CalendarSyncer, roomRepo *repositories.RoomRepository, retentionDays, maxConcurrent int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.TriggerCalendarSyncRequest
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
		}

		rooms, err := roomRepo.ListWithFeeds(r.Context(), req.PropertyID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list rooms")
			return
		}

		var actorID uint
		if claims := auth.GetStaffClaims(r.Context()); claims != nil {
			actorID = claims.UserID
		}

		opts := services.SyncOptions{
			Mode:          constants.SyncModeReconcile,
			RetentionDays: retentionDays,
		}

		summary := dtos.CalendarSyncSummary{Success: true, Timestamp: time.Now().UTC()}

		var mu sync.Mutex
		g, ctx := errgroup.WithContext(r.Context())
		g.SetLimit(maxConcurrent)

		for _, room := range rooms {
			room := room
			g.Go(func() error {
				for _, feed := range services.RoomFeeds(&room) {
					result, err := syncer.SyncRoomFeed(ctx, room.ID, feed.URL, feed.Source, actorID, opts)

					mu.Lock()
					summary.Details = append(summary.Details, sourceResult(room.ID, feed.Source, result, err))
					mergeResult(&summary, result, err)
					mu.Unlock()
				}
				// Feed failures are reported per source, never abort the batch
				return nil
			})
		}
		_ = g.Wait()

		respondWithSuccess(w, http.StatusOK, &summary)
	}
}

// ListSyncLogsHandler handles GET /api/v1/rooms/{roomID}/sync-logs
func ListSyncLogsHandler(syncLogRepo *repositories.SyncLogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID, err := parseUintParam(r, "roomID")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid room ID")
			return
		}

		logs, err := syncLogRepo.ListByRoom(r.Context(), roomID, 50)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list sync logs")
			return
		}

		respondWithSuccess(w, http.StatusOK, &logs)
	}
}

func sourceResult(roomID uint, source constants.CalendarSource, result *services.SyncResult, err error) dtos.SourceSyncResult {
	res := dtos.SourceSyncResult{
		RoomID:  roomID,
		Source:  string(source),
		Success: err == nil,
	}
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Imported = result.Imported
	res.Updated = result.Updated
	res.Removed = result.Removed
	res.Errors = result.Errors
	return res
}

func mergeResult(summary *dtos.CalendarSyncSummary, result *services.SyncResult, err error) {
	if err != nil {
		summary.Success = false
		summary.Errors = append(summary.Errors, err.Error())
		return
	}
	summary.Imported += result.Imported
	summary.Updated += result.Updated
	summary.Removed += result.Removed
	summary.Errors = append(summary.Errors, result.Errors...)
	if len(result.Errors) > 0 {
		summary.Success = false
	}
}
