package api

import (
	"net/http"
	"time"

	"stayflow/backoffice/internal/db/repositories"
)

// OccupancyReportHandler handles GET /api/v1/reports/occupancy
//
// Accepts from/to as YYYY-MM-DD; defaults to the current month.
func OccupancyReportHandler(reportRepo *repositories.ReportRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		if raw := r.URL.Query().Get("from"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
				return
			}
			from = parsed
		}
		if raw := r.URL.Query().Get("to"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
				return
			}
			to = parsed
		}

		if !to.After(from) {
			respondWithError(w, http.StatusBadRequest, "to must be after from")
			return
		}

		rows, err := reportRepo.Occupancy(r.Context(), from, to)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to run occupancy report")
			return
		}

		respondWithSuccess(w, http.StatusOK, &rows)
	}
}
