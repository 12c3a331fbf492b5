package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"stayflow/backoffice/internal/models/entities"
)

// ReportRepository runs raw-SQL reporting queries over sqlx
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const occupancyQuery = `
SELECT p.id   AS property_id,
       p.name AS property_name,
       r.id   AS room_id,
       r.name AS room_name,
       COALESCE(SUM(EXTRACT(DAY FROM b.check_out - b.check_in)), 0)::int AS nights_booked,
       COALESCE(SUM(b.total_price), 0) AS revenue
FROM rooms r
JOIN properties p ON p.id = r.property_id
LEFT JOIN bookings b
       ON b.room_id = r.id
      AND b.status <> 'CANCELLED'
      AND b.check_in < $2
      AND b.check_out > $1
GROUP BY p.id, p.name, r.id, r.name
ORDER BY p.id, r.id`

// Occupancy returns nights booked and revenue per room for a date window
func (r *ReportRepository) Occupancy(ctx context.Context, from, to time.Time) ([]entities.OccupancyRow, error) {
	var rows []entities.OccupancyRow

	if err := r.db.SelectContext(ctx, &rows, occupancyQuery, from, to); err != nil {
		return nil, err
	}

	return rows, nil
}
