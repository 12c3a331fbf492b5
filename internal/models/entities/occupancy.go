package entities

// OccupancyRow is one row of the raw-SQL occupancy report
type OccupancyRow struct {
	PropertyID   uint    `db:"property_id" json:"property_id"`
	PropertyName string  `db:"property_name" json:"property_name"`
	RoomID       uint    `db:"room_id" json:"room_id"`
	RoomName     string  `db:"room_name" json:"room_name"`
	NightsBooked int     `db:"nights_booked" json:"nights_booked"`
	Revenue      float64 `db:"revenue" json:"revenue"`
}
