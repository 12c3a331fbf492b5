package dtos

import "time"

type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// SourceSyncResult is the outcome of syncing one (room, source) feed
type SourceSyncResult struct {
	RoomID   uint     `json:"room_id"`
	Source   string   `json:"source"`
	Success  bool     `json:"success"`
	Imported int      `json:"imported"`
	Updated  int      `json:"updated"`
	Removed  int      `json:"removed,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// CalendarSyncSummary aggregates per-source results for one or many rooms
type CalendarSyncSummary struct {
	Success   bool               `json:"success"`
	Imported  int                `json:"imported"`
	Updated   int                `json:"updated"`
	Removed   int                `json:"removed"`
	Errors    []string           `json:"errors"`
	Timestamp time.Time          `json:"timestamp"`
	Details   []SourceSyncResult `json:"details"`
}
