package constants

// SyncMode controls how the reconciler treats bookings that have left the feed
type SyncMode int

const (
	// SyncModeImport only creates and updates bookings from feed events.
	SyncModeImport SyncMode = iota
	// SyncModeReconcile additionally removes imported bookings whose
	// event disappeared from the feed.
	SyncModeReconcile
)
