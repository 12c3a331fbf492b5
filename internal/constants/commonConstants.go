package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "success"
	APIStatusError APIStatus = "error"

	CachePrefixSettings CachePrefix = "SETTINGS_"
	CachePrefixSyncLock CachePrefix = "calendar_sync_lock:"
)

// Message channels
const (
	MessageChannelEmail    = "EMAIL"
	MessageChannelWhatsApp = "WHATSAPP"
)

// Message delivery states. Delivery itself happens at an external provider;
// the back office only queues rows.
const (
	MessageStatusQueued = "QUEUED"
	MessageStatusSent   = "SENT"
	MessageStatusFailed = "FAILED"
)
