package services

import (
	"errors"
	"fmt"
)

// ErrRoomNotFound aborts a sync before any network call is made
var ErrRoomNotFound = errors.New("room not found")

// ErrSyncInProgress means another sync currently holds the (room, source) lock
var ErrSyncInProgress = errors.New("a sync for this room and source is already running")

// ErrCodeGenerationExhausted is raised for one event when ten generated
// booking codes in a row collided; the event is skipped, the sync continues.
var ErrCodeGenerationExhausted = errors.New("could not generate a unique booking code after 10 attempts")

// FeedFetchError is fatal for one (room, source) sync: the feed could not be
// retrieved. Feed URLs embed platform tokens, so the URL itself is kept out
// of the message.
type FeedFetchError struct {
	Status      int
	BodyExcerpt string
	Err         error
}

func (e *FeedFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch calendar feed: %v", e.Err)
	}
	return fmt.Sprintf("calendar feed returned HTTP %d: %s", e.Status, e.BodyExcerpt)
}

func (e *FeedFetchError) Unwrap() error { return e.Err }

// FeedExpiredError is the fetch failure whose response body carries the
// platform's "invalid token" marker. Retrying is pointless; the operator has
// to regenerate the feed URL at the source platform.
type FeedExpiredError struct {
	Status int
}

func (e *FeedExpiredError) Error() string {
	return fmt.Sprintf("calendar feed link is no longer valid (HTTP %d); regenerate the feed URL at the source platform", e.Status)
}

// EventProcessingError wraps a per-event failure. It is accumulated, never
// escalated: one bad event must not abort the batch.
type EventProcessingError struct {
	UID string
	Err error
}

func (e *EventProcessingError) Error() string {
	return fmt.Sprintf("event %s: %v", e.UID, e.Err)
}

func (e *EventProcessingError) Unwrap() error { return e.Err }
