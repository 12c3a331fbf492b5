package ical

import (
	"fmt"
	"io"
	"strings"
	"time"

	goical "github.com/emersion/go-ical"
)

// FeedEvent is one VEVENT lifted out of an external calendar feed
type FeedEvent struct {
	UID     string
	Summary string
	Start   time.Time
	End     time.Time
}

// HasDates reports whether both instants resolved to concrete dates
func (e FeedEvent) HasDates() bool {
	return !e.Start.IsZero() && !e.End.IsZero()
}

// ParseFeed decodes an iCal document and returns its VEVENTs. An event
// without a UID gets a generated placeholder so it is never dropped for
// that reason alone. Date parsing failures leave the corresponding instant
// zero; the caller decides what to do with incomplete events.
func ParseFeed(r io.Reader) ([]FeedEvent, error) {
	dec := goical.NewDecoder(r)

	var events []FeedEvent
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse calendar feed: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != goical.CompEvent {
				continue
			}
			events = append(events, eventFromComponent(comp))
		}
	}

	return events, nil
}

func eventFromComponent(comp *goical.Component) FeedEvent {
	var ev FeedEvent

	if uid := comp.Props.Get(goical.PropUID); uid != nil && strings.TrimSpace(uid.Value) != "" {
		ev.UID = strings.TrimSpace(uid.Value)
	} else {
		ev.UID = fmt.Sprintf("generated-%d", time.Now().UnixNano())
	}

	if summary := comp.Props.Get(goical.PropSummary); summary != nil {
		ev.Summary = strings.TrimSpace(summary.Value)
	}

	if dtstart := comp.Props.Get(goical.PropDateTimeStart); dtstart != nil {
		if t, err := dtstart.DateTime(time.UTC); err == nil {
			ev.Start = t
		}
	}

	if dtend := comp.Props.Get(goical.PropDateTimeEnd); dtend != nil {
		if t, err := dtend.DateTime(time.UTC); err == nil {
			ev.End = t
		}
	}

	return ev
}
