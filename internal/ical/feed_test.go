package ical

import (
	"strings"
	"testing"
	"time"
)

func feedDoc(lines ...string) string {
	doc := append([]string{
		"BEGIN:VCALENDAR",
		"PRODID:-//Airbnb Inc//Hosting Calendar 1.0//EN",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
	}, lines...)
	doc = append(doc, "END:VCALENDAR", "")
	return strings.Join(doc, "\r\n")
}

func TestParseFeed_SingleEvent(t *testing.T) {
	doc := feedDoc(
		"BEGIN:VEVENT",
		"DTSTAMP:20250301T000000Z",
		"DTSTART;VALUE=DATE:20250315",
		"DTEND;VALUE=DATE:20250318",
		"UID:abc-123@airbnb.com",
		"SUMMARY:John Doe",
		"END:VEVENT",
	)

	events, err := ParseFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseFeed returned error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.UID != "abc-123@airbnb.com" {
		t.Errorf("Expected UID abc-123@airbnb.com, got %s", ev.UID)
	}
	if ev.Summary != "John Doe" {
		t.Errorf("Expected summary John Doe, got %s", ev.Summary)
	}

	wantStart := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !ev.Start.Equal(wantStart) {
		t.Errorf("Expected start %v, got %v", wantStart, ev.Start)
	}
	wantEnd := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)
	if !ev.End.Equal(wantEnd) {
		t.Errorf("Expected end %v, got %v", wantEnd, ev.End)
	}
	if !ev.HasDates() {
		t.Error("Expected HasDates to be true")
	}
}

func TestParseFeed_MissingUIDGetsPlaceholder(t *testing.T) {
	doc := feedDoc(
		"BEGIN:VEVENT",
		"DTSTAMP:20250301T000000Z",
		"DTSTART;VALUE=DATE:20250401",
		"DTEND;VALUE=DATE:20250403",
		"SUMMARY:Reserved",
		"END:VEVENT",
	)

	events, err := ParseFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseFeed returned error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}

	if events[0].UID == "" {
		t.Error("Expected a generated placeholder UID, got empty string")
	}
	if !strings.HasPrefix(events[0].UID, "generated-") {
		t.Errorf("Expected generated UID, got %s", events[0].UID)
	}
}

func TestParseFeed_MissingEndLeavesZeroInstant(t *testing.T) {
	doc := feedDoc(
		"BEGIN:VEVENT",
		"DTSTAMP:20250301T000000Z",
		"DTSTART;VALUE=DATE:20250401",
		"UID:half-open@booking.com",
		"SUMMARY:CLOSED - Not available",
		"END:VEVENT",
	)

	events, err := ParseFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseFeed returned error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].HasDates() {
		t.Error("Expected HasDates to be false when DTEND is missing")
	}
}

func TestParseFeed_MultipleEventsAndDateTimes(t *testing.T) {
	doc := feedDoc(
		"BEGIN:VEVENT",
		"DTSTAMP:20250301T000000Z",
		"DTSTART:20250501T140000Z",
		"DTEND:20250504T100000Z",
		"UID:evt-1@booking.com",
		"SUMMARY:Jane Roe",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"DTSTAMP:20250301T000000Z",
		"DTSTART;VALUE=DATE:20250510",
		"DTEND;VALUE=DATE:20250512",
		"UID:evt-2@booking.com",
		"SUMMARY:Max Muster",
		"END:VEVENT",
	)

	events, err := ParseFeed(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseFeed returned error: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Start.Hour() != 14 {
		t.Errorf("Expected 14:00 start, got %v", events[0].Start)
	}
}

func TestParseFeed_Garbage(t *testing.T) {
	if _, err := ParseFeed(strings.NewReader("this is not a calendar")); err == nil {
		t.Error("Expected error for non-calendar input")
	}
}
