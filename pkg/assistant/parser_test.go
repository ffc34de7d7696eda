package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Sunday, so "next Friday" is Sep 4 and "next Sunday" rolls a full week.
var parserNow = time.Date(2026, time.August, 30, 15, 30, 0, 0, time.Local)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		title string
	}{
		{"quoted after verb and type keyword", "Schedule a meeting called 'Budget Sync' on Friday", "Budget Sync"},
		{"quoted after verb", `Add "Dentist" tomorrow`, "Dentist"},
		{"unquoted run up to at", "Add meeting lunch at noon", "lunch"},
		{"unquoted run up to for", "Book appointment checkup for Friday", "checkup"},
		{"unquoted run up to on", "Create event sync-up on Monday", "sync-up"},
		{"unquoted run up to end of input", "Book appointment checkup", "checkup"},
		{"unquoted needs a type keyword", "Add lunch at noon", ""},
		{"no extractable title", "Add meeting tomorrow at 2pm", ""},
		{"bare verb", "add", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.title, extractTitle(tt.text))
		})
	}
}

func TestExtractDate(t *testing.T) {
	today := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)

	t.Run("tomorrow", func(t *testing.T) {
		date, found := extractDate("add lunch tomorrow", parserNow)
		assert.True(t, found)
		assert.Equal(t, today.AddDate(0, 0, 1), date)
	})

	t.Run("today", func(t *testing.T) {
		date, found := extractDate("add lunch today", parserNow)
		assert.True(t, found)
		assert.Equal(t, today, date)
	})

	t.Run("weekday resolves to next occurrence", func(t *testing.T) {
		date, found := extractDate("reschedule to friday", parserNow)
		assert.True(t, found)
		assert.Equal(t, time.Date(2026, time.September, 4, 0, 0, 0, 0, time.Local), date)
	})

	t.Run("named weekday never resolves to today", func(t *testing.T) {
		// parserNow is a Sunday; "sunday" must roll a full week forward.
		date, found := extractDate("move it to sunday", parserNow)
		assert.True(t, found)
		assert.Equal(t, today.AddDate(0, 0, 7), date)
		assert.NotEqual(t, today, date)
	})

	t.Run("no date defaults to today, unfound", func(t *testing.T) {
		date, found := extractDate("add something", parserNow)
		assert.False(t, found)
		assert.Equal(t, today, date)
	})
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start string
		end   string
	}{
		{"pm adds twelve", "add meeting at 2pm", "14:00", "15:00"},
		{"am keeps morning hours", "add standup at 9am", "09:00", "10:00"},
		{"12pm stays noon", "lunch at 12pm", "12:00", "13:00"},
		{"12am becomes midnight", "add shift at 12am", "00:00", "01:00"},
		{"minutes preserved", "add call at 2:45pm", "14:45", "15:45"},
		{"24 hour form", "add call at 16:15", "16:15", "17:15"},
		{"end wraps past midnight on the same date", "add party at 11:30pm", "23:30", "00:30"},
		{"no time defaults", "add lunch tomorrow", "09:00", "10:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := extractTime(tt.text)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		location string
	}{
		{"after at", "Add dinner at Luigi's on Friday", "Luigi's"},
		{"after in", "Add standup in Room 4, please", "Room 4"},
		{"clock time is not a location", "Add meeting tomorrow at 2pm", ""},
		{"no location", "Add lunch tomorrow", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.location, extractLocation(tt.text))
		})
	}
}

func TestParseCommand(t *testing.T) {
	cmd := parseCommand("Add meeting tomorrow at 2pm", parserNow)

	assert.Empty(t, cmd.title)
	assert.True(t, cmd.dateFound)
	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.Local), cmd.date)
	assert.Equal(t, "14:00", cmd.startTime)
	assert.Equal(t, "15:00", cmd.endTime)
	assert.Empty(t, cmd.location)
}
