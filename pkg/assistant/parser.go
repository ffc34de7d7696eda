package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jellycal/jellycal/internal/utils"
)

const (
	defaultStartTime = "09:00"
	defaultEndTime   = "10:00"
)

// Title extraction patterns, tried in order: quoted title after an explicit
// verb+type keyword, quoted title directly after the verb, then an unquoted
// run after a type keyword up to the first "at"/"on"/"for" or end of input.
// The last pattern's character class intentionally stops at any 'a' or 't',
// which makes phrases like "add meeting tomorrow at 2pm" fail title
// extraction and fall through to a clarification question.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:add|create|schedule|book)\s+(?:a\s+)?(?:meeting|event|appointment)?\s*(?:called|titled|named)?\s*["']([^"']+)["']`),
	regexp.MustCompile(`(?i)(?:add|create|schedule|book)\s+["']([^"']+)["']`),
	regexp.MustCompile(`(?i)(?:add|create|schedule|book)\s+(?:a\s+)?(?:meeting|event|appointment)?\s+([^at]+?)(?:\s+at|\s+on|\s+for|$)`),
}

var timePattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

var (
	locationPattern  = regexp.MustCompile(`(?i)(?:at|in|@)\s+([^,.\n]+?)(?:\s+(?:on|at|for)|[,.]|$)`)
	clockLikePattern = regexp.MustCompile(`(?i)\d+:?\d*\s*(?:am|pm)`)
)

var weekdays = []struct {
	keyword string
	day     time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// parsedCommand is the raw yield of the sub-parsers before intent handling
// decides what to do with it.
type parsedCommand struct {
	title     string
	date      time.Time
	dateFound bool
	startTime string
	endTime   string
	location  string
}

// parseCommand runs all sub-parsers over the utterance. Date defaults to
// today when nothing matches, with dateFound reporting whether an explicit
// date keyword was present (the reschedule path needs the distinction).
func parseCommand(text string, now time.Time) parsedCommand {
	cmd := parsedCommand{}
	cmd.title = extractTitle(text)
	cmd.date, cmd.dateFound = extractDate(text, now)
	cmd.startTime, cmd.endTime = extractTime(text)
	cmd.location = extractLocation(text)
	return cmd
}

func extractTitle(text string) string {
	for _, pattern := range titlePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractDate scans for "tomorrow", a weekday name, or "today". A named
// weekday always resolves to its next occurrence strictly after today: when
// today is that weekday, it rolls a full week forward. Without a match it
// falls back to today with found=false.
func extractDate(text string, now time.Time) (date time.Time, found bool) {
	lower := strings.ToLower(text)
	today := utils.DateOnly(now)

	if strings.Contains(lower, "tomorrow") {
		return today.AddDate(0, 0, 1), true
	}
	for _, wd := range weekdays {
		if strings.Contains(lower, wd.keyword) {
			return nextDayOfWeek(today, wd.day), true
		}
	}
	if strings.Contains(lower, "today") {
		return today, true
	}
	return today, false
}

func nextDayOfWeek(today time.Time, day time.Weekday) time.Time {
	daysUntil := (int(day) - int(today.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return today.AddDate(0, 0, daysUntil)
}

// extractTime takes the first H[:MM][am|pm] match, normalized to 24-hour.
// The end time is the start plus one hour with the hour wrapping through
// modulo 24; a 23:30 start yields a 00:30 end on the same displayed date.
// Without a match the 09:00/10:00 defaults apply.
func extractTime(text string) (start, end string) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return defaultStartTime, defaultEndTime
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	period := strings.ToLower(m[3])
	if period == "pm" && hours < 12 {
		hours += 12
	}
	if period == "am" && hours == 12 {
		hours = 0
	}

	start = fmt.Sprintf("%02d:%02d", hours, minutes)
	end = fmt.Sprintf("%02d:%02d", (hours+1)%24, minutes)
	return start, end
}

// extractLocation captures free text after "at"/"in"/"@" up to the next
// "on"/"at"/"for" or punctuation, rejecting captures that look like a clock
// time so "at 2pm" is not mistaken for a place.
func extractLocation(text string) string {
	m := locationPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if clockLikePattern.MatchString(m[1]) {
		return ""
	}
	return strings.TrimSpace(m[1])
}
