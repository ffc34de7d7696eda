// Package geometry holds the pure conversions between wall-clock "HH:MM"
// strings and the week grid's vertical coordinate space, where one minute of
// time equals one unit of offset. Both the renderer and the drag math build
// on these.
//
// Inputs are expected to be well-formed "HH:MM" with hours in [0,23] and
// minutes in [0,59], as produced by the interpreter or the edit form. The
// functions do not validate; malformed input is a caller contract violation.
package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToOffset converts "HH:MM" to minutes since midnight.
func TimeToOffset(t string) int {
	parts := strings.SplitN(t, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours*60 + minutes
}

// Duration returns the length of [start, end] in minutes. The result is
// negative when end precedes start; events crossing midnight are not
// corrected here, the caller owns that edge case.
func Duration(start, end string) int {
	return TimeToOffset(end) - TimeToOffset(start)
}

// OffsetToTime converts minutes since midnight back to "HH:MM". Hours wrap
// through modulo 24, so offsets past the end of the day fold back onto the
// same displayed date. Negative offsets wrap the same way.
func OffsetToTime(minutes int) string {
	hours := (minutes / 60) % 24
	if hours < 0 {
		hours += 24
	}
	mins := minutes % 60
	if mins < 0 {
		mins += 60
		hours--
		if hours < 0 {
			hours += 24
		}
	}
	return fmt.Sprintf("%02d:%02d", hours, mins)
}
