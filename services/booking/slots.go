package booking

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ResolveSlot computes the booked interval [start, end) from a requested
// time of day and the doctor's session duration. The start is truncated to
// minute precision (seconds forced to zero) and the end is computed by
// minute-of-day arithmetic.
//
// An end past 23:59 wraps to an early-morning time on the same calendar day.
// That mirrors the platform's historical behavior and is a known defect:
// nothing stops a 23:50 booking with a 30-minute session from recording
// [23:50, 00:20) on one date.
func ResolveSlot(requestedTime string, durationMinutes int) (start, end string, err error) {
	if durationMinutes < 1 || durationMinutes >= minutesPerDay {
		return "", "", fmt.Errorf("session duration %d out of range [1, %d)", durationMinutes, minutesPerDay)
	}

	startMin, err := parseMinuteOfDay(requestedTime)
	if err != nil {
		return "", "", err
	}
	endMin := (startMin + durationMinutes) % minutesPerDay

	return formatMinuteOfDay(startMin), formatMinuteOfDay(endMin), nil
}

// parseMinuteOfDay accepts "HH:MM" or "HH:MM:SS" and returns the minute of
// day, dropping any seconds component.
func parseMinuteOfDay(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", t)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in time of day %q", t)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in time of day %q", t)
	}
	return hours*60 + minutes, nil
}

// formatMinuteOfDay renders a minute of day as "HH:MM:00".
func formatMinuteOfDay(m int) string {
	return fmt.Sprintf("%02d:%02d:00", m/60, m%60)
}
