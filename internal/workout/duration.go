package workout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadDuration is returned when a duration is not formatted as HH:MM:SS
var ErrBadDuration = errors.New("duration must be formatted as HH:MM:SS")

// ParseDuration converts an HH:MM:SS string into elapsed minutes.
// Seconds are dropped, not rounded: "01:52:34" is 112. Minutes above 59
// are taken as given, so "00:75:00" is 75.
func ParseDuration(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: got %q", ErrBadDuration, s)
	}

	var fields [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: got %q", ErrBadDuration, s)
		}
		fields[i] = v
	}

	return fields[0]*60 + fields[1], nil
}
