package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	plainMinutesRegex = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:m|min|mins|minutes?)?$`)
	clockRegex        = regexp.MustCompile(`^(\d+):([0-5]\d)$`)
	hoursRegex        = regexp.MustCompile(`^(\d+)\s*h(?:\s*(\d+)\s*m?)?$`)
)

// ParseMinutes parses a cardio duration into minutes
// Supported formats:
// - 45, 45.5, 45m, 45 min
// - 1:10 (hours:minutes)
// - 1h, 1h10m, 1h 10
// An empty input is zero minutes.
func ParseMinutes(input string) (float64, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, nil
	}

	if m := plainMinutesRegex.FindStringSubmatch(input); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid minutes %q", input)
		}
		return v, nil
	}

	if m := clockRegex.FindStringSubmatch(input); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return float64(h*60 + min), nil
	}

	if m := hoursRegex.FindStringSubmatch(input); m != nil {
		h, _ := strconv.Atoi(m[1])
		min := 0
		if m[2] != "" {
			min, _ = strconv.Atoi(m[2])
		}
		return float64(h*60 + min), nil
	}

	return 0, fmt.Errorf("invalid duration %q. Use: 45, 45m, 1:10 or 1h10m", input)
}

// FormatMinutes renders minutes without a trailing ".0"
func FormatMinutes(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
