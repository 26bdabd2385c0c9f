package parser

import (
	"regexp"
	"strings"
)

// ParsedSet is a weight/reps pair typed as one token
type ParsedSet struct {
	Weight string
	Reps   string
}

// setRegex matches "<weight> x <reps>", weight may be any text ("bodyweight", "25kg")
var setRegex = regexp.MustCompile(`^(.*?)\s*[xX×]\s*(\d+\S*)$`)

// ParseSet splits set notation into weight and reps.
// Supported formats:
// - 25x8, 25 x 8     -> weight "25", reps "8"
// - bodyweight x 12  -> weight "bodyweight", reps "12"
// - x12              -> reps only
// - 25               -> weight only
// Values stay free-form text; nothing is converted to numbers.
func ParseSet(input string) ParsedSet {
	input = strings.TrimSpace(input)
	if input == "" {
		return ParsedSet{}
	}

	matches := setRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return ParsedSet{Weight: input}
	}
	return ParsedSet{
		Weight: strings.TrimSpace(matches[1]),
		Reps:   matches[2],
	}
}
