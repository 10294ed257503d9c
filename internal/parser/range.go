package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/manav03panchal/studypace/internal/errors"
	"github.com/manav03panchal/studypace/internal/model"
)

// rangeRegex matches "21-25", "21..25", "21:25", or a bare "21".
var rangeRegex = regexp.MustCompile(`^(\d+)\s*(?:-|\.\.|:)\s*(\d+)$`)

// ParseRange parses a done-range expression into an inclusive 1-based
// range. A single number means a one-unit range.
func ParseRange(input string) (model.Range, error) {
	input = strings.TrimSpace(input)

	if n, err := strconv.Atoi(input); err == nil {
		return model.Range{Start: n, End: n}, nil
	}

	match := rangeRegex.FindStringSubmatch(input)
	if match == nil {
		return model.Range{}, errors.NewUserErrorWithField("range", input,
			"Could not parse range",
			"Use an inclusive range like '21-25' or a single unit like '21'").
			WrapSentinel(errors.ErrInvalidRange)
	}

	start, _ := strconv.Atoi(match[1])
	end, _ := strconv.Atoi(match[2])
	if start > end {
		return model.Range{}, errors.NewUserErrorWithField("range", input,
			"Invalid range",
			"Start must not be greater than end").
			WrapSentinel(errors.ErrInvalidRange)
	}

	return model.Range{Start: start, End: end}, nil
}
