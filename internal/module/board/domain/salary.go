package domain

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// The remote API models a salary as a single formatted string of the
// form "<min>-<max> <currency>". The client parses it for editing and
// serializes it back on save; serialize(parse(s)) must equal s for every
// valid input.
var salaryRangePattern = regexp.MustCompile(`^(\d+)-(\d+) (\S+)$`)

// SalaryRange is the decomposed form of the API's salary string.
type SalaryRange struct {
	Min      int
	Max      int
	Currency string
}

// ParseSalaryRange decodes an API salary string. The format is strict:
// anything that would not re-serialize byte-identically is rejected.
func ParseSalaryRange(s string) (SalaryRange, error) {
	matches := salaryRangePattern.FindStringSubmatch(s)
	if matches == nil {
		return SalaryRange{}, fmt.Errorf("invalid salary range %q: expected \"<min>-<max> <currency>\"", s)
	}

	min, err := strconv.Atoi(matches[1])
	if err != nil {
		return SalaryRange{}, fmt.Errorf("invalid salary minimum %q: %w", matches[1], err)
	}
	max, err := strconv.Atoi(matches[2])
	if err != nil {
		return SalaryRange{}, fmt.Errorf("invalid salary maximum %q: %w", matches[2], err)
	}

	return SalaryRange{Min: min, Max: max, Currency: matches[3]}, nil
}

// String serializes the range back into the API's wire format.
func (r SalaryRange) String() string {
	return fmt.Sprintf("%d-%d %s", r.Min, r.Max, r.Currency)
}

// Validate checks the bounds before any network call is made.
func (r SalaryRange) Validate() error {
	if r.Currency == "" {
		return &apierr.ValidationError{Field: "salary", Message: "currency is required"}
	}
	if r.Min > r.Max {
		return &apierr.ValidationError{Field: "salary", Message: "minimum must not exceed maximum"}
	}
	return nil
}
