package feature

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/prognosis/schema"
)

var (
	ErrInvalidAge   = fmt.Errorf("age is not a non-negative integer")
	ErrInvalidSex   = fmt.Errorf("sex is not one of male/female")
	ErrInvalidCodes = fmt.Errorf("not a comma-separated list of integers")
)

// ParseAge parses an operator answer into an age.
func ParseAge(input string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(input))
	if nil != err || age < 0 {
		return 0, ErrInvalidAge
	}

	return age, nil
}

// ParseSex parses an operator answer into a Sex. Accepts long and short
// forms, case-insensitive.
func ParseSex(input string) (schema.Sex, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "f", "female":
		return schema.Female, nil
	case "m", "male":
		return schema.Male, nil
	}

	return schema.Female, ErrInvalidSex
}

// ParseCodes parses a comma-separated answer like "1, 3,7" into a set of
// codes. Duplicates collapse; order of first appearance is kept.
func ParseCodes(input string) ([]int, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrInvalidCodes
	}

	seen := map[int]bool{}
	codes := []int{}
	for _, part := range strings.Split(input, ",") {
		code, err := strconv.Atoi(strings.TrimSpace(part))
		if nil != err {
			return nil, ErrInvalidCodes
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}

	return codes, nil
}
