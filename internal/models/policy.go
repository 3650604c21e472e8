package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Method selects which SizingPolicy variant is in effect.
type Method string

const (
	// MethodSize partitions into groups of at most Value entrants.
	MethodSize Method = "size"
	// MethodCount partitions into at most Value groups of equal chunk length.
	MethodCount Method = "count"
)

const (
	DefaultMethod    = MethodSize
	DefaultTeamSize  = 2
	DefaultTeamCount = 2
)

// ParseMethod accepts "size" or "count" (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodSize:
		return MethodSize, nil
	case MethodCount:
		return MethodCount, nil
	default:
		return "", fmt.Errorf("unknown grouping method %q", s)
	}
}

// SizingPolicy is a tagged choice between BySize and ByCount.
type SizingPolicy struct {
	Method Method `json:"method"`
	Value  int    `json:"value"`
}

// BySize returns a policy producing groups of at most teamSize members.
func BySize(teamSize int) SizingPolicy {
	return SizingPolicy{Method: MethodSize, Value: ClampParam(teamSize)}
}

// ByCount returns a policy producing at most teamCount groups.
func ByCount(teamCount int) SizingPolicy {
	return SizingPolicy{Method: MethodCount, Value: ClampParam(teamCount)}
}

// Clamped returns p with Value raised to at least 1.
func (p SizingPolicy) Clamped() SizingPolicy {
	p.Value = ClampParam(p.Value)
	return p
}

// Estimate is the preview number shown before partitioning:
// the number of teams for MethodSize, members per team for MethodCount.
// Returns 0 for an empty roster.
func (p SizingPolicy) Estimate(rosterSize int) int {
	if rosterSize <= 0 {
		return 0
	}
	return CeilDiv(rosterSize, ClampParam(p.Value))
}

// SuggestedMax is the soft upper bound offered to the user for Value.
// It is advisory only; larger values are accepted.
func (p SizingPolicy) SuggestedMax(rosterSize int) int {
	if p.Method == MethodCount {
		return CeilDiv(rosterSize, 2)
	}
	return rosterSize
}

func (p SizingPolicy) String() string {
	return fmt.Sprintf("%s(%d)", p.Method, p.Value)
}

// ClampParam coerces a policy parameter up to the minimum of 1.
func ClampParam(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// ParseParam reads a raw parameter the way a number input field does:
// leading whitespace is skipped, an optional sign and the leading run of
// digits are parsed, anything after is ignored. Non-numeric input yields 1
// and the result is clamped to at least 1.
func ParseParam(raw string) int {
	s := strings.TrimLeft(raw, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// out of range; only the sign matters after clamping
		if s[0] == '-' {
			return 1
		}
		return math.MaxInt32
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return ClampParam(int(n))
}

// CeilDiv returns ceil(a/b) for a >= 0 and b > 0. It does not overflow for
// b up to math.MaxInt.
func CeilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
