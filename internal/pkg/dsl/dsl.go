// Package dsl holds the token helpers shared by the chat command mini languages.
package dsl

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmpty is returned when the input produced nothing to do.
var ErrEmpty = errors.New("empty command")

// ParseError reports the token that could not be understood.
type ParseError struct {
	Reason string
	Token  string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Reason
	}
	return e.Reason + ": " + e.Token
}

func NewParseError(reason, token string) *ParseError {
	return &ParseError{Reason: reason, Token: token}
}

// Random is the source of the randomized ranges.
type Random interface {
	Float64() float64
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
func (globalRandom) IntN(n int) int   { return rand.IntN(n) }

// DefaultRandom uses the process-wide generator.
var DefaultRandom Random = globalRandom{}

var (
	percentRange   = regexp.MustCompile(`^(\d+)%?-(\d+)%$`)
	percentRamp    = regexp.MustCompile(`^(\d+)%?\.\.+(\d+)%$`)
	secondsRange   = regexp.MustCompile(`^((?:\d+?\.)?\d+)s?-((?:\d+?\.)?\d+)s$`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Tokens splits text on whitespace and drops empty tokens.
func Tokens(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return whitespaceRuns.Split(text, -1)
}

// StartsWithDigit reports whether the token is a number-like argument rather than a name.
func StartsWithDigit(token string) bool {
	return token != "" && token[0] >= '0' && token[0] <= '9'
}

// Percent parses "N%".
func Percent(token string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSuffix(token, "%"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// PercentRange parses "N-M%" (and "N%-M%") and returns the bounds in order of appearance.
func PercentRange(token string) (low, high int, ok bool) {
	return intPair(percentRange, token)
}

// PercentRamp parses "N..M%".
func PercentRamp(token string) (from, to int, ok bool) {
	return intPair(percentRamp, token)
}

// Seconds parses "Ns" with an optional fraction.
func Seconds(token string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(token, "s"), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SecondsRange parses "a-bs" (and "as-bs").
func SecondsRange(token string) (low, high float64, ok bool) {
	m := secondsRange.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, false
	}
	low, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	high, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}
	return low, high, true
}

// Uniform returns a random value between a and b in either order.
func Uniform(r Random, a, b float64) float64 {
	return a + (b-a)*r.Float64()
}

// IntBetween returns a random integer in [a, b] in either order.
func IntBetween(r Random, a, b int) int {
	if a > b {
		a, b = b, a
	}
	return a + r.IntN(b-a+1)
}

func intPair(re *regexp.Regexp, token string) (int, int, bool) {
	m := re.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, false
	}
	a, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}
