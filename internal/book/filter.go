package book

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// matcher is a compiled Filter.
type matcher struct {
	name     func(string) bool
	reading  *float64
	finished *float64
}

func compileFilter(f Filter) matcher {
	var m matcher
	if f.Name != nil && *f.Name != "" {
		m.name = nameMatcher(*f.Name)
	}
	if f.Reading != nil {
		v := toNumber(*f.Reading)
		m.reading = &v
	}
	if f.Finished != nil {
		v := toNumber(*f.Finished)
		m.finished = &v
	}
	return m
}

func (m matcher) match(b Book) bool {
	if m.name != nil && !m.name(b.Name) {
		return false
	}
	// NaN never equals anything, so unparseable filter values match nothing.
	if m.reading != nil && boolNumber(b.Reading) != *m.reading {
		return false
	}
	if m.finished != nil && boolNumber(b.Finished) != *m.finished {
		return false
	}
	return true
}

// nameMatcher treats pattern as a case-insensitive regular expression and
// falls back to a case-folded substring search when it does not compile.
func nameMatcher(pattern string) func(string) bool {
	if re, err := regexp.Compile("(?i)" + pattern); err == nil {
		return re.MatchString
	}
	fold := cases.Fold()
	needle := fold.String(pattern)
	return func(name string) bool {
		return strings.Contains(fold.String(name), needle)
	}
}

func boolNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// toNumber converts a query string value to a number the way a JavaScript
// Number() call would: blank is 0, prefixed integers are honoured and
// anything unparseable is NaN.
func toNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			if n, err := strconv.ParseUint(s, 0, 64); err == nil && !strings.Contains(s, "_") {
				return float64(n)
			}
			return math.NaN()
		}
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") || strings.ContainsAny(lower, "xp") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
