package book

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1", 1},
		{"0", 0},
		{"", 0},
		{"   ", 0},
		{" 1 ", 1},
		{"1.0", 1},
		{"+1", 1},
		{"1e0", 1},
		{"0x1", 1},
		{"0b1", 1},
		{"0o10", 8},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toNumber(tt.in))
		})
	}
}

func TestToNumber_NaN(t *testing.T) {
	for _, in := range []string{"true", "false", "abc", "1_000", "0x", "0xZZ", "inf", "NaN", "-0x1", "1e"} {
		t.Run(in, func(t *testing.T) {
			assert.True(t, math.IsNaN(toNumber(in)), "expected NaN for %q", in)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestMatcher(t *testing.T) {
	dunia := Book{Name: "Dunia Sophie", Reading: true, Finished: false}
	kancil := Book{Name: "Kisah Kancil", Reading: false, Finished: true}

	tests := []struct {
		name   string
		filter Filter
		want   []bool
	}{
		{"no filter", Filter{}, []bool{true, true}},
		{"empty name is a no-op", Filter{Name: strPtr("")}, []bool{true, true}},
		{"name substring case-insensitive", Filter{Name: strPtr("dunia")}, []bool{true, false}},
		{"name as pattern", Filter{Name: strPtr("^kis.h")}, []bool{false, true}},
		{"invalid pattern falls back to substring", Filter{Name: strPtr("(")}, []bool{false, false}},
		{"lookahead is taken literally", Filter{Name: strPtr("(?=Dunia)")}, []bool{false, false}},
		{"reading=1", Filter{Reading: strPtr("1")}, []bool{true, false}},
		{"reading=0", Filter{Reading: strPtr("0")}, []bool{false, true}},
		{"reading empty coerces to 0", Filter{Reading: strPtr("")}, []bool{false, true}},
		{"reading=true is NaN", Filter{Reading: strPtr("true")}, []bool{false, false}},
		{"finished=1", Filter{Finished: strPtr("1")}, []bool{false, true}},
		{"reading=2 matches nothing", Filter{Reading: strPtr("2")}, []bool{false, false}},
		{"filters compose", Filter{Name: strPtr("a"), Reading: strPtr("0"), Finished: strPtr("1")}, []bool{false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := compileFilter(tt.filter)
			assert.Equal(t, tt.want, []bool{m.match(dunia), m.match(kancil)})
		})
	}
}

func TestNameMatcher_UnsupportedSyntaxIsLiteral(t *testing.T) {
	match := nameMatcher("(?=x)")
	assert.False(t, match("xylophone"))
	assert.True(t, match("odd title (?=x) indeed"))
}

func TestNameMatcher_LiteralFallbackFolds(t *testing.T) {
	match := nameMatcher("C++ (")
	assert.True(t, match("Learning c++ (2nd ed)"))
	assert.False(t, match("Learning Go"))
}
