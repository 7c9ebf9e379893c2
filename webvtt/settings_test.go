package webvtt

/*
Cue settings parsing tests.
*/

import (
	"io"
	"testing"

	"github.com/matryer/is"
)

func discardParser() *Parser {
	return New().WithDiagnostics(io.Discard)
}

func TestParseSettingsDefaults(t *testing.T) {
	is := is.New(t)
	p := discardParser()
	s := p.parseSettings("")
	is.Equal(s.Vertical, "")          // horizontal by default
	is.Equal(s.Line, 0)               // default line
	is.Equal(s.LinePercent, false)    // line is not a percentage by default
	is.Equal(s.Position, 50)          // default position
	is.Equal(s.Size, 100)             // default size
	is.Equal(s.Align, AlignMiddle)    // default alignment
	is.Equal(s.SnapToLine, true)      // snap-to-line defaults on
	is.Equal(s.PauseOnExit, false)    // pause-on-exit defaults off
}

func TestParseSettingsAllRecognized(t *testing.T) {
	is := is.New(t)
	p := discardParser()
	s := p.parseSettings("vertical:rl line:-5 position:10% size:80% align:left")
	is.Equal(s.Vertical, VerticalRL)
	is.Equal(s.Line, -5)
	is.Equal(s.LinePercent, false)
	is.Equal(s.Position, 10)
	is.Equal(s.Size, 80)
	is.Equal(s.Align, AlignLeft)
}

func TestParseSettingsLineVariants(t *testing.T) {
	p := discardParser()
	cases := []struct {
		in      string
		line    int
		percent bool
	}{
		{"line:0", 0, false},
		{"line:90%", 90, true},
		{"line:100%", 100, true},
		{"line:-12", -12, false},
		{"line:1234", 1234, false}, // non-percent lines are unbounded
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			is := is.New(t)
			s := p.parseSettings(c.in)
			is.Equal(s.Line, c.line)
			is.Equal(s.LinePercent, c.percent)
		})
	}
}

func TestParseSettingsSkipsMalformed(t *testing.T) {
	p := discardParser()
	// Each entry leaves the settings at their defaults.
	bad := []string{
		"vertical:up",    // not rl or lr
		"align:center",   // not a known keyword
		"position:10",    // missing %
		"position:101%",  // out of range
		"size:%",         // no digits
		"size:-5%",       // negative size
		"line:5-5",       // dash only allowed in front
		"line:5%0",       // percent only allowed at the end
		"line:101%",      // percent out of range
		"line:-1%",       // negative percentage
		"standalone",     // no colon at all
		"unknown:value",  // unrecognized name
		"align:",         // empty value
		":middle",        // empty name
	}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			is := is.New(t)
			is.Equal(p.parseSettings(in), defaultSettings()) // malformed setting must be skipped
		})
	}
}

func TestParseSettingsSkipsOnlyTheBadOne(t *testing.T) {
	is := is.New(t)
	p := discardParser()
	s := p.parseSettings("align:end position:200% size:25%")
	is.Equal(s.Align, AlignEnd) // good setting before the bad one survives
	is.Equal(s.Position, 50)    // bad setting falls back to the default
	is.Equal(s.Size, 25)        // good setting after the bad one survives
}

func TestParseSettingsLastValidWins(t *testing.T) {
	is := is.New(t)
	p := discardParser()
	s := p.parseSettings("align:start align:end")
	is.Equal(s.Align, AlignEnd) // later assignment overrides earlier

	s = p.parseSettings("align:start align:bogus")
	is.Equal(s.Align, AlignStart) // invalid later occurrence does not override
}

func TestParseSettingsIdempotent(t *testing.T) {
	is := is.New(t)
	p := discardParser()
	raw := "vertical:lr line:3 position:15% align:right"
	is.Equal(p.parseSettings(raw), p.parseSettings(raw)) // same input, same result
}
