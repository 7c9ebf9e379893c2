package webvtt

/*
 This file defines parsing of the cue settings list, the optional
 name:value pairs after the end timestamp on a timing line.
*/

import (
	"strconv"
	"strings"
)

// parseSettings parses a raw settings string into settings, starting
// from the format defaults. Malformed or unknown settings are skipped
// with a diagnostic; they never invalidate the cue. When a name occurs
// more than once the last valid occurrence wins.
func (p *Parser) parseSettings(raw string) CueSettings {
	settings := defaultSettings()
	for _, word := range strings.Fields(raw) {
		name, value, found := strings.Cut(word, ":")
		if !found {
			p.warnf("setting %q has no value", word)
			continue
		}
		if name == "" || strings.TrimSpace(value) == "" {
			p.warnf("setting %q has an empty name or value", word)
			continue
		}
		switch name {
		case "vertical":
			if value != VerticalRL && value != VerticalLR {
				p.warnf("invalid vertical value %q", value)
				continue
			}
			settings.Vertical = value
		case "line":
			num, percent, ok := parseLineValue(value)
			if !ok {
				p.warnf("invalid line value %q", value)
				continue
			}
			settings.Line = num
			settings.LinePercent = percent
		case "position":
			num, ok := parsePercentValue(value)
			if !ok {
				p.warnf("invalid position value %q", value)
				continue
			}
			settings.Position = num
		case "size":
			num, ok := parsePercentValue(value)
			if !ok {
				p.warnf("invalid size value %q", value)
				continue
			}
			settings.Size = num
		case "align":
			switch value {
			case AlignStart, AlignMiddle, AlignEnd, AlignLeft, AlignRight:
				settings.Align = value
			default:
				p.warnf("invalid align value %q", value)
				continue
			}
		default:
			p.warnf("unknown setting %q", name)
		}
	}
	return settings
}

// parseLineValue validates a line setting value: digits with an
// optional leading '-' and an optional trailing '%'. A percentage must
// be within 0-100 and cannot be negative.
func parseLineValue(value string) (num int, percent bool, ok bool) {
	digits := value
	if strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if strings.HasSuffix(digits, "%") {
		percent = true
		digits = digits[:len(digits)-1]
	}
	if digits == "" || strings.IndexFunc(digits, notDigit) >= 0 {
		return 0, false, false
	}
	num, err := strconv.Atoi(strings.TrimSuffix(value, "%"))
	if err != nil {
		return 0, false, false
	}
	if percent && (num < 0 || num > 100) {
		return 0, false, false
	}
	return num, percent, true
}

// parsePercentValue validates a position or size value: digits with a
// required trailing '%' and a value within 0-100.
func parsePercentValue(value string) (int, bool) {
	digits, found := strings.CutSuffix(value, "%")
	if !found || digits == "" || strings.IndexFunc(digits, notDigit) >= 0 {
		return 0, false
	}
	num, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	if num < 0 || num > 100 {
		return 0, false
	}
	return num, true
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}
