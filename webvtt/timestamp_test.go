package webvtt

/*
Timestamp scanning and formatting tests.
*/

import (
	"testing"

	"github.com/matryer/is"
)

func TestScanTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"00:00.000", 0},
		{"00:00.001", 1},
		{"01:02.003", 62_003},
		{"59:59.999", 3_599_999},
		{"00:00:00.000", 0},
		{"01:02:03.004", 3_723_004},
		{"11:35:42.756", 41_742_756},
		{"100:00:00.000", 360_000_000},
		{"9:00:00.000", 32_400_000},   // single hour digit forces the hours form
		{"123:04:05.006", 443_045_006}, // hours can exceed two digits
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			is := is.New(t)
			ms, err := ScanTimestamp(c.in)
			is.NoErr(err)        // timestamp must scan
			is.Equal(ms, c.want) // wrong millisecond value
		})
	}
}

func TestScanTimestampRejects(t *testing.T) {
	bad := []string{
		"",
		"x",
		"60:00.000",      // minutes above 59
		"00:60.000",      // seconds above 59
		"10:00:60.000",   // seconds above 59, hours form
		"1:00.000",       // single digit first field demands the hours form
		"00:0.000",       // seconds need two digits
		"00:00.00",       // milliseconds need three digits
		"00:00.0000",     // milliseconds need exactly three digits
		"00:00,000",      // comma is not a decimal separator here
		"00:00.000x",     // trailing bytes
		"00-00.000",      // missing colon
		"00:00",          // missing milliseconds
		"12:34:56.78a",   // non-digit milliseconds
		"--:--.---",      // no digits at all
	}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			is := is.New(t)
			_, err := ScanTimestamp(in)
			is.Equal(err, ErrBadTimestamp) // must reject
		})
	}
}

func TestScanTimestampLeadingSpace(t *testing.T) {
	is := is.New(t)
	ms, err := ScanTimestamp(" \t00:01.000")
	is.NoErr(err) // leading spaces and tabs are consumed
	is.Equal(ms, int64(1000))
}

func TestScanTimestampWithinLine(t *testing.T) {
	is := is.New(t)
	line := "00:01.000 --> 00:02.000"
	pos := 0
	ms, err := scanTimestamp(line, &pos)
	is.NoErr(err)
	is.Equal(ms, int64(1000))
	is.Equal(line[pos:], " --> 00:02.000") // scanning stops after the milliseconds
}

func TestTimestampRoundTrip(t *testing.T) {
	is := is.New(t)
	hours := []int64{0, 1, 9, 10, 59, 99}
	minsec := []int64{0, 1, 9, 30, 59}
	millis := []int64{0, 1, 99, 500, 999}
	for _, h := range hours {
		for _, m := range minsec {
			for _, s := range minsec {
				for _, ms := range millis {
					want := h*msPerHour + m*msPerMinute + s*msPerSecond + ms
					got, err := ScanTimestamp(FormatTimestamp(want))
					is.NoErr(err)       // formatted timestamp must scan
					is.Equal(got, want) // format then scan must return the input
				}
			}
		}
	}
}
