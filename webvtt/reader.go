package webvtt

/*
 This file defines functions related to file parsing: the parser state
 machine that walks a WebVTT byte buffer and produces the cue list.
*/

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrNotWebVTT = errors.New("bad magic, not a WEBVTT file")
var ErrBadTimingLine = errors.New("malformed cue timing line")

// utf8BOM is the optional byte order mark before the signature.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// signature is the file magic after the optional byte order mark.
const signature = "WEBVTT"

// arrow separates the start and end timestamps on a timing line.
const arrow = "-->"

// parseState enumerates the states of the cue stream parser.
type parseState uint8

const (
	stateInitial parseState = iota
	stateHeader
	stateID
	stateTimings
	stateCueText
	stateNextCue
	stateBadCue
	stateEnd
)

// Parser decodes WebVTT files. A parser owns a copy of its input
// buffer and may be reused for several inputs in sequence. It is not
// safe for concurrent use.
type Parser struct {
	cur   cursor
	state parseState
	diag  io.Writer
}

// New creates a fresh parser with an empty buffer. Diagnostics about
// dropped cues and skipped settings are written to os.Stderr until
// redirected with WithDiagnostics.
func New() *Parser {
	return &Parser{diag: os.Stderr}
}

// WithDiagnostics redirects the parser's diagnostic output to w and
// returns the parser for chaining.
func (p *Parser) WithDiagnostics(w io.Writer) *Parser {
	p.diag = w
	return p
}

func (p *Parser) warnf(format string, args ...any) {
	fmt.Fprintf(p.diag, "webvtt: "+format+"\n", args...)
}

// ParseBuffer copies data into the parser's buffer and decodes it to
// completion. The returned cues own their strings; none of them
// reference data. The only possible error is ErrNotWebVTT.
func (p *Parser) ParseBuffer(data []byte) ([]*Cue, error) {
	p.cur = cursor{buf: bytes.Clone(data)}
	p.state = stateInitial
	return p.parse()
}

// DecodeFrom reads all of r and decodes it as a WebVTT file.
func (p *Parser) DecodeFrom(r io.Reader) ([]*Cue, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	p.cur = cursor{buf: buf.Bytes()}
	p.state = stateInitial
	return p.parse()
}

// ParseFile reads the file fully into the parser's buffer and decodes
// it to completion.
func (p *Parser) ParseFile(f *os.File) ([]*Cue, error) {
	return p.DecodeFrom(f)
}

// ParseFilename opens path, decodes it with ParseFile and closes the
// file again. The open error is returned as is when the file cannot
// be opened.
func (p *Parser) ParseFilename(path string) ([]*Cue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.ParseFile(f)
}

// parse runs the state machine over the parser's buffer and collects
// the completed cues.
func (p *Parser) parse() ([]*Cue, error) {
	var cues []*Cue
	var cue *Cue

	for p.state != stateEnd {
		switch p.state {
		case stateInitial:
			if !p.checkSignature() {
				return nil, ErrNotWebVTT
			}
			p.cur.takeLine() // rest of the signature line is free text
			p.state = stateHeader

		case stateHeader:
			// Header lines are reserved for future use and skipped. A
			// blank line starts the cue sequence.
			switch {
			case p.cur.eof():
				p.state = stateEnd
			case p.cur.skipBlankLine():
				p.state = stateID
			default:
				p.cur.takeLine()
			}

		case stateID:
			for p.cur.skipBlankLine() {
			}
			if p.cur.eof() {
				p.state = stateEnd
				break
			}
			cue = newCue()
			if !strings.Contains(p.cur.peekLine(), arrow) {
				cue.ID = p.cur.takeLine()
				if p.cur.eof() {
					p.warnf("cue %q: identifier without a timing line", cue.ID)
					p.state = stateBadCue
					break
				}
			}
			p.state = stateTimings

		case stateTimings:
			if err := p.parseTimingLine(cue); err != nil {
				p.warnf("dropping cue: %v", err)
				p.state = stateBadCue
				break
			}
			p.state = stateCueText

		case stateCueText:
			cue.Text = p.collectCueText()
			cue.Tree = ParseCueText(cue.Text)
			p.state = stateNextCue

		case stateNextCue:
			cues = append(cues, cue)
			cue = nil
			p.state = stateID

		case stateBadCue:
			// Drop the partial cue and resynchronize at the next blank
			// line or end of input.
			cue = nil
			for !p.cur.eof() && !p.cur.skipBlankLine() {
				p.cur.takeLine()
			}
			p.state = stateID
		}
	}
	return cues, nil
}

// checkSignature matches the optional UTF-8 byte order mark followed
// by the WEBVTT magic and advances past both.
func (p *Parser) checkSignature() bool {
	if bytes.HasPrefix(p.cur.buf[p.cur.offset:], utf8BOM) {
		p.cur.advance(len(utf8BOM))
	}
	rest := p.cur.buf[p.cur.offset:]
	if len(rest) < len(signature) || string(rest[:len(signature)]) != signature {
		return false
	}
	p.cur.advance(len(signature))
	return true
}

// parseTimingLine parses `start --> end [settings]` at the cursor and
// fills in the cue. The cursor is left past the line terminator. On
// error the line is consumed so the caller can resynchronize.
func (p *Parser) parseTimingLine(cue *Cue) error {
	line := p.cur.takeLine()
	pos := 0

	start, err := scanTimestamp(line, &pos)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadTimingLine, err)
	}
	if pos >= len(line) || !isSpaceOrTab(int(line[pos])) {
		return fmt.Errorf("%w: need a space after start timestamp", ErrBadTimingLine)
	}
	for pos < len(line) && isSpaceOrTab(int(line[pos])) {
		pos++
	}
	if !strings.HasPrefix(line[pos:], arrow) {
		return fmt.Errorf("%w: no --> after start timestamp", ErrBadTimingLine)
	}
	pos += len(arrow)
	if pos >= len(line) || !isSpaceOrTab(int(line[pos])) {
		return fmt.Errorf("%w: need a space after -->", ErrBadTimingLine)
	}
	end, err := scanTimestamp(line, &pos)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadTimingLine, err)
	}
	if start > end {
		return fmt.Errorf("%w: start time %d after end time %d", ErrBadTimingLine, start, end)
	}

	cue.Start = start
	cue.End = end
	cue.RawSettings = strings.TrimSpace(line[pos:])
	cue.Settings = p.parseSettings(cue.RawSettings)
	return nil
}

// collectCueText accumulates the cue's text lines up to the next blank
// line or end of input. Line breaks inside the cue become single
// spaces.
func (p *Parser) collectCueText() string {
	var lines []string
	for !p.cur.eof() && !p.cur.skipBlankLine() {
		lines = append(lines, p.cur.takeLine())
	}
	return strings.Join(lines, " ")
}
