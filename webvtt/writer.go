package webvtt

/*
 This file defines functions related to file generation: formatting
 timestamps, writing cues back out and rendering node trees as markup.
*/

import (
	"fmt"
	"io"
	"strings"
)

// FormatTimestamp renders ms as HH:MM:SS.mmm. Hours get at least two
// digits and grow as needed; minutes and seconds are exactly two
// digits and milliseconds exactly three, so the result parses back to
// the same value.
func FormatTimestamp(ms int64) string {
	h := ms / msPerHour
	ms %= msPerHour
	m := ms / msPerMinute
	ms %= msPerMinute
	s := ms / msPerSecond
	ms %= msPerSecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// WriteCue writes one cue in its on-wire form: the identifier line
// when present, the timing line with any settings, and the text block.
func WriteCue(w io.Writer, cue *Cue) error {
	if cue.ID != "" {
		if _, err := fmt.Fprintf(w, "%s\n", cue.ID); err != nil {
			return err
		}
	}
	timing := FormatTimestamp(cue.Start) + " " + arrow + " " + FormatTimestamp(cue.End)
	if cue.RawSettings != "" {
		timing += " " + cue.RawSettings
	}
	if _, err := fmt.Fprintf(w, "%s\n", timing); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", cue.Text)
	return err
}

// WriteCues writes a complete WebVTT file: the signature followed by
// the cues separated by blank lines.
func WriteCues(w io.Writer, cues []*Cue) error {
	if _, err := io.WriteString(w, signature+"\n"); err != nil {
		return err
	}
	for _, cue := range cues {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := WriteCue(w, cue); err != nil {
			return err
		}
	}
	return nil
}

// String renders the node tree below n back into cue text markup.
// Text leaves are emitted verbatim, so text containing markup
// delimiters does not round-trip; for well-nested trees built from
// plain tag input the output matches what was parsed.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	switch n.Type {
	case RootNode:
		for _, child := range n.Children {
			child.render(sb)
		}
		return
	case TextNode:
		sb.WriteString(n.Text)
		return
	case TimestampNode:
		sb.WriteByte('<')
		sb.WriteString(FormatTimestamp(n.Timestamp))
		sb.WriteByte('>')
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.Type.String())
	for _, class := range n.Classes {
		sb.WriteByte('.')
		sb.WriteString(class)
	}
	if n.Annotation != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.Annotation)
	}
	sb.WriteByte('>')
	for _, child := range n.Children {
		child.render(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Type.String())
	sb.WriteByte('>')
}
