package webvtt

/*
 This file defines the cue text tokenizer. It lexes a cue's text into
 string, start tag, end tag and timestamp tokens which the tree
 builder in cuetext.go folds into a node tree.
*/

import "strings"

// tokenType discriminates the variants of token.
type tokenType uint8

const (
	tokenString tokenType = iota
	tokenStartTag
	tokenEndTag
	tokenTimestamp
)

// token is one lexical unit of cue text. text holds the string
// content, the tag name or the timestamp expression depending on typ.
type token struct {
	typ        tokenType
	text       string
	classes    []string
	annotation string
}

// tokenizer states.
type lexState uint8

const (
	lexData lexState = iota
	lexEscape
	lexTag
	lexStartTag
	lexStartTagClass
	lexStartTagAnnotation
	lexEndTag
	lexTimestampTag
)

// entities maps the supported character references, keyed with their
// leading '&' the way the escape buffer accumulates them.
var entities = map[string]rune{
	"&amp":  '&',
	"&lt":   '<',
	"&gt":   '>',
	"&nbsp": ' ',
	"&lrm":  '\u200e',
	"&rlm":  '\u200f',
}

func isAlnum(b int) bool {
	return isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// nextToken returns the next token of text starting at *pos and leaves
// pos on the first byte of the following token. A '>' terminating a
// tag is consumed; a '<' that ends a string token is not, so the next
// call picks the tag up. At end of input pos stays at len(text).
func nextToken(text string, pos *int) token {
	state := lexData
	var result strings.Builder // token text
	var buf strings.Builder    // escape, class or annotation scratch
	var classes []string

	for {
		c := eoi
		if *pos < len(text) {
			c = int(text[*pos])
		}

		switch state {
		case lexData:
			switch {
			case c == '&':
				buf.Reset()
				buf.WriteByte('&')
				state = lexEscape
			case c == '<':
				if result.Len() == 0 {
					state = lexTag
				} else {
					// Leave the '<' for the next call.
					return token{typ: tokenString, text: result.String()}
				}
			case c == eoi:
				return token{typ: tokenString, text: result.String()}
			default:
				result.WriteByte(byte(c))
			}

		case lexEscape:
			switch {
			case c == '&':
				// A fresh '&' restarts the escape; the stale buffer is
				// literal text.
				result.WriteString(buf.String())
				buf.Reset()
				buf.WriteByte('&')
			case c == ';':
				if r, ok := entities[buf.String()]; ok {
					result.WriteRune(r)
				} else {
					result.WriteString(buf.String())
					result.WriteByte(';')
				}
				state = lexData
			case c == '<' || c == eoi:
				result.WriteString(buf.String())
				return token{typ: tokenString, text: result.String()}
			case isAlnum(c):
				buf.WriteByte(byte(c))
			default:
				result.WriteString(buf.String())
				result.WriteByte(byte(c))
				state = lexData
			}

		case lexTag:
			switch {
			case c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == ' ':
				buf.Reset()
				state = lexStartTagAnnotation
			case c == '.':
				buf.Reset()
				state = lexStartTagClass
			case c == '/':
				state = lexEndTag
			case isDigit(c):
				result.WriteByte(byte(c))
				state = lexTimestampTag
			case c == '>' || c == eoi:
				if c == '>' {
					*pos++
				}
				return token{typ: tokenStartTag}
			default:
				result.WriteByte(byte(c))
				state = lexStartTag
			}

		case lexStartTag:
			switch {
			case c == '\t' || c == '\f' || c == ' ':
				buf.Reset()
				state = lexStartTagAnnotation
			case c == '\n' || c == '\r':
				// The newline opens the annotation and belongs to it.
				buf.Reset()
				buf.WriteByte(byte(c))
				state = lexStartTagAnnotation
			case c == '.':
				buf.Reset()
				state = lexStartTagClass
			case c == '>' || c == eoi:
				if c == '>' {
					*pos++
				}
				return token{typ: tokenStartTag, text: result.String()}
			default:
				result.WriteByte(byte(c))
			}

		case lexStartTagClass:
			switch {
			case c == '\t' || c == '\f' || c == ' ':
				classes = append(classes, buf.String())
				buf.Reset()
				state = lexStartTagAnnotation
			case c == '\n' || c == '\r':
				classes = append(classes, buf.String())
				buf.Reset()
				buf.WriteByte(byte(c))
				state = lexStartTagAnnotation
			case c == '.':
				classes = append(classes, buf.String())
				buf.Reset()
			case c == '>' || c == eoi:
				if c == '>' {
					*pos++
				}
				classes = append(classes, buf.String())
				return token{typ: tokenStartTag, text: result.String(), classes: classes}
			default:
				buf.WriteByte(byte(c))
			}

		case lexStartTagAnnotation:
			switch {
			case c == '>' || c == eoi:
				if c == '>' {
					*pos++
				}
				annotation := strings.TrimSpace(buf.String())
				return token{
					typ:        tokenStartTag,
					text:       result.String(),
					classes:    classes,
					annotation: annotation,
				}
			default:
				buf.WriteByte(byte(c))
			}

		case lexEndTag:
			switch {
			case c == '>' || c == eoi:
				if c == '>' {
					*pos++
				}
				return token{typ: tokenEndTag, text: result.String()}
			default:
				result.WriteByte(byte(c))
			}

		case lexTimestampTag:
			switch {
			case c == '>' || c == eoi:
				if c == '>' {
					*pos++
				}
				return token{typ: tokenTimestamp, text: result.String()}
			default:
				result.WriteByte(byte(c))
			}
		}

		*pos++
	}
}
