package webvtt

/*
 This file defines the cue text tree builder. It consumes tokens from
 the tokenizer and folds them into a tree of markup nodes.
*/

// startTagNodes maps start tag names to the node kind they open.
var startTagNodes = map[string]NodeType{
	"c":    ClassNode,
	"i":    ItalicNode,
	"b":    BoldNode,
	"u":    UnderlineNode,
	"ruby": RubyNode,
	"rt":   RubyTextNode,
	"v":    VoiceNode,
	"lang": LanguageNode,
}

// ParseCueText parses the inline markup of a cue's text into a node
// tree. The returned root is a RootNode whose children are the
// top-level nodes in source order. Unknown tags and end tags that do
// not match the open node are ignored; tags still open at the end of
// the text are closed implicitly.
func ParseCueText(text string) *Node {
	root := &Node{Type: RootNode}
	// The open element stack; the current node is the last entry and
	// the root is never popped.
	open := []*Node{root}
	pos := 0

	for pos < len(text) {
		tok := nextToken(text, &pos)
		current := open[len(open)-1]

		switch tok.typ {
		case tokenString:
			current.appendChild(&Node{Type: TextNode, Text: tok.text})

		case tokenStartTag:
			kind, known := startTagNodes[tok.text]
			if !known {
				break
			}
			if kind == RubyTextNode && current.Type != RubyNode {
				// An rt outside ruby never yields a node.
				break
			}
			node := &Node{Type: kind, Classes: nonEmptyClasses(tok.classes)}
			switch kind {
			case VoiceNode, LanguageNode:
				node.Annotation = tok.annotation
			}
			current.appendChild(node)
			open = append(open, node)

		case tokenEndTag:
			switch tok.text {
			case "c", "i", "b", "u", "v", "lang":
				if current.Type == startTagNodes[tok.text] {
					open = open[:len(open)-1]
				}
			case "ruby":
				switch current.Type {
				case RubyNode:
					open = open[:len(open)-1]
				case RubyTextNode:
					// Close the rt, then the ruby around it.
					open = open[:len(open)-2]
				}
			case "rt":
				if current.Type == RubyTextNode {
					open = open[:len(open)-1]
				}
			}

		case tokenTimestamp:
			ms, err := ScanTimestamp(tok.text)
			if err != nil {
				break
			}
			current.appendChild(&Node{Type: TimestampNode, Timestamp: ms})
		}
	}
	return root
}

// nonEmptyClasses drops empty strings from a class list, keeping
// order. The tokenizer commits its class buffer even when a dot is
// followed by nothing.
func nonEmptyClasses(classes []string) []string {
	var out []string
	for _, c := range classes {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
