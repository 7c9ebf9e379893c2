package webvtt

/*
 This file defines data structures related to package.
*/

// Alignment values for the align cue setting.
const (
	AlignStart  = "start"
	AlignMiddle = "middle"
	AlignEnd    = "end"
	AlignLeft   = "left"
	AlignRight  = "right"
)

// Writing directions for the vertical cue setting. The empty string
// means horizontal, the default.
const (
	VerticalRL = "rl"
	VerticalLR = "lr"
)

// CueSettings holds the parsed rendering settings of a cue. Zero is not
// the default for every field; use defaultSettings to obtain a settings
// value with the defaults the format prescribes.
type CueSettings struct {
	Vertical    string // "", VerticalRL or VerticalLR
	Line        int    // line position, signed; percentage when LinePercent
	LinePercent bool   // Line carries a trailing %
	Position    int    // indent percentage, 0-100
	Size        int    // width percentage, 0-100
	Align       string // one of the Align* values
	SnapToLine  bool
	PauseOnExit bool
}

// defaultSettings returns cue settings with format defaults applied.
func defaultSettings() CueSettings {
	return CueSettings{
		Line:       0,
		Position:   50,
		Size:       100,
		Align:      AlignMiddle,
		SnapToLine: true,
	}
}

// Cue is one timed block of caption text. Start and End are
// milliseconds from the start of the media resource.
type Cue struct {
	ID          string      // optional cue identifier, "" when absent
	Start       int64       // start time in ms, 0 <= Start <= End
	End         int64       // end time in ms
	RawSettings string      // settings string as read from the timing line
	Settings    CueSettings // parsed settings
	Text        string      // cue text; inner line breaks become single spaces
	Tree        *Node       // cue text parsed into markup nodes, root is RootNode
}

// newCue returns a cue with default settings.
func newCue() *Cue {
	return &Cue{Settings: defaultSettings()}
}

// NodeType discriminates the variants of Node.
type NodeType uint8

const (
	RootNode      NodeType = iota // synthetic list root, children only
	TextNode                      // leaf, Text is set
	ClassNode                     // <c.a.b>
	ItalicNode                    // <i>
	BoldNode                      // <b>
	UnderlineNode                 // <u>
	RubyNode                      // <ruby>
	RubyTextNode                  // <rt>, always a direct child of RubyNode
	VoiceNode                     // <v Speaker>, Annotation is the speaker
	LanguageNode                  // <lang en>, Annotation is the language tag
	TimestampNode                 // <00:01.000>, leaf, Timestamp is set
)

func (t NodeType) String() string {
	switch t {
	case RootNode:
		return "root"
	case TextNode:
		return "text"
	case ClassNode:
		return "c"
	case ItalicNode:
		return "i"
	case BoldNode:
		return "b"
	case UnderlineNode:
		return "u"
	case RubyNode:
		return "ruby"
	case RubyTextNode:
		return "rt"
	case VoiceNode:
		return "v"
	case LanguageNode:
		return "lang"
	case TimestampNode:
		return "timestamp"
	}
	return "unknown"
}

// Node is one node in a parsed cue-text tree. Which payload fields are
// meaningful depends on Type: Text for TextNode, Timestamp for
// TimestampNode, Annotation for VoiceNode (the speaker) and
// LanguageNode (the language tag). Classes may be set on any non-leaf
// node and never contains empty strings. Children are in source order.
type Node struct {
	Type       NodeType
	Text       string
	Timestamp  int64
	Annotation string
	Classes    []string
	Children   []*Node
}

// appendChild attaches child as the last child of n.
func (n *Node) appendChild(child *Node) {
	n.Children = append(n.Children, child)
}
