package webvtt

/* Package webvtt implements parsing and generation of WebVTT files.

WebVTT (Web Video Text Tracks) is the caption and subtitle format used
with the HTML <track> element. A file starts with a "WEBVTT" signature
line and contains a sequence of cues separated by blank lines. Each cue
carries an optional identifier, a timing line of the form

	00:00:11.000 --> 00:00:13.500 align:start line:90%

with optional rendering settings, and one or more lines of cue text.
Cue text may contain inline markup such as <b>, <i.loud>, <v Speaker>
and character escapes such as &amp;.

The package decodes a whole file into a slice of [Cue] values. The cue
text of every cue is additionally parsed into a tree of [Node] values
describing the inline markup, so renderers do not have to deal with the
tag syntax themselves.

Decoding is tolerant in the way the format demands: a malformed cue is
dropped with a diagnostic, a malformed setting is skipped, and unknown
markup tags are ignored. Only a missing WEBVTT signature fails the
whole parse, with [ErrNotWebVTT].

Parse a file:

	p := webvtt.New()
	cues, err := p.ParseFilename("captions.vtt")
	if err != nil {
		log.Fatal(err)
	}
	for _, cue := range cues {
		fmt.Println(cue.ID, cue.Start, cue.End, cue.Text)
	}

Parse from memory and write the cues back out:

	cues, err := webvtt.New().ParseBuffer(data)
	if err != nil {
		log.Fatal(err)
	}
	var buf bytes.Buffer
	_ = webvtt.WriteCues(&buf, cues)

Diagnostics for dropped cues and skipped settings go to os.Stderr by
default and can be redirected:

	p := webvtt.New().WithDiagnostics(io.Discard)

Examples of usage may be found in the *_test.go files of the package.
*/
