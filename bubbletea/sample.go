package bubbletea

import "github.com/fwojciec/jview"

func seg(element, text string) jview.Segment {
	return jview.Segment{Element: element, Text: text}
}

func punct(text string) jview.Segment {
	return seg(jview.ElementPunctuation, text)
}

func field(depth int, name string, value ...jview.Segment) jview.Line {
	segs := []jview.Segment{seg(jview.ElementKey, `"`+name+`"`), punct(": ")}
	return jview.Line{Depth: depth, Segments: append(segs, value...)}
}

func row(depth int, segs ...jview.Segment) jview.Line {
	return jview.Line{Depth: depth, Segments: segs}
}

// SampleDocument returns a small document that uses every themed element.
func SampleDocument() []jview.Line {
	return []jview.Line{
		row(0, punct("{")),
		field(1, "name", seg(jview.ElementString, `"jview"`), punct(",")),
		field(1, "version", seg(jview.ElementNumber, "3.2"), punct(",")),
		field(1, "stable", seg(jview.ElementBoolean, "true"), punct(",")),
		field(1, "license", seg(jview.ElementNull, "null"), punct(",")),
		field(1, "tags",
			seg(jview.ElementArrayLabel, "[3 items]"),
			punct(" "),
			seg(jview.ElementPreview, `["json", "yaml", "toml"]`),
		),
		field(1, "owner",
			seg(jview.ElementObjectLabel, "{3 keys}"),
			punct(" "),
			seg(jview.ElementPreview, `{"name": "Ada Lovelace", "email": "ada@example.com", "roles": ["admin", "maintainer"]}`),
		),
		field(1, "matrix", punct("[")),
		row(2, seg(jview.ElementNumber, "1"), punct(",")),
		row(2, seg(jview.ElementNumber, "2.5"), punct(",")),
		row(2, seg(jview.ElementNumber, "-7e3")),
		row(1, punct("],")),
		field(1, "summary", seg(jview.ElementString, `"a json viewer"`)),
		row(0, punct("}")),
	}
}
