package jview

// Segment is a run of text drawn as a single theme element. An empty
// Element draws the text with the neutral style.
type Segment struct {
	Element string
	Text    string
}

// Line is one row of a document as the viewer draws it.
type Line struct {
	Depth    int
	Segments []Segment
}

// Elements returns the distinct element names on the line in order of
// appearance. Unstyled segments are skipped.
func (l Line) Elements() []string {
	var names []string
	seen := make(map[string]bool, len(l.Segments))
	for _, s := range l.Segments {
		if s.Element == "" || seen[s.Element] {
			continue
		}
		seen[s.Element] = true
		names = append(names, s.Element)
	}
	return names
}

// Text returns the line's text without styling or indentation.
func (l Line) Text() string {
	var n int
	for _, s := range l.Segments {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range l.Segments {
		b = append(b, s.Text...)
	}
	return string(b)
}
