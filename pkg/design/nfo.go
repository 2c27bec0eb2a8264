package design

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// LabelWidth is the fixed label column width of the NFO block.
const LabelWidth = 14

// Field is one labeled entry of the NFO block.
type Field struct {
	Label string
	Value string
}

// Metadata holds the NFO block values. Fields always render in the order
// returned by Fields.
type Metadata struct {
	Release   string
	Date      string
	Supplier  string
	CrackedBy string
	Group     string
	URL       string
	Greets    string
	Notes     string
}

// Fields returns the labeled values in canonical order.
func (m Metadata) Fields() []Field {
	return []Field{
		{"Release", m.Release},
		{"Date", m.Date},
		{"Supplier", m.Supplier},
		{"Cracked by", m.CrackedBy},
		{"Group", m.Group},
		{"URL", m.URL},
		{"Greets", m.Greets},
		{"Notes", m.Notes},
	}
}

// NFOBlock formats metadata fields into aligned, word-wrapped lines.
type NFOBlock struct {
	labelWidth int
}

// NewNFOBlock returns a formatter with the given label column width.
func NewNFOBlock(labelWidth int) *NFOBlock {
	if labelWidth < 0 {
		labelWidth = 0
	}
	return &NFOBlock{labelWidth: labelWidth}
}

// Render formats every field of m for a block width columns wide.
func (b *NFOBlock) Render(m Metadata, width int) []string {
	var out []string
	for _, f := range m.Fields() {
		out = append(out, b.FieldLines(f, width)...)
	}
	return out
}

// FieldLines formats one field. The label is padded to the label column and
// followed by ": ". Values wrap to the space left of width; continuation
// lines are indented to the value column. An empty value yields the label
// line alone.
func (b *NFOBlock) FieldLines(f Field, width int) []string {
	head := runewidth.FillRight(f.Label, b.labelWidth) + ": "
	if f.Value == "" {
		return []string{head}
	}

	wrapWidth := width - b.labelWidth - 2
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	chunks := WrapText(f.Value, wrapWidth)
	if len(chunks) == 0 {
		chunks = []string{""}
	}

	indent := strings.Repeat(" ", b.labelWidth+2)
	lines := make([]string, len(chunks))
	for i, c := range chunks {
		if i == 0 {
			lines[i] = head + c
			continue
		}
		lines[i] = indent + c
	}
	return lines
}
