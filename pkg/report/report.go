// Package report builds the user-facing HTML run report: an
// append-only sequence of short status sentences wrapped in simple
// HTML elements, rendered into info.html by the I/O layer.
package report

import (
	"fmt"
	"strings"
)

// Line is one report entry: an HTML element tag and its text.
type Line struct {
	Tag  string
	Text string
}

// Report accumulates lines during a run. The zero value is usable.
type Report struct {
	lines []Line
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// H3 appends a section heading.
func (r *Report) H3(format string, args ...any) {
	r.add("h3", format, args...)
}

// H4 appends a sub-heading.
func (r *Report) H4(format string, args ...any) {
	r.add("h4", format, args...)
}

// P appends a paragraph.
func (r *Report) P(format string, args ...any) {
	r.add("p", format, args...)
}

// List appends an unordered list.
func (r *Report) List(items []string) {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(item)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	r.lines = append(r.lines, Line{Tag: "", Text: b.String()})
}

func (r *Report) add(tag, format string, args ...any) {
	r.lines = append(r.lines, Line{
		Tag:  tag,
		Text: fmt.Sprintf(format, args...),
	})
}

// Lines returns the accumulated entries in order.
func (r *Report) Lines() []Line {
	return r.lines
}

// HTML renders the report, one element per line.
func (r *Report) HTML() string {
	var b strings.Builder
	for _, line := range r.lines {
		if line.Tag == "" {
			b.WriteString(line.Text)
		} else {
			fmt.Fprintf(&b, "<%s>%s</%s>", line.Tag, line.Text, line.Tag)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
