package report_test

import (
	"testing"

	"github.com/cwdwatch/prevexport/pkg/report"
	"github.com/stretchr/testify/assert"
)

func TestReportHTML(t *testing.T) {
	rep := report.New()
	rep.H3("Model Execution Summary")
	rep.P("Samples: %d", 42)
	rep.List([]string{"one", "two"})
	rep.H4("Done")

	want := "<h3>Model Execution Summary</h3>\n" +
		"<p>Samples: 42</p>\n" +
		"<ul><li>one</li><li>two</li></ul>\n" +
		"<h4>Done</h4>\n"
	assert.Equal(t, want, rep.HTML())
}

func TestReportLines(t *testing.T) {
	rep := report.New()
	assert.Empty(t, rep.Lines())
	assert.Empty(t, rep.HTML())

	rep.P("plain")
	lines := rep.Lines()
	assert.Equal(t, []report.Line{{Tag: "p", Text: "plain"}}, lines)
}
