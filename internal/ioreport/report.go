// Package ioreport writes the user-visible run artifacts: the HTML
// run report (info.html) and the attachments manifest
// (attachments.json) consumed by the warehouse orchestrator.
package ioreport

import (
	"os"

	"github.com/cwdwatch/prevexport/pkg/config"
	"github.com/cwdwatch/prevexport/pkg/report"
	"github.com/gnames/gnfmt"
)

// Attachment describes one run artifact in attachments.json.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Role        string `json:"role"`
}

// Attachment roles understood by the orchestrator.
const (
	RoleDownloadable = "downloadable"
	RoleFeedback     = "feedback"
)

// Content types of the artifacts this export produces.
const (
	ContentTypeText = "text/plain"
	ContentTypeHTML = "text/html"
	ContentTypeCSV  = "text/csv"
)

// Writer manages the report artifacts for one run.
type Writer struct {
	dataDir     string
	attachments []Attachment
}

// New creates a Writer and initializes the attachments manifest with
// the artifacts every run produces: the execution log for developer
// feedback and the HTML report for user feedback.
func New(dataDir string) *Writer {
	return &Writer{
		dataDir: dataDir,
		attachments: []Attachment{
			{
				Filename:    config.ExecLogFileName,
				ContentType: ContentTypeText,
				Role:        RoleDownloadable,
			},
			{
				Filename:    config.InfoFileName,
				ContentType: ContentTypeHTML,
				Role:        RoleFeedback,
			},
		},
	}
}

// Add registers one more artifact, e.g. the output CSV once it has
// actually been written.
func (w *Writer) Add(att Attachment) {
	w.attachments = append(w.attachments, att)
}

// WriteReport renders the report into info.html, replacing any
// leftover from a previous run.
func (w *Writer) WriteReport(rep *report.Report) error {
	path := config.InfoFile(w.dataDir)
	if err := os.WriteFile(path, []byte(rep.HTML()), 0644); err != nil {
		return WriteReportError(path, err)
	}
	return nil
}

// WriteManifest serializes the attachments manifest.
func (w *Writer) WriteManifest() error {
	path := config.AttachmentsJSONFile(w.dataDir)
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(w.attachments)
	if err != nil {
		return WriteReportError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return WriteReportError(path, err)
	}
	return nil
}
