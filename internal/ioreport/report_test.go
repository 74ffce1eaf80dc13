package ioreport_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/cwdwatch/prevexport/internal/iofs"
	"github.com/cwdwatch/prevexport/internal/ioreport"
	"github.com/cwdwatch/prevexport/pkg/config"
	"github.com/cwdwatch/prevexport/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, iofs.EnsureAttachmentsDir(dataDir))

	rep := report.New()
	rep.H3("Model Execution Summary")
	rep.P("Samples: %d", 7)

	w := ioreport.New(dataDir)
	require.NoError(t, w.WriteReport(rep))

	data, err := os.ReadFile(config.InfoFile(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h3>Model Execution Summary</h3>")
	assert.Contains(t, string(data), "<p>Samples: 7</p>")
}

// Every run registers the execution log and the report itself; other
// artifacts join the manifest only once they exist.
func TestWriteManifest(t *testing.T) {
	dataDir := t.TempDir()

	w := ioreport.New(dataDir)
	w.Add(ioreport.Attachment{
		Filename:    config.OutputFileName,
		ContentType: ioreport.ContentTypeCSV,
		Role:        ioreport.RoleDownloadable,
	})
	require.NoError(t, w.WriteManifest())

	data, err := os.ReadFile(config.AttachmentsJSONFile(dataDir))
	require.NoError(t, err)

	var attachments []ioreport.Attachment
	require.NoError(t, json.Unmarshal(data, &attachments))
	require.Len(t, attachments, 3)
	assert.Equal(t, ioreport.Attachment{
		Filename:    config.ExecLogFileName,
		ContentType: ioreport.ContentTypeText,
		Role:        ioreport.RoleDownloadable,
	}, attachments[0])
	assert.Equal(t, config.InfoFileName, attachments[1].Filename)
	assert.Equal(t, ioreport.RoleFeedback, attachments[1].Role)
	assert.Equal(t, config.OutputFileName, attachments[2].Filename)
}

func TestWriteReportNoDir(t *testing.T) {
	// attachments dir never created
	w := ioreport.New(t.TempDir())
	err := w.WriteReport(report.New())
	assert.Error(t, err)
}
