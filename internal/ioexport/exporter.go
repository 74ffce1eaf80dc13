// Package ioexport implements the Exporter interface: it drives the
// whole prior fulfillment run from the warehouse export files to the
// output matrix, the HTML run report and the attachments manifest.
package ioexport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cwdwatch/prevexport/internal/iocatalog"
	"github.com/cwdwatch/prevexport/internal/ioinput"
	"github.com/cwdwatch/prevexport/internal/ioreport"
	"github.com/cwdwatch/prevexport/pkg/config"
	"github.com/cwdwatch/prevexport/pkg/export"
	"github.com/cwdwatch/prevexport/pkg/filter"
	"github.com/cwdwatch/prevexport/pkg/report"
	"github.com/cwdwatch/prevexport/pkg/router"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

// exporter implements the export.Exporter interface.
type exporter struct {
	cfg *config.Config
	rep *report.Report
	wrt *ioreport.Writer
}

// New creates a new Exporter.
func New(cfg *config.Config) export.Exporter {
	return &exporter{
		cfg: cfg,
		rep: report.New(),
		wrt: ioreport.New(cfg.Data.Dir),
	}
}

// Export runs the pipeline. Every exit path, fatal or not, leaves a
// rendered info.html and attachments.json behind; the run report is
// the user's window into what happened.
func (e *exporter) Export(ctx context.Context) (*export.RunSummary, error) {
	start := time.Now()
	runID := uuid.NewString()
	slog.Info("Starting prevalence estimator data export", "run_id", runID)

	e.rep.H3("Model Execution Summary")
	e.rep.P("Model: Prevalence Estimator Data Export")
	e.rep.P("Run: %s", runID)
	e.rep.P("Date: %s GMT", start.UTC().Format("2006-01-02 15:04:05"))

	summary := &export.RunSummary{RunID: runID}

	if err := e.run(ctx, summary); err != nil {
		e.fail(err)
		return summary, err
	}

	duration := time.Since(start)
	e.rep.P("Completed in %s.", gnfmt.TimeString(duration.Seconds()))
	if err := e.flush(); err != nil {
		return summary, err
	}

	slog.Info("Export complete",
		"run_id", runID,
		"rows", summary.Rows,
		"duration", gnfmt.TimeString(duration.Seconds()))
	return summary, nil
}

func (e *exporter) run(ctx context.Context, summary *export.RunSummary) error {
	dataDir := e.cfg.Data.Dir

	params, err := ioinput.LoadParams(config.ParamsFile(dataDir))
	if err != nil {
		return err
	}
	e.reportParams(params)

	areas, err := ioinput.LoadAreas(config.AreasFile(dataDir))
	if err != nil {
		return err
	}

	samples, err := ioinput.LoadSamples(config.SamplesFile(dataDir), areas)
	if err != nil {
		return err
	}
	summary.Samples = len(samples)
	e.rep.H4("Warehouse data provided to model")
	e.rep.P("Samples: %s", humanize.Comma(int64(len(samples))))

	species := params.Species
	if e.cfg.Export.Species != "" {
		species = e.cfg.Export.Species
		slog.Info("Species overridden", "species", species)
	}
	summary.Species = species
	summary.ProviderArea = params.ProviderArea

	filtered, err := filter.Run(samples)
	if err != nil {
		return err
	}
	summary.Stages = filtered.Stages
	e.reportStages(filtered.Stages)

	cat, err := iocatalog.Load(e.cfg)
	if err != nil {
		return err
	}

	routed, err := router.Route(species, filtered.Records, cat)
	if err != nil {
		return err
	}
	summary.Statuses = routed.Statuses
	e.reportPriors(routed.Statuses)

	rows := routed.Table.Rows()
	summary.Rows = len(rows)
	if len(rows) == 0 {
		// normal completion: nothing to hand to the estimation tool
		e.rep.H4("Model Exports")
		e.rep.P("No priors could be fulfilled from the provided data; " +
			"no export file was created.")
		slog.Warn("No fulfilled priors, skipping output file")
		return nil
	}

	outputPath := config.OutputFile(dataDir)
	if err = writeOutput(outputPath, rows); err != nil {
		return err
	}
	summary.OutputPath = outputPath
	e.wrt.Add(ioreport.Attachment{
		Filename:    config.OutputFileName,
		ContentType: ioreport.ContentTypeCSV,
		Role:        ioreport.RoleDownloadable,
	})

	e.rep.H4("Model Exports")
	e.rep.P("Fulfilled priors: %d of %d evaluated.",
		fulfilledCount(routed.Statuses), len(routed.Statuses))
	e.rep.P("Export rows: %s.", humanize.Comma(int64(len(rows))))
	e.rep.P("Model exports successfully created.")
	return nil
}

func (e *exporter) reportParams(params *ioinput.Params) {
	if params.ProviderArea != "" {
		e.rep.P("Provider area: %s", params.ProviderArea)
	}
	e.rep.H4("User provided parameters")

	keys := make([]string, 0, len(params.Fields))
	for k := range params.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]string, 0, len(keys))
	for _, k := range keys {
		items = append(items, fmt.Sprintf("%s: %v", k, params.Fields[k]))
	}
	e.rep.List(items)
}

func (e *exporter) reportStages(stages []filter.StageCount) {
	e.rep.H4("Record eligibility")
	items := make([]string, 0, len(stages))
	for _, st := range stages {
		items = append(items, fmt.Sprintf("%s: %s records",
			st.Stage, humanize.Comma(int64(st.Kept))))
	}
	e.rep.List(items)
}

func (e *exporter) reportPriors(statuses []router.Status) {
	e.rep.H4("Prior evaluation")
	items := make([]string, 0, len(statuses))
	for _, st := range statuses {
		switch {
		case st.Fulfilled && len(st.Conflicts) > 0:
			items = append(items, fmt.Sprintf(
				"%s: fulfilled, %d areas (%d excluded for mixed results)",
				st.Key.String(), st.Rows, len(st.Conflicts)))
		case st.Fulfilled:
			items = append(items, fmt.Sprintf("%s: fulfilled, %d areas",
				st.Key.String(), st.Rows))
		default:
			items = append(items, fmt.Sprintf("%s: unfulfilled",
				st.Key.String()))
		}
	}
	e.rep.List(items)
}

// fail renders the error into the report before the run ends; a
// failed report write at that point is only logged, the original
// error wins.
func (e *exporter) fail(err error) {
	e.rep.H4("ERROR")
	e.rep.P("%s", userMessage(err))
	if flushErr := e.flush(); flushErr != nil {
		slog.Error("Cannot write run report", "error", flushErr)
	}
}

func (e *exporter) flush() error {
	if err := e.wrt.WriteReport(e.rep); err != nil {
		return err
	}
	return e.wrt.WriteManifest()
}

// userMessage extracts a human-readable message from an error,
// stripping the terminal markup gn uses.
func userMessage(err error) string {
	var msg string
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		msg = fmt.Sprintf(gnErr.Msg, gnErr.Vars...)
	} else if s := ioinput.Message(err); s != "" {
		msg = s
	} else {
		msg = err.Error()
	}
	return stripMarkup(msg)
}

var markupReplacer = strings.NewReplacer(
	"<title>", "", "</title>", "",
	"<warn>", "", "</warn>", "",
	"<em>", "", "</em>", "",
)

func stripMarkup(s string) string {
	return markupReplacer.Replace(s)
}

func fulfilledCount(statuses []router.Status) int {
	var res int
	for _, st := range statuses {
		if st.Fulfilled {
			res++
		}
	}
	return res
}
