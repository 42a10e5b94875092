package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/promptdeck/internal/resolver"
	"github.com/dshills/promptdeck/internal/session"
)

// PlanWriter renders an execution plan in a specific format.
type PlanWriter interface {
	Write(w io.Writer, plan *resolver.Plan) error
}

// ReportWriter renders a score report in a specific format.
type ReportWriter interface {
	Write(w io.Writer, rep *session.Report) error
}

// NewPlanWriter returns a plan writer for the specified format.
func NewPlanWriter(format string) (PlanWriter, error) {
	switch format {
	case "text":
		return &textPlanWriter{}, nil
	case "json":
		return &jsonPlanWriter{}, nil
	case "markdown":
		return &markdownPlanWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// NewReportWriter returns a report writer for the specified format.
func NewReportWriter(format string) (ReportWriter, error) {
	switch format {
	case "text":
		return &textReportWriter{}, nil
	case "json":
		return &jsonReportWriter{}, nil
	case "markdown":
		return &markdownReportWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WritePlan writes the plan to the specified output (file path or stdout).
func WritePlan(plan *resolver.Plan, format, outPath string) error {
	writer, err := NewPlanWriter(format)
	if err != nil {
		return err
	}
	w, closeFn, err := destination(outPath)
	if err != nil {
		return err
	}
	defer closeFn()
	return writer.Write(w, plan)
}

// WriteReport writes the report to the specified output (file path or stdout).
func WriteReport(rep *session.Report, format, outPath string) error {
	writer, err := NewReportWriter(format)
	if err != nil {
		return err
	}
	w, closeFn, err := destination(outPath)
	if err != nil {
		return err
	}
	defer closeFn()
	return writer.Write(w, rep)
}

func destination(outPath string) (io.Writer, func(), error) {
	if outPath == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
