package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/promptdeck/internal/resolver"
	"github.com/dshills/promptdeck/internal/session"
)

// jsonPlanWriter outputs the full plan as JSON. The output round-trips
// through the compose command's --plan flag.
type jsonPlanWriter struct{}

func (j *jsonPlanWriter) Write(w io.Writer, plan *resolver.Plan) error {
	return writeJSON(w, plan)
}

// jsonReportWriter outputs the full score report as JSON.
type jsonReportWriter struct{}

func (j *jsonReportWriter) Write(w io.Writer, rep *session.Report) error {
	return writeJSON(w, rep)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
