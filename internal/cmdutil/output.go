package cmdutil

import (
	"fmt"
	"io"

	"github.com/modforge/cli/internal/output"
	"github.com/modforge/cli/internal/scaffold"
)

// PrintReport writes the results of a generation run to w.
//
// Plain mode prints one message per file ("Model created successfully.").
// Styled mode prints aligned artifact lines, a tree of the files written (or
// planned) and a summary line.
func PrintReport(w io.Writer, report *scaffold.Report, styled bool) error {
	if !styled {
		for _, res := range report.Results {
			if _, err := fmt.Fprintln(w, res.Message); err != nil {
				return err
			}
		}
		return nil
	}

	for _, res := range report.Results {
		if _, err := fmt.Fprintln(w, output.FormatArtifactLine(string(res.Artifact), res.Path, string(res.Status))); err != nil {
			return err
		}
	}

	written := make(map[string]string)
	for p, status := range report.Paths() {
		if status == scaffold.StatusCreated || status == scaffold.StatusPlanned {
			written[p] = ""
		}
	}
	if len(written) > 0 {
		tree, err := output.RenderFileTree(".", written)
		if err != nil {
			return fmt.Errorf("rendering file tree: %w", err)
		}
		if _, err := fmt.Fprintf(w, "\n%s", tree); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "\n"+output.FormatCheckmark(Summary(report)))
	return err
}

// Summary returns a one-line description of a report.
func Summary(report *scaffold.Report) string {
	if report.DryRun {
		return fmt.Sprintf("Module %s: %d planned, %d existing",
			report.Module, report.Count(scaffold.StatusPlanned), report.Count(scaffold.StatusExists))
	}

	s := fmt.Sprintf("Module %s: %d created, %d existing",
		report.Module, report.Count(scaffold.StatusCreated), report.Count(scaffold.StatusExists))
	if n := report.Count(scaffold.StatusFailed); n > 0 {
		s += fmt.Sprintf(", %d failed", n)
	}
	return s
}
