package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/controlplane-com/chamados-sql/pkg/import/config"
	"github.com/controlplane-com/chamados-sql/pkg/import/converter"
	"github.com/controlplane-com/chamados-sql/pkg/import/locator"
	"github.com/fatih/color"
)

// reporter prints human-readable progress for the operator.
type reporter struct {
	w    io.Writer
	ok   *color.Color
	bad  *color.Color
	warn *color.Color
	bold *color.Color
}

func newReporter(w io.Writer) *reporter {
	return &reporter{
		w:    w,
		ok:   color.New(color.FgGreen),
		bad:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
		bold: color.New(color.Bold),
	}
}

func (r *reporter) found(path string) {
	_, _ = r.ok.Fprintf(r.w, "Input found: %s\n", path)
}

func (r *reporter) notFound(err error, cfg *config.Config) {
	_, _ = r.bad.Fprintln(r.w, "Input file not found!")

	var notFound *locator.NotFoundError
	if errors.As(err, &notFound) {
		_, _ = fmt.Fprintln(r.w, "Searched in:")
		for _, path := range notFound.Candidates {
			_, _ = fmt.Fprintf(r.w, "   - %s\n", path)
		}
	}

	_, _ = fmt.Fprintln(r.w)
	if cfg.InputPath == "" {
		_, _ = fmt.Fprintf(r.w, "Copy %q into one of these folders,\n", cfg.InputName)
		_, _ = fmt.Fprintln(r.w, "or pass the full path with --input.")
	} else {
		_, _ = fmt.Fprintln(r.w, "Check the path given with --input or inputPath.")
	}
}

func (r *reporter) failed(err error) {
	_, _ = r.bad.Fprintf(r.w, "Conversion failed: %v\n", err)
}

func (r *reporter) done(result *converter.Result, outputPath string, opts *convertOptions) {
	switch {
	case opts.dryRun:
		_, _ = r.ok.Fprintln(r.w, "Dry run: no file written")
	case opts.toStdout:
		_, _ = r.ok.Fprintln(r.w, "SQL script written to stdout")
	default:
		_, _ = r.ok.Fprintf(r.w, "SQL file created: %s\n", outputPath)
	}
	_, _ = fmt.Fprintf(r.w, "Total INSERTs: %d\n", result.Records())

	if n := len(result.Skipped); n > 0 {
		_, _ = r.warn.Fprintf(r.w, "Rows skipped: %d\n", n)
		for _, e := range result.Skipped {
			_, _ = fmt.Fprintf(r.w, "   - %v\n", e)
		}
	}

	if opts.dryRun || opts.toStdout {
		return
	}

	_, _ = fmt.Fprintln(r.w)
	_, _ = r.bold.Fprintln(r.w, "Next steps:")
	_, _ = fmt.Fprintf(r.w, "1. Open the file: %s\n", outputPath)
	_, _ = fmt.Fprintln(r.w, "2. Copy all of its contents")
	_, _ = fmt.Fprintln(r.w, "3. Paste into the SQL editor (e.g. Supabase SQL Editor)")
	_, _ = fmt.Fprintln(r.w, "4. Execute it (Ctrl + Enter)")
}
