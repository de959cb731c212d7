package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/controlplane-com/chamados-sql/pkg/import/config"
	"github.com/controlplane-com/chamados-sql/pkg/import/converter"
	"github.com/controlplane-com/chamados-sql/pkg/import/locator"
)

// reported marks an error the operator report has already printed.
type reported struct {
	error
}

func (r reported) Unwrap() error {
	return r.error
}

// IsReported reports whether err was already printed to the operator.
func IsReported(err error) bool {
	var r reported
	return errors.As(err, &r)
}

// candidatePaths returns the paths the locator tries, in order.
func candidatePaths(cfg *config.Config) []string {
	if cfg.InputPath != "" {
		return []string{cfg.InputPath}
	}
	dirs := cfg.SearchDirs
	if len(dirs) == 0 {
		dirs = locator.DefaultSearchDirs()
	}
	return locator.Candidates(cfg.InputName, dirs)
}

// runConvert locates the input, converts it and writes the script.
// The operator report goes to stdout, or to stderr when the script itself is
// written to stdout.
func runConvert(cfg *config.Config, opts *convertOptions, stdout, stderr io.Writer) error {
	rep := newReporter(stdout)
	if opts.toStdout {
		rep = newReporter(stderr)
	}

	inputPath, err := locator.Locate(candidatePaths(cfg))
	if err != nil {
		rep.notFound(err, cfg)
		return reported{err}
	}
	rep.found(inputPath)
	slog.Debug("located input", "path", inputPath)

	result, err := converter.ConvertFile(inputPath, cfg)
	if err != nil {
		rep.failed(err)
		return reported{err}
	}

	switch {
	case opts.toStdout:
		if _, err := result.Script.WriteTo(stdout); err != nil {
			rep.failed(err)
			return reported{err}
		}
	case opts.dryRun:
		slog.Debug("dry run, output not written", "path", cfg.OutputPath)
	default:
		if err := converter.WriteScript(cfg.OutputPath, result.Script); err != nil {
			rep.failed(err)
			return reported{err}
		}
		slog.Info("script written", "path", cfg.OutputPath, "records", result.Records())
	}

	rep.done(result, cfg.OutputPath, opts)
	return nil
}
