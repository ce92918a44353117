package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/failure"
	"github.com/bethropolis/dir-tree/internal/logger"
	"github.com/bethropolis/dir-tree/internal/printer"
	"github.com/bethropolis/dir-tree/internal/setup"
	"github.com/bethropolis/dir-tree/internal/summary"
	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	fs     afero.Fs
	Output io.Writer
	Errout io.Writer
}

// New creates a new App printing to the process's stdout and stderr
func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		Output: os.Stdout,
		Errout: os.Stderr,
	}
}

// WithFs sets the filesystem the tree is read from
func (a *App) WithFs(fsys afero.Fs) *App {
	a.fs = fsys
	return a
}

// WithOutput redirects the tree and the diagnostics
func (a *App) WithOutput(out, errout io.Writer) *App {
	a.Output = out
	a.Errout = errout
	return a
}

// Run prints the tree for the configured root.
//
// The first failure stops the walk and is returned; whatever was printed
// before it stays in the output.
func (a *App) Run() (err error) {
	startTime := time.Now()

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logColors := a.cfg.WithColor && isTerminal(a.Errout)
	color.NoColor = !logColors

	log := logger.New(a.Errout, logger.ParseLevel(a.cfg.EffectiveLogLevel()), logColors)

	log.Debug("Directory: %s", a.cfg.Path)
	log.Debug("Settings: level=%d all=%v dirs-only=%v sort=%v ascii=%v ignore-file=%v",
		a.cfg.MaxDepth, a.cfg.ShowHidden, a.cfg.DirsOnly, a.cfg.Sort, a.cfg.ASCIIOnly, a.cfg.RespectIgnoreFile)

	// --- Root validation ---
	if _, err := a.fs.Stat(a.cfg.Path); err != nil {
		return failure.New(failure.KindReadDir, a.cfg.Path, err)
	}

	rules, walkOptions, err := setup.ConfigureWalker(a.cfg, a.fs, log)
	if err != nil {
		return err
	}

	// --- Output destination ---
	output := a.Output
	useColors := false
	if f, ok := output.(*os.File); ok {
		useColors = a.cfg.Colorize(f)
	}
	if a.cfg.OutputFile != "" {
		file, createErr := a.fs.Create(a.cfg.OutputFile)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		output = file
		useColors = false
	}
	log.Debug("Color output: %v", useColors)

	p := printer.New().WithOutput(output).WithColors(useColors)

	res, err := walker.Walk(a.cfg.Path, rules, p, walkOptions...)
	if err != nil {
		log.Debug("Walk aborted after %d line(s): %v", p.GetCount(), err)
		return err
	}

	if a.cfg.Report {
		if err := summary.DisplayResults(output, res); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.Errout, res.Skipped)
	}

	log.Info("Printed %d line(s) in %v.", p.GetCount(), time.Since(startTime).Round(time.Millisecond))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
