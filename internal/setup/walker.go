// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/bethropolis/dir-tree/internal/ignore"
	"github.com/bethropolis/dir-tree/internal/utils"
	"github.com/bethropolis/dir-tree/internal/walker"
	"github.com/spf13/afero"
)

// ConfigureWalker builds the ignore rule set and the walker options for cfg.
//
// The ignore file is read once, from the root only. A missing file is not an
// error. Custom patterns apply even when the ignore file is not respected.
// The returned rule set is nil when there is nothing to filter on.
func ConfigureWalker(cfg *config.Config, fsys afero.Fs, log utils.Logger) (*ignore.RuleSet, []walker.Option, error) {
	if log == nil {
		log = utils.NoopLogger{}
	}

	rules, err := loadRules(cfg, fsys, log)
	if err != nil {
		return nil, nil, err
	}

	if cfg.ShowHidden {
		log.Debug("Including hidden files/directories.")
	} else {
		log.Debug("Ignoring hidden files/directories (starting with '.').")
	}

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithFs(fsys),
		walker.WithMaxDepth(cfg.MaxDepth),
		walker.WithHidden(cfg.ShowHidden),
		walker.WithDirsOnly(cfg.DirsOnly),
		walker.WithSort(cfg.Sort),
		walker.WithASCII(cfg.ASCIIOnly),
	}

	return rules, walkOptions, nil
}

func loadRules(cfg *config.Config, fsys afero.Fs, log utils.Logger) (*ignore.RuleSet, error) {
	opts := []ignore.Option{ignore.WithLogger(log)}
	if len(cfg.CustomIgnore) > 0 {
		log.Debug("Using custom ignore patterns: %v", cfg.CustomIgnore)
		opts = append(opts, ignore.WithCustomRules(cfg.CustomIgnore))
	}

	switch {
	case !cfg.RespectIgnoreFile:
	case isFile(fsys, cfg.Path):
		// A file root is a single leaf with no ignore file of its own
		log.Debug("Root %s is not a directory, skipping ignore file", cfg.Path)
	default:
		path := filepath.Join(cfg.Path, ignore.DefaultFileName)
		rules, err := ignore.Load(fsys, path, opts...)
		if err != nil {
			return nil, fmt.Errorf("error initializing ignore rules: %w", err)
		}
		if rules != nil {
			log.Debug("Loaded %d ignore rule(s) from %s", len(rules.Rules()), path)
			return rules, nil
		}
		log.Debug("No ignore file at %s", path)
	}

	if len(cfg.CustomIgnore) == 0 {
		return nil, nil
	}
	return ignore.New(opts...), nil
}

// isFile follows symlinks. A path that can't be stat'ed is not a file.
func isFile(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}
