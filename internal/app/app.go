// Package app wires the lookup pipeline: validate the word, locate its
// shard, decode it, look the word up, and render the result.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/taranathan/dibble/internal/config"
	"github.com/taranathan/dibble/internal/domain"
	"github.com/taranathan/dibble/internal/locator"
	"github.com/taranathan/dibble/internal/render"
	"github.com/taranathan/dibble/internal/shard"
)

// Options controls one lookup invocation.
type Options struct {
	// ShowExamples includes example sentences in the output.
	ShowExamples bool
}

// App executes dictionary lookups against a fixed set of roots.
type App struct {
	renderer *render.Renderer
	loc      *locator.Locator
	logger   *slog.Logger
}

// New builds an App from cfg, writing user-facing output to out.
func New(out io.Writer, cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		renderer: render.New(out),
		loc:      locator.New(resolveRoots(cfg.Dict)...),
		logger:   logger,
	}
}

// resolveRoots applies the configured overrides to the default root list.
// locator.DefaultRoots stays the single source of truth for the search
// order and the fallback locations; config fields only replace individual
// entries.
func resolveRoots(d config.DictConfig) []string {
	roots := locator.DefaultRoots()
	if d.LocalDir != "" {
		roots[0] = d.LocalDir
	}
	if d.DataDir != "" {
		roots[1] = d.DataDir
	}
	if d.SystemDir != "" {
		roots[2] = d.SystemDir
	}
	return roots
}

// Run performs one lookup. The word is validated before any file I/O; the
// lowercased form drives path derivation inside the locator, while the
// original casing is what the shard lookup uses, so "Apple" and "apple"
// are distinct entries. A word missing from its shard is reported to the
// user but is not an error; file and parse failures are.
func (a *App) Run(word string, opts Options) error {
	if err := domain.ValidateWord(word); err != nil {
		a.renderer.Alert("Invalid input: Word must contain only alphabetic characters.")
		return err
	}

	data, path, err := a.loc.Locate(word)
	if err != nil {
		return err
	}
	a.logger.Debug("shard located",
		slog.String("word", word),
		slog.String("path", path),
	)

	s, err := shard.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	def, ok := s[word]
	if !ok {
		a.logger.Debug("word not in shard",
			slog.String("word", word),
			slog.String("path", path),
		)
		a.renderer.WordNotFound(word)
		return nil
	}

	a.renderer.Definition(&def, opts.ShowExamples)
	return nil
}
