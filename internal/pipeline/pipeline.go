// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the full update: fetch records, render both
// fragments, splice them into the site files, and rebuild the CV PDF.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jonahbd1/jonahbd1.github.io/internal/authors"
	"github.com/jonahbd1/jonahbd1.github.io/internal/render"
	"github.com/jonahbd1/jonahbd1.github.io/internal/splice"
	"github.com/jonahbd1/jonahbd1.github.io/pkg/types"
)

// Fetcher produces the publication records for the run.
type Fetcher interface {
	Fetch(ctx context.Context, cfg types.InspireConfig) ([]types.Publication, error)
}

// Compiler rebuilds the typeset document after the splice.
type Compiler interface {
	Compile(dir, file string, w io.Writer) error
}

// Options tweak a single run.
type Options struct {
	// DryRun prints both rendered fragments to w and touches nothing.
	DryRun bool

	// SkipCompile splices both files but skips the LaTeX rebuild.
	SkipCompile bool
}

// Run executes the pipeline once. Progress and diagnostics go to w. A
// fetch or splice failure aborts the run; an empty fetch result is a
// normal "nothing to do" exit. There is no rollback: if the second
// splice fails the first file stays modified.
func Run(ctx context.Context, cfg types.Config, f Fetcher, c Compiler, opts Options, w io.Writer) error {
	fmt.Fprintln(w, "Fetching publications from INSPIRE-HEP...")
	pubs, err := f.Fetch(ctx, cfg.Inspire)
	if err != nil {
		return fmt.Errorf("fetching publications: %w", err)
	}
	fmt.Fprintf(w, "Found %d publications (excluding theses).\n", len(pubs))

	if len(pubs) == 0 {
		fmt.Fprintln(w, "No publications found. Aborting.")
		return nil
	}

	owner := authors.NewOwner(cfg.Owner)
	htmlFragment := render.HTML(pubs, owner)
	texFragment := render.LaTeX(pubs, owner)

	if opts.DryRun {
		fmt.Fprintf(w, "--- %s ---\n%s\n", cfg.Site.HTMLPath, htmlFragment)
		fmt.Fprintf(w, "--- %s ---\n%s\n", cfg.Site.TexPath, texFragment)
		return nil
	}

	if err := splice.UpdateFile(cfg.Site.HTMLPath, cfg.Site.HTMLStartMarker, cfg.Site.HTMLEndMarker, htmlFragment, w); err != nil {
		return err
	}
	if err := splice.UpdateFile(cfg.Site.TexPath, cfg.Site.TexStartMarker, cfg.Site.TexEndMarker, texFragment, w); err != nil {
		return err
	}

	if opts.SkipCompile {
		fmt.Fprintln(w, "Skipping CV compilation.")
		return nil
	}

	fmt.Fprintln(w, "Compiling CV PDF...")
	if err := c.Compile(filepath.Dir(cfg.Site.TexPath), filepath.Base(cfg.Site.TexPath), w); err != nil {
		return err
	}
	fmt.Fprintln(w, "CV compiled.")
	fmt.Fprintln(w, "Done.")
	return nil
}
