// Package iobuild implements Builder interface. It reads taxa and
// synonymy tables and writes LaTeX, XML or JSON synonymy documents.
package iobuild

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsyn/internal/iofs"
	"github.com/gnames/gnsyn/internal/iotemplates"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/lifecycle"
	"github.com/gnames/gnsyn/pkg/names"
	"github.com/gnames/gnsyn/pkg/render"
	"github.com/gnames/gnsyn/pkg/synonymy"
	"github.com/google/uuid"
)

type builder struct {
	cfg *config.Config
}

// New creates a new Builder.
func New(cfg *config.Config) lifecycle.Builder {
	return &builder{cfg: cfg}
}

// Build implements Builder.
func (b *builder) Build(
	ctx context.Context,
	taxaPath, synonymyPath string,
) error {
	startTime := time.Now()
	runID := uuid.NewString()
	log := slog.With("run_id", runID)
	log.Info("Starting build",
		"format", b.cfg.Document.Format,
		"taxa_file", taxaPath,
		"synonymy_file", synonymyPath,
		"clade", b.cfg.Document.Clade,
	)

	opts := render.Options{
		LSIDBaseURL: b.cfg.Render.LSIDBaseURL,
	}
	if b.cfg.Document.Format == config.FormatLaTeX {
		tmpls, err := iotemplates.Load(b.cfg.Render.TemplatesFile)
		if err != nil {
			return err
		}
		opts.Templates = tmpls
	}

	doc, err := Prepare(ctx, b.cfg, taxaPath, synonymyPath)
	if err != nil {
		return err
	}

	// LaTeX output does not use canonical forms.
	if b.cfg.Document.Format != config.FormatLaTeX {
		pool := names.NewPool(0)
		defer pool.Close()
		list := docNames(doc)
		if err = pool.ParseAll(ctx, list); err != nil {
			return err
		}
		log.Debug("Names parsed", "names", len(list))
		opts.Names = pool
	}

	var bar *pb.ProgressBar
	if b.cfg.Document.WithProgress && len(doc.Entries) > 0 {
		bar = newProgressBar(len(doc.Entries), "Formatting: ")
		opts.OnEntry = func() { bar.Increment() }
	}

	r, err := render.New(b.cfg.Document.Format, opts)
	if err != nil {
		return err
	}
	res, err := r.Render(doc)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	path := b.cfg.OutputPath()
	if err = iofs.WriteFile(path, res); err != nil {
		return err
	}

	duration := time.Since(startTime)
	log.Info("Build complete",
		"output", path,
		"taxa", len(doc.Entries),
		"synonyms", doc.SynonymsNum(),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(
		"Wrote <em>%s</em>: %s taxa, %s synonyms in %s",
		path,
		humanize.Comma(int64(len(doc.Entries))),
		humanize.Comma(int64(doc.SynonymsNum())),
		gnfmt.TimeString(duration.Seconds()),
	)
	return nil
}

func docNames(doc synonymy.Document) []string {
	var res []string
	for _, v := range doc.Entries {
		res = append(res, v.Taxon.AcceptedName)
		for _, syn := range v.Synonyms {
			res = append(res, syn.IdentifiedName)
		}
	}
	return res
}
