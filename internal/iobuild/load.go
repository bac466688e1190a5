package iobuild

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnsyn/internal/iobib"
	"github.com/gnames/gnsyn/internal/iotable"
	"github.com/gnames/gnsyn/pkg/bib"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/ent/record"
	"github.com/gnames/gnsyn/pkg/synonymy"
	"golang.org/x/sync/errgroup"
)

// Input holds the content of all input files.
type Input struct {
	Taxa     []record.Taxon
	Synonyms []record.Synonym
	Index    bib.Index
}

// Load reads taxa, synonymy and bibliography files concurrently.
// The first failure cancels the other loads.
func Load(
	ctx context.Context,
	cfg *config.Config,
	taxaPath, synonymyPath string,
) (Input, error) {
	var res Input
	delim := cfg.Input.Delimiter

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res.Taxa, err = iotable.Taxa(ctx, taxaPath, delim)
		return err
	})
	g.Go(func() error {
		var err error
		res.Synonyms, err = iotable.Synonyms(ctx, synonymyPath, delim)
		return err
	})
	g.Go(func() error {
		var err error
		res.Index, err = iobib.Load(cfg.Document.BibPath)
		return err
	})

	if err := g.Wait(); err != nil {
		return Input{}, err
	}

	slog.Info("Input loaded",
		"taxa", len(res.Taxa),
		"synonyms", len(res.Synonyms),
		"bibliography_entries", res.Index.Len(),
	)
	return res, nil
}

// Prepare loads input files, dates synonyms and assembles the document.
// Unmatched synonyms are handled according to Render.Unmatched.
func Prepare(
	ctx context.Context,
	cfg *config.Config,
	taxaPath, synonymyPath string,
) (synonymy.Document, error) {
	var doc synonymy.Document
	in, err := Load(ctx, cfg, taxaPath, synonymyPath)
	if err != nil {
		return doc, err
	}

	if err = bib.DateSynonyms(in.Index, in.Synonyms); err != nil {
		return doc, err
	}

	doc = synonymy.Assemble(in.Taxa, in.Synonyms, cfg.Document.Clade)
	if err = synonymy.CheckUnmatched(doc, cfg.Render.Unmatched); err != nil {
		return doc, err
	}

	if cfg.Document.Clade != "" && len(doc.Entries) == 0 {
		slog.Warn("No taxa in clade", "clade", cfg.Document.Clade)
	}
	slog.Info("Document assembled",
		"taxa", humanize.Comma(int64(len(doc.Entries))),
		"synonyms", humanize.Comma(int64(doc.SynonymsNum())),
		"unmatched", len(doc.Unmatched),
	)
	return doc, nil
}
