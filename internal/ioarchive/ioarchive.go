// Package ioarchive implements Archiver interface. It stores taxa and
// their chronologically ordered synonyms in a SQLite file.
package ioarchive

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnsys"
	"github.com/gnames/gnsyn/internal/iobuild"
	"github.com/gnames/gnsyn/pkg/bib"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/ent/coord"
	"github.com/gnames/gnsyn/pkg/ent/locality"
	"github.com/gnames/gnsyn/pkg/ent/record"
	"github.com/gnames/gnsyn/pkg/lifecycle"
	"github.com/gnames/gnsyn/pkg/synonymy"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// Extension of archive files.
const Extension = ".sqlite"

var schema = []string{
	`DROP TABLE IF EXISTS synonyms`,
	`DROP TABLE IF EXISTS taxa`,
	`CREATE TABLE taxa (
		id INTEGER PRIMARY KEY,
		line INTEGER NOT NULL,
		accepted_name TEXT NOT NULL,
		accepted_authority TEXT,
		combination TEXT NOT NULL,
		lsid TEXT,
		clade TEXT
	)`,
	`CREATE TABLE synonyms (
		id INTEGER PRIMARY KEY,
		taxon_id INTEGER NOT NULL REFERENCES taxa(id),
		position INTEGER NOT NULL,
		line INTEGER NOT NULL,
		identified_name TEXT NOT NULL,
		identified_authority TEXT,
		combination TEXT NOT NULL,
		reference TEXT NOT NULL,
		pageref TEXT,
		date TEXT,
		confidence TEXT,
		morphology TEXT,
		locality TEXT,
		country TEXT,
		latitude TEXT,
		longitude TEXT,
		lsid_act TEXT,
		lsid_pub TEXT,
		comments TEXT
	)`,
	`CREATE INDEX synonyms_taxon_id ON synonyms (taxon_id)`,
}

type archiver struct {
	cfg *config.Config
}

// New creates a new Archiver.
func New(cfg *config.Config) lifecycle.Archiver {
	return &archiver{cfg: cfg}
}

// OutputPath returns the archive file. Without an explicit output path
// the document name gets the .sqlite extension.
func OutputPath(cfg *config.Config) string {
	if cfg.Document.OutputPath != "" {
		return cfg.Document.OutputPath
	}
	path := cfg.OutputPath()
	return strings.TrimSuffix(path, filepath.Ext(path)) + Extension
}

// Archive implements Archiver.
func (a *archiver) Archive(
	ctx context.Context,
	taxaPath, synonymyPath string,
) error {
	doc, err := iobuild.Prepare(ctx, a.cfg, taxaPath, synonymyPath)
	if err != nil {
		return err
	}

	path := OutputPath(a.cfg)
	if err = gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return ArchiveError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return ArchiveError(path, err)
	}
	defer db.Close()

	if err = write(ctx, db, doc); err != nil {
		return ArchiveError(path, err)
	}

	slog.Info("Archive written",
		"path", path,
		"taxa", len(doc.Entries),
		"synonyms", doc.SynonymsNum(),
	)
	gn.Info("Archived %d taxa and %d synonyms to <em>%s</em>",
		len(doc.Entries), doc.SynonymsNum(), path)
	return nil
}

func write(ctx context.Context, db *sql.DB, doc synonymy.Document) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range schema {
		if _, err = tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}

	taxonStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO taxa
			(id, line, accepted_name, accepted_authority, combination, lsid, clade)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer taxonStmt.Close()

	synStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO synonyms
			(taxon_id, position, line, identified_name, identified_authority,
			 combination, reference, pageref, date, confidence, morphology,
			 locality, country, latitude, longitude, lsid_act, lsid_pub, comments)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer synStmt.Close()

	for i, e := range doc.Entries {
		t := e.Taxon
		taxonID := i + 1
		_, err = taxonStmt.ExecContext(ctx,
			taxonID, t.Line, t.AcceptedName, bib.CiteKey(t.AcceptedAuthority),
			t.Status.String(), t.LSID, t.Clade,
		)
		if err != nil {
			return err
		}

		for pos, s := range e.Synonyms {
			lat, lon, err := latLon(s)
			if err != nil {
				return err
			}
			_, err = synStmt.ExecContext(ctx,
				taxonID, pos+1, s.Line, s.IdentifiedName,
				bib.CiteKey(s.IdentifiedAuthority), s.Status.String(),
				bib.CiteKey(s.Reference), s.PageRef, s.Date, s.Confidence,
				s.Morphology,
				locality.Compose(
					locality.Litho(s.Strata), locality.Chrono(s.Strata), s.Location, "",
				),
				s.Country, lat, lon, s.LSIDAct, s.LSIDPub, s.Comments,
			)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func latLon(s record.Synonym) (string, string, error) {
	loc, err := coord.FromSynonym(s)
	if err != nil || loc == nil {
		return "", "", err
	}
	return loc.Point.Lat(), loc.Point.Lon(), nil
}
