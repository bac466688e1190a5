// Package lifecycle defines the stages that turn input tables into
// synonymy documents, archives and character matrices.
package lifecycle

import (
	"context"
)

// Builder creates synonymy documents from taxa and synonymy tables.
// Config is provided during construction.
type Builder interface {
	// Build reads the tables, orders synonyms by the dates of their
	// references and writes the document in the configured format.
	// The output file is written only if rendering succeeded.
	Build(ctx context.Context, taxaPath, synonymyPath string) error
}

// Archiver stores joined synonymy in a SQLite database.
type Archiver interface {
	// Archive recreates the database tables and fills them with taxa and
	// their matched synonyms.
	Archive(ctx context.Context, taxaPath, synonymyPath string) error
}

// Pivoter converts character-state tables to taxon by character
// matrices.
type Pivoter interface {
	// Pivot converts every file and returns paths of created matrices.
	Pivot(paths ...string) ([]string, error)
}
