// Package errcode enumerates error codes of gnsyn user-facing errors.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Usage errors
	UsageError

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	ParseRowError
	RequiredFieldError

	// Bibliography errors
	BibParseError
	LookupError

	// Formatting errors
	CoordinateError
	FormatError
	TemplateError

	// Assembly errors
	UnmatchedSynonymError

	// Matrix errors
	MatrixError

	// Archive errors
	ArchiveError
)
