package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Species resolver errors
	SpeciesRegistryError
	UnknownSpeciesError

	// GO-term catalog errors
	CatalogNotFoundError
	CatalogColumnError

	// Table I/O errors
	TableReadError
	TableWriteError

	// Extraction errors
	ExtractLegendNotFoundError
	ExtractLegendColumnError
	ExtractAnnotationNotFoundError
	ExtractAnnotationColumnError
	ExtractInputDirError
	ExtractOutputDirError
)
