package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidImport   = errors.New("invalid project import")

	// ErrMalformedImport and ErrImportNotList both match ErrInvalidImport with errors.Is.
	ErrMalformedImport = fmt.Errorf("%w: input is not valid JSON", ErrInvalidImport)
	ErrImportNotList   = fmt.Errorf("%w: input is not a list", ErrInvalidImport)
)
