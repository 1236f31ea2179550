package json2tex

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyPagePath    = errors.New("page path cannot be empty")
	ErrPageParse        = errors.New("failed to parse page document")
	ErrInvalidPage      = errors.New("invalid page")
	ErrNoPages          = errors.New("no page directories found")
	ErrNoFragments      = errors.New("no page fragments found")
	ErrFragmentNotFound = errors.New("page fragment not found")
	ErrMainNotFound     = errors.New("main document not found, assemble first")
	ErrPDFNotProduced   = errors.New("compiler did not produce a PDF")
)
