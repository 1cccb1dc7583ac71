package repository

import "github.com/pkg/errors"

// ErrNotFound is returned when an identifier resolves to no document. It is
// the only store error handlers distinguish; everything else is reported as
// a generic failure.
var ErrNotFound = errors.New("document not found")
