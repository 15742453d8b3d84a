package repository

import "errors"

// ErrNotFound is wrapped by Get methods when no row matches.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when an ID prefix matches more than one run.
var ErrAmbiguous = errors.New("ambiguous id prefix")
