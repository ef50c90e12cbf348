package model

import "errors"

// ErrInvalidImport marks a file that is not valid assessment JSON, as opposed
// to a read failure.
var ErrInvalidImport = errors.New("invalid JSON file")
