package domain

import "errors"

// ErrToolNotFound signals a catalog lookup that matched no record. The CSV
// importer branches on it to decide between insert and update.
var ErrToolNotFound = errors.New("tool not found")
