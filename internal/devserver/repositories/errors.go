// Package repositories holds the storage contracts of the development
// backend. Each subpackage declares one repository and its in-memory
// implementation; repomanager bundles them.
package repositories

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
