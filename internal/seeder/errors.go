package seeder

import "errors"

var (
	// ErrConfig marks invalid run parameters, rejected before any writes.
	ErrConfig = errors.New("invalid seed configuration")

	// ErrSchemaMismatch marks a missing table or column. The run aborts
	// before touching data; remediation is an external migration.
	ErrSchemaMismatch = errors.New("schema mismatch")
)
