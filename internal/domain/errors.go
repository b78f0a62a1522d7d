/**
 * @description
 * Sentinel errors shared across the enrollment-service layers.
 */
package domain

import "errors"

var (
	// ErrConflict is returned by the store when a unique constraint rejects the write,
	// e.g. a document or e-mail registered between the uniqueness check and the insert.
	ErrConflict = errors.New("resource already exists")
)
