package domain

import "errors"

var (
	// ErrNotFound covers both missing CVs and missing templates.
	ErrNotFound = errors.New("not found")

	// ErrNotPermitted means the requester is neither the owner nor allowed
	// by the CV's visibility. Surfaced distinctly from ErrNotFound.
	ErrNotPermitted = errors.New("not permitted")

	// ErrExportFailed is the single condition every exporter-internal
	// failure collapses to at the orchestrator boundary.
	ErrExportFailed = errors.New("export failed")
)
