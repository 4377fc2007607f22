package store

import "errors"

var (
	// ErrNoCurrentProject is returned when an edit or finalize is
	// attempted with no project in progress. The caller can recover by
	// starting one.
	ErrNoCurrentProject = errors.New("no current project")

	// ErrProjectConflict is returned when starting a project while an
	// unfinalized one is in progress. The caller must finalize or
	// discard the existing project first.
	ErrProjectConflict = errors.New("a project is already in progress")
)
