package credittrail

import "errors"

// Sentinel errors for the conditions a caller may need to distinguish.
// Validation and persistence errors are wrapped with context; test and
// presentation code matches them with errors.Is.
var (
	// ErrValidation reports a command payload that fails the entity model
	// predicates. The snapshot is left unchanged.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound reports an empty persistence slot. Within the store,
	// update/delete of an unknown id is a silent no-op, never an error.
	ErrNotFound = errors.New("not found")

	// ErrMalformedBackup reports an import file that is not valid JSON.
	ErrMalformedBackup = errors.New("malformed backup")

	// ErrMissingFields reports an import file missing one of the required
	// top-level collections.
	ErrMissingFields = errors.New("backup missing required fields")

	// ErrPersist reports a failed durable write. The in-memory snapshot has
	// already advanced; the store keeps operating without durability until
	// the next successful write.
	ErrPersist = errors.New("could not persist snapshot")
)
