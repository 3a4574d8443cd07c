// Package errors defines the sentinel errors shared across usecases and
// handlers. Handlers translate these into HTTP statuses; anonymous callers
// never see more detail than the sentinel itself carries.
package errors

import "errors"

var (
	// ErrMalformedCode indicates a share code that fails the format
	// predicate. It is raised before any storage access.
	ErrMalformedCode = errors.New("malformed share code")

	// ErrLinkNotFound merges three cases: the code does not exist, the
	// link was deactivated, or it has expired. An anonymous caller must
	// not be able to tell them apart.
	ErrLinkNotFound = errors.New("share link not found or expired")

	// ErrPermissionDenied indicates the link resolved but lacks the flag
	// required by the attempted operation.
	ErrPermissionDenied = errors.New("permission denied for this share link")

	// ErrCodeExhausted indicates code generation hit the collision retry
	// bound without producing a unique code.
	ErrCodeExhausted = errors.New("failed to generate unique share code")

	// ErrCodeTaken indicates a uniqueness violation on insert; the create
	// loop retries on it.
	ErrCodeTaken = errors.New("share code already in use")

	// ErrForbidden indicates an authenticated owner acting on a resource
	// they do not own.
	ErrForbidden = errors.New("forbidden")

	// ErrAppNotFound indicates the requested app does not exist for the
	// requesting owner.
	ErrAppNotFound = errors.New("app not found")

	// ErrSlugTaken indicates an app slug collision on insert.
	ErrSlugTaken = errors.New("app slug already in use")

	// ErrTaskNotFound indicates the client task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskAlreadyCompleted indicates a completion record already exists
	// for the task.
	ErrTaskAlreadyCompleted = errors.New("task is already completed")

	// ErrInvalidTransition indicates a status change the task state
	// machine does not permit.
	ErrInvalidTransition = errors.New("invalid task status transition")

	// ErrInvalidCredentials indicates a failed owner login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates the owner account row is missing.
	ErrUserNotFound = errors.New("user not found")
)
