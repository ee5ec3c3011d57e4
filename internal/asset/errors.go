package asset

import (
	"errors"
)

var (
	// ErrNameEmpty is returned when an asset is created without a name.
	ErrNameEmpty = errors.New("asset name cannot be empty")

	// ErrDeleteFailed is returned when the local record could not be removed
	// after the remote pad deletion was already requested.
	ErrDeleteFailed = errors.New("asset record could not be deleted")
)
