package cli

import "errors"

var (
	// ErrUnknownOutput is returned for an --output value other than text, yaml or json.
	ErrUnknownOutput = errors.New("cli: unknown output format")

	// ErrVerifyMismatch is returned when --verify finds a cheaper tour than the search.
	ErrVerifyMismatch = errors.New("cli: cross-check disagrees with search")
)
