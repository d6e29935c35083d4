package i18n

import "errors"

var (
	// ErrAliasNotFound is returned when an alias points at a key that does not exist.
	ErrAliasNotFound = errors.New("alias target not found")

	// ErrCircularAlias is returned when alias expansion reaches a token that is already being expanded.
	ErrCircularAlias = errors.New("circular alias reference")

	// ErrAliasNeedsSubkey is returned when an alias references a whole variant mapping without a subkey.
	ErrAliasNeedsSubkey = errors.New("alias target is a variant mapping and needs a subkey")

	// ErrAliasInvalidTarget is returned when an alias resolves to a value that is not a string.
	ErrAliasInvalidTarget = errors.New("alias target is not a string")

	// ErrInvalidDictionary is returned when decoded data is not a mapping at the top level.
	ErrInvalidDictionary = errors.New("dictionary must be a mapping")
)
