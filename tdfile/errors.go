package tdfile

import "errors"

// Sentinel errors for the tdfile package. ErrDecode is wrapped with
// fmt.Errorf("%w: ...") at the point of detection to carry context;
// ErrEmptyDocument is returned as is by Decode. Load prefixes the file path
// to either one. Callers match them via errors.Is.
var (
	// ErrDecode indicates the input was not well-formed YAML, or did not
	// match the decomposition-file schema (e.g. a bag type string outside
	// {leaf, introduce, forget, join}).
	ErrDecode = errors.New("tdfile: decode failure")

	// ErrEmptyDocument indicates a decoded document with zero bags, which
	// can never describe a valid decomposition (tdbuilder.Build would
	// reject it anyway, but tdfile reports it earlier with file-level
	// context).
	ErrEmptyDocument = errors.New("tdfile: document has no bags")
)
