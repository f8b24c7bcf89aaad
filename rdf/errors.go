package rdf

import "errors"

// Sentinel errors returned by term constructors. Callers may compare with
// errors.Is.
var (
	ErrBlankNodeEmptyLabel = errors.New("rdf: blank node label must not be empty")
	ErrIRIEmpty            = errors.New("rdf: IRI must not be empty")
	ErrIRIRelativeNoBase   = errors.New("rdf: relative IRI given without a base")
)
