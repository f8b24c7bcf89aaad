package rdf

import "strings"

// Triple is a single RDF statement: subject, predicate (always an IRI),
// object.
type Triple struct {
	S Subject
	P IRI
	O Object
}

func (t Triple) String() string {
	return t.S.String() + " " + t.P.String() + " " + t.O.String() + " ."
}

// Eq reports whether two triples have identical subject, predicate and
// object, term for term (no blank-node renaming).
func (t Triple) Eq(other Triple) bool {
	return termEq(t.S, other.S) && t.P.Eq(other.P) && termEq(t.O, other.O)
}

func termEq(a, b fmtStringer) bool {
	return a.String() == b.String()
}

type fmtStringer interface {
	String() string
}

// Triples is an insertion-ordered sequence of Triple values.
type Triples []Triple

// Len returns the number of triples.
func (ts Triples) Len() int { return len(ts) }

// String renders one triple per line, in order, the canonical display form.
func (ts Triples) String() string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
