// Package xsd holds the handful of XSD/RDF datatype IRIs the Turtle
// translator needs to construct numeric and boolean literals, plus
// rdf:langString for language-tagged ones.
package xsd

import "github.com/kvasir-rdf/turtlegraph/rdf"

func mustIRI(raw string) rdf.IRI {
	i, err := rdf.Parse(raw)
	if err != nil {
		panic("xsd: invalid built-in IRI " + raw)
	}
	return i
}

var (
	String     = mustIRI("http://www.w3.org/2001/XMLSchema#string")
	Boolean    = mustIRI("http://www.w3.org/2001/XMLSchema#boolean")
	Integer    = mustIRI("http://www.w3.org/2001/XMLSchema#integer")
	Decimal    = mustIRI("http://www.w3.org/2001/XMLSchema#decimal")
	Double     = mustIRI("http://www.w3.org/2001/XMLSchema#double")
	LangString = mustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#langString")
)
