package rdf

// xsdString and rdfLangString back Literal's defaulting rule (construction
// rule in spec: explicit datatype > language tag implies rdf:langString >
// default xsd:string). Defined here, rather than imported from rdf/xsd, to
// avoid an import cycle -- rdf/xsd itself depends on this package for the
// IRI type.
var (
	xsdString     = mustIRI("http://www.w3.org/2001/XMLSchema#string")
	rdfLangString = mustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#langString")
)

func mustIRI(raw string) IRI {
	i, err := Parse(raw)
	if err != nil {
		panic("rdf: invalid built-in IRI " + raw)
	}
	return i
}
