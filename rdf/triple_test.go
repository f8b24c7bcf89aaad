package rdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvasir-rdf/turtlegraph/rdf"
)

func mustIRI(t *testing.T, raw string) rdf.IRI {
	t.Helper()
	i, err := rdf.Parse(raw)
	require.NoError(t, err)
	return i
}

func TestTripleString(t *testing.T) {
	s := mustIRI(t, "http://example.org/s")
	p := mustIRI(t, "http://example.org/p")
	o := mustIRI(t, "http://example.org/o")
	tr := rdf.Triple{S: s, P: p, O: o}
	assert.Equal(t, "<http://example.org/s> <http://example.org/p> <http://example.org/o> .", tr.String())
}

func TestTriplesString(t *testing.T) {
	s := mustIRI(t, "http://example.org/s")
	p := mustIRI(t, "http://example.org/p")
	o1 := mustIRI(t, "http://example.org/o1")
	o2 := mustIRI(t, "http://example.org/o2")
	ts := rdf.Triples{
		{S: s, P: p, O: o1},
		{S: s, P: p, O: o2},
	}
	assert.Equal(t, 2, ts.Len())
	want := "<http://example.org/s> <http://example.org/p> <http://example.org/o1> .\n" +
		"<http://example.org/s> <http://example.org/p> <http://example.org/o2> ."
	assert.Equal(t, want, ts.String())
}

func TestTripleEq(t *testing.T) {
	s := mustIRI(t, "http://example.org/s")
	p := mustIRI(t, "http://example.org/p")
	o := mustIRI(t, "http://example.org/o")
	a := rdf.Triple{S: s, P: p, O: o}
	b := rdf.Triple{S: s, P: p, O: o}
	assert.True(t, a.Eq(b))
}
