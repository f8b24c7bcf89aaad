package ttl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraphRejectsUntokenizableSource(t *testing.T) {
	_, err := NewGraph(`<http://ex/a b> <http://ex/p> <http://ex/o> .`)
	require.Error(t, err)
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestWithBaseOptionRejectsInvalidBase(t *testing.T) {
	_, err := NewGraph(`<s> <p> <o> .`, WithBase("not a valid base"))
	assert.Error(t, err)
}

func TestSetBaseAppliesToSubsequentResolution(t *testing.T) {
	g, err := NewGraph(`<s> <p> <o> .`)
	require.NoError(t, err)
	require.NoError(t, g.SetBase("http://example.org/"))

	triples := g.Parse()
	require.Len(t, triples, 1)
	assert.Equal(t, `<http://example.org/s> <http://example.org/p> <http://example.org/o> .`, triples[0].String())
}
