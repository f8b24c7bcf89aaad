package rdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvasir-rdf/turtlegraph/rdf"
)

func TestParse(t *testing.T) {
	i, err := rdf.Parse("http://example.org/thing")
	require.NoError(t, err)
	assert.Equal(t, "<http://example.org/thing>", i.String())
}

func TestParseRejectsRelative(t *testing.T) {
	_, err := rdf.Parse("relative/path")
	assert.ErrorIs(t, err, rdf.ErrIRIRelativeNoBase)
}

func TestParseWithBase(t *testing.T) {
	base, err := rdf.Parse("http://example.org/dir/")
	require.NoError(t, err)

	i, err := rdf.ParseWithBase("thing", base)
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/dir/thing", i.Value())
}

func TestParseWithBaseAbsoluteIgnoresBase(t *testing.T) {
	base, err := rdf.Parse("http://example.org/dir/")
	require.NoError(t, err)

	i, err := rdf.ParseWithBase("http://other.example/x", base)
	require.NoError(t, err)
	assert.Equal(t, "http://other.example/x", i.Value())
}

func TestJoinFragmentReplacement(t *testing.T) {
	manifest, err := rdf.Parse("file:///tests/manifest.ttl#suite")
	require.NoError(t, err)

	joined, err := manifest.Join("test1")
	require.NoError(t, err)
	assert.Equal(t, "file:///tests/manifest.ttl#test1", joined.Value())
}

func TestJoinWithoutFragmentResolvesAsReference(t *testing.T) {
	base, err := rdf.Parse("http://example.org/a/b")
	require.NoError(t, err)

	joined, err := base.Join("c")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/a/c", joined.Value())
}

func TestEq(t *testing.T) {
	a, _ := rdf.Parse("http://example.org/x")
	b, _ := rdf.Parse("http://example.org/x")
	c, _ := rdf.Parse("http://example.org/y")
	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
}
