package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationSlug(t *testing.T) {
	cases := map[string]string{
		"Goa":             "goa",
		"Goa & Beaches":   "goa-beaches",
		"  Leh-Ladakh  ":  "leh-ladakh",
		"Rann of Kutch!!": "rann-of-kutch",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, DestinationSlug(in), in)
	}
}

func TestSlugVariants(t *testing.T) {
	vs := slugVariants("Hills & Valleys")
	assert.Contains(t, vs, "hills-valleys")
	assert.Contains(t, vs, "hills_valleys")
	assert.Contains(t, vs, "hillsvalleys")
	assert.Contains(t, vs, "hills-and-valleys")
	// first candidate is the canonical slug
	assert.Equal(t, "hills-valleys", vs[0])
}

func TestResolveImageDir(t *testing.T) {
	base := t.TempDir()

	// legacy underscore folder
	require.NoError(t, os.MkdirAll(filepath.Join(base, "leh_ladakh"), 0o755))

	dir, ok := ResolveImageDir(base, "Leh Ladakh")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(base, "leh_ladakh"), dir)

	_, ok = ResolveImageDir(base, "Nowhere Land")
	assert.False(t, ok)
}

func TestResolveImageDirPrefersCanonicalSlug(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "goa-beaches"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "goa_beaches"), 0o755))

	dir, ok := ResolveImageDir(base, "Goa & Beaches")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(base, "goa-beaches"), dir)
}
