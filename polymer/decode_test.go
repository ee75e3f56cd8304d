package polymer_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latpoly/polymer"
)

func TestDecode_YAML(t *testing.T) {
	doc, err := polymer.Decode(strings.NewReader(`
name: hairpin
monomers:
  - [0, 0]
  - [1, 0]
  - [1, 1]
  - [0, 1]
`))
	require.NoError(t, err)
	assert.Equal(t, "hairpin", doc.Name)
	assert.Equal(t, conf(0, 0, 1, 0, 1, 1, 0, 1), doc.Monomers)
}

func TestDecode_JSON(t *testing.T) {
	doc, err := polymer.Decode(strings.NewReader(`{"monomers": [[0, 0], [2, 0]]}`))
	require.NoError(t, err)
	assert.Equal(t, conf(0, 0, 2, 0), doc.Monomers)
	assert.False(t, polymer.Validate(doc.Monomers).Connected)
}

func TestDecode_Empty(t *testing.T) {
	doc, err := polymer.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Monomers)
	assert.True(t, polymer.Validate(doc.Monomers).Valid())
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Syntax", "monomers: [[0, 0]", polymer.ErrDecode},
		{"NotInteger", "monomers: [[0.5, 0]]", polymer.ErrDecode},
		{"Triple", "monomers: [[0, 0], [1, 0, 0]]", polymer.ErrMalformedCoord},
		{"Single", "monomers: [[0]]", polymer.ErrMalformedCoord},
		{"UnknownKey", "monomer: [[0, 0]]", polymer.ErrDecode},
		{"UnknownKeyBesideName", "name: x\nmonomer:\n  - [0, 0]\n  - [5, 5]\n", polymer.ErrDecode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := polymer.Decode(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestDecode_KeepsYAMLError checks the yaml.v3 error stays reachable
// alongside ErrDecode.
func TestDecode_KeepsYAMLError(t *testing.T) {
	_, err := polymer.Decode(strings.NewReader("monomers: [[0.5, 0]]"))
	require.ErrorIs(t, err, polymer.ErrDecode)

	var typeErr *yaml.TypeError
	assert.True(t, errors.As(err, &typeErr), "want *yaml.TypeError in %v", err)
}

// TestDecode_IntLimits decodes 64-bit extremes and validates them exactly.
func TestDecode_IntLimits(t *testing.T) {
	if strconv.IntSize != 64 {
		t.Skip("needs 64-bit int")
	}
	doc, err := polymer.Decode(strings.NewReader(
		"monomers: [[9223372036854775807, 0], [-9223372036854775808, 0]]"))
	require.NoError(t, err)

	res := polymer.Validate(doc.Monomers)
	assert.True(t, res.SelfAvoiding)
	assert.False(t, res.Connected)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("monomers:\n  - [0, 0]\n  - [0, 1]\n"), 0o600))

	doc, err := polymer.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Name, "unnamed documents take the file path")
	assert.Equal(t, conf(0, 0, 0, 1), doc.Monomers)

	_, err = polymer.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_Testdata runs the checked-in sample conformations through Validate.
func TestLoad_Testdata(t *testing.T) {
	cases := []struct {
		file         string
		n            int
		selfAvoiding bool
		connected    bool
	}{
		{"hairpin.yaml", 6, true, true},
		{"overlap.yaml", 5, false, true},
		{"gap.json", 3, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			doc, err := polymer.Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.n, doc.Monomers.Len())

			res := polymer.Validate(doc.Monomers)
			assert.Equal(t, tc.selfAvoiding, res.SelfAvoiding)
			assert.Equal(t, tc.connected, res.Connected)
		})
	}
}
