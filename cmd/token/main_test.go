package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/songregistry/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mint(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(args, &out))
	return strings.TrimSpace(out.String())
}

func TestRun_SecretFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"secret_key": "from-file"}`), 0o600))

	tok := mint(t, "alice", "-c", path)

	p, err := auth.PrincipalFromToken(tok, []byte("from-file"))
	require.NoError(t, err)
	assert.Equal(t, "alice", p)

	_, err = auth.PrincipalFromToken(tok, []byte("secretKey"))
	assert.Error(t, err, "default secret must not verify a token signed with the configured one")
}

func TestRun_SecretFlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"secret_key": "from-file"}`), 0o600))

	tok := mint(t, "bob", "-c", path, "-s", "from-flag")

	p, err := auth.PrincipalFromToken(tok, []byte("from-flag"))
	require.NoError(t, err)
	assert.Equal(t, "bob", p)
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"-s", "x"}, {""}} {
		err := run(args, &bytes.Buffer{})
		assert.ErrorIs(t, err, errUsage)
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	err := run([]string{"alice", "-c", filepath.Join(t.TempDir(), "missing.json")}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "config:")
}
