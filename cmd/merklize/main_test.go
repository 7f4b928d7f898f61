package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xdao.co/merklize/model"
)

const personNQ = `_:p <https://ex.org/name> "Ada" .
_:p <https://ex.org/age> "36"^^<http://www.w3.org/2001/XMLSchema#integer> .
_:p <https://ex.org/address> _:a .
_:a <https://ex.org/city> "London" .
`

const personListing = `{"path":["https://ex.org/name"],"kind":"String","value":"Ada"}
{"path":["https://ex.org/age"],"kind":"Int","value":"36"}
{"path":["https://ex.org/address","https://ex.org/city"],"kind":"String","value":"London"}
`

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestEntries_NoHashes(t *testing.T) {
	code, out, errOut := runCLI(t, personNQ, "entries", "--no-hashes", "-")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, personListing, out)
}

func TestEntries_WithHashes(t *testing.T) {
	f := writeFile(t, t.TempDir(), "person.nq", personNQ)
	for _, hasher := range []string{"poseidon", "keccak"} {
		code, out, errOut := runCLI(t, "", "entries", "--hasher", hasher, "--workers", "2", f)
		require.Equal(t, exitOK, code, errOut)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		var first model.EntryWithHashes
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		assert.Equal(t, []any{"https://ex.org/name"}, first.Path)
		assert.NotEmpty(t, first.KeyHash)
		assert.NotEmpty(t, first.ValueHash)
	}
}

func TestCID_MatchesPut(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "person.nq", personNQ)

	code, cidOut, errOut := runCLI(t, "", "cid", f)
	require.Equal(t, exitOK, code, errOut)
	id := strings.TrimSpace(cidOut)

	for _, backend := range []string{"localfs", "sqlite"} {
		store := filepath.Join(dir, backend+"-store")
		code, putOut, errOut := runCLI(t, "", "put", "--store-backend", backend, "--store-path", store, f)
		require.Equal(t, exitOK, code, errOut)

		var summary model.ListingSummary
		require.NoError(t, json.Unmarshal([]byte(putOut), &summary))
		assert.Equal(t, id, summary.CID)
		assert.Equal(t, 3, summary.Entries)
		assert.Equal(t, "poseidon", summary.Hasher)
		assert.Equal(t, model.CompliancePermissive, summary.Mode)

		code, getOut, errOut := runCLI(t, "", "get", "--store-backend", backend, "--store-path", store, id)
		require.Equal(t, exitOK, code, errOut)
		assert.Equal(t, personListing, getOut)
	}
}

func TestGet_FallsBackAcrossConfiguredBackends(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "person.nq", personNQ)
	fsStore := filepath.Join(dir, "fs")
	dbStore := filepath.Join(dir, "cas.db")

	code, putOut, errOut := runCLI(t, "", "put", "--store-backend", "sqlite", "--store-path", dbStore, f)
	require.Equal(t, exitOK, code, errOut)
	var summary model.ListingSummary
	require.NoError(t, json.Unmarshal([]byte(putOut), &summary))

	cfg := writeFile(t, dir, "merklize.yaml", "store:\n  backends:\n    - name: localfs\n      path: "+fsStore+"\n    - name: sqlite\n      path: "+dbStore+"\n")
	code, getOut, errOut := runCLI(t, "", "--config", cfg, "get", summary.CID)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, personListing, getOut)
}

func TestErrors_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	noDefault := writeFile(t, dir, "named.nq", "<https://ex.org/s> <https://ex.org/p> \"x\" <https://ex.org/g> .\n")
	dangling := writeFile(t, dir, "dangling.nq", "<https://ex.org/s> <https://ex.org/p> _:b .\n")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  model.ErrorCode
		wantRule string
	}{
		{name: "no args", args: []string{"entries"}, wantCode: exitUsage, wantErr: model.ErrInvalidArgument},
		{name: "unknown hasher", args: []string{"cid", "--hasher", "md5", noDefault}, wantCode: exitUsage, wantErr: model.ErrInvalidArgument},
		{name: "bad mode", args: []string{"cid", "--mode", "lenient", noDefault}, wantCode: exitUsage, wantErr: model.ErrInvalidArgument},
		{name: "no default graph", args: []string{"cid", noDefault}, wantCode: exitError, wantErr: model.ErrStructural, wantRule: "MRK-STR-001"},
		{name: "dangling blank node", args: []string{"cid", dangling}, wantCode: exitError, wantErr: model.ErrNotSupported, wantRule: "MRK-NS-001"},
		{name: "invalid cid", args: []string{"get", "--store-path", dir, "not-a-cid"}, wantCode: exitError, wantErr: model.ErrInvalidCID},
		{name: "missing listing", args: []string{"get", "--store-path", filepath.Join(dir, "empty"), "bafkreih7uy2yhx5gobvypuuexbvq22j2cypeqqfk2lc46225e7b3syq7pu"}, wantCode: exitError, wantErr: model.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, "", append([]string{"--json"}, tt.args...)...)
			assert.Equal(t, tt.wantCode, code)

			var ce model.CodedError
			require.NoError(t, json.Unmarshal([]byte(errOut), &ce), errOut)
			assert.Equal(t, tt.wantErr, ce.Code)
			assert.Equal(t, tt.wantRule, ce.RuleID)
		})
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "merklize dev\n", out)
}

func TestLs(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "person.nq", personNQ)
	store := filepath.Join(dir, "store")

	code, out, errOut := runCLI(t, "", "ls", "--store-path", store)
	require.Equal(t, exitOK, code, errOut)
	assert.Empty(t, out)

	code, idOut, errOut := runCLI(t, "", "cid", f)
	require.Equal(t, exitOK, code, errOut)
	code, _, errOut = runCLI(t, "", "put", "--store-path", store, f)
	require.Equal(t, exitOK, code, errOut)

	code, out, errOut = runCLI(t, "", "ls", "--store-path", store)
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, idOut, out)
}
