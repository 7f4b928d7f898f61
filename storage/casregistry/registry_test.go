package casregistry_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xdao.co/merklize/storage"
	"xdao.co/merklize/storage/casregistry"
	_ "xdao.co/merklize/storage/localfs"
	_ "xdao.co/merklize/storage/sqlitecas"
)

func TestNames_IncludesLinkedBackends(t *testing.T) {
	assert.Equal(t, []string{"localfs", "sqlite"}, casregistry.Names())
}

func TestOpen_ByName(t *testing.T) {
	cas, closeFn, err := casregistry.Open("sqlite", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	defer closeFn()

	id, err := cas.Put([]byte("x\n"))
	require.NoError(t, err)
	assert.True(t, cas.Has(id))
}

func TestOpen_Errors(t *testing.T) {
	_, _, err := casregistry.Open("nope", "/tmp/x")
	assert.ErrorContains(t, err, "unknown backend")

	_, _, err = casregistry.Open("localfs", "")
	assert.ErrorContains(t, err, "location is required")
}

func TestRegister_Validation(t *testing.T) {
	assert.Error(t, casregistry.Register(casregistry.Backend{}))
	assert.Error(t, casregistry.Register(casregistry.Backend{Name: "x"}))
	assert.Error(t, casregistry.Register(casregistry.Backend{Name: "localfs", Open: func(string) (storage.CAS, func() error, error) { return nil, nil, nil }}))
}
