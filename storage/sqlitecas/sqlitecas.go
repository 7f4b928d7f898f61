// Package sqlitecas stores canonical entry listings in a single SQLite file.
package sqlitecas

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	_ "modernc.org/sqlite"

	"xdao.co/merklize/cidutil"
	"xdao.co/merklize/storage"
)

const schema = `CREATE TABLE IF NOT EXISTS objects (
	cid  TEXT PRIMARY KEY,
	data BLOB
)`

// CAS is a SQLite-backed content-addressable store. Rows are never updated
// or deleted.
type CAS struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*CAS, error) {
	if path == "" {
		return nil, errors.New("sqlitecas: database path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitecas: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlitecas: create schema: %w", err)
	}
	return &CAS{db: db}, nil
}

func (c *CAS) Close() error { return c.db.Close() }

func (c *CAS) Put(b []byte) (cid.Cid, error) {
	id, err := cidutil.CIDv1RawSHA256CID(b)
	if err != nil {
		return cid.Undef, err
	}
	res, err := c.db.Exec(`INSERT OR IGNORE INTO objects (cid, data) VALUES (?, ?)`, id.String(), b)
	if err != nil {
		return cid.Undef, fmt.Errorf("sqlitecas: insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return cid.Undef, fmt.Errorf("sqlitecas: rows affected: %w", err)
	}
	if n == 0 {
		existing, gerr := c.Get(id)
		if gerr != nil || !bytes.Equal(existing, b) {
			return cid.Undef, storage.ErrImmutable
		}
	}
	return id, nil
}

func (c *CAS) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}
	var b []byte
	err := c.db.QueryRow(`SELECT data FROM objects WHERE cid = ?`, id.String()).Scan(&b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlitecas: select: %w", err)
	}
	got, err := cidutil.CIDv1RawSHA256CID(b)
	if err != nil {
		return nil, err
	}
	if got != id {
		return nil, storage.ErrCIDMismatch
	}
	return b, nil
}

func (c *CAS) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	var one int
	err := c.db.QueryRow(`SELECT 1 FROM objects WHERE cid = ?`, id.String()).Scan(&one)
	return err == nil
}

// List returns the CIDs of all stored objects in ascending order.
func (c *CAS) List() ([]string, error) {
	rows, err := c.db.Query(`SELECT cid FROM objects ORDER BY cid`)
	if err != nil {
		return nil, fmt.Errorf("sqlitecas: list: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
