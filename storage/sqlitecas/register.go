package sqlitecas

import (
	"xdao.co/merklize/storage"
	"xdao.co/merklize/storage/casregistry"
)

func init() {
	casregistry.MustRegister(casregistry.Backend{
		Name:        "sqlite",
		Description: "SQLite CAS (single database file)",
		Open: func(location string) (storage.CAS, func() error, error) {
			cas, err := Open(location)
			if err != nil {
				return nil, nil, err
			}
			return cas, cas.Close, nil
		},
	})
}
