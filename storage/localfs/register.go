package localfs

import (
	"xdao.co/merklize/storage"
	"xdao.co/merklize/storage/casregistry"
)

func init() {
	casregistry.MustRegister(casregistry.Backend{
		Name:        "localfs",
		Description: "Local filesystem CAS (directory)",
		Open: func(location string) (storage.CAS, func() error, error) {
			cas, err := New(location)
			return cas, nil, err
		},
	})
}
