// vector_gen regenerates the expected listing and CID files for the N-Quads
// conformance vectors under testdata/conformance/merklize.
//
// Usage:
//
//	go run ./internal/tools/vector_gen [-write] <vector.nq>...
//
// Without -write the CID and listing are printed for review.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"xdao.co/merklize/cidutil"
	"xdao.co/merklize/fieldhash"
	"xdao.co/merklize/merklize"
	"xdao.co/merklize/rdfio"
)

func main() {
	write := flag.Bool("write", false, "write <name>.jsonl and <name>.cid next to each input")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: vector_gen [-write] <vector.nq>...")
		os.Exit(2)
	}
	for _, path := range flag.Args() {
		if err := generate(path, *write); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func generate(path string, write bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	ds, err := rdfio.ReadNQuads(f)
	if err != nil {
		return err
	}
	entries, err := merklize.EntriesFromRDF(ds, fieldhash.Poseidon())
	if err != nil {
		return err
	}
	listing, err := merklize.Listing(entries)
	if err != nil {
		return err
	}
	cid := cidutil.CIDv1RawSHA256(listing)

	if !write {
		fmt.Printf("CID=%s\n", cid)
		fmt.Printf("---BEGIN---\n%s---END---\n", listing)
		return nil
	}
	base := strings.TrimSuffix(path, ".nq")
	if err := os.WriteFile(base+".jsonl", listing, 0o644); err != nil {
		return err
	}
	return os.WriteFile(base+".cid", []byte(cid+"\n"), 0o644)
}
