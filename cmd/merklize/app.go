package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"xdao.co/merklize/cidutil"
	"xdao.co/merklize/fieldhash"
	"xdao.co/merklize/merklize"
	"xdao.co/merklize/model"
	"xdao.co/merklize/rdf"
	"xdao.co/merklize/rdfio"
	"xdao.co/merklize/storage"
	"xdao.co/merklize/storage/casregistry"

	_ "xdao.co/merklize/storage/localfs"
	_ "xdao.co/merklize/storage/sqlitecas"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

// usageError marks failures caused by bad invocation rather than bad input.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool
	jsonErrors bool

	cfg *config
	log *slog.Logger
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "merklize",
		Short:         "Derive Merkle tree leaf entries from N-Quads documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
			cfg, err := loadConfig(a.configPath, cmd.Flags())
			if err != nil {
				return usageError{err}
			}
			a.cfg = cfg
			a.log.Debug("config loaded", "hasher", cfg.Hasher, "mode", cfg.Mode.String(), "workers", cfg.Workers, "backends", len(cfg.Backends))
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.String("hasher", defaultHasher, "field hasher: "+fmt.Sprint(fieldhash.Names()))
	pf.String("mode", defaultMode, "compliance mode: permissive|strict")
	pf.Int("workers", 0, "hashing goroutines (0 = GOMAXPROCS)")
	pf.String("store-backend", defaultStoreBackend, "CAS backend: "+fmt.Sprint(casregistry.Names()))
	pf.String("store-path", defaultStorePath, "CAS location (directory or database file)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.BoolVar(&a.jsonErrors, "json", false, "report errors as JSON on stderr")

	root.AddCommand(a.entriesCmd(), a.cidCmd(), a.putCmd(), a.getCmd(), a.lsCmd(), a.versionCmd())
	return root
}

func (a *app) entriesCmd() *cobra.Command {
	var noHashes bool
	cmd := &cobra.Command{
		Use:   "entries FILE|-",
		Short: "Print leaf entries as JSON lines",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.entries(args[0])
			if err != nil {
				return err
			}
			if noHashes {
				b, err := merklize.Listing(entries)
				if err != nil {
					return err
				}
				_, err = a.out.Write(b)
				return err
			}
			hashes, err := merklize.HashEntries(cmd.Context(), entries, a.cfg.Workers)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(a.out)
			for i, e := range entries {
				if err := enc.Encode(merklize.ModelEntryWithHashes(e, hashes[i])); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noHashes, "no-hashes", false, "print the canonical listing without field elements")
	return cmd
}

func (a *app) cidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cid FILE|-",
		Short: "Print the CID of the canonical listing",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			entries, err := a.entries(args[0])
			if err != nil {
				return err
			}
			id, err := merklize.ListingCID(entries)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, id)
			return nil
		},
	}
}

func (a *app) putCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put FILE|-",
		Short: "Store the canonical listing and print a summary",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			entries, err := a.entries(args[0])
			if err != nil {
				return err
			}
			b, err := merklize.Listing(entries)
			if err != nil {
				return err
			}
			cas, closeFn, err := a.openCAS()
			if err != nil {
				return err
			}
			defer closeFn()
			id, err := cas.Put(b)
			if err != nil {
				return err
			}
			a.log.Debug("listing stored", "cid", id.String(), "bytes", len(b))
			return json.NewEncoder(a.out).Encode(model.ListingSummary{
				CID:     id.String(),
				Entries: len(entries),
				Hasher:  a.cfg.Hasher,
				Mode:    model.ComplianceMode(a.cfg.Mode.String()),
			})
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get CID",
		Short: "Print a stored listing",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := cidutil.Parse(args[0])
			if err != nil {
				return &model.CodedError{Code: model.ErrInvalidCID, Message: err.Error()}
			}
			cas, closeFn, err := a.openCAS()
			if err != nil {
				return err
			}
			defer closeFn()
			b, err := cas.Get(id)
			if err != nil {
				return err
			}
			_, err = a.out.Write(b)
			return err
		},
	}
}

func (a *app) lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List stored listing CIDs",
		Args:  exactArgs(0),
		RunE: func(*cobra.Command, []string) error {
			cas, closeFn, err := a.openCAS()
			if err != nil {
				return err
			}
			defer closeFn()
			l, ok := cas.(storage.Lister)
			if !ok {
				return usageError{errors.New("backend does not support listing")}
			}
			ids, err := l.List()
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(a.out, id)
			}
			return nil
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  exactArgs(0),
		RunE: func(*cobra.Command, []string) error {
			fmt.Fprintln(a.out, "merklize", version)
			return nil
		},
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// entries reads an N-Quads file ("-" for stdin) and derives its entries with
// the configured hasher and mode.
func (a *app) entries(path string) ([]merklize.Entry, error) {
	h, err := fieldhash.ByName(a.cfg.Hasher)
	if err != nil {
		return nil, usageError{err}
	}
	ds, err := a.readDataset(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("dataset parsed", "file", path, "quads", ds.Len(), "graphs", len(ds.GraphNames()))
	entries, err := merklize.EntriesFromRDFWithOptions(ds, h, merklize.Options{Mode: a.cfg.Mode})
	if err != nil {
		return nil, err
	}
	a.log.Debug("entries derived", "count", len(entries))
	return entries, nil
}

func (a *app) readDataset(path string) (*rdf.Dataset, error) {
	if path == "-" {
		return rdfio.ReadNQuads(a.in)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rdfio.ReadNQuads(f)
}

func (a *app) openCAS() (storage.CAS, func(), error) {
	var (
		adapters []storage.CAS
		closers  []func() error
	)
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				a.log.Warn("close backend", "err", err)
			}
		}
	}
	for _, b := range a.cfg.Backends {
		cas, closeFn, err := casregistry.Open(b.Name, b.Path)
		if err != nil {
			closeAll()
			return nil, nil, usageError{err}
		}
		if closeFn != nil {
			closers = append(closers, closeFn)
		}
		adapters = append(adapters, cas)
		a.log.Debug("backend opened", "name", b.Name, "path", b.Path)
	}
	if len(adapters) == 1 {
		return adapters[0], closeAll, nil
	}
	return storage.MultiCAS{Adapters: adapters}, closeAll, nil
}

// report prints err and returns the process exit code.
func (a *app) report(err error) int {
	code := exitError
	var ue usageError
	if errors.As(err, &ue) {
		code = exitUsage
	}
	ce := codedError(err)
	if a.jsonErrors {
		_ = json.NewEncoder(a.errOut).Encode(ce)
	} else {
		fmt.Fprintln(a.errOut, "error:", ce.Error())
	}
	return code
}

// codedError maps any error onto the stable model error codes.
func codedError(err error) *model.CodedError {
	var ce *model.CodedError
	if errors.As(err, &ce) {
		return ce
	}
	var me *merklize.Error
	if errors.As(err, &me) {
		return &model.CodedError{Code: kindCode(me.Kind), RuleID: me.RuleID, Message: err.Error()}
	}
	switch {
	case storage.IsNotFound(err):
		return model.NewError(model.ErrNotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return model.NewError(model.ErrInternal, err.Error())
	case errors.As(err, &usageError{}):
		return model.NewError(model.ErrInvalidArgument, err.Error())
	case errors.Is(err, rdfio.ErrSyntax):
		return model.NewError(model.ErrStructural, err.Error())
	}
	return model.NewError(model.ErrInternal, err.Error())
}

func kindCode(k merklize.Kind) model.ErrorCode {
	switch k {
	case merklize.KindInvalidArgument:
		return model.ErrInvalidArgument
	case merklize.KindStructural:
		return model.ErrStructural
	case merklize.KindNotSupported:
		return model.ErrNotSupported
	case merklize.KindInvariant:
		return model.ErrInvariantViolation
	}
	return model.ErrInternal
}
