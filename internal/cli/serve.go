package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helgeesch/captain-arro/pkg/cache"
	"github.com/helgeesch/captain-arro/pkg/pipeline"
	"github.com/helgeesch/captain-arro/pkg/server"
	"github.com/helgeesch/captain-arro/pkg/store"
)

// Cache backends selectable with --cache.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Store backends selectable with --store.
const (
	storeBackendFile  = "file"
	storeBackendMongo = "mongo"
	storeBackendNone  = "none"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	cache     string // cache backend: file, redis, none
	redisAddr string // redis address for --cache redis
	store     string // store backend: file, mongo, none
	storeDir  string // directory for --store file (empty for default)
	mongoURI  string // connection URI for --store mongo
}

// serveCommand creates the serve command for running the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:  ":8080",
		cache: cacheBackendFile,
		store: storeBackendFile,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP generation service",
		Long: `Serve arrows over HTTP.

GET /v1/arrows/{pattern} renders a document from query parameters; the
saved-arrow routes under /v1/arrows persist named configurations in the
configured store. Rendered documents are cached per the --cache backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.cache, "cache", opts.cache, "cache backend: file, redis, none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "redis address (default localhost:6379)")
	cmd.Flags().StringVar(&opts.store, "store", opts.store, "store backend: file, mongo, none")
	cmd.Flags().StringVar(&opts.storeDir, "store-dir", "", "saved-arrow directory for the file store")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "mongodb URI (default mongodb://localhost:27017)")

	return cmd
}

// runServe wires the cache, store, and runner into the HTTP server and
// serves until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	docCache, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}

	st, err := serveStore(ctx, opts)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close(context.Background())
	}

	runner := pipeline.NewRunner(docCache, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   opts.addr,
		Runner: runner,
		Store:  st,
		Logger: c.Logger,
	})

	printInfo("Serving on %s", opts.addr)
	printDetail("cache: %s, store: %s", opts.cache, opts.store)
	return srv.Start(ctx)
}

// serveCache builds the document cache for the selected backend.
func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.cache {
	case cacheBackendNone:
		return cache.NewNullCache(), nil
	case cacheBackendRedis:
		spin := newSpinnerWithContext(ctx, "Connecting to redis...")
		spin.Start()
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
		spin.Stop()
		if err != nil {
			return nil, err
		}
		return rc, nil
	case cacheBackendFile:
		return newCache(false)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (valid: file, redis, none)", opts.cache)
	}
}

// serveStore builds the saved-arrow store for the selected backend.
// A nil store disables the saved-arrow routes.
func serveStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	switch opts.store {
	case storeBackendNone:
		return nil, nil
	case storeBackendMongo:
		spin := newSpinnerWithContext(ctx, "Connecting to mongodb...")
		spin.Start()
		ms, err := store.NewMongoStore(ctx, store.MongoConfig{URI: opts.mongoURI})
		spin.Stop()
		if err != nil {
			return nil, err
		}
		return ms, nil
	case storeBackendFile:
		fs, err := store.NewFileStore(opts.storeDir)
		if err != nil {
			return nil, err
		}
		return fs, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (valid: file, mongo, none)", opts.store)
	}
}
