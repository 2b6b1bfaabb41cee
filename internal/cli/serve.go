package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fracnet/internal/api"
	"github.com/matzehuels/fracnet/pkg/cache"
	"github.com/matzehuels/fracnet/pkg/pipeline"
	"github.com/matzehuels/fracnet/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		mongoURI  string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the fracnet HTTP API",
		Long: `Run the fracnet HTTP API.

The server exposes scene storage and the modeling pipeline over HTTP. By
default scenes live in memory and pipeline results in the local file
cache; for multi-instance deployments point --redis at a shared cache
and --mongo at a scene database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pipelineCache, err := newServeCache(ctx, redisAddr, noCache)
			if err != nil {
				return err
			}

			var sceneStore store.Store
			if mongoURI != "" {
				mongoStore, err := store.NewMongoStore(ctx, store.MongoConfig{URI: mongoURI})
				if err != nil {
					return fmt.Errorf("connect scene store: %w", err)
				}
				defer mongoStore.Close(ctx)
				sceneStore = mongoStore
				c.Logger.Info("using mongodb scene store")
			} else {
				sceneStore = store.NewMemoryStore()
				c.Logger.Warn("using in-memory scene store, scenes are lost on restart")
			}

			runner := pipeline.NewRunner(pipelineCache, nil, c.Logger)
			defer runner.Close()

			srv := api.NewServer(api.Config{
				Runner: runner,
				Store:  sceneStore,
				Logger: c.Logger,
			})
			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared cache (host:port)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "mongodb connection string for the scene store")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// newServeCache selects the pipeline cache backend for the server: redis
// when an address is given, the local file cache otherwise.
func newServeCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
		if err != nil {
			return nil, fmt.Errorf("connect cache: %w", err)
		}
		return redisCache, nil
	}
	return newCache(false)
}
