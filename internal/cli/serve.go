package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ainkit/ainviz/internal/server"
	"github.com/ainkit/ainviz/pkg/cache"
	"github.com/ainkit/ainviz/pkg/pipeline"
	"github.com/ainkit/ainviz/pkg/store"
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
		Short: "Run the ainviz HTTP API server",
		Long: `Run the ainviz HTTP API server.

Without --mongo-uri, documents are held in memory and lost on restart.
Without --redis, rendered artifacts are cached in the local file cache.
Flags override the corresponding config file settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if redisAddr == "" {
				redisAddr = c.Config.Redis.Addr
			}
			if mongoURI == "" {
				mongoURI = c.Config.Mongo.URI
			}

			var (
				cc  cache.Cache
				err error
			)
			switch {
			case noCache:
				cc = cache.NewNullCache()
			case redisAddr != "":
				cc, err = cache.NewRedisCache(ctx, cache.RedisConfig{
					Addr:     redisAddr,
					Password: c.Config.Redis.Password,
					DB:       c.Config.Redis.DB,
				})
				if err != nil {
					return fmt.Errorf("connect redis: %w", err)
				}
				c.Logger.Info("using redis cache", "addr", redisAddr)
			default:
				cc, err = c.newCache(false)
				if err != nil {
					return fmt.Errorf("initialize cache: %w", err)
				}
			}
			defer cc.Close()

			var st store.Store
			if mongoURI != "" {
				ms, err := store.NewMongoStore(ctx, store.MongoConfig{
					URI:      mongoURI,
					Database: c.Config.Mongo.Database,
				})
				if err != nil {
					return fmt.Errorf("connect mongodb: %w", err)
				}
				defer ms.Close(ctx)
				st = ms
				c.Logger.Info("using mongodb store", "uri", mongoURI)
			} else {
				st = store.NewMemStore()
				c.Logger.Warn("using in-memory store; documents are lost on restart")
			}

			srv := server.New(server.Config{
				Addr:   addr,
				Store:  st,
				Runner: pipeline.NewRunner(cc, c.Logger),
				Logger: c.Logger,
			})
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the artifact cache (host:port)")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "mongodb connection URI for the document store")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}
