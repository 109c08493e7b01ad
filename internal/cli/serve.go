package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/doodle/pkg/cache"
	dooderr "github.com/matzehuels/doodle/pkg/errors"
	"github.com/matzehuels/doodle/pkg/observability"
	"github.com/matzehuels/doodle/pkg/pipeline"
	"github.com/matzehuels/doodle/pkg/pool"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string // listen address
	backend       string // cache backend: file, memory, redis, mongo, none
	redisAddr     string // redis host:port
	redisPassword string
	redisDB       int
	mongoURI      string
	mongoDatabase string
	scope         string // cache key prefix for shared backends
	theme         string // optional TOML theme applied to every tile
}

// serveCommand creates the serve command for the HTTP tile API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:          ":8080",
		backend:       "file",
		redisAddr:     "localhost:6379",
		mongoURI:      "mongodb://localhost:27017",
		mongoDatabase: appName,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve background tiles over HTTP",
		Long: `Serve background tiles over HTTP.

The server exposes a small JSON/SVG API:

  GET /healthz                   liveness probe
  GET /v1/variants               variant catalog
  GET /v1/tiles/{variant}        tile for a variant

Tile requests accept mode, size, scale, and format query parameters. The
composed element lists and serialized artifacts are cached in the selected
backend (file, memory, redis, mongo, or none).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.backend, "cache", opts.backend, "cache backend: file (default), memory, redis, mongo, none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "redis address (cache=redis)")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "redis password (cache=redis)")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database number (cache=redis)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "mongodb connection URI (cache=mongo)")
	cmd.Flags().StringVar(&opts.mongoDatabase, "mongo-db", opts.mongoDatabase, "mongodb database name (cache=mongo)")
	cmd.Flags().StringVar(&opts.scope, "cache-scope", "", "cache key prefix isolating this deployment on a shared backend")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file applied to every tile")

	return cmd
}

// runServe starts the HTTP server and blocks until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	store, err := newServeCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize cache backend %q: %w", opts.backend, err)
	}

	// Deployments sharing a Redis or Mongo backend keep their entries apart
	// via a key prefix.
	var keyer cache.Keyer
	if opts.scope != "" {
		keyer = cache.NewScopedKeyer(nil, opts.scope+":")
	}

	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newTileRouter(runner, opts.theme, c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr, "cache", opts.backend)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newServeCache builds the cache backend selected by --cache.
func newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch opts.backend {
	case "none":
		return cache.NewNullCache(), nil
	case "memory":
		return cache.NewMemoryCache(), nil
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	case "redis":
		c, err := cache.NewRedisCache(ctx, opts.redisAddr, opts.redisPassword, opts.redisDB)
		if err != nil {
			return nil, err
		}
		return cache.WithRetry(c), nil
	case "mongo":
		c, err := cache.NewMongoCache(ctx, opts.mongoURI, opts.mongoDatabase, "tiles")
		if err != nil {
			return nil, err
		}
		return cache.WithRetry(c), nil
	}
	return nil, fmt.Errorf("unknown cache backend: %s", opts.backend)
}

// =============================================================================
// Router
// =============================================================================

// tileContentTypes maps output formats to response content types.
var tileContentTypes = map[string]string{
	pipeline.FormatSVG:     "image/svg+xml; charset=utf-8",
	pipeline.FormatPNG:     "image/png",
	pipeline.FormatPDF:     "application/pdf",
	pipeline.FormatJSON:    "application/json",
	pipeline.FormatDataURI: "text/plain; charset=utf-8",
}

// newTileRouter builds the chi router serving the tile API.
func newTileRouter(runner *pipeline.Runner, themePath string, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware(logger))
	r.Use(observeMiddleware)

	r.Get("/healthz", handleHealth)
	r.Get("/v1/variants", handleVariants)
	r.Get("/v1/tiles/{variant}", handleTile(runner, themePath))

	return r
}

// requestIDMiddleware assigns each request a UUID, echoed in the
// X-Request-ID response header. A request-scoped logger carrying the ID is
// attached to the context for the handlers downstream.
func requestIDMiddleware(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := req.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set("X-Request-ID", id)

			ctx := withLogger(req.Context(), logger.With("request_id", id))
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// observeMiddleware reports request lifecycle events to the registered
// observability hooks.
func observeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		observability.HTTP().OnRequest(req.Context(), req.Method, req.URL.Path)
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, req)

		observability.HTTP().OnResponse(req.Context(), req.Method, req.URL.Path, sw.status, time.Since(start))
	})
}

// statusWriter captures the response status code for the hooks.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// handleHealth is the liveness probe.
func handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// variantInfo is one entry of the /v1/variants response.
type variantInfo struct {
	Name     string `json:"name"`
	Offset   int    `json:"offset"`
	Weight   int    `json:"weight"`
	PoolSize int    `json:"pool_size"`
}

// handleVariants returns the variant catalog.
func handleVariants(w http.ResponseWriter, req *http.Request) {
	var out []variantInfo
	for _, v := range pool.All() {
		out = append(out, variantInfo{
			Name:     string(v),
			Offset:   v.Offset(),
			Weight:   v.Weight(),
			PoolSize: len(pool.Build(v)),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleTile serves one tile in the requested format.
func handleTile(runner *pipeline.Runner, themePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()

		format := q.Get("format")
		if format == "" {
			format = pipeline.FormatSVG
		}

		opts := pipeline.Options{
			Variant:   chi.URLParam(req, "variant"),
			Mode:      q.Get("mode"),
			Formats:   []string{format},
			ThemePath: themePath,
		}
		if s := q.Get("size"); s != "" {
			size, err := strconv.Atoi(s)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid size: "+s)
				return
			}
			opts.TileSize = size
		}
		if s := q.Get("scale"); s != "" {
			scale, err := strconv.ParseFloat(s, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid scale: "+s)
				return
			}
			opts.Scale = scale
		}

		logger := loggerFromContext(req.Context())
		prog := newProgress(logger)

		result, err := runner.Execute(req.Context(), opts)
		if err != nil {
			status := http.StatusInternalServerError
			switch dooderr.GetCode(err) {
			case dooderr.ErrCodeInvalidVariant, dooderr.ErrCodeInvalidMode,
				dooderr.ErrCodeInvalidFormat, dooderr.ErrCodeInvalidInput:
				status = http.StatusBadRequest
			default:
				logger.Error("tile render failed", "variant", opts.Variant, "err", err)
			}
			writeError(w, status, dooderr.UserMessage(err))
			return
		}
		prog.done(fmt.Sprintf("Rendered %d elements as %s", result.Stats.ElementCount, format))

		w.Header().Set("Content-Type", tileContentTypes[format])
		w.Header().Set("ETag", `"`+result.ElementsHash+`"`)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[format])
	}
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
