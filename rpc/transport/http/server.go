package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ValentinKolb/dShelf/rpc/common"
	"github.com/ValentinKolb/dShelf/rpc/transport"
	"github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"
	"github.com/lni/dragonboat/v4/logger"
	"golang.org/x/sync/errgroup"
)

var Logger = logger.GetLogger("transport/rpc")

// RequestIDHeader carries the id the server assigns to every request
const RequestIDHeader = "X-Request-Id"

// shutdownTimeout bounds the time in-flight requests get after cancellation
const shutdownTimeout = 5 * time.Second

func NewHttpServerTransport() transport.IRPCServerTransport {
	return &httpServerTransport{}
}

type httpServerTransport struct {
	handler transport.ServerHandleFunc
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCServerTransport)
// --------------------------------------------------------------------------

func (t *httpServerTransport) RegisterHandler(handler transport.ServerHandleFunc) {
	t.handler = handler
}

func (t *httpServerTransport) Listen(ctx context.Context, config common.ServerConfig) error {
	if t.handler == nil {
		return errors.New("http transport: no handler registered")
	}

	srv := &http.Server{
		Addr:              config.Endpoint,
		Handler:           NewHandler(t.handler, config),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if config.TimeoutSecond > 0 {
		srv.WriteTimeout = time.Duration(config.TimeoutSecond) * time.Second
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		Logger.Infof("Starting HTTP server on %s", config.Endpoint)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		Logger.Infof("Shutting down HTTP server on %s", config.Endpoint)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewHandler builds the HTTP routes of the shelf server around a handle func:
//
//	POST /{shelfId}  RPC request, body and response are serialized messages
//	GET  /healthz    liveness probe
//	GET  /metrics    prometheus metrics, only if enabled in the config
func NewHandler(handler transport.ServerHandleFunc, config common.ServerConfig) http.Handler {
	mux := http.NewServeMux()

	rpc := handleRequest(handler)
	if config.LogLevel == "debug" {
		rpc = loggerMiddleware(rpc)
	}
	mux.HandleFunc("POST /{shelfId}", requestIDMiddleware(rpc))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "ok\n")
	})

	if config.Metrics {
		mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {
			metrics.WritePrometheus(w, true)
		})
	}

	return mux
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// handleRequest handles incoming HTTP requests and writes the response to the writer
func handleRequest(handler transport.ServerHandleFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse shelfId from request
		shelfId, err := strconv.ParseUint(r.PathValue("shelfId"), 10, 64)

		// Check if shelfId is valid
		if err != nil {
			http.Error(w, "Invalid shelfId", http.StatusBadRequest)
			return
		}

		// Read request body
		body, err := io.ReadAll(r.Body)
		defer r.Body.Close()

		// Check if body could be read
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}

		// Call the handler
		resp := handler(shelfId, body)

		// Write response
		if _, err = w.Write(resp); err != nil {
			Logger.Errorf("Failed to write response: %v", err)
		}
	}
}

// --------------------------------------------------------------------------
// Middleware
// --------------------------------------------------------------------------

// requestIDMiddleware keeps the request id sent by the client or assigns a new one
func requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next(w, r)
	}
}

// responseWriter is a custom ResponseWriter that captures status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code before writing it
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// loggerMiddleware is a middleware that logs HTTP requests
func loggerMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create custom response writer to capture status code
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		// Process request
		next.ServeHTTP(rw, r)

		// Log the request
		Logger.Debugf("[%s] %s %s => %d took %s", r.Header.Get(RequestIDHeader), r.Method, r.URL.Path, rw.statusCode, time.Since(start))
	}
}
