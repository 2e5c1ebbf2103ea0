package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/crmdash/internal/logging"
	"github.com/dmitrijs2005/crmdash/internal/server/details"
	"github.com/dmitrijs2005/crmdash/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type userSvc interface {
	Login(ctx context.Context, email, password string) (*users.User, error)
}

type detailsSvc interface {
	Get(ctx context.Context, email string) (*details.Record, error)
	Upsert(ctx context.Context, in details.Details) (*details.Record, details.Outcome, error)
}

type HTTPServer struct {
	address      string
	logger       logging.Logger
	users        userSvc
	details      detailsSvc
	static       http.Handler
	maxBodyBytes int64
}

func NewHTTPServer(a string, l logging.Logger, us userSvc, ds detailsSvc, static http.Handler, maxBodyBytes int64) (*HTTPServer, error) {
	if maxBodyBytes <= 0 {
		return nil, errors.New("max body size must be positive")
	}
	return &HTTPServer{
		address:      a,
		logger:       l.With("module", "http_server"),
		users:        us,
		details:      ds,
		static:       static,
		maxBodyBytes: maxBodyBytes,
	}, nil
}

// Handler returns the full routing tree with middleware applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", s.handle(s.login))
	mux.HandleFunc("GET /api/details", s.handle(s.getDetails))
	mux.HandleFunc("POST /api/details", s.handle(s.upsertDetails))
	mux.HandleFunc("/api/", s.handle(s.apiNotFound))
	mux.Handle("/", s.static)

	return s.withRequestID(s.withAccessLog(s.withRecover(mux)))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn(ctx, "graceful shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-stopped
	return nil
}
