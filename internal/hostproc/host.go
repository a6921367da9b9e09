// Package hostproc binds the HTTP listener, routes simplification requests
// to the service adapter, and shuts the listener down cleanly on signal
// receipt. It is the only package that knows the wire transport is HTTP.
package hostproc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/polyforge/simplifyd/internal/service"
)

// Host binds a net/http listener and serves simplification requests on it.
// The standard net/http server may handle separate connections on separate
// goroutines; each request's engine work stays inside its own handler call,
// and the settings store guards itself with its own lock.
type Host struct {
	Log     *zap.Logger
	Adapter *service.Adapter
	Addr    string

	srv *http.Server
}

// New builds a Host bound to addr (host:port).
func New(log *zap.Logger, adapter *service.Adapter, addr string) *Host {
	return &Host{Log: log, Adapter: adapter, Addr: addr}
}

// Run serves until ctx is canceled or the process receives SIGINT/SIGTERM
// (Run installs that signal handler itself), then shuts the listener down
// gracefully, giving in-flight requests up to 10 seconds to finish.
func (h *Host) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/simplify", h.handleSimplify)
	mux.HandleFunc("/health", h.handleHealth)

	h.srv = &http.Server{
		Addr:    h.Addr,
		Handler: corsMiddleware(mux),
	}

	errCh := make(chan error, 1)
	go func() {
		h.Log.Info("listening", zap.String("addr", h.Addr))
		errCh <- h.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		h.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return h.srv.Shutdown(shutdownCtx)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Host) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

func (h *Host) handleSimplify(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.Log.Error("panic while handling request", zap.Any("panic", rec))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req service.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Warn("malformed request body", zap.Error(err))
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	clientID := r.Header.Get("X-Client-Id")
	resp, err := h.Adapter.Handle(clientID, req)
	if err != nil {
		status := statusForError(err)
		h.Log.Warn("request failed", zap.Error(err), zap.Int("status", status))
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// statusForError maps every core-originated failure — invalid input shape
// (service.ErrBadRequest: malformed rings, empty polygon list) and invalid
// tolerances (service.ErrInvalidTolerances) alike — to the internal-error
// status, per the spec's failure mapping. 400 is reserved for the separate,
// genuinely-out-of-scope case of the transport failing to decode the
// request body at all (handleSimplify, above).
func statusForError(err error) int {
	return http.StatusInternalServerError
}
