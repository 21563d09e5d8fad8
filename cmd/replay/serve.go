package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/replay"
	"github.com/discochess/replay/game"
	"github.com/discochess/replay/internal/library"
	statsprom "github.com/discochess/replay/internal/stats/prometheus"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve replays over HTTP as JSON",
	Long: `Serve replay generation over HTTP.

Endpoints:
  POST /api/replays       generate frames for the record in the request body
  GET  /api/replays/{id}  generate frames for a library entry
  GET  /healthz           liveness check
  GET  /metrics           Prometheus metrics`,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config serve.addr)")
	rootCmd.AddCommand(serveCmd)
}

// server holds the serve command's long-lived dependencies.
type server struct {
	gen    *replay.Generator
	lib    *library.Library
	logger *zap.Logger
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = configValue("serve.addr")
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	registry := prometheus.NewRegistry()
	collector, err := statsprom.New(registry)
	if err != nil {
		return fmt.Errorf("creating stats collector: %w", err)
	}

	gen, err := replay.New(
		replay.WithLogger(logger.Named("replay")),
		replay.WithStats(collector),
		replay.WithCacheSize(256),
	)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	s := &server{gen: gen, lib: lib, logger: logger}

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/replays", s.handleGenerate).Methods(http.MethodPost)
	api.HandleFunc("/replays/{id}", s.handleGetByID).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handlers.LoggingHandler(os.Stdout, router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving replays", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// generateRequest is the POST /api/replays body.
type generateRequest struct {
	Record string `json:"record"`
}

// replayResponse is the JSON form of a generated replay.
type replayResponse struct {
	Start       string          `json:"start"`
	ActiveColor string          `json:"activeColor"`
	Frames      []frameResponse `json:"frames"`
	Failed      []int           `json:"failed,omitempty"`
}

type frameResponse struct {
	Ply   int           `json:"ply"`
	Token string        `json:"token"`
	Board string        `json:"board"`
	Move  *moveResponse `json:"move,omitempty"`
}

type moveResponse struct {
	From      string        `json:"from"`
	To        string        `json:"to"`
	Piece     string        `json:"piece"`
	Secondary *moveResponse `json:"secondary,omitempty"`
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Record == "" {
		http.Error(w, "missing record", http.StatusBadRequest)
		return
	}
	s.respondReplay(w, req.Record)
}

func (s *server) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	entry, err := s.lib.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			http.Error(w, "replay not found", http.StatusNotFound)
			return
		}
		s.logger.Error("loading library entry", zap.String("id", id), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.respondReplay(w, entry.Record)
}

func (s *server) respondReplay(w http.ResponseWriter, record string) {
	rep, err := s.gen.Generate(record)
	if err != nil {
		http.Error(w, fmt.Sprintf("malformed record: %v", err), http.StatusUnprocessableEntity)
		return
	}

	resp := replayResponse{
		Start:       rep.Record.Position.EncodeBoard(),
		ActiveColor: rep.Record.ActiveColor.String(),
		Frames:      make([]frameResponse, len(rep.Frames)),
		Failed:      rep.Failed(),
	}
	for i, frame := range rep.Frames {
		resp.Frames[i] = frameResponse{
			Ply:   frame.Ply,
			Token: frame.Token,
			Board: frame.Position.EncodeBoard(),
			Move:  moveJSON(frame.Move),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func moveJSON(d *game.MoveDetail) *moveResponse {
	if d == nil {
		return nil
	}
	resp := &moveResponse{
		From:  d.From.String(),
		To:    d.To.String(),
		Piece: d.Piece.String(),
	}
	if d.Secondary != nil {
		resp.Secondary = &moveResponse{
			From:  d.Secondary.From.String(),
			To:    d.Secondary.To.String(),
			Piece: d.Secondary.Piece.String(),
		}
	}
	return resp
}
