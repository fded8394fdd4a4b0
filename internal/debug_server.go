package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"room-bot/contract"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var _ contract.Worker = (*DebugServer)(nil)

type InspectRow struct {
	Key       string `json:"key"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	EntityID  string `json:"entity_id"`
	Namespace string `json:"namespace"`
	Detail    string `json:"detail"`
}

type RowMapper func(key string, val []byte) InspectRow

type PageData struct {
	Prefix string         `json:"prefix"`
	Items  []InspectRow   `json:"items"`
	Stats  map[string]any `json:"stats"`
}

// DebugServer exposes the archive and live stats over HTTP as JSON.
// /inspect?prefix=chat: lists archived keys, /stats the live counters.
type DebugServer struct {
	log    *slog.Logger
	db     *badger.DB
	port   int
	mapper RowMapper
	stats  contract.StatsProvider
}

func NewDebugServer(log *slog.Logger, db *badger.DB, port int, mapper RowMapper, stats contract.StatsProvider) *DebugServer {
	if mapper == nil {
		mapper = DefaultMapper
	}
	return &DebugServer{log: log, db: db, port: port, mapper: mapper, stats: stats}
}

func (s *DebugServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/inspect", s.inspect)
	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.currentStats())
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func (s *DebugServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("Starting debug server", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("debug server error: %w", err)
	}
	return ctx.Err()
}

func (s *DebugServer) inspect(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = "chat:"
	}
	data := PageData{Prefix: prefix, Items: []InspectRow{}, Stats: s.currentStats()}

	if s.db != nil {
		err := s.db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				if err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, s.mapper(string(item.Key()), val))
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			s.log.Error("Failed to scan archive", "prefix", prefix, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	writeJSON(w, data)
}

func (s *DebugServer) currentStats() map[string]any {
	if s.stats == nil {
		return map[string]any{}
	}
	return s.stats()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// DefaultMapper reads keys shaped as {type}:{room}:{unix nano}:{id}.
func DefaultMapper(key string, val []byte) InspectRow {
	parts := strings.Split(key, ":")
	row := InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Namespace: "default",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	if len(parts) >= 4 {
		row.Type = strings.ToUpper(parts[0])
		row.Namespace = parts[1]
		if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			row.Timestamp = time.Unix(0, tsNano).UTC().Format("15:04:05")
		}
		row.EntityID = parts[3]
		if len(row.EntityID) > 8 {
			row.EntityID = row.EntityID[:8]
		}
	}
	return row
}
