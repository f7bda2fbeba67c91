package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/clambin/remeha-exporter/internal/poller"
	"github.com/clambin/remeha-exporter/internal/remeha"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Lookup gives access to the last known state of appliances and zones.
type Lookup interface {
	GetItem(id string) (remeha.Item, bool)
	GetDeviceInfo(id string) (poller.DeviceInfo, bool)
}

type Health struct {
	poller.Poller
	Lookup  Lookup
	logger  *slog.Logger
	update  poller.Update
	updated bool
	lock    sync.RWMutex
}

func New(p poller.Poller, lookup Lookup, logger *slog.Logger) *Health {
	return &Health{
		Poller: p,
		Lookup: lookup,
		logger: logger,
	}
}

func (h *Health) Run(ctx context.Context) error {
	h.logger.Debug("started")
	defer h.logger.Debug("stopped")

	ch := h.Poller.Subscribe()
	defer h.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			h.lock.Lock()
			h.update = update
			h.updated = true
			h.lock.Unlock()
		}
	}
}

// Handler returns the HTTP handler for the health endpoint and the item & device lookups.
func (h *Health) Handler() http.Handler {
	r := mux.NewRouter()
	r.Handle("/health", h).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/items/{id}", h.getItem).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/devices/{id}", h.getDevice).Methods(http.MethodGet)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(h.logger.Handler(), slog.LevelError)),
	)(handlers.CompressHandler(r))
}

func (h *Health) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	if !h.updated {
		http.Error(w, "no update yet", http.StatusServiceUnavailable)
		h.Poller.Refresh()
		return
	}
	h.writeJSON(w, h.update)
}

func (h *Health) getItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, ok := h.Lookup.GetItem(id)
	if !ok {
		http.Error(w, "unknown id: "+id, http.StatusNotFound)
		return
	}
	h.writeJSON(w, item)
}

func (h *Health) getDevice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	info, ok := h.Lookup.GetDeviceInfo(id)
	if !ok {
		http.Error(w, "unknown id: "+id, http.StatusNotFound)
		return
	}
	h.writeJSON(w, info)
}

func (h *Health) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		h.logger.Error("failed to encode response", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
