package restserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/chandrakala/vedicclock/pkg/astro"
	"github.com/chandrakala/vedicclock/pkg/dayclock"
	"github.com/chandrakala/vedicclock/pkg/panchanga"
	"github.com/chandrakala/vedicclock/pkg/responseformat"
	"github.com/chandrakala/vedicclock/pkg/vedictime"
)

// Handlers contains all HTTP handlers for the REST server.
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a handlers instance.
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// GetSnapshot serves the latest computed snapshot. With time/lat/lon query
// parameters it computes a snapshot on demand instead, which is how clients
// explore other instants or observers.
func (h *Handlers) GetSnapshot(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	if query.Get("time") == "" && query.Get("lat") == "" && query.Get("lon") == "" {
		snap := h.controller.holder.Latest()
		if snap == nil {
			http.Error(w, "no snapshot computed yet", http.StatusServiceUnavailable)
			return
		}
		h.write(w, req, snap)
		return
	}

	at := time.Now().UTC()
	if ts := query.Get("time"); ts != "" {
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			http.Error(w, "invalid time parameter, expected RFC3339", http.StatusBadRequest)
			return
		}
		at = parsed
	}

	loc := vedictime.Location{
		Latitude:  h.controller.observer.Latitude,
		Longitude: h.controller.observer.Longitude,
	}
	if lat := query.Get("lat"); lat != "" {
		v, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			http.Error(w, "invalid lat parameter", http.StatusBadRequest)
			return
		}
		loc.Latitude = v
	}
	if lon := query.Get("lon"); lon != "" {
		v, err := strconv.ParseFloat(lon, 64)
		if err != nil {
			http.Error(w, "invalid lon parameter", http.StatusBadRequest)
			return
		}
		loc.Longitude = v
	}

	snap, err := vedictime.Compute(at, loc)
	if err != nil {
		status := http.StatusInternalServerError
		var ee *astro.EphemerisError
		switch {
		case errors.Is(err, vedictime.ErrInvalidLocation):
			status = http.StatusBadRequest
		case errors.As(err, &ee):
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	h.write(w, req, snap)
}

// referenceEntry is one row of a reference table response.
type referenceEntry struct {
	Number  int    `json:"number"`
	Name    string `json:"name"`
	Meaning string `json:"meaning,omitempty"`
}

// GetTithiNames serves the 30-entry tithi name table.
func (h *Handlers) GetTithiNames(w http.ResponseWriter, req *http.Request) {
	entries := make([]referenceEntry, len(panchanga.TithiNames))
	for i, name := range panchanga.TithiNames {
		entries[i] = referenceEntry{Number: i + 1, Name: name}
	}
	h.write(w, req, entries)
}

// GetNakshatraNames serves the 27-entry nakshatra name table.
func (h *Handlers) GetNakshatraNames(w http.ResponseWriter, req *http.Request) {
	entries := make([]referenceEntry, len(panchanga.NakshatraNames))
	for i, name := range panchanga.NakshatraNames {
		entries[i] = referenceEntry{Number: i + 1, Name: name}
	}
	h.write(w, req, entries)
}

// GetMasaNames serves the 12-entry masa name table.
func (h *Handlers) GetMasaNames(w http.ResponseWriter, req *http.Request) {
	entries := make([]referenceEntry, len(panchanga.MasaNames))
	for i, name := range panchanga.MasaNames {
		entries[i] = referenceEntry{Number: i + 1, Name: name}
	}
	h.write(w, req, entries)
}

// GetMuhurtaNames serves the 30-entry muhurta table with meanings.
func (h *Handlers) GetMuhurtaNames(w http.ResponseWriter, req *http.Request) {
	entries := make([]referenceEntry, len(dayclock.MuhurtaNames))
	for i, entry := range dayclock.MuhurtaNames {
		entries[i] = referenceEntry{Number: i + 1, Name: entry.Name, Meaning: entry.Meaning}
	}
	h.write(w, req, entries)
}

// GetHealth reports service liveness and whether a snapshot is available.
func (h *Handlers) GetHealth(w http.ResponseWriter, req *http.Request) {
	status := map[string]any{
		"status":        "ok",
		"snapshotReady": h.controller.holder.Latest() != nil,
		"observer":      h.controller.observer.Name,
	}
	h.write(w, req, status)
}

func (h *Handlers) write(w http.ResponseWriter, req *http.Request, data any) {
	if err := h.formatter.Write(w, req, data); err != nil {
		h.controller.logger.Errorf("error writing response: %v", err)
	}
}
