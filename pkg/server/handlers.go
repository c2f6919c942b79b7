package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/helgeesch/captain-arro/pkg/errors"
	"github.com/helgeesch/captain-arro/pkg/pipeline"
	"github.com/helgeesch/captain-arro/pkg/store"
)

// DefaultSpeedPxPerSec applies when a generate request sets no speed.
const DefaultSpeedPxPerSec = 20.0

// handleGenerate renders a document from query parameters.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, hit, err := s.cfg.Runner.GenerateWithCacheInfo(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if opts.Deterministic() {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	} else {
		// Every render gets a fresh id suffix, so there is nothing stable
		// for intermediaries to keep.
		w.Header().Set("Cache-Control", "no-store")
	}
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// optionsFromRequest builds generation options from the URL pattern
// segment and query parameters. Parameters mirror the JSON option names.
func optionsFromRequest(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Pattern:     chi.URLParam(r, "pattern"),
		Color:       q.Get("color"),
		Direction:   q.Get("direction"),
		Orientation: q.Get("orientation"),
		Easing:      q.Get("easing"),
		IDSuffix:    q.Get("id_suffix"),
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"stroke_width", &opts.StrokeWidth},
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"count", &opts.Count},
	}
	for _, p := range ints {
		if v := q.Get(p.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidConfig, "parameter %s: %q is not an integer", p.name, v)
			}
			*p.dst = n
		}
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"speed_px_per_second", &opts.SpeedPxPerSec},
		{"duration_seconds", &opts.DurationSeconds},
		{"spotlight_size", &opts.SpotlightSize},
		{"path_extension", &opts.PathExtension},
		{"dim_opacity", &opts.DimOpacity},
		{"center_gap_ratio", &opts.CenterGapRatio},
	}
	for _, p := range floats {
		if v := q.Get(p.name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidConfig, "parameter %s: %q is not a number", p.name, v)
			}
			*p.dst = f
		}
	}

	opts.NoUniqueID = q.Get("no_unique_id") == "true"
	opts.Refresh = q.Get("refresh") == "true"

	if opts.SpeedPxPerSec == 0 && opts.DurationSeconds == 0 {
		opts.SpeedPxPerSec = DefaultSpeedPxPerSec
	}
	return opts, nil
}

// saveRequest is the POST /v1/arrows body.
type saveRequest struct {
	Name    string           `json:"name"`
	Options pipeline.Options `json:"options"`
}

// handleSave generates and persists a named arrow.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Store == nil {
		writeError(w, errors.New(errors.ErrCodeStoreUnavailable, "no store configured"))
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode request body"))
		return
	}

	if req.Options.SpeedPxPerSec == 0 && req.Options.DurationSeconds == 0 {
		req.Options.SpeedPxPerSec = DefaultSpeedPxPerSec
	}
	doc, err := s.cfg.Runner.Generate(r.Context(), req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	now := time.Now().UTC()
	rec := &store.Record{
		Name:      req.Name,
		Options:   req.Options,
		SVG:       doc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cfg.Store.Put(r.Context(), rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Store == nil {
		writeError(w, errors.New(errors.ErrCodeStoreUnavailable, "no store configured"))
		return
	}
	records, err := s.cfg.Store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []*store.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetSaved(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Store == nil {
		writeError(w, errors.New(errors.ErrCodeStoreUnavailable, "no store configured"))
		return
	}
	rec, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	// Content negotiation: svg format re-renders from the stored options.
	// The saved document froze one id suffix at save time; a fresh render
	// lets the same arrow embed on a page any number of times.
	if r.URL.Query().Get("format") == "svg" {
		doc, err := s.cfg.Runner.Generate(r.Context(), rec.Options)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteSaved(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Store == nil {
		writeError(w, errors.New(errors.ErrCodeStoreUnavailable, "no store configured"))
		return
	}
	if err := s.cfg.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError maps structured error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	body.Error.Message = errors.UserMessage(err)
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	writeJSON(w, statusForCode(errors.GetCode(err)), body)
}

func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidSpeed,
		errors.ErrCodeInvalidDirection, errors.ErrCodeInvalidOrientation,
		errors.ErrCodeInvalidPattern, errors.ErrCodeInvalidPreset,
		errors.ErrCodeInvalidName:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeArrowNotFound, errors.ErrCodePresetNotFound:
		return http.StatusNotFound
	case errors.ErrCodeCacheUnavailable, errors.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
