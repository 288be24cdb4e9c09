package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/generate"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/trace"
)

var errTooLarge = errors.New("input too large")

// inputRequest is either literal values or a generator request. Values win
// when both are present.
type inputRequest struct {
	Values []int           `json:"values,omitempty"`
	Kind   string          `json:"kind,omitempty"`
	Size   int             `json:"size,omitempty"`
	Seed   int64           `json:"seed,omitempty"`
	Params generate.Params `json:"params"`
}

type traceRequest struct {
	Algorithm string       `json:"algorithm"`
	Input     inputRequest `json:"input"`
	Seed      int64        `json:"seed,omitempty"`
}

type traceResponse struct {
	Algorithm algorithms.ID      `json:"algorithm"`
	Name      string             `json:"name"`
	Input     trace.Array        `json:"input"`
	Frames    trace.Trace        `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
	Converged bool               `json:"converged"`
	FellBack  bool               `json:"fellBack,omitempty"`
}

type compareRequest struct {
	Algorithms []string     `json:"algorithms"`
	Input      inputRequest `json:"input"`
	Seed       int64        `json:"seed,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, algorithms.ErrUnknownAlgorithm):
		return http.StatusNotFound
	case errors.Is(err, algorithms.ErrNegativeKey):
		return http.StatusUnprocessableEntity
	case errors.Is(err, generate.ErrUnknownKind), errors.Is(err, errTooLarge), errors.Is(err, config.ErrValueTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (s *Server) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, algorithms.Catalog())
}

func (s *Server) getAlgorithm(w http.ResponseWriter, r *http.Request) {
	d, err := algorithms.Lookup(algorithms.ID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) listGenerators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, generate.Kinds)
}

// resolveInput bounds both the length and the magnitude of the input.
func (s *Server) resolveInput(in inputRequest) (trace.Array, error) {
	arr, err := s.buildInput(in)
	if err != nil {
		return nil, err
	}
	if err := config.CheckValues(arr.Values(), s.cfg.MaxValue); err != nil {
		return nil, err
	}
	return arr, nil
}

func (s *Server) buildInput(in inputRequest) (trace.Array, error) {
	if len(in.Values) > 0 {
		if len(in.Values) > s.cfg.MaxSize {
			return nil, fmt.Errorf("%w: %d values, limit %d", errTooLarge, len(in.Values), s.cfg.MaxSize)
		}
		return trace.FromValues(in.Values), nil
	}

	kind := generate.Random
	if in.Kind != "" {
		k, err := generate.ParseKind(in.Kind)
		if err != nil {
			return nil, err
		}
		kind = k
	}
	size := in.Size
	if size == 0 {
		size = config.DefaultSize
	}
	if size > s.cfg.MaxSize || len(in.Params.Values) > s.cfg.MaxSize {
		return nil, fmt.Errorf("%w: size %d, limit %d", errTooLarge, size, s.cfg.MaxSize)
	}
	return generate.New(in.Seed).Generate(kind, size, in.Params)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	arr, err := s.resolveInput(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, arr)
}

func wantsFallback(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("fallback"))
	return err == nil && v
}

func (s *Server) trace(w http.ResponseWriter, r *http.Request) {
	var req traceRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	d, err := algorithms.Lookup(algorithms.ID(req.Algorithm))
	fellBack := false
	if err != nil {
		if !wantsFallback(r) {
			writeError(w, statusFor(err), err)
			return
		}
		d, _ = algorithms.Resolve(algorithms.ID(req.Algorithm))
		fellBack = true
		s.logger.Warn("unknown algorithm, falling back", "requested", req.Algorithm, "using", d.ID)
	}

	input, err := s.resolveInput(req.Input)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	var rng *rand.Rand
	if req.Seed != 0 {
		rng = rand.New(rand.NewSource(req.Seed))
	}
	t, err := d.Trace(input, rng)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, traceResponse{
		Algorithm: d.ID,
		Name:      d.Name,
		Input:     input,
		Frames:    t,
		Metrics:   metrics.Collect(t, metrics.Standard()...),
		Converged: t.Converged(),
		FellBack:  fellBack,
	})
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Algorithms) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("no algorithms given"))
		return
	}

	ids := make([]algorithms.ID, len(req.Algorithms))
	for i, a := range req.Algorithms {
		ids[i] = algorithms.ID(a)
	}

	input, err := s.resolveInput(req.Input)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	results, err := experiment.Compare(r.Context(), ids, input, req.Seed)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	out := make([]traceResponse, len(results))
	for i, res := range results {
		d, _ := algorithms.Lookup(res.Algorithm)
		out[i] = traceResponse{
			Algorithm: res.Algorithm,
			Name:      d.Name,
			Input:     res.Input,
			Frames:    res.Trace,
			Metrics:   res.Metrics,
			Converged: res.Converged,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
