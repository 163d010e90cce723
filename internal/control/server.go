package control

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "control")

const maxBodyBytes = 1 << 16

// Descriptor is the wire form of one parameter.
type Descriptor struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Value float64 `json:"value"`
	Step  float64 `json:"step"`
}

// Status is the body of GET /status.
type Status struct {
	CompressorActive bool `json:"compressorActive"`
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithStatus sets the function reporting whether the compressor is
// currently engaged, typically (*dynamics.StereoLink).Engaged.
func WithStatus(active func() bool) ServerOption {
	return func(s *Server) { s.active = active }
}

// Server serves the control endpoints for a Controller.
type Server struct {
	ctrl   *Controller
	active func() bool
	mux    *http.ServeMux
}

// NewServer returns a Server for ctrl.
func NewServer(ctrl *Controller, opts ...ServerOption) *Server {
	s := &Server{
		ctrl:   ctrl,
		active: func() bool { return false },
		mux:    http.NewServeMux(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.mux.HandleFunc("GET /service", s.handleGetService)
	s.mux.HandleFunc("POST /service", s.handlePostService)
	s.mux.HandleFunc("GET /status", s.handleStatus)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleGetService(w http.ResponseWriter, _ *http.Request) {
	params := s.ctrl.Parameters()

	out := make(map[string]Descriptor, len(params))
	for _, p := range params {
		out[p.Name] = Descriptor{Min: p.Min, Max: p.Max, Value: p.Value, Step: p.Step}
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePostService(w http.ResponseWriter, r *http.Request) {
	values, err := decodeValues(io.LimitReader(r.Body, maxBodyBytes))
	if err == nil {
		values, err = s.ctrl.Submit(values)
	}

	if err != nil {
		log.WithError(err).WithField("remote", r.RemoteAddr).Warn("rejected parameter update")
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	log.WithFields(logrus.Fields{
		"remote": r.RemoteAddr,
		"values": values,
	}).Info("queued parameter update")

	writeJSON(w, http.StatusOK, values)
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Status{CompressorActive: s.active()})
}

// decodeValues reads a JSON object whose members are numbers or strings
// holding numbers, as sent by HTML form serialisation.
func decodeValues(r io.Reader) (map[string]float64, error) {
	var raw map[string]json.RawMessage

	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: body: %w", ErrInvalidValue, err)
	}

	values := make(map[string]float64, len(raw))

	for name, msg := range raw {
		v, err := parseValue(msg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
		}

		values[name] = v
	}

	return values, nil
}

func parseValue(msg json.RawMessage) (float64, error) {
	var num float64
	if err := json.Unmarshal(msg, &num); err == nil {
		return num, nil
	}

	var str string
	if err := json.Unmarshal(msg, &str); err != nil {
		return 0, errors.New("not a number or numeric string")
	}

	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("write response")
	}
}
