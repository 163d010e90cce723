package control

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fx/dsp/core"
)

// ErrUnknownParameter is returned for names that are not part of a Set.
var ErrUnknownParameter = errors.New("control: unknown parameter")

// ErrInvalidValue is returned for values that are not finite numbers.
var ErrInvalidValue = errors.New("control: invalid value")

// Parameter maps a user-facing control onto one chain node parameter.
// The node receives Value*Scale; a zero Scale means 1.
type Parameter struct {
	Name  string
	Node  string
	Key   string
	Min   float64
	Max   float64
	Step  float64
	Scale float64
	Value float64
}

// ChainValue returns the value as written to the chain node.
func (p Parameter) ChainValue() float64 {
	if p.Scale == 0 {
		return p.Value
	}

	return p.Value * p.Scale
}

func (p Parameter) clamp(v float64) float64 {
	return core.Clamp(v, p.Min, p.Max)
}

// Set is an ordered collection of parameters keyed by name.
type Set struct {
	order  []string
	byName map[string]*Parameter
}

// NewSet builds a Set. Initial values are clamped to each parameter's range.
func NewSet(params ...Parameter) (*Set, error) {
	s := &Set{byName: make(map[string]*Parameter, len(params))}

	for _, p := range params {
		if p.Name == "" {
			return nil, fmt.Errorf("control: parameter without name")
		}

		if _, dup := s.byName[p.Name]; dup {
			return nil, fmt.Errorf("control: duplicate parameter %q", p.Name)
		}

		if p.Min > p.Max {
			return nil, fmt.Errorf("control: parameter %q: min %v > max %v", p.Name, p.Min, p.Max)
		}

		p.Value = p.clamp(p.Value)
		s.byName[p.Name] = &p
		s.order = append(s.order, p.Name)
	}

	return s, nil
}

// Names returns parameter names in registration order.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}

// Get returns a copy of the named parameter.
func (s *Set) Get(name string) (Parameter, bool) {
	p, ok := s.byName[name]
	if !ok {
		return Parameter{}, false
	}

	return *p, true
}

// All returns copies of every parameter in registration order.
func (s *Set) All() []Parameter {
	out := make([]Parameter, len(s.order))
	for i, name := range s.order {
		out[i] = *s.byName[name]
	}

	return out
}

func (s *Set) validate(name string, v float64) error {
	if _, ok := s.byName[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%v", ErrInvalidValue, name, v)
	}

	return nil
}

// set clamps v and stores it, returning the updated parameter.
func (s *Set) set(name string, v float64) (Parameter, error) {
	if err := s.validate(name, v); err != nil {
		return Parameter{}, err
	}

	p := s.byName[name]
	p.Value = p.clamp(v)

	return *p, nil
}

// Compressor control names.
const (
	RatioControl = "RatioControl"
	Threshold    = "Threshold"
	AttackTime   = "AttackTime"
	ReleaseTime  = "ReleaseTime"
)

// CompressorParameters returns the four compressor controls for the
// compressor chain node with the given id. The ratio control is a percentage
// of the compression ratio: 50 means output slope 0.5.
func CompressorParameters(node string) []Parameter {
	return []Parameter{
		{Name: RatioControl, Node: node, Key: "compressionRatio", Min: 10, Max: 100, Step: 1, Scale: 0.01, Value: 50},
		{Name: Threshold, Node: node, Key: "thresholdPercent", Min: 10, Max: 100, Step: 1, Value: 50},
		{Name: AttackTime, Node: node, Key: "attackMs", Min: 5, Max: 100, Step: 1, Value: 5},
		{Name: ReleaseTime, Node: node, Key: "releaseMs", Min: 10, Max: 1000, Step: 1, Value: 200},
	}
}
