package control

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ParamSetter receives parameter updates. *effectchain.Chain implements it.
type ParamSetter interface {
	SetParam(id, key string, value float64) error
}

// Update is one queued node parameter write.
type Update struct {
	Node  string
	Key   string
	Value float64
}

// Controller owns a Set and the queue of updates not yet applied to the
// audio path. All methods are safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	set     *Set
	pending []Update
}

// NewController returns a controller for set with every current value
// queued, so the first Drain brings the chain in line with the Set.
func NewController(set *Set) *Controller {
	c := &Controller{set: set}
	for _, p := range set.All() {
		c.pending = append(c.pending, updateFor(p))
	}

	return c
}

// Parameters returns a snapshot of all parameters.
func (c *Controller) Parameters() []Parameter {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.set.All()
}

// Submit validates and stores values, then queues the chain updates. Either
// every value is accepted or none is. The returned map holds the clamped
// values that were stored. Updates are queued in name order.
func (c *Controller) Submit(values map[string]float64) (map[string]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name, v := range values {
		if err := c.set.validate(name, v); err != nil {
			return nil, err
		}
	}

	accepted := make(map[string]float64, len(values))

	for _, name := range slices.Sorted(maps.Keys(values)) {
		p, err := c.set.set(name, values[name])
		if err != nil {
			return nil, err
		}

		accepted[name] = p.Value
		c.pending = append(c.pending, updateFor(p))
	}

	return accepted, nil
}

// Pending returns the number of queued updates.
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pending)
}

// Drain applies queued updates to every target in order and clears the
// queue. It is meant to run on the audio goroutine between blocks. Errors
// from individual writes are joined; the remaining updates still apply.
func (c *Controller) Drain(targets ...ParamSetter) error {
	c.mu.Lock()
	updates := c.pending
	c.pending = nil
	c.mu.Unlock()

	var errs []error

	for _, u := range updates {
		for _, t := range targets {
			if err := t.SetParam(u.Node, u.Key, u.Value); err != nil {
				errs = append(errs, fmt.Errorf("control: apply %s.%s: %w", u.Node, u.Key, err))
			}
		}
	}

	return errors.Join(errs...)
}

func updateFor(p Parameter) Update {
	return Update{Node: p.Node, Key: p.Key, Value: p.ChainValue()}
}
