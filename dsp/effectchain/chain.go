package effectchain

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/effects"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownEffect is returned when a node references an unregistered effect type.
	ErrUnknownEffect = errors.New("unknown effect type")
	// ErrUnknownNode is returned when a node id is not part of the chain.
	ErrUnknownNode = errors.New("unknown node")
	// ErrDuplicateNode is returned when two nodes share an id.
	ErrDuplicateNode = errors.New("duplicate node id")
)

var log = logrus.WithField("component", "effectchain")

type nodeRuntime struct {
	params  Params
	runtime Runtime
}

// Chain runs a sequence of effects in order. Every node owns its effect;
// a sample passes through each active node in turn.
//
// A Chain is not safe for concurrent use. Parameter changes coming from
// another goroutine should be queued and applied between blocks.
type Chain struct {
	ctx      Context
	registry *Registry

	order []*nodeRuntime
	byID  map[string]*nodeRuntime
}

// New creates an empty Chain with the given context and registry. A nil
// registry is replaced by DefaultRegistry().
func New(ctx Context, registry *Registry) *Chain {
	if registry == nil {
		registry = DefaultRegistry()
	}

	return &Chain{
		ctx:      ctx,
		registry: registry,
		byID:     make(map[string]*nodeRuntime),
	}
}

// Context returns the current chain context.
func (c *Chain) Context() Context {
	return c.ctx
}

// SetContext updates the chain context and reconfigures every node, e.g.
// after a sample rate change.
func (c *Chain) SetContext(ctx Context) error {
	c.ctx = ctx

	for _, n := range c.order {
		err := n.runtime.Configure(ctx, n.params)
		if err != nil {
			return fmt.Errorf("effectchain: configure node %q (%s): %w", n.params.ID, n.params.Type, err)
		}
	}

	return nil
}

// LoadGraph parses a JSON chain document and synchronizes node runtimes.
// Nodes keep their runtime when id and type are unchanged; nodes missing from
// the document are dropped. Unknown effect types are skipped with a warning.
// An empty string clears the chain.
func (c *Chain) LoadGraph(jsonGraph string) error {
	nodes, err := parseGraph(jsonGraph)
	if err != nil {
		return err
	}

	order := make([]*nodeRuntime, 0, len(nodes))
	byID := make(map[string]*nodeRuntime, len(nodes))

	for _, p := range nodes {
		n := c.byID[p.ID]
		if n == nil || n.params.Type != p.Type {
			rt, err := c.registry.New(c.ctx, p.Type)
			if err != nil {
				if errors.Is(err, ErrUnknownEffect) {
					log.WithFields(logrus.Fields{"node": p.ID, "type": p.Type}).Warn("skipping node with unknown effect type")
					continue
				}

				return err
			}

			log.WithFields(logrus.Fields{"node": p.ID, "type": p.Type}).Debug("created node")

			n = &nodeRuntime{runtime: rt}
		}

		n.params = p

		err := c.configure(n)
		if err != nil {
			return err
		}

		order = append(order, n)
		byID[p.ID] = n
	}

	c.order = order
	c.byID = byID
	c.renumber()

	return nil
}

// MarshalGraph renders the chain's current node parameters as a chain
// document. Nodes added with Append carry no parameters.
func (c *Chain) MarshalGraph() ([]byte, error) {
	nodes := make([]Params, len(c.order))
	for i, n := range c.order {
		nodes[i] = n.params
	}

	return encodeGraph(nodes)
}

// Append adds an already constructed effect as the last node. Its parameters
// stay under the caller's control; only "bypassed" can be set through the
// chain.
func (c *Chain) Append(id string, effect effects.Effect) error {
	if id == "" {
		return errors.New("effectchain: empty node id")
	}

	if effect == nil {
		return fmt.Errorf("effectchain: nil effect for node %q", id)
	}

	if _, exists := c.byID[id]; exists {
		return fmt.Errorf("effectchain: %w: %s", ErrDuplicateNode, id)
	}

	n := &nodeRuntime{
		params:  Params{ID: id, Type: externalNodeType, Bypassed: !effect.Active()},
		runtime: &externalRuntime{fx: effect},
	}

	c.order = append(c.order, n)
	c.byID[id] = n
	c.renumber()

	return nil
}

// Len returns the number of nodes.
func (c *Chain) Len() int {
	return len(c.order)
}

// IDs returns the node ids in processing order.
func (c *Chain) IDs() []string {
	ids := make([]string, len(c.order))
	for i, n := range c.order {
		ids[i] = n.params.ID
	}

	return ids
}

// Node returns the effect owned by a node.
func (c *Chain) Node(id string) (effects.Effect, bool) {
	n, ok := c.byID[id]
	if !ok {
		return nil, false
	}

	return n.runtime.Effect(), true
}

// Params returns a copy of a node's current parameters.
func (c *Chain) Params(id string) (Params, error) {
	n, ok := c.byID[id]
	if !ok {
		return Params{}, fmt.Errorf("effectchain: %w: %s", ErrUnknownNode, id)
	}

	return n.params.Clone(), nil
}

// SetParam sets one parameter of a node and reconfigures it. The key
// "bypassed" switches the node off for any non-zero value.
func (c *Chain) SetParam(id, key string, value float64) error {
	n, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("effectchain: %w: %s", ErrUnknownNode, id)
	}

	if key == bypassedKey {
		n.params.Bypassed = value != 0
	} else {
		n.params = n.params.With(key, value)

		if a, ok := n.runtime.(paramAliaser); ok {
			for _, alias := range a.paramAliases(key) {
				delete(n.params.Num, alias)
			}
		}
	}

	return c.configure(n)
}

// Process runs one sample through every node.
func (c *Chain) Process(sample core.Sample) core.Sample {
	for _, n := range c.order {
		sample = n.runtime.Effect().Process(sample)
	}

	return sample
}

// ProcessInPlace runs a block through the chain sample by sample.
func (c *Chain) ProcessInPlace(buf []core.Sample) {
	for i, s := range buf {
		buf[i] = c.Process(s)
	}
}

// Reset clears the running state of every node. Parameters are kept.
func (c *Chain) Reset() {
	for _, n := range c.order {
		effects.Reset(n.runtime.Effect())
	}
}

// Clone returns an independent chain with cloned effects and copied
// parameters, e.g. one chain per audio channel.
func (c *Chain) Clone() *Chain {
	clone := &Chain{
		ctx:      c.ctx,
		registry: c.registry,
		order:    make([]*nodeRuntime, len(c.order)),
		byID:     make(map[string]*nodeRuntime, len(c.order)),
	}

	for i, n := range c.order {
		cn := &nodeRuntime{params: n.params.Clone(), runtime: n.runtime.Clone()}
		clone.order[i] = cn
		clone.byID[cn.params.ID] = cn
	}

	return clone
}

func (c *Chain) configure(n *nodeRuntime) error {
	err := n.runtime.Configure(c.ctx, n.params)
	if err != nil {
		return fmt.Errorf("effectchain: configure node %q (%s): %w", n.params.ID, n.params.Type, err)
	}

	n.runtime.Effect().SetActive(!n.params.Bypassed)

	log.WithFields(logrus.Fields{
		"node":     n.params.ID,
		"type":     n.params.Type,
		"bypassed": n.params.Bypassed,
	}).Debug("configured node")

	return nil
}

// renumber tags every effect with its position in the chain.
func (c *Chain) renumber() {
	for i, n := range c.order {
		n.runtime.Effect().SetID(i)
	}
}
