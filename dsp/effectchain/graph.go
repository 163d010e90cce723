package effectchain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// graphNode is a JSON-serializable node in the chain document.
type graphNode struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Bypassed bool   `json:"bypassed,omitempty"`
	Params   any    `json:"params,omitempty"`
}

// graphState is the root JSON structure for the chain document.
type graphState struct {
	Nodes []graphNode `json:"nodes"`
}

// parseGraph parses the JSON chain document into node parameters in
// document order. Nodes without id or type are dropped. An empty string
// yields an empty chain.
func parseGraph(raw string) ([]Params, error) {
	if raw == "" {
		return nil, nil
	}

	var state graphState

	err := json.Unmarshal([]byte(raw), &state)
	if err != nil {
		return nil, fmt.Errorf("effectchain: invalid chain json: %w", err)
	}

	seen := make(map[string]struct{}, len(state.Nodes))
	nodes := make([]Params, 0, len(state.Nodes))

	for _, n := range state.Nodes {
		if n.ID == "" || n.Type == "" {
			continue
		}

		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("effectchain: %w: %s", ErrDuplicateNode, n.ID)
		}

		seen[n.ID] = struct{}{}

		num, str := parseNodeParams(n.Params)
		nodes = append(nodes, Params{
			ID:       n.ID,
			Type:     n.Type,
			Bypassed: n.Bypassed,
			Num:      num,
			Str:      str,
		})
	}

	return nodes, nil
}

// encodeGraph renders node parameters as a chain document.
func encodeGraph(nodes []Params) ([]byte, error) {
	state := graphState{Nodes: make([]graphNode, 0, len(nodes))}

	for _, p := range nodes {
		params := make(map[string]any, len(p.Num)+len(p.Str))
		for k, v := range p.Num {
			params[k] = v
		}

		for k, v := range p.Str {
			params[k] = v
		}

		node := graphNode{ID: p.ID, Type: p.Type, Bypassed: p.Bypassed}
		if len(params) > 0 {
			node.Params = params
		}

		state.Nodes = append(state.Nodes, node)
	}

	return json.MarshalIndent(state, "", "  ")
}

// parseNodeParams extracts numeric and string parameters from a raw JSON
// params value. Strings that parse as numbers are stored as both.
func parseNodeParams(raw any) (map[string]float64, map[string]string) {
	num := map[string]float64{}
	str := map[string]string{}

	params, ok := raw.(map[string]any)
	if !ok || params == nil {
		return num, str
	}

	for k, v := range params {
		switch t := v.(type) {
		case float64:
			num[k] = t
		case string:
			str[k] = t
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				num[k] = f
			}
		case bool:
			if t {
				num[k] = 1
			} else {
				num[k] = 0
			}
		}
	}

	return num, str
}
