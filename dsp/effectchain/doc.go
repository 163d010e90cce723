// Package effectchain builds ordered chains of effects from a JSON document.
//
// A chain document lists nodes in processing order:
//
//	{"nodes": [
//	  {"id": "drive", "type": "distortion", "params": {"clipThreshold": 4000}},
//	  {"id": "echo", "type": "delay", "bypassed": true, "params": {"durationMs": 350}}
//	]}
//
// Each node type maps to a Factory in a Registry. A factory builds a Runtime,
// which owns one effect and applies node parameters to it. Reloading a
// document keeps the runtime, and with it the effect's running state, of
// every node whose id and type are unchanged.
package effectchain
