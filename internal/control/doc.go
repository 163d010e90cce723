// Package control exposes chain parameters to a remote client.
//
// Parameters are described by [Parameter] values grouped in a [Set]. A
// [Controller] validates incoming values on the caller's goroutine and queues
// them; the audio goroutine applies the queue between blocks with
// [Controller.Drain]. [Server] serves the JSON endpoints:
//
//	GET  /service  parameter descriptors {"name":{"min","max","value","step"}}
//	POST /service  {"name": value, ...} with numbers or numeric strings
//	GET  /status   {"compressorActive": bool}
package control
