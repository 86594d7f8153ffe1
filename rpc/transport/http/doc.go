// Package http implements the HTTP transport for dShelf RPC communication.
//
// Server routes:
//
//	POST /{shelfId}  serialized request in, serialized response out
//	GET  /healthz    plain "ok", for load balancers and container probes
//	GET  /metrics    prometheus metrics (VictoriaMetrics format), opt-in
//
// Every RPC request carries an X-Request-Id header. Clients generate one per
// call and reuse it across retries; the server keeps a valid id or assigns a
// new one and echoes it in the response. With log level "debug" the server
// logs every request with its id, status and duration.
//
// The client spreads requests round-robin over all configured endpoints and
// moves to the next endpoint on every retry. It is safe for concurrent use.
//
// Listen runs the server in an errgroup next to a watcher that shuts the
// server down gracefully once the context is cancelled.
package http
