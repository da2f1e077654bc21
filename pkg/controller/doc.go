// Package controller contains the HTTP middlewares shared by the API server.
//
// Provided middlewares:
//   - WithCORS: Answers cross-origin requests for a list of allowed origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Counts requests and records latency per route pattern.
package controller
