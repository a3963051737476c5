// Package controller contains HTTP middlewares and helper handlers shared by
// the API server.
//
// Middlewares:
//   - CORS: allows the configured origins and answers OPTIONS preflights.
//   - WithLogger: attaches a request scoped logger and request ID to the context and logs access info.
//   - RateLimiter.Middleware: fixed window request limits per client IP.
//
// PprofMux exposes the net/http/pprof handlers below PprofPrefix.
package controller
