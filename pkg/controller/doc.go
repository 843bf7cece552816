// Package controller contains the HTTP middleware and handlers of the debug
// listener that runs next to a scan.
//
//   - WithLogger: tags each request with an ID, attaches the scan's logger to
//     the request context and logs the outcome of the request.
//   - PprofMux: exposes net/http/pprof under /debug/pprof/.
package controller
