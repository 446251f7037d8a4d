// Package server exposes the cleansing pipeline over HTTP. It is the
// "surrounding program": raw JSON records arrive in the request body, a
// strategy is selected per request, and validated records plus a run summary
// go back to the client. The core packages know nothing about HTTP.
//
// Routes:
//
//	POST /v1/cleanse?strategy=eager|optimized|stream
//	GET  /health
package server
