// Package server is the demo HTTP server that renders envelopes from the
// error table over gin or gorilla/mux.
package server
