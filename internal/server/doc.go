// Package server runs the HTTP listener together with the background
// workers.
//
// It handles startup, stop signals (SIGINT, SIGTERM, SIGQUIT) and graceful
// shutdown: in-flight requests are drained first, then workers are stopped.
package server
