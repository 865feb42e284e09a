// Package server runs the statement feed server: the HTTP listener and the
// background workers share one lifecycle, start together and shut down
// together on SIGTERM, SIGINT or SIGQUIT.
package server
