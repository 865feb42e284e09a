// Package http implements the REST and websocket surface of the statement
// feed server.
//
// Every route under /api/companies/{companyID} requires a bearer token whose
// subject is that company. List responses are compressed when the client
// asks for it; the status stream is a plain websocket that carries one JSON
// frame per status change.
package http
