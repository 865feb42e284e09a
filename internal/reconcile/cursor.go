// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

// EOF is the continuation token the server returns after the last page.
const EOF = "EOF"

// Cursor tracks the continuation token of one paginated stream.
//
// The zero value is a cursor that has never been advanced: it cannot fetch a
// next page until a first page stored a token through [Cursor.Advance].
type Cursor struct {
	token    string
	set      bool
	terminal bool
}

// Advance stores the token returned with the latest page. An empty token or
// [EOF] marks the stream as exhausted.
func (c *Cursor) Advance(token string) {
	c.token = token
	c.set = true
	c.terminal = IsTerminalToken(token)
}

// CanFetchNext reports whether a next page may be requested. In-flight
// tracking is up to the caller.
func (c *Cursor) CanFetchNext() bool {
	return c.set && !c.terminal
}

// Reset forgets the token and the terminal flag.
func (c *Cursor) Reset() {
	*c = Cursor{}
}

// Token returns the stored continuation token.
func (c *Cursor) Token() string {
	return c.token
}

// IsTerminal reports whether the last advance exhausted the stream.
func (c *Cursor) IsTerminal() bool {
	return c.terminal
}

// IsSet reports whether a first page has advanced the cursor.
func (c *Cursor) IsSet() bool {
	return c.set
}

// IsTerminalToken reports whether token means "no further page".
func IsTerminalToken(token string) bool {
	return token == "" || token == EOF
}
