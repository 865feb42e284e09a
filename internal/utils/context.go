// Package utils holds small helpers shared by the feed server and the
// client: context keys, JSON responses, the resty client, JWT issuing and
// validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// CompanyIDCtxKey stores the company an authenticated request acts for.
var CompanyIDCtxKey = contextKey("companyID")

// TraceIDCtxKey stores the trace id assigned to a request.
var TraceIDCtxKey = contextKey("traceID")

// GetCompanyIDFromContext returns the company stored under
// [CompanyIDCtxKey]. ok is false when the value is missing, empty or of
// another type.
func GetCompanyIDFromContext(ctx context.Context) (string, bool) {
	companyID, ok := ctx.Value(CompanyIDCtxKey).(string)
	return companyID, ok && companyID != ""
}

// GetTraceIDFromContext returns the trace id stored under [TraceIDCtxKey].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
