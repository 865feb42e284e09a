// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Variant selects one of the independently paginated document lists.
type Variant int

const (
	// VariantStatements is the account statement list, paginated by nextId.
	VariantStatements Variant = iota
	// VariantCertificates is the bank reference list, paginated by
	// continuationToken.
	VariantCertificates
)

// Variants lists every variant in display order.
var Variants = []Variant{VariantStatements, VariantCertificates}

func (v Variant) String() string {
	switch v {
	case VariantStatements:
		return "statements"
	case VariantCertificates:
		return "certificates"
	default:
		return "unknown"
	}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantStatements || v == VariantCertificates
}
