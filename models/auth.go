// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenRequest is the body of the token endpoint.
type TokenRequest struct {
	CompanyID string `json:"companyId"`
}
