// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to a company session.
//
// The company identifier travels in the "sub" claim. CompanyID is a parsed
// copy filled in by the issuer or by the validating middleware.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// CompanyID is the company the token was issued for.
	CompanyID string `json:"-"`
}

// GetCompanyID returns the company encoded in the subject claim.
func (t *Token) GetCompanyID() (string, error) {
	companyID, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if companyID == "" {
		return "", errors.New("empty subject in token")
	}
	return companyID, nil
}

// String returns the compact serialisation of the token.
func (t *Token) String() string {
	return t.SignedString
}
