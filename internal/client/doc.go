// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It obtains a token, starts the list session and its refresh job, and runs
// the terminal UI until the user quits.
package client
