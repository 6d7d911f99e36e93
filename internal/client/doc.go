// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the holocron command-line client.
//
// Each invocation runs one command against a remote server through
// [adapter.API] and prints the result as indented JSON (or plain text for
// version and favorite confirmations).
package client
