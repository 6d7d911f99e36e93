// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// errNoActingUser is returned when a favorites handler runs without the
	// acting-user middleware in front of it.
	errNoActingUser = errors.New("no acting user in request context")

	// errInvalidPathID is returned when an {id} path segment does not fit
	// into an int64. The router only admits digits.
	errInvalidPathID = errors.New("invalid id in request path")
)
