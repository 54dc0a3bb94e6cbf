// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import "github.com/ava-labs/nearsdk/requester"

type Controller interface {
	DatabasePath() string
	// Endpoint overrides the default network when non-empty.
	Endpoint() string
	// Network overrides the stored default network when non-empty.
	Network() string
	Output() Output
	RequesterOptions() []requester.Option
}
