// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/nearsdk/api/jsonrpc"
	"github.com/ava-labs/nearsdk/pebble"
	"github.com/ava-labs/nearsdk/utils"
)

type Handler struct {
	c Controller

	db       *pebble.Database
	registry *prometheus.Registry
}

func New(c Controller) (*Handler, error) {
	db, registry, err := pebble.New(c.DatabasePath(), pebble.NewDefaultConfig())
	if err != nil {
		return nil, err
	}
	return &Handler{c: c, db: db, registry: registry}, nil
}

// DatabaseRegistry holds the keystore metrics.
func (h *Handler) DatabaseRegistry() *prometheus.Registry {
	return h.registry
}

// Client connects to the endpoint override, the network override or the
// default network, in that order.
func (h *Handler) Client() (*jsonrpc.JSONRPCClient, error) {
	endpoint := h.c.Endpoint()
	if len(endpoint) == 0 {
		var (
			network *Network
			err     error
		)
		if name := h.c.Network(); len(name) > 0 {
			network, err = h.GetNetwork(name)
		} else {
			network, err = h.GetDefaultNetwork()
		}
		if err != nil {
			return nil, err
		}
		h.infof("{{yellow}}network:{{/}} %s\n", network.Name)
		endpoint = network.Endpoint
	}
	cli, err := jsonrpc.NewJSONRPCClient(endpoint, h.c.RequesterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, endpoint)
	}
	return cli, nil
}

// infof prints progress lines that would corrupt json output.
func (h *Handler) infof(format string, args ...interface{}) {
	if h.c.Output() == OutputText {
		utils.Outf(format, args...)
	}
}
