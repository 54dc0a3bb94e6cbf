// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"context"

	"github.com/ava-labs/nearsdk/cli/prompt"
	"github.com/ava-labs/nearsdk/utils"
)

func (h *Handler) AddNetwork(name string, endpoint string) error {
	if err := h.StoreNetwork(Network{Name: name, Endpoint: endpoint}); err != nil {
		return err
	}
	h.infof("{{green}}stored network:{{/}} %s {{green}}endpoint:{{/}} %s\n", name, endpoint)
	return nil
}

func (h *Handler) ListNetworks() error {
	networks, err := h.GetNetworks()
	if err != nil {
		return err
	}
	if ok, err := h.printJSON(networks); ok {
		return err
	}
	current, err := h.GetDefaultNetwork()
	if err != nil {
		return err
	}
	utils.Outf("{{cyan}}available networks:{{/}} %d\n", len(networks))
	for i, network := range networks {
		marker := ""
		if network.Name == current.Name {
			marker = " {{yellow}}(default){{/}}"
		}
		utils.Outf(
			"%d) {{cyan}}name:{{/}} %s {{cyan}}endpoint:{{/}} %s"+marker+"\n",
			i,
			network.Name,
			network.Endpoint,
		)
	}
	return nil
}

// SetNetwork makes [name] the default network. When it is empty the
// network is chosen interactively.
func (h *Handler) SetNetwork(name string) error {
	if len(name) > 0 {
		return h.StoreDefaultNetwork(name)
	}
	networks, err := h.GetNetworks()
	if err != nil {
		return err
	}
	for i, network := range networks {
		utils.Outf(
			"%d) {{cyan}}name:{{/}} %s {{cyan}}endpoint:{{/}} %s\n",
			i,
			network.Name,
			network.Endpoint,
		)
	}
	index, err := prompt.Choice("set default network", len(networks))
	if err != nil {
		return err
	}
	return h.StoreDefaultNetwork(networks[index].Name)
}

// NetworkStatus prints the chain id and head of the connected node.
func (h *Handler) NetworkStatus(ctx context.Context) error {
	cli, err := h.Client()
	if err != nil {
		return err
	}
	status, err := cli.Status(ctx)
	if err != nil {
		return err
	}
	if ok, err := h.printJSON(status); ok {
		return err
	}
	utils.Outf("{{cyan}}chain id:{{/}} %s\n", status.ChainID)
	utils.Outf("{{cyan}}version:{{/}} %s (%s)\n", status.Version.Version, status.Version.Build)
	utils.Outf(
		"{{cyan}}latest block:{{/}} %d %s {{cyan}}syncing:{{/}} %t\n",
		status.SyncInfo.LatestBlockHeight,
		status.SyncInfo.LatestBlockHash,
		status.SyncInfo.Syncing,
	)
	return nil
}
