// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteMetrics dumps every family gathered from [gatherers] in the
// prometheus text exposition format.
func WriteMetrics(w io.Writer, gatherers ...prometheus.Gatherer) error {
	families, err := prometheus.Gatherers(gatherers).Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}
