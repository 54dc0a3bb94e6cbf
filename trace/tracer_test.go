// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledTracerDoesNotRecord(t *testing.T) {
	require := require.New(t)

	tr, err := New(Config{})
	require.NoError(err)
	require.IsType(&noopTracer{}, tr)

	_, span := tr.Start(context.Background(), "span")
	require.False(span.IsRecording())
	span.End()
	require.NoError(tr.Close())
}

func TestEnabledTracerSamples(t *testing.T) {
	require := require.New(t)

	tr, err := New(Config{
		Enabled:    true,
		Endpoint:   "http://127.0.0.1:1/api/v2/spans",
		SampleRate: 1,
	})
	require.NoError(err)
	require.IsType(&tracer{}, tr)

	_, span := tr.Start(context.Background(), "span")
	require.True(span.IsRecording())
	span.End()
}
