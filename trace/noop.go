// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"github.com/ava-labs/avalanchego/trace"

	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ trace.Tracer = (*noopTracer)(nil)

type noopTracer struct {
	oteltrace.Tracer
}

// Noop returns a tracer whose spans are never recorded.
func Noop(name string) trace.Tracer {
	return &noopTracer{
		Tracer: oteltrace.NewNoopTracerProvider().Tracer(name),
	}
}

func (*noopTracer) Close() error {
	return nil
}
