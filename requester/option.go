// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"net/http"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	client   *http.Client
	log      *zap.Logger
	registry prometheus.Registerer
	tracer   trace.Tracer
	headers  http.Header
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithRegistry registers request metrics with [r].
func WithRegistry(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registry = r
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithHeader adds a header to every request (for example an API key).
func WithHeader(key, value string) Option {
	return func(o *options) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Add(key, value)
	}
}
