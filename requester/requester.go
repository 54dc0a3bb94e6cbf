// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/gorilla/rpc/v2/json2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	jsonRPCVersion  = "2.0"
	defaultTimeout  = 30 * time.Second
	maxErrorBodyLen = 1024
)

type request struct {
	Version string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// EndpointRequester sends JSON-RPC 2.0 requests to a single endpoint.
//
// It is safe for concurrent use. Request ids come from a counter owned by
// the requester.
type EndpointRequester struct {
	uri     string
	cli     *http.Client
	log     *zap.Logger
	tracer  trace.Tracer
	headers http.Header
	metrics *metrics

	nextID atomic.Uint64
}

func New(uri string, opts ...Option) (*EndpointRequester, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: defaultTimeout}
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	e := &EndpointRequester{
		uri:     uri,
		cli:     o.client,
		log:     o.log,
		tracer:  o.tracer,
		headers: o.headers,
	}
	if o.registry != nil {
		m, err := newMetrics(o.registry)
		if err != nil {
			return nil, err
		}
		e.metrics = m
	}
	return e, nil
}

func (e *EndpointRequester) URI() string {
	return e.uri
}

// SendRequest calls [method] with [params] and decodes the result into
// [reply]. Errors returned by the node are returned as *json2.Error wrapped
// with the method name.
func (e *EndpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params any,
	reply any,
) (err error) {
	id := e.nextID.Inc()
	if e.tracer != nil {
		var span oteltrace.Span
		ctx, span = e.tracer.Start(ctx, "EndpointRequester.SendRequest", oteltrace.WithAttributes(
			attribute.String("method", method),
			attribute.Int64("id", int64(id)),
		))
		defer func() {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
		}()
	}

	start := time.Now()
	if e.metrics != nil {
		e.metrics.requests.WithLabelValues(method).Inc()
		defer func() {
			e.metrics.latency.WithLabelValues(method).Observe(time.Since(start).Seconds())
			if err != nil {
				e.metrics.failures.WithLabelValues(method).Inc()
			}
		}()
	}

	err = e.send(ctx, id, method, params, reply)
	if err != nil {
		e.log.Debug("request failed",
			zap.String("method", method),
			zap.Uint64("id", id),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return err
	}
	e.log.Debug("request completed",
		zap.String("method", method),
		zap.Uint64("id", id),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (e *EndpointRequester) send(ctx context.Context, id uint64, method string, params any, reply any) error {
	body, err := json.Marshal(&request{
		Version: jsonRPCVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.uri, bytes.NewReader(body))
	if err != nil {
		return err
	}
	for k, values := range e.headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.cli.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return fmt.Errorf("%w: %s returned %d: %s", ErrUnexpectedStatus, method, resp.StatusCode, bytes.TrimSpace(msg))
	}
	if err := json2.DecodeClientResponse(resp.Body, reply); err != nil {
		var rpcErr *json2.Error
		if errors.As(err, &rpcErr) {
			if rpcErr.Data != nil {
				return fmt.Errorf("%s: %w: %v", method, rpcErr, rpcErr.Data)
			}
			return fmt.Errorf("%s: %w", method, rpcErr)
		}
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, method, err)
	}
	return nil
}
