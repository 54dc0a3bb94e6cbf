// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nearsdk/requester"
)

type testController struct {
	path     string
	endpoint string
	network  string
	output   Output
}

func (c *testController) DatabasePath() string               { return c.path }
func (c *testController) Endpoint() string                   { return c.endpoint }
func (c *testController) Network() string                    { return c.network }
func (c *testController) Output() Output                     { return c.output }
func (*testController) RequesterOptions() []requester.Option { return nil }

func newTestHandler(t *testing.T, endpoint string) (*Handler, *bytes.Buffer) {
	require := require.New(t)

	h, err := New(&testController{
		path:     filepath.Join(t.TempDir(), "db"),
		endpoint: endpoint,
		output:   OutputJSON,
	})
	require.NoError(err)
	t.Cleanup(func() {
		require.NoError(h.CloseDatabase())
	})

	out := &bytes.Buffer{}
	prev := stdout
	stdout = out
	t.Cleanup(func() { stdout = prev })
	return h, out
}

// fakeNode answers each JSON-RPC method with a canned result.
type fakeNode struct {
	results map[string]string

	lock    sync.Mutex
	methods []string
}

func newFakeNode(t *testing.T, results map[string]string) (*fakeNode, string) {
	node := &fakeNode{results: results}
	server := httptest.NewServer(node)
	t.Cleanup(server.Close)
	return node, server.URL
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	n.lock.Lock()
	n.methods = append(n.methods, req.Method)
	n.lock.Unlock()

	result, ok := n.results[req.Method]
	if !ok {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"Method not found"}}`))
		return
	}
	_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":` + result + `}`))
}

func (n *fakeNode) called() []string {
	n.lock.Lock()
	defer n.lock.Unlock()

	return append([]string{}, n.methods...)
}

func TestParseOutput(t *testing.T) {
	require := require.New(t)

	o, err := ParseOutput("json")
	require.NoError(err)
	require.Equal(OutputJSON, o)

	o, err = ParseOutput("text")
	require.NoError(err)
	require.Equal(OutputText, o)

	_, err = ParseOutput("yaml")
	require.ErrorIs(err, ErrInvalidOutput)
}
