// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
)

func ParseOutput(s string) (Output, error) {
	switch o := Output(s); o {
	case OutputText, OutputJSON:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOutput, s)
	}
}

var stdout io.Writer = os.Stdout

// printJSON writes [v] as indented json when json output was requested.
// It reports whether anything was written so callers can fall back to
// text.
func (h *Handler) printJSON(v any) (bool, error) {
	if h.c.Output() != OutputJSON {
		return false, nil
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return true, enc.Encode(v)
}
