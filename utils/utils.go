// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/onsi/ginkgo/v2/formatter"

	"github.com/ava-labs/nearsdk/consts"
	"github.com/ava-labs/nearsdk/math"
)

var ErrInvalidAmount = errors.New("invalid amount")

func InitSubDirectory(rootPath string, name string) (string, error) {
	p := path.Join(rootPath, name)
	return p, os.MkdirAll(p, perms.ReadWriteExecute)
}

// Outputs to stdout.
//
// e.g.,
//
//	Outf("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Outf("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}

// FormatNear renders a yoctoNEAR amount in NEAR without losing precision.
// Trailing fractional zeros are dropped.
func FormatNear(yocto math.Uint128) string {
	digits := yocto.String()
	if len(digits) <= consts.NearDecimals {
		digits = strings.Repeat("0", consts.NearDecimals-len(digits)+1) + digits
	}
	whole := digits[:len(digits)-consts.NearDecimals]
	frac := strings.TrimRight(digits[len(digits)-consts.NearDecimals:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// ParseNear parses a decimal NEAR amount (for example "1.5") into
// yoctoNEAR. More than [consts.NearDecimals] fractional digits is an error.
func ParseNear(s string) (math.Uint128, error) {
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return math.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > consts.NearDecimals {
		return math.Zero, fmt.Errorf("%w: more than %d decimals", ErrInvalidAmount, consts.NearDecimals)
	}
	if whole == "" {
		whole = "0"
	}
	v, err := math.ParseUint128(whole + frac + strings.Repeat("0", consts.NearDecimals-len(frac)))
	if err != nil {
		return math.Zero, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	return v, nil
}
