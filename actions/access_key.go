// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/nearsdk/codec"
	"github.com/ava-labs/nearsdk/consts"
	"github.com/ava-labs/nearsdk/math"
)

// AccessKeyPermission is either [*FunctionCallPermission] or
// [*FullAccessPermission].
type AccessKeyPermission interface {
	GetTypeID() uint8
	Size() int
	Marshal(p *codec.Packer)

	sealed()
}

var (
	_ AccessKeyPermission = (*FunctionCallPermission)(nil)
	_ AccessKeyPermission = (*FullAccessPermission)(nil)
)

// FunctionCallPermission restricts a key to calling [MethodNames] on
// [ReceiverID]. An empty method list allows every method. A nil allowance is
// unlimited.
type FunctionCallPermission struct {
	Allowance   *math.Uint128 `json:"allowance"`
	ReceiverID  string        `json:"receiver_id"`
	MethodNames []string      `json:"method_names"`
}

func (*FunctionCallPermission) GetTypeID() uint8 {
	return FunctionCallPermissionID
}

func (f *FunctionCallPermission) Size() int {
	return codec.OptionLen(f.Allowance != nil, consts.Uint128Len) +
		codec.StringLen(f.ReceiverID) +
		codec.StringsLen(f.MethodNames)
}

func (f *FunctionCallPermission) Marshal(p *codec.Packer) {
	p.PackOption(f.Allowance != nil)
	if f.Allowance != nil {
		p.PackUint128(*f.Allowance)
	}
	p.PackString(f.ReceiverID)
	codec.PackStrings(p, f.MethodNames)
}

func unmarshalFunctionCallPermission(p *codec.Packer) *FunctionCallPermission {
	var f FunctionCallPermission
	if p.UnpackOption() {
		allowance := p.UnpackUint128()
		f.Allowance = &allowance
	}
	f.ReceiverID = p.UnpackString()
	f.MethodNames = codec.UnpackStrings(p)
	return &f
}

func (*FunctionCallPermission) sealed() {}

// FullAccessPermission allows every action. It has no payload.
type FullAccessPermission struct{}

func (*FullAccessPermission) GetTypeID() uint8 {
	return FullAccessPermissionID
}

func (*FullAccessPermission) Size() int {
	return 0
}

func (*FullAccessPermission) Marshal(*codec.Packer) {}

func (*FullAccessPermission) sealed() {}

func isNilPermission(permission AccessKeyPermission) bool {
	switch perm := permission.(type) {
	case *FunctionCallPermission:
		return perm == nil
	case *FullAccessPermission:
		return perm == nil
	default:
		return permission == nil
	}
}

func marshalPermission(p *codec.Packer, permission AccessKeyPermission) {
	if isNilPermission(permission) {
		p.AddErr(fmt.Errorf("%w: nil", ErrInvalidPermission))
		return
	}
	p.PackByte(permission.GetTypeID())
	permission.Marshal(p)
}

func unmarshalPermission(p *codec.Packer) (AccessKeyPermission, error) {
	tag := p.UnpackByte()
	if err := p.Err(); err != nil {
		return nil, err
	}
	switch tag {
	case FunctionCallPermissionID:
		f := unmarshalFunctionCallPermission(p)
		return f, p.Err()
	case FullAccessPermissionID:
		return &FullAccessPermission{}, nil
	default:
		p.UnknownVariant("AccessKeyPermission", tag)
		return nil, p.Err()
	}
}

// AccessKey is a capability bound to a public key on an account.
type AccessKey struct {
	// Nonce is overwritten by the chain when the key is added.
	Nonce      uint64              `json:"nonce"`
	Permission AccessKeyPermission `json:"permission"`
}

// FullAccessKey returns a key with nonce 0 and full access.
func FullAccessKey() *AccessKey {
	return &AccessKey{Permission: &FullAccessPermission{}}
}

// FunctionCallAccessKey returns a key with nonce 0 limited to [methodNames]
// on [receiverID].
func FunctionCallAccessKey(receiverID string, methodNames []string, allowance *math.Uint128) *AccessKey {
	return &AccessKey{
		Permission: &FunctionCallPermission{
			Allowance:   allowance,
			ReceiverID:  receiverID,
			MethodNames: methodNames,
		},
	}
}

// IsFullAccess returns true if the key is not restricted to function calls.
func (a *AccessKey) IsFullAccess() bool {
	_, ok := a.Permission.(*FullAccessPermission)
	return ok
}

func (a *AccessKey) Size() int {
	size := consts.Uint64Len + consts.ByteLen
	if !isNilPermission(a.Permission) {
		size += a.Permission.Size()
	}
	return size
}

func (a *AccessKey) Marshal(p *codec.Packer) {
	p.PackUint64(a.Nonce)
	marshalPermission(p, a.Permission)
}

func UnmarshalAccessKey(p *codec.Packer) (*AccessKey, error) {
	var a AccessKey
	a.Nonce = p.UnpackUint64()
	if err := p.Err(); err != nil {
		return nil, err
	}
	permission, err := unmarshalPermission(p)
	if err != nil {
		return nil, err
	}
	a.Permission = permission
	return &a, nil
}

type accessKeyJSON struct {
	Nonce      uint64          `json:"nonce"`
	Permission json.RawMessage `json:"permission"`
}

// MarshalJSON uses the node's representation: the permission is either the
// string "FullAccess" or {"FunctionCall": {...}}.
func (a *AccessKey) MarshalJSON() ([]byte, error) {
	var (
		permission []byte
		err        error
	)
	switch perm := a.Permission.(type) {
	case *FullAccessPermission:
		permission, err = json.Marshal(fullAccessLiteral)
	case *FunctionCallPermission:
		permission, err = json.Marshal(map[string]*FunctionCallPermission{functionCallKey: perm})
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidPermission, a.Permission)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(accessKeyJSON{Nonce: a.Nonce, Permission: permission})
}

func (a *AccessKey) UnmarshalJSON(b []byte) error {
	var raw accessKeyJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	permission, err := parsePermissionJSON(raw.Permission)
	if err != nil {
		return err
	}
	a.Nonce = raw.Nonce
	a.Permission = permission
	return nil
}

func parsePermissionJSON(b []byte) (AccessKeyPermission, error) {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var literal string
		if err := json.Unmarshal(b, &literal); err != nil {
			return nil, err
		}
		if literal != fullAccessLiteral {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPermission, literal)
		}
		return &FullAccessPermission{}, nil
	}
	var wrapped map[string]*FunctionCallPermission
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPermission, err)
	}
	perm, ok := wrapped[functionCallKey]
	if !ok || perm == nil || len(wrapped) != 1 {
		return nil, fmt.Errorf("%w: expected %q", ErrInvalidPermission, functionCallKey)
	}
	return perm, nil
}
