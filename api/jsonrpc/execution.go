// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/nearsdk/chain"
	"github.com/ava-labs/nearsdk/math"
)

type StatusKind uint8

const (
	StatusUnknown StatusKind = iota
	StatusPending
	StatusNotStarted
	StatusStarted
	StatusFailure
	StatusSuccessValue
	StatusSuccessReceiptID
)

var basicStatuses = map[string]StatusKind{
	"Unknown":    StatusUnknown,
	"Pending":    StatusPending,
	"NotStarted": StatusNotStarted,
	"Started":    StatusStarted,
	"Failure":    StatusFailure,
}

func (k StatusKind) String() string {
	switch k {
	case StatusUnknown:
		return "Unknown"
	case StatusPending:
		return "Pending"
	case StatusNotStarted:
		return "NotStarted"
	case StatusStarted:
		return "Started"
	case StatusFailure:
		return "Failure"
	case StatusSuccessValue:
		return "SuccessValue"
	case StatusSuccessReceiptID:
		return "SuccessReceiptId"
	default:
		return fmt.Sprintf("StatusKind(%d)", uint8(k))
	}
}

// ExecutionError is the node's description of a failed transaction or
// receipt. Raw holds the failure exactly as reported.
type ExecutionError struct {
	ErrorMessage string `json:"error_message,omitempty"`
	ErrorType    string `json:"error_type,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (e *ExecutionError) UnmarshalJSON(b []byte) error {
	type plain ExecutionError
	var p plain
	// Structured failures (ActionError, InvalidTxError) do not carry the
	// flat fields; they are kept in Raw.
	_ = json.Unmarshal(b, &p)
	*e = ExecutionError(p)
	e.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (e *ExecutionError) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	type plain ExecutionError
	return json.Marshal((*plain)(e))
}

func (e *ExecutionError) Error() string {
	if e.ErrorMessage != "" {
		return e.ErrorMessage
	}
	return string(e.Raw)
}

// ExecutionStatus is the outcome of a transaction or receipt. It is one of
// the basic statuses (a bare JSON string) or an object holding exactly one
// of SuccessValue, SuccessReceiptId or Failure.
type ExecutionStatus struct {
	Kind StatusKind

	// base64 return value for StatusSuccessValue
	SuccessValue     string
	SuccessReceiptID string
	Failure          *ExecutionError
}

func (s *ExecutionStatus) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var basic string
		if err := json.Unmarshal(b, &basic); err != nil {
			return err
		}
		kind, ok := basicStatuses[basic]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStatus, basic)
		}
		*s = ExecutionStatus{Kind: kind}
		return nil
	}

	var obj struct {
		SuccessValue     *string         `json:"SuccessValue"`
		SuccessReceiptID *string         `json:"SuccessReceiptId"`
		Failure          *ExecutionError `json:"Failure"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	switch {
	case obj.SuccessValue != nil:
		*s = ExecutionStatus{Kind: StatusSuccessValue, SuccessValue: *obj.SuccessValue}
	case obj.SuccessReceiptID != nil:
		*s = ExecutionStatus{Kind: StatusSuccessReceiptID, SuccessReceiptID: *obj.SuccessReceiptID}
	case obj.Failure != nil:
		*s = ExecutionStatus{Kind: StatusFailure, Failure: obj.Failure}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStatus, b)
	}
	return nil
}

func (s ExecutionStatus) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case StatusSuccessValue:
		return json.Marshal(map[string]string{"SuccessValue": s.SuccessValue})
	case StatusSuccessReceiptID:
		return json.Marshal(map[string]string{"SuccessReceiptId": s.SuccessReceiptID})
	case StatusFailure:
		if s.Failure != nil {
			return json.Marshal(map[string]*ExecutionError{"Failure": s.Failure})
		}
	}
	return json.Marshal(s.Kind.String())
}

func (s ExecutionStatus) IsSuccess() bool {
	return s.Kind == StatusSuccessValue || s.Kind == StatusSuccessReceiptID
}

// Value decodes the base64 return value of a successful call.
func (s ExecutionStatus) Value() ([]byte, error) {
	if s.Kind != StatusSuccessValue {
		return nil, fmt.Errorf("%w: status is %s", ErrUnknownStatus, s.Kind)
	}
	return base64.StdEncoding.DecodeString(s.SuccessValue)
}

// Err returns the failure carried by the status, if any.
func (s ExecutionStatus) Err() error {
	if s.Kind != StatusFailure {
		return nil
	}
	if s.Failure == nil {
		return ErrExecutionFailed
	}
	return s.Failure
}

type ExecutionOutcome struct {
	Status      ExecutionStatus `json:"status"`
	Logs        []string        `json:"logs"`
	ReceiptIDs  []string        `json:"receipt_ids"`
	GasBurnt    uint64          `json:"gas_burnt"`
	TokensBurnt math.Uint128    `json:"tokens_burnt"`
	ExecutorID  string          `json:"executor_id"`
}

type ExecutionOutcomeWithID struct {
	ID        string           `json:"id"`
	BlockHash chain.Hash       `json:"block_hash"`
	Outcome   ExecutionOutcome `json:"outcome"`
}

type FinalExecutionOutcome struct {
	Status             ExecutionStatus          `json:"status"`
	Transaction        TransactionView          `json:"transaction"`
	TransactionOutcome ExecutionOutcomeWithID   `json:"transaction_outcome"`
	ReceiptsOutcome    []ExecutionOutcomeWithID `json:"receipts_outcome"`
}

// Logs returns the logs of the transaction and every receipt it produced,
// in execution order.
func (f *FinalExecutionOutcome) Logs() []string {
	logs := append([]string{}, f.TransactionOutcome.Outcome.Logs...)
	for _, r := range f.ReceiptsOutcome {
		logs = append(logs, r.Outcome.Logs...)
	}
	return logs
}
