// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ava-labs/nearsdk/auth"
	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/math"
	"github.com/ava-labs/nearsdk/utils"
)

var (
	ErrInputEmpty          = errors.New("input is empty")
	ErrInputTooLarge       = errors.New("input is too large")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrIndexOutOfRange     = errors.New("index out-of-range")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Secret reads a "<curve>:<base58>" secret key without echoing it.
func Secret(label string) (auth.KeyPair, error) {
	promptText := promptui.Prompt{
		Label: label,
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			_, err := auth.ParseKeyPair(strings.TrimSpace(input))
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return nil, err
	}
	return auth.ParseKeyPair(strings.TrimSpace(raw))
}

func KeyType(label string) (crypto.KeyType, error) {
	keyTypes := auth.KeyTypes()
	items := utils.Map(crypto.KeyType.String, keyTypes)
	promptSelect := promptui.Select{
		Label: label,
		Items: items,
	}
	index, _, err := promptSelect.Run()
	if err != nil {
		return 0, err
	}
	return keyTypes[index], nil
}

func String(label string, minLen int, maxLen int) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) < minLen {
				return ErrInputEmpty
			}
			if len(input) > maxLen {
				return ErrInputTooLarge
			}
			return nil
		},
	}
	text, err := promptText.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Amount reads a NEAR denominated amount and returns it in yoctoNEAR.
func Amount(
	label string,
	balance math.Uint128,
	f func(input math.Uint128) error,
) (math.Uint128, error) {
	promptText := promptui.Prompt{
		Label: label + " (NEAR)",
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			amount, err := utils.ParseNear(input)
			if err != nil {
				return err
			}
			if amount.Cmp(balance) > 0 {
				return ErrInsufficientBalance
			}
			if f != nil {
				return f(amount)
			}
			return nil
		},
	}
	rawAmount, err := promptText.Run()
	if err != nil {
		return math.Zero, err
	}
	return utils.ParseNear(rawAmount)
}

func Choice(label string, maxChoice int) (int, error) {
	if maxChoice == 1 {
		utils.Outf("{{yellow}}%s:{{/}} 0 [auto-selected]\n", label)
		return 0, nil
	}
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			index, err := strconv.Atoi(input)
			if err != nil {
				return err
			}
			if index >= maxChoice || index < 0 {
				return ErrIndexOutOfRange
			}
			return nil
		},
	}
	rawIndex, err := promptText.Run()
	if err != nil {
		return -1, err
	}
	return strconv.Atoi(rawIndex)
}

func Continue() (bool, error) {
	cont, err := Bool("continue")
	if err != nil {
		return false, err
	}
	if !cont {
		utils.Outf("{{red}}exiting...{{/}}\n")
	}
	return cont, nil
}

func Bool(label string) (bool, error) {
	promptText := promptui.Prompt{
		Label: label + " (y/n)",
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			lower := strings.ToLower(input)
			if lower == "y" || lower == "n" {
				return nil
			}
			return ErrInvalidChoice
		},
	}
	rawContinue, err := promptText.Run()
	if err != nil {
		return false, err
	}
	return strings.ToLower(rawContinue) == "y", nil
}
