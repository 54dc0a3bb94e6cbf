// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"fmt"

	"github.com/neilotoole/errgroup"

	"github.com/ava-labs/nearsdk/auth"
	"github.com/ava-labs/nearsdk/crypto"
	"github.com/ava-labs/nearsdk/crypto/ed25519"
)

// VerifyBatch checks the signature of every transaction in [txs] using up to
// [workers] goroutines. Ed25519 signatures are verified together in one
// batch when there are enough of them. The first failure is returned along
// with the index of the offending transaction.
func VerifyBatch(ctx context.Context, txs []*SignedTransaction, workers int) error {
	if workers < 1 {
		workers = 1
	}
	hashes := make([]Hash, len(txs))
	g, gctx := errgroup.WithContextN(ctx, workers, len(txs))
	for i, tx := range txs {
		i, tx := i, tx
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if tx == nil {
				return fmt.Errorf("tx %d: %w", i, ErrMissingTransaction)
			}
			hash, err := tx.Hash()
			if err != nil {
				return fmt.Errorf("tx %d: %w", i, err)
			}
			if tx.Signature.KeyType() != tx.Transaction.PublicKey.KeyType() {
				return fmt.Errorf("tx %d: %w", i, ErrCurveMismatch)
			}
			hashes[i] = hash
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var ed25519Txs []int
	g, gctx = errgroup.WithContextN(ctx, workers, len(txs))
	for i, tx := range txs {
		if tx.Signature.KeyType() == crypto.ED25519 {
			ed25519Txs = append(ed25519Txs, i)
			continue
		}
		i, tx := i, tx
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if !auth.Verify(hashes[i][:], tx.Transaction.PublicKey, tx.Signature) {
				return fmt.Errorf("tx %d: %w", i, ErrInvalidSignature)
			}
			return nil
		})
	}
	if len(ed25519Txs) >= ed25519.MinBatchSize {
		g.Go(func() error {
			batch := ed25519.NewBatch(len(ed25519Txs))
			for _, i := range ed25519Txs {
				tx := txs[i]
				batch.Add(hashes[i][:], ed25519.PublicKey(tx.Transaction.PublicKey.Data()), ed25519.Signature(tx.Signature.Data()))
			}
			if batch.Verify() {
				return nil
			}
			// Find the offender.
			return verifyEach(txs, hashes, ed25519Txs)
		})
	} else {
		g.Go(func() error {
			return verifyEach(txs, hashes, ed25519Txs)
		})
	}
	return g.Wait()
}

func verifyEach(txs []*SignedTransaction, hashes []Hash, indices []int) error {
	for _, i := range indices {
		if !auth.Verify(hashes[i][:], txs[i].Transaction.PublicKey, txs[i].Signature) {
			return fmt.Errorf("tx %d: %w", i, ErrInvalidSignature)
		}
	}
	return nil
}
