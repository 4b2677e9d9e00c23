package drips

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Caller is a client for the Caller contract, the protocol's generic call
// batcher. It executes calls on behalf of the sender, so several driver
// operations can run in one atomic transaction, and lets accounts authorize
// other addresses to act for them.
type Caller struct {
	boundContract
}

// NewCaller creates a Caller client.
func NewCaller(address common.Address, backend ContractBackend) *Caller {
	return &Caller{newBoundContract(address, callerABI, backend)}
}

// IsAuthorized reports whether user may make calls as sender.
func (c *Caller) IsAuthorized(ctx context.Context, sender, user common.Address, opts ...CallOption) (bool, error) {
	results, err := c.call(ctx, "isAuthorized", opts, sender, user)
	if err != nil {
		return false, err
	}
	return results[0].(bool), nil
}

// AllAuthorized returns all addresses authorized to make calls as sender.
func (c *Caller) AllAuthorized(ctx context.Context, sender common.Address, opts ...CallOption) ([]common.Address, error) {
	results, err := c.call(ctx, "allAuthorized", opts, sender)
	if err != nil {
		return nil, err
	}
	return results[0].([]common.Address), nil
}

// Authorize builds a call authorizing user to make calls as the sender.
func (c *Caller) Authorize(user common.Address) (ContractCall, error) {
	return c.contractCall("authorize", user)
}

// Unauthorize builds a call revoking user's authorization.
func (c *Caller) Unauthorize(user common.Address) (ContractCall, error) {
	return c.contractCall("unauthorize", user)
}

// CallAs builds a call executing inner on behalf of sender. The submitting
// address must be authorized by sender. The inner call's value is forwarded
// as the outer call's value.
func (c *Caller) CallAs(sender common.Address, inner ContractCall) (ContractCall, error) {
	out, err := c.contractCall("callAs", sender, inner.To, inner.Data)
	if err != nil {
		return ContractCall{}, err
	}
	out.Value = inner.Value
	return out, nil
}

// abiBatchCall matches the Caller contract's Call struct layout.
type abiBatchCall struct {
	To    common.Address `abi:"to"`
	Data  []byte         `abi:"data"`
	Value *big.Int       `abi:"value"`
}

// Batch accumulates contract calls and compiles them into a single
// callBatched invocation. The calls execute in order and the whole batch
// reverts together.
type Batch struct {
	caller *Caller
	calls  []ContractCall
}

// NewBatch creates an empty batch bound to this Caller.
func (c *Caller) NewBatch() *Batch {
	return &Batch{caller: c, calls: make([]ContractCall, 0, 4)}
}

// Add appends a call to the batch and returns the batch for chaining.
func (b *Batch) Add(call ContractCall) *Batch {
	b.calls = append(b.calls, call)
	return b
}

// Len returns the number of calls in the batch.
func (b *Batch) Len() int {
	return len(b.calls)
}

// Calls returns the batch's calls in execution order.
func (b *Batch) Calls() []ContractCall {
	out := make([]ContractCall, len(b.calls))
	copy(out, b.calls)
	return out
}

// Compile encodes the batch into one callBatched ContractCall. The compiled
// call's value is the sum of the batched calls' values.
func (b *Batch) Compile() (ContractCall, error) {
	if len(b.calls) == 0 {
		return ContractCall{}, ErrEmptyBatch
	}

	encodable := make([]abiBatchCall, len(b.calls))
	total := new(big.Int)
	for i, call := range b.calls {
		value := new(big.Int)
		if call.Value != nil {
			value.Set(call.Value)
			total.Add(total, call.Value)
		}
		encodable[i] = abiBatchCall{To: call.To, Data: call.Data, Value: value}
	}

	out, err := b.caller.contractCall("callBatched", encodable)
	if err != nil {
		return ContractCall{}, err
	}
	if total.Sign() > 0 {
		out.Value = total
	}
	return out, nil
}
