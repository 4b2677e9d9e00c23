package drips

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// StreamsState is an account's per-token streaming state as held by the hub.
type StreamsState struct {
	// StreamsHash is the hash of the current stream receiver list.
	StreamsHash [32]byte

	// StreamsHistoryHash is the rolling hash of all receiver list updates.
	StreamsHistoryHash [32]byte

	// UpdateTime is the timestamp of the last receiver list update.
	UpdateTime uint32

	// Balance is the streamed-from balance as of UpdateTime.
	Balance *big.Int

	// MaxEnd is the timestamp when funds run out at the current rate.
	MaxEnd uint32
}

// StreamsHistory is one entry of a stream history proof for squeezing.
// Exactly one of StreamsHash and Receivers must be set: entries carrying the
// full receiver list have a zero hash, all other entries are hash-only.
type StreamsHistory struct {
	StreamsHash [32]byte
	Receivers   []StreamReceiver
	UpdateTime  uint32
	MaxEnd      uint32
}

// Validate checks the exactly-one-of invariant.
func (h StreamsHistory) Validate() error {
	hasHash := h.StreamsHash != [32]byte{}
	if hasHash == (len(h.Receivers) > 0) {
		return ErrInvalidHistoryEntry
	}
	return nil
}

// SqueezeArgs is everything Hub.SqueezeStreams needs, typically produced by
// subgraph.BuildSqueezeArgs.
type SqueezeArgs struct {
	AccountID   *big.Int
	ERC20       common.Address
	SenderID    *big.Int
	HistoryHash [32]byte
	History     []StreamsHistory
}

// abiStreamsHistory matches the StreamsHistory struct layout for ABI packing.
type abiStreamsHistory struct {
	StreamsHash [32]byte            `abi:"streamsHash"`
	Receivers   []abiStreamReceiver `abi:"receivers"`
	UpdateTime  uint32              `abi:"updateTime"`
	MaxEnd      uint32              `abi:"maxEnd"`
}

func toABIStreamsHistory(history []StreamsHistory) ([]abiStreamsHistory, error) {
	out := make([]abiStreamsHistory, len(history))
	for i, h := range history {
		if err := h.Validate(); err != nil {
			return nil, &ReceiverError{Index: i, Err: err}
		}
		receivers, err := toABIStreamReceivers(h.Receivers)
		if err != nil {
			return nil, err
		}
		out[i] = abiStreamsHistory{
			StreamsHash: h.StreamsHash,
			Receivers:   receivers,
			UpdateTime:  h.UpdateTime,
			MaxEnd:      h.MaxEnd,
		}
	}
	return out, nil
}

// HistoryChainHash replays a streams history the way the hub verifies it:
// starting from historyHash, each entry's streams hash (stored, or computed
// from its receivers) is folded in with HashStreamsHistory. Squeezing
// succeeds only if the result equals the sender's current on-chain
// streamsHistoryHash.
func HistoryChainHash(historyHash [32]byte, history []StreamsHistory) ([32]byte, error) {
	for i, h := range history {
		if err := h.Validate(); err != nil {
			return [32]byte{}, &ReceiverError{Index: i, Err: err}
		}
		streamsHash := h.StreamsHash
		if len(h.Receivers) > 0 {
			var err error
			streamsHash, err = HashStreams(h.Receivers)
			if err != nil {
				return [32]byte{}, err
			}
		}
		var err error
		historyHash, err = HashStreamsHistory(historyHash, streamsHash, h.UpdateTime, h.MaxEnd)
		if err != nil {
			return [32]byte{}, err
		}
	}
	return historyHash, nil
}

// Hub is a client for the Drips hub contract, which holds all streams and
// splits state. Accounts never interact with it directly for state changes —
// those go through a driver — but receiving, splitting and squeezing funds
// are permissionless and callable by anyone.
type Hub struct {
	boundContract
}

// NewHub creates a Hub client.
func NewHub(address common.Address, backend ContractBackend) *Hub {
	return &Hub{newBoundContract(address, hubABI, backend)}
}

// CycleSecs returns the hub's cycle length in seconds. Received streams
// become receivable once the cycle they were streamed in ends.
func (h *Hub) CycleSecs(ctx context.Context, opts ...CallOption) (uint32, error) {
	results, err := h.call(ctx, "cycleSecs", opts)
	if err != nil {
		return 0, err
	}
	return results[0].(uint32), nil
}

// StreamsState returns an account's streaming state for a token.
func (h *Hub) StreamsState(ctx context.Context, accountID *big.Int, erc20 common.Address, opts ...CallOption) (StreamsState, error) {
	results, err := h.call(ctx, "streamsState", opts, accountID, erc20)
	if err != nil {
		return StreamsState{}, err
	}
	return StreamsState{
		StreamsHash:        results[0].([32]byte),
		StreamsHistoryHash: results[1].([32]byte),
		UpdateTime:         results[2].(uint32),
		Balance:            results[3].(*big.Int),
		MaxEnd:             results[4].(uint32),
	}, nil
}

// BalanceAt returns the streamed-from balance an account will hold at the
// given timestamp, assuming no further updates. currReceivers must match the
// on-chain list.
func (h *Hub) BalanceAt(ctx context.Context, accountID *big.Int, erc20 common.Address, currReceivers []StreamReceiver, timestamp uint32, opts ...CallOption) (*big.Int, error) {
	if err := ValidateStreamReceivers(currReceivers); err != nil {
		return nil, err
	}
	receivers, err := toABIStreamReceivers(currReceivers)
	if err != nil {
		return nil, err
	}
	results, err := h.call(ctx, "balanceAt", opts, accountID, erc20, receivers, timestamp)
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// ReceivableStreamsCycles returns the number of finished cycles with
// unreceived funds for an account and token.
func (h *Hub) ReceivableStreamsCycles(ctx context.Context, accountID *big.Int, erc20 common.Address, opts ...CallOption) (uint32, error) {
	results, err := h.call(ctx, "receivableStreamsCycles", opts, accountID, erc20)
	if err != nil {
		return 0, err
	}
	return results[0].(uint32), nil
}

// ReceiveStreamsResult returns the amount ReceiveStreams would move to the
// account's splittable balance.
func (h *Hub) ReceiveStreamsResult(ctx context.Context, accountID *big.Int, erc20 common.Address, maxCycles uint32, opts ...CallOption) (*big.Int, error) {
	results, err := h.call(ctx, "receiveStreamsResult", opts, accountID, erc20, maxCycles)
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// SqueezeStreamsResult returns the amount SqueezeStreams would squeeze.
func (h *Hub) SqueezeStreamsResult(ctx context.Context, args SqueezeArgs, opts ...CallOption) (*big.Int, error) {
	history, err := toABIStreamsHistory(args.History)
	if err != nil {
		return nil, err
	}
	results, err := h.call(ctx, "squeezeStreamsResult", opts, args.AccountID, args.ERC20, args.SenderID, args.HistoryHash, history)
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// Splittable returns the account's balance awaiting a split.
func (h *Hub) Splittable(ctx context.Context, accountID *big.Int, erc20 common.Address, opts ...CallOption) (*big.Int, error) {
	results, err := h.call(ctx, "splittable", opts, accountID, erc20)
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// Collectable returns the account's already-split balance awaiting collection.
func (h *Hub) Collectable(ctx context.Context, accountID *big.Int, erc20 common.Address, opts ...CallOption) (*big.Int, error) {
	results, err := h.call(ctx, "collectable", opts, accountID, erc20)
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// ReceiveStreams builds a call moving an account's received streams from up
// to maxCycles finished cycles into its splittable balance.
func (h *Hub) ReceiveStreams(accountID *big.Int, erc20 common.Address, maxCycles uint32) (ContractCall, error) {
	return h.contractCall("receiveStreams", accountID, erc20, maxCycles)
}

// Split builds a call splitting an account's splittable balance between its
// splits receivers. currReceivers must match the on-chain list.
func (h *Hub) Split(accountID *big.Int, erc20 common.Address, currReceivers []SplitsReceiver) (ContractCall, error) {
	if err := ValidateSplitsReceivers(currReceivers); err != nil {
		return ContractCall{}, err
	}
	return h.contractCall("split", accountID, erc20, toABISplitsReceivers(currReceivers))
}

// SqueezeStreams builds a call squeezing funds streamed in the current,
// still-unfinished cycle out of a single sender's streams. The history must
// prove the sender's current on-chain history hash.
func (h *Hub) SqueezeStreams(args SqueezeArgs) (ContractCall, error) {
	history, err := toABIStreamsHistory(args.History)
	if err != nil {
		return ContractCall{}, err
	}
	return h.contractCall("squeezeStreams", args.AccountID, args.ERC20, args.SenderID, args.HistoryHash, history)
}
