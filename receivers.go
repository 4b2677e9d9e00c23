package drips

import (
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// Receiver list limits enforced by the protocol.
const (
	// MaxStreamsReceivers is the maximum number of stream receivers per
	// account and asset.
	MaxStreamsReceivers = 100

	// MaxSplitsReceivers is the maximum number of splits receivers per account.
	MaxSplitsReceivers = 200

	// TotalSplitsWeight is the weight denominator: a splits receiver with
	// weight w receives w/TotalSplitsWeight of every split amount.
	TotalSplitsWeight = 1_000_000
)

// StreamReceiver is a single entry of an account's stream receiver list.
type StreamReceiver struct {
	AccountID *big.Int
	Config    StreamConfig
}

// SplitsReceiver is a single entry of an account's splits receiver list.
type SplitsReceiver struct {
	AccountID *big.Int
	Weight    uint32
}

// compareStreamReceivers orders by account ID, then by packed configuration.
func compareStreamReceivers(a, b StreamReceiver) int {
	if c := a.AccountID.Cmp(b.AccountID); c != 0 {
		return c
	}
	return a.Config.Cmp(b.Config)
}

// SortStreamReceivers sorts receivers into the canonical on-chain order.
func SortStreamReceivers(receivers []StreamReceiver) {
	slices.SortFunc(receivers, compareStreamReceivers)
}

// SortSplitsReceivers sorts receivers into the canonical on-chain order.
func SortSplitsReceivers(receivers []SplitsReceiver) {
	slices.SortFunc(receivers, func(a, b SplitsReceiver) int {
		return a.AccountID.Cmp(b.AccountID)
	})
}

// ValidateStreamReceivers checks length, per-entry configuration validity,
// and the strict canonical ordering the contracts require.
func ValidateStreamReceivers(receivers []StreamReceiver) error {
	if len(receivers) > MaxStreamsReceivers {
		return ErrTooManyStreamReceivers
	}
	for i, r := range receivers {
		if err := r.Config.Validate(); err != nil {
			return &ReceiverError{Index: i, Err: err}
		}
		if i > 0 && compareStreamReceivers(receivers[i-1], r) >= 0 {
			return &ReceiverError{Index: i, Err: ErrReceiversNotSorted}
		}
	}
	return nil
}

// ValidateSplitsReceivers checks length, weights, the weight sum, and the
// strict canonical ordering the contracts require.
func ValidateSplitsReceivers(receivers []SplitsReceiver) error {
	if len(receivers) > MaxSplitsReceivers {
		return ErrTooManySplitsReceivers
	}
	var sum uint64
	for i, r := range receivers {
		if r.Weight == 0 {
			return &ReceiverError{Index: i, Err: ErrSplitsWeightZero}
		}
		sum += uint64(r.Weight)
		if i > 0 && receivers[i-1].AccountID.Cmp(r.AccountID) >= 0 {
			return &ReceiverError{Index: i, Err: ErrReceiversNotSorted}
		}
	}
	if sum > TotalSplitsWeight {
		return ErrSplitsWeightSum
	}
	return nil
}

// ABI types for receiver hashing. These mirror the contracts' struct layouts.
var (
	streamReceiversABIType = mustNewABIType("tuple[]", []abi.ArgumentMarshaling{
		{Name: "accountId", Type: "uint256"},
		{Name: "config", Type: "uint256"},
	})

	splitsReceiversABIType = mustNewABIType("tuple[]", []abi.ArgumentMarshaling{
		{Name: "accountId", Type: "uint256"},
		{Name: "weight", Type: "uint32"},
	})

	streamsHistoryHashArgs = abi.Arguments{
		{Type: mustNewABIType("bytes32", nil)},
		{Type: mustNewABIType("bytes32", nil)},
		{Type: mustNewABIType("uint32", nil)},
		{Type: mustNewABIType("uint32", nil)},
	}
)

func mustNewABIType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(err)
	}
	return typ
}

// abiStreamReceiver matches the StreamReceiver struct layout for ABI packing.
type abiStreamReceiver struct {
	AccountId *big.Int `abi:"accountId"`
	Config    *big.Int `abi:"config"`
}

// abiSplitsReceiver matches the SplitsReceiver struct layout for ABI packing.
type abiSplitsReceiver struct {
	AccountId *big.Int `abi:"accountId"`
	Weight    uint32   `abi:"weight"`
}

func toABIStreamReceivers(receivers []StreamReceiver) ([]abiStreamReceiver, error) {
	out := make([]abiStreamReceiver, len(receivers))
	for i, r := range receivers {
		packed, err := r.Config.PackBig()
		if err != nil {
			return nil, &ReceiverError{Index: i, Err: err}
		}
		out[i] = abiStreamReceiver{AccountId: r.AccountID, Config: packed}
	}
	return out, nil
}

func toABISplitsReceivers(receivers []SplitsReceiver) []abiSplitsReceiver {
	out := make([]abiSplitsReceiver, len(receivers))
	for i, r := range receivers {
		out[i] = abiSplitsReceiver{AccountId: r.AccountID, Weight: r.Weight}
	}
	return out
}

// HashStreams computes the on-chain hash of a stream receiver list:
// keccak256 of the ABI encoding, or the zero hash for an empty list.
func HashStreams(receivers []StreamReceiver) ([32]byte, error) {
	var hash [32]byte
	if len(receivers) == 0 {
		return hash, nil
	}

	encodable, err := toABIStreamReceivers(receivers)
	if err != nil {
		return hash, err
	}
	data, err := abi.Arguments{{Type: streamReceiversABIType}}.Pack(encodable)
	if err != nil {
		return hash, &EncodingError{Method: "hashStreams", Err: err}
	}
	copy(hash[:], crypto.Keccak256(data))
	return hash, nil
}

// HashSplits computes the on-chain hash of a splits receiver list:
// keccak256 of the ABI encoding, or the zero hash for an empty list.
func HashSplits(receivers []SplitsReceiver) ([32]byte, error) {
	var hash [32]byte
	if len(receivers) == 0 {
		return hash, nil
	}

	data, err := abi.Arguments{{Type: splitsReceiversABIType}}.Pack(toABISplitsReceivers(receivers))
	if err != nil {
		return hash, &EncodingError{Method: "hashSplits", Err: err}
	}
	copy(hash[:], crypto.Keccak256(data))
	return hash, nil
}

// HashStreamsHistory chains a streams history hash the way the hub does:
// keccak256(abi.encode(prevHistoryHash, streamsHash, updateTime, maxEnd)).
func HashStreamsHistory(prevHistoryHash, streamsHash [32]byte, updateTime, maxEnd uint32) ([32]byte, error) {
	var hash [32]byte
	data, err := streamsHistoryHashArgs.Pack(prevHistoryHash, streamsHash, updateTime, maxEnd)
	if err != nil {
		return hash, &EncodingError{Method: "hashStreamsHistory", Err: err}
	}
	copy(hash[:], crypto.Keccak256(data))
	return hash, nil
}
