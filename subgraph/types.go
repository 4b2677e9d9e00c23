package subgraph

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BigInt decodes the subgraph's BigInt scalar, which arrives as a decimal
// string in JSON.
type BigInt struct {
	big.Int
}

// UnmarshalJSON accepts both quoted decimal strings and bare numbers.
func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" || s == "" {
		b.SetInt64(0)
		return nil
	}
	if _, ok := b.SetString(s, 10); !ok {
		return fmt.Errorf("subgraph: invalid BigInt %q", s)
	}
	return nil
}

// Uint32 returns the value truncated to 32 bits, as used for timestamps and
// cycle bounds that the protocol stores as uint32.
func (b *BigInt) Uint32() uint32 {
	return uint32(b.Uint64())
}

// StreamsSetEvent mirrors the subgraph's record of a StreamsSet contract
// event: one update of a sender's stream receiver list for one asset.
type StreamsSetEvent struct {
	ID        string `json:"id"`
	AccountID BigInt `json:"accountId"`
	AssetID   BigInt `json:"assetId"`

	// ReceiversHash is the hash of the receiver list set by this update.
	ReceiversHash common.Hash `json:"receiversHash"`

	// StreamsHistoryHash is the history hash that was valid right before
	// this update.
	StreamsHistoryHash common.Hash `json:"streamsHistoryHash"`

	Balance        BigInt `json:"balance"`
	MaxEnd         BigInt `json:"maxEnd"`
	BlockTimestamp BigInt `json:"blockTimestamp"`

	// Receivers are the entries of the list set by this update, one
	// StreamReceiverSeen event per entry.
	Receivers []StreamReceiverSeenEvent `json:"streamReceiverSeenEvents"`
}

// StreamReceiverSeenEvent mirrors one receiver entry observed in a
// StreamsSet update. Config is the packed stream configuration.
type StreamReceiverSeenEvent struct {
	ID                string `json:"id"`
	ReceiverAccountID BigInt `json:"receiverAccountId"`
	Config            BigInt `json:"config"`
}

// SplitsEntry mirrors one entry of an account's current splits receiver list.
type SplitsEntry struct {
	ID                string `json:"id"`
	AccountID         BigInt `json:"accountId"`
	ReceiverAccountID BigInt `json:"receiverAccountId"`
	Weight            BigInt `json:"weight"`
}

// AssetConfig mirrors an account's per-asset aggregate state.
type AssetConfig struct {
	ID                        string `json:"id"`
	AccountID                 BigInt `json:"accountId"`
	AssetID                   BigInt `json:"assetId"`
	Balance                   BigInt `json:"balance"`
	AmountCollected           BigInt `json:"amountCollected"`
	LastUpdatedBlockTimestamp BigInt `json:"lastUpdatedBlockTimestamp"`
}

// AccountMetadataEvent mirrors one emitAccountMetadata emission.
type AccountMetadataEvent struct {
	ID                        string      `json:"id"`
	AccountID                 BigInt      `json:"accountId"`
	Key                       common.Hash `json:"key"`
	Value                     string      `json:"value"`
	LastUpdatedBlockTimestamp BigInt      `json:"lastUpdatedBlockTimestamp"`
}
