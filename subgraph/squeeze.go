package subgraph

import (
	"context"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/drips-network/go-drips"
)

// BuildSqueezeArgs reconstructs the stream history proof that lets accountID
// squeeze funds streamed to it by senderID in the current, still-unfinished
// cycle.
//
// It walks the sender's receiver list updates for the asset, keeps the ones
// from the current cycle, and emits one history entry per update: the full
// receiver list when accountID appears in it, the stored hash otherwise.
// The proof's starting hash is the history hash that was valid right before
// the first kept update, so replaying the entries reproduces the sender's
// current on-chain history hash.
//
// An empty history in the returned args means there is nothing to squeeze.
func BuildSqueezeArgs(
	ctx context.Context,
	client *Client,
	accountID, senderID *big.Int,
	erc20 common.Address,
	cycleSecs uint32,
	now time.Time,
) (drips.SqueezeArgs, error) {
	args := drips.SqueezeArgs{
		AccountID: accountID,
		ERC20:     erc20,
		SenderID:  senderID,
	}

	events, err := client.StreamsSetEvents(ctx, senderID, drips.AssetID(erc20))
	if err != nil {
		return drips.SqueezeArgs{}, err
	}
	// The query orders by blockTimestamp, but equal timestamps must keep
	// subgraph order, so the sort has to be stable.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].BlockTimestamp.Cmp(&events[j].BlockTimestamp.Int) < 0
	})

	cycleStart := now.Unix() - now.Unix()%int64(cycleSecs)

	for _, event := range events {
		if event.BlockTimestamp.Int64() < cycleStart {
			continue
		}
		if len(args.History) == 0 {
			args.HistoryHash = [32]byte(event.StreamsHistoryHash)
		}

		entry, err := historyEntry(&event, accountID)
		if err != nil {
			return drips.SqueezeArgs{}, err
		}
		args.History = append(args.History, entry)
	}
	return args, nil
}

// historyEntry converts one receiver list update into a history proof entry.
func historyEntry(event *StreamsSetEvent, accountID *big.Int) (drips.StreamsHistory, error) {
	entry := drips.StreamsHistory{
		UpdateTime: event.BlockTimestamp.Uint32(),
		MaxEnd:     event.MaxEnd.Uint32(),
	}

	streamed := false
	for i := range event.Receivers {
		if event.Receivers[i].ReceiverAccountID.Cmp(accountID) == 0 {
			streamed = true
			break
		}
	}
	if !streamed {
		// The squeezing account isn't in this update's list; a hash-only
		// entry keeps the proof chain intact without revealing anything.
		entry.StreamsHash = [32]byte(event.ReceiversHash)
		return entry, nil
	}

	receivers := make([]drips.StreamReceiver, len(event.Receivers))
	for i, seen := range event.Receivers {
		cfg, err := drips.UnpackStreamConfigBig(&seen.Config.Int)
		if err != nil {
			return drips.StreamsHistory{}, err
		}
		receivers[i] = drips.StreamReceiver{
			AccountID: new(big.Int).Set(&seen.ReceiverAccountID.Int),
			Config:    cfg,
		}
	}
	// The on-chain hash covers the list in canonical order; the subgraph
	// does not guarantee it.
	drips.SortStreamReceivers(receivers)
	entry.Receivers = receivers
	return entry, nil
}
