// Package subgraph queries the Drips protocol's off-chain GraphQL indexer
// and rebuilds the stream history proofs needed for squeezing.
package subgraph

import (
	"context"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/machinebox/graphql"
	"github.com/rs/zerolog"

	"github.com/drips-network/go-drips"
)

// defaultPageSize keeps each query well under the indexer's result cap.
const defaultPageSize = 500

// Client is a typed client for one Drips subgraph deployment.
type Client struct {
	gql      *graphql.Client
	url      string
	log      zerolog.Logger
	pageSize int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for subgraph requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.gql = graphql.NewClient(c.url, graphql.WithHTTPClient(httpClient))
	}
}

// WithLogger sets the logger. The client is silent by default.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithPageSize sets the page size for list queries.
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// New creates a Client for a subgraph endpoint URL.
func New(url string, opts ...Option) *Client {
	c := &Client{
		gql:      graphql.NewClient(url),
		url:      url,
		log:      zerolog.Nop(),
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewForNetwork creates a Client for a deployment's subgraph.
func NewForNetwork(network drips.NetworkConfig, opts ...Option) *Client {
	return New(network.SubgraphURL, opts...)
}

// run executes one GraphQL request and logs its outcome.
func (c *Client) run(ctx context.Context, operation string, req *graphql.Request, resp any) error {
	start := time.Now()
	err := c.gql.Run(ctx, req, resp)
	evt := c.log.Debug().Str("operation", operation).Dur("elapsed", time.Since(start))
	if err != nil {
		evt.Err(err).Msg("subgraph query failed")
		return err
	}
	evt.Msg("subgraph query")
	return nil
}

// StreamsSetEvents returns all of a sender's stream receiver list updates
// for one asset, ordered by block timestamp ascending.
func (c *Client) StreamsSetEvents(ctx context.Context, senderID, assetID *big.Int) ([]StreamsSetEvent, error) {
	var all []StreamsSetEvent
	for skip := 0; ; skip += c.pageSize {
		req := graphql.NewRequest(queryStreamsSetEvents)
		req.Var("accountId", senderID.String())
		req.Var("assetId", assetID.String())
		req.Var("first", c.pageSize)
		req.Var("skip", skip)

		var resp struct {
			StreamsSetEvents []StreamsSetEvent `json:"streamsSetEvents"`
		}
		if err := c.run(ctx, "streamsSetEvents", req, &resp); err != nil {
			return nil, err
		}
		all = append(all, resp.StreamsSetEvents...)
		if len(resp.StreamsSetEvents) < c.pageSize {
			return all, nil
		}
	}
}

// StreamsSetEventsByReceiver returns every stream receiver list update that
// includes the given account as a receiver.
func (c *Client) StreamsSetEventsByReceiver(ctx context.Context, receiverID *big.Int) ([]StreamsSetEvent, error) {
	var all []StreamsSetEvent
	for skip := 0; ; skip += c.pageSize {
		req := graphql.NewRequest(queryStreamsSetEventsByReceiver)
		req.Var("receiverId", receiverID.String())
		req.Var("first", c.pageSize)
		req.Var("skip", skip)

		var resp struct {
			StreamReceiverSeenEvents []struct {
				StreamsSetEvent StreamsSetEvent `json:"streamsSetEvent"`
			} `json:"streamReceiverSeenEvents"`
		}
		if err := c.run(ctx, "streamsSetEventsByReceiver", req, &resp); err != nil {
			return nil, err
		}
		for _, seen := range resp.StreamReceiverSeenEvents {
			all = append(all, seen.StreamsSetEvent)
		}
		if len(resp.StreamReceiverSeenEvents) < c.pageSize {
			return all, nil
		}
	}
}

// SplitsEntries returns an account's current splits receiver list.
func (c *Client) SplitsEntries(ctx context.Context, accountID *big.Int) ([]SplitsEntry, error) {
	var all []SplitsEntry
	for skip := 0; ; skip += c.pageSize {
		req := graphql.NewRequest(querySplitsEntries)
		req.Var("accountId", accountID.String())
		req.Var("first", c.pageSize)
		req.Var("skip", skip)

		var resp struct {
			SplitsEntries []SplitsEntry `json:"splitsEntries"`
		}
		if err := c.run(ctx, "splitsEntries", req, &resp); err != nil {
			return nil, err
		}
		all = append(all, resp.SplitsEntries...)
		if len(resp.SplitsEntries) < c.pageSize {
			return all, nil
		}
	}
}

// AssetConfigs returns an account's per-asset aggregate states.
func (c *Client) AssetConfigs(ctx context.Context, accountID *big.Int) ([]AssetConfig, error) {
	var all []AssetConfig
	for skip := 0; ; skip += c.pageSize {
		req := graphql.NewRequest(queryAssetConfigs)
		req.Var("accountId", accountID.String())
		req.Var("first", c.pageSize)
		req.Var("skip", skip)

		var resp struct {
			AssetConfigs []AssetConfig `json:"assetConfigs"`
		}
		if err := c.run(ctx, "assetConfigs", req, &resp); err != nil {
			return nil, err
		}
		all = append(all, resp.AssetConfigs...)
		if len(resp.AssetConfigs) < c.pageSize {
			return all, nil
		}
	}
}

// LatestAccountMetadata returns the most recent metadata value emitted for
// an account under the given key, or ok=false if none was ever emitted.
func (c *Client) LatestAccountMetadata(ctx context.Context, accountID *big.Int, key [32]byte) (AccountMetadataEvent, bool, error) {
	req := graphql.NewRequest(queryAccountMetadata)
	req.Var("accountId", accountID.String())
	req.Var("key", common.Hash(key).Hex())
	req.Var("first", 1)
	req.Var("skip", 0)

	var resp struct {
		AccountMetadataEvents []AccountMetadataEvent `json:"accountMetadataEvents"`
	}
	if err := c.run(ctx, "accountMetadata", req, &resp); err != nil {
		return AccountMetadataEvent{}, false, err
	}
	if len(resp.AccountMetadataEvents) == 0 {
		return AccountMetadataEvent{}, false, nil
	}
	return resp.AccountMetadataEvents[0], true, nil
}
