package subgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gqlRequest is the wire shape machinebox/graphql posts.
type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func gqlServer(t *testing.T, handler func(req gqlRequest) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, handler(req))
	}))
}

func TestBigIntUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		fails bool
	}{
		{name: "quoted", input: `"12345"`, want: 12345},
		{name: "bare", input: `12345`, want: 12345},
		{name: "zero", input: `"0"`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "garbage", input: `"12x"`, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BigInt
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Int64())
		})
	}
}

func TestSplitsEntries(t *testing.T) {
	srv := gqlServer(t, func(req gqlRequest) string {
		assert.Equal(t, "77", req.Variables["accountId"])
		return `{"data": {"splitsEntries": [
			{"id": "a", "accountId": "77", "receiverAccountId": "100", "weight": "250000"},
			{"id": "b", "accountId": "77", "receiverAccountId": "200", "weight": "750000"}
		]}}`
	})
	defer srv.Close()

	client := New(srv.URL)
	entries, err := client.SplitsEntries(context.Background(), big.NewInt(77))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(100), entries[0].ReceiverAccountID.Int64())
	assert.Equal(t, int64(750000), entries[1].Weight.Int64())
}

func TestStreamsSetEventsPagination(t *testing.T) {
	pages := map[float64]string{
		0: `{"data": {"streamsSetEvents": [
			{"id": "1", "accountId": "5", "blockTimestamp": "100"},
			{"id": "2", "accountId": "5", "blockTimestamp": "200"}
		]}}`,
		2: `{"data": {"streamsSetEvents": [
			{"id": "3", "accountId": "5", "blockTimestamp": "300"}
		]}}`,
	}

	var requests int
	srv := gqlServer(t, func(req gqlRequest) string {
		requests++
		skip := req.Variables["skip"].(float64)
		return pages[skip]
	})
	defer srv.Close()

	client := New(srv.URL, WithPageSize(2))
	events, err := client.StreamsSetEvents(context.Background(), big.NewInt(5), big.NewInt(1))
	require.NoError(t, err)
	assert.Len(t, events, 3)
	assert.Equal(t, 2, requests)
	assert.Equal(t, "3", events[2].ID)
}

func TestAssetConfigs(t *testing.T) {
	srv := gqlServer(t, func(req gqlRequest) string {
		return `{"data": {"assetConfigs": [
			{"id": "x", "accountId": "9", "assetId": "42", "balance": "1000",
			 "amountCollected": "500", "lastUpdatedBlockTimestamp": "1700000000"}
		]}}`
	})
	defer srv.Close()

	client := New(srv.URL)
	configs, err := client.AssetConfigs(context.Background(), big.NewInt(9))
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, int64(42), configs[0].AssetID.Int64())
	assert.Equal(t, int64(500), configs[0].AmountCollected.Int64())
}

func TestLatestAccountMetadata(t *testing.T) {
	srv := gqlServer(t, func(req gqlRequest) string {
		return `{"data": {"accountMetadataEvents": [
			{"id": "m", "accountId": "9",
			 "key": "0x6970667300000000000000000000000000000000000000000000000000000000",
			 "value": "QmHash", "lastUpdatedBlockTimestamp": "1700000000"}
		]}}`
	})
	defer srv.Close()

	client := New(srv.URL)
	var key [32]byte
	copy(key[:], "ipfs")
	event, ok, err := client.LatestAccountMetadata(context.Background(), big.NewInt(9), key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "QmHash", event.Value)
}

func TestLatestAccountMetadataMissing(t *testing.T) {
	srv := gqlServer(t, func(req gqlRequest) string {
		return `{"data": {"accountMetadataEvents": []}}`
	})
	defer srv.Close()

	client := New(srv.URL)
	_, ok, err := client.LatestAccountMetadata(context.Background(), big.NewInt(9), [32]byte{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueryError(t *testing.T) {
	srv := gqlServer(t, func(req gqlRequest) string {
		return `{"errors": [{"message": "indexer overloaded"}]}`
	})
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.SplitsEntries(context.Background(), big.NewInt(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indexer overloaded")
}
