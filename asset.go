package drips

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// AssetID returns the protocol's asset ID for an ERC-20 token: the token
// address interpreted as a uint160.
func AssetID(erc20 common.Address) *big.Int {
	return new(big.Int).SetBytes(erc20.Bytes())
}

// AssetAddress recovers the ERC-20 token address from an asset ID.
func AssetAddress(assetID *big.Int) common.Address {
	return common.BigToAddress(assetID)
}
