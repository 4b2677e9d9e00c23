package drips

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NFTDriver is a client for the NFTDriver contract, the driver that ties
// Drips accounts to minted ERC-721 tokens. The token ID is the account ID,
// so transferring the token transfers control of the account.
//
// All methods are call builders; token minting and ownership queries beyond
// this surface are the plain ERC-721 interface.
type NFTDriver struct {
	boundContract
}

// NewNFTDriver creates an NFTDriver client.
// The backend may be nil if only call builders are used.
func NewNFTDriver(address common.Address, backend ContractBackend) *NFTDriver {
	return &NFTDriver{newBoundContract(address, nftDriverABI, backend)}
}

// Mint builds a call minting a new token, and with it a new account, to the
// given owner, optionally emitting initial metadata.
func (d *NFTDriver) Mint(to common.Address, metadata []AccountMetadata) (ContractCall, error) {
	return d.contractCall("mint", to, toABIAccountMetadata(metadata))
}

// SafeMint is like Mint but uses ERC-721 safeMint semantics.
func (d *NFTDriver) SafeMint(to common.Address, metadata []AccountMetadata) (ContractCall, error) {
	return d.contractCall("safeMint", to, toABIAccountMetadata(metadata))
}

// Collect builds a call collecting the token account's already-split funds.
func (d *NFTDriver) Collect(tokenID *big.Int, erc20, transferTo common.Address) (ContractCall, error) {
	return d.contractCall("collect", tokenID, erc20, transferTo)
}

// Give builds a call transferring funds from the token account directly to
// the receiver's splittable balance.
func (d *NFTDriver) Give(tokenID, receiver *big.Int, erc20 common.Address, amt *big.Int) (ContractCall, error) {
	return d.contractCall("give", tokenID, receiver, erc20, amt)
}

// SetStreams builds a call replacing the token account's stream receiver
// list. See AddressDriver.SetStreams for parameter semantics.
func (d *NFTDriver) SetStreams(
	tokenID *big.Int,
	erc20 common.Address,
	currReceivers []StreamReceiver,
	balanceDelta *big.Int,
	newReceivers []StreamReceiver,
	maxEndHint1, maxEndHint2 uint32,
	transferTo common.Address,
) (ContractCall, error) {
	curr, next, err := validateSetStreams(currReceivers, newReceivers)
	if err != nil {
		return ContractCall{}, err
	}
	return d.contractCall("setStreams", tokenID, erc20, curr, balanceDelta, next, maxEndHint1, maxEndHint2, transferTo)
}

// SetSplits builds a call replacing the token account's splits receiver list.
func (d *NFTDriver) SetSplits(tokenID *big.Int, receivers []SplitsReceiver) (ContractCall, error) {
	if err := ValidateSplitsReceivers(receivers); err != nil {
		return ContractCall{}, err
	}
	return d.contractCall("setSplits", tokenID, toABISplitsReceivers(receivers))
}

// EmitAccountMetadata builds a call emitting metadata events for the token
// account.
func (d *NFTDriver) EmitAccountMetadata(tokenID *big.Int, metadata []AccountMetadata) (ContractCall, error) {
	return d.contractCall("emitAccountMetadata", tokenID, toABIAccountMetadata(metadata))
}
