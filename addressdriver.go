package drips

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// AddressDriver is a client for the AddressDriver contract, the driver that
// gives every Ethereum address a Drips account with a deterministic ID.
//
// View methods call the contract through the backend. All other methods are
// call builders: they validate their inputs and return an encoded
// ContractCall without touching the network.
type AddressDriver struct {
	boundContract
}

// NewAddressDriver creates an AddressDriver client.
// The backend may be nil if only call builders are used.
func NewAddressDriver(address common.Address, backend ContractBackend) *AddressDriver {
	return &AddressDriver{newBoundContract(address, addressDriverABI, backend)}
}

// CalcAccountID asks the contract for the account ID of an address.
// AddressDriverAccountID computes the same value locally.
func (d *AddressDriver) CalcAccountID(ctx context.Context, addr common.Address, opts ...CallOption) (*big.Int, error) {
	results, err := d.call(ctx, "calcAccountId", opts, addr)
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// Collect builds a call collecting the sender's already-split funds of the
// given token, transferring them to transferTo.
func (d *AddressDriver) Collect(erc20, transferTo common.Address) (ContractCall, error) {
	return d.contractCall("collect", erc20, transferTo)
}

// Give builds a call transferring funds directly to the receiver's
// splittable balance, outside of any stream.
func (d *AddressDriver) Give(receiver *big.Int, erc20 common.Address, amt *big.Int) (ContractCall, error) {
	return d.contractCall("give", receiver, erc20, amt)
}

// SetStreams builds a call replacing the sender's stream receiver list for a
// token and adjusting the streamed balance by balanceDelta (negative values
// withdraw to transferTo). currReceivers must match the list currently
// on-chain; newReceivers is the replacement. The maxEnd hints are optional
// gas optimizations and may both be zero.
func (d *AddressDriver) SetStreams(
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
	return d.contractCall("setStreams", erc20, curr, balanceDelta, next, maxEndHint1, maxEndHint2, transferTo)
}

// SetSplits builds a call replacing the sender's splits receiver list.
func (d *AddressDriver) SetSplits(receivers []SplitsReceiver) (ContractCall, error) {
	if err := ValidateSplitsReceivers(receivers); err != nil {
		return ContractCall{}, err
	}
	return d.contractCall("setSplits", toABISplitsReceivers(receivers))
}

// EmitAccountMetadata builds a call emitting metadata events for the
// sender's account.
func (d *AddressDriver) EmitAccountMetadata(metadata []AccountMetadata) (ContractCall, error) {
	return d.contractCall("emitAccountMetadata", toABIAccountMetadata(metadata))
}

// validateSetStreams validates both receiver lists of a setStreams call and
// converts them for ABI encoding.
func validateSetStreams(currReceivers, newReceivers []StreamReceiver) ([]abiStreamReceiver, []abiStreamReceiver, error) {
	if err := ValidateStreamReceivers(currReceivers); err != nil {
		return nil, nil, err
	}
	if err := ValidateStreamReceivers(newReceivers); err != nil {
		return nil, nil, err
	}
	curr, err := toABIStreamReceivers(currReceivers)
	if err != nil {
		return nil, nil, err
	}
	next, err := toABIStreamReceivers(newReceivers)
	if err != nil {
		return nil, nil, err
	}
	return curr, next, nil
}
