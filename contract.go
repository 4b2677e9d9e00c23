package drips

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractBackend is the subset of an Ethereum client needed for view calls.
// *ethclient.Client satisfies it. Keeping the interface this narrow lets
// tests run against a fake without a live node.
type ContractBackend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// ContractCall is an encoded contract call, ready to be signed and submitted
// by the caller's own tooling or batched through the Caller contract.
type ContractCall struct {
	To    common.Address
	Data  []byte
	Value *big.Int // nil means no attached value
}

// CallOption configures a single view call.
type CallOption func(*callConfig)

type callConfig struct {
	blockNumber *big.Int
}

// WithBlockNumber pins a view call to a specific block.
// By default calls run against the latest block.
func WithBlockNumber(blockNumber *big.Int) CallOption {
	return func(c *callConfig) {
		c.blockNumber = new(big.Int).Set(blockNumber)
	}
}

// boundContract ties a deployed contract's address and ABI to a backend.
// All clients in this package embed one.
type boundContract struct {
	address common.Address
	abi     abi.ABI
	backend ContractBackend
}

func newBoundContract(address common.Address, contractABI abi.ABI, backend ContractBackend) boundContract {
	return boundContract{
		address: address,
		abi:     contractABI,
		backend: backend,
	}
}

// Address returns the contract address.
func (c *boundContract) Address() common.Address {
	return c.address
}

// calldata packs a method call into ABI calldata.
func (c *boundContract) calldata(method string, args ...any) ([]byte, error) {
	if _, ok := c.abi.Methods[method]; !ok {
		return nil, &MethodNotFoundError{Contract: c.address, Method: method}
	}
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, &EncodingError{Method: method, Err: err}
	}
	return data, nil
}

// contractCall packs a method call into a ContractCall with no value.
func (c *boundContract) contractCall(method string, args ...any) (ContractCall, error) {
	data, err := c.calldata(method, args...)
	if err != nil {
		return ContractCall{}, err
	}
	return ContractCall{To: c.address, Data: data}, nil
}

// call runs a view method via eth_call and unpacks the outputs.
func (c *boundContract) call(ctx context.Context, method string, opts []CallOption, args ...any) ([]any, error) {
	cfg := &callConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	data, err := c.calldata(method, args...)
	if err != nil {
		return nil, err
	}

	msg := ethereum.CallMsg{To: &c.address, Data: data}
	out, err := c.backend.CallContract(ctx, msg, cfg.blockNumber)
	if err != nil {
		return nil, &CallError{Contract: c.address, Method: method, Err: err}
	}

	results, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, &EncodingError{Method: method, Err: err}
	}
	return results, nil
}

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
