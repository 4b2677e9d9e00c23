// Package drips provides a Go client SDK for the Drips funds-streaming
// protocol on Ethereum and compatible chains.
//
// Drips lets any account stream ERC-20 funds to other accounts over time and
// split received funds between accounts by weight. All protocol state lives
// in the deployed smart contracts; this package prepares well-formed calls
// and interprets returned data. It never signs or broadcasts transactions.
//
// # Clients
//
// Each deployed contract has a typed client:
//
//   - AddressDriver: the driver that gives every Ethereum address its own
//     Drips account. Use NewAddressDriver().
//
//   - NFTDriver: the driver that ties Drips accounts to minted tokens, so
//     account ownership is transferable. Use NewNFTDriver().
//
//   - Hub: the Drips hub holding all streams and splits state. Use NewHub().
//
//   - Caller: the generic call batcher and authorizer. Use NewCaller().
//
// Clients need a ContractBackend for view calls; *ethclient.Client satisfies
// it. Write operations do not touch the network at all: they validate their
// inputs and return a ContractCall holding the target address, ABI-encoded
// calldata, and attached value. Sign and submit it with your own tooling, or
// combine several into one transaction with a Caller Batch:
//
//	driver := drips.NewAddressDriver(network.AddressDriver, backend)
//	caller := drips.NewCaller(network.Caller, backend)
//
//	set, err := driver.SetStreams(weth, curr, balanceDelta, next, 0, 0, payer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	give, err := driver.Give(friend, weth, big.NewInt(1e18))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	batch := caller.NewBatch()
//	batch.Add(set)
//	batch.Add(give)
//	call, err := batch.Compile()
//
// # Stream configuration
//
// A stream receiver's configuration packs into a single uint256:
//
//	dripId (32 bits) | amtPerSec (160 bits) | start (32 bits) | duration (32 bits)
//
// StreamConfig is the unpacked form; Pack and UnpackStreamConfig convert
// between the two. The amount per second carries AmtPerSecExtraDecimals
// additional decimals of precision.
//
// # Subgraph
//
// The subgraph subpackage queries the protocol's off-chain indexer and
// reconstructs the stream history proofs needed by Hub.SqueezeStreams.
package drips
