package drips

import "github.com/ethereum/go-ethereum/common"

// NetworkConfig describes a Drips deployment on one chain.
type NetworkConfig struct {
	ChainID   uint64
	Name      string
	CycleSecs uint32

	Drips         common.Address
	AddressDriver common.Address
	NFTDriver     common.Address
	Caller        common.Address

	SubgraphURL string
}

// The protocol is deployed through a deterministic deployer, so the contract
// addresses are the same on every supported chain.
var (
	dripsAddr         = common.HexToAddress("0xd0Dd053392db676D57317CD4fe96Fc2cCf42D0b4")
	addressDriverAddr = common.HexToAddress("0x1455d9bD6B98f95dd8FEB2b3D60ed825fcef0610")
	nftDriverAddr     = common.HexToAddress("0xcf9c49B0962EDb01Cdaa5326299ba85D72405258")
	callerAddr        = common.HexToAddress("0x60F25ac5F289Dc7F640f948521d486C964A248e5")
)

// networks lists the known deployments, keyed by chain ID.
var networks = map[uint64]NetworkConfig{
	1: {
		ChainID:       1,
		Name:          "mainnet",
		CycleSecs:     604800,
		Drips:         dripsAddr,
		AddressDriver: addressDriverAddr,
		NFTDriver:     nftDriverAddr,
		Caller:        callerAddr,
		SubgraphURL:   "https://api.thegraph.com/subgraphs/name/drips-network/drips-v2-on-ethereum",
	},
	11155111: {
		ChainID:       11155111,
		Name:          "sepolia",
		CycleSecs:     604800,
		Drips:         dripsAddr,
		AddressDriver: addressDriverAddr,
		NFTDriver:     nftDriverAddr,
		Caller:        callerAddr,
		SubgraphURL:   "https://api.thegraph.com/subgraphs/name/drips-network/drips-v2-on-sepolia",
	},
	11155420: {
		ChainID:       11155420,
		Name:          "optimism-sepolia",
		CycleSecs:     604800,
		Drips:         dripsAddr,
		AddressDriver: addressDriverAddr,
		NFTDriver:     nftDriverAddr,
		Caller:        callerAddr,
		SubgraphURL:   "https://api.thegraph.com/subgraphs/name/drips-network/drips-v2-on-optimism-sepolia",
	},
	84532: {
		ChainID:       84532,
		Name:          "base-sepolia",
		CycleSecs:     604800,
		Drips:         dripsAddr,
		AddressDriver: addressDriverAddr,
		NFTDriver:     nftDriverAddr,
		Caller:        callerAddr,
		SubgraphURL:   "https://api.thegraph.com/subgraphs/name/drips-network/drips-v2-on-base-sepolia",
	},
	80002: {
		ChainID:       80002,
		Name:          "polygon-amoy",
		CycleSecs:     604800,
		Drips:         dripsAddr,
		AddressDriver: addressDriverAddr,
		NFTDriver:     nftDriverAddr,
		Caller:        callerAddr,
		SubgraphURL:   "https://api.thegraph.com/subgraphs/name/drips-network/drips-v2-on-amoy",
	},
}

// NetworkByChainID returns the deployment config for a chain ID.
func NetworkByChainID(chainID uint64) (NetworkConfig, bool) {
	cfg, ok := networks[chainID]
	return cfg, ok
}

// Networks returns all known deployment configs.
func Networks() []NetworkConfig {
	out := make([]NetworkConfig, 0, len(networks))
	for _, cfg := range networks {
		out = append(out, cfg)
	}
	return out
}
