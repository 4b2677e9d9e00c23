package drips

// ABI subsets of the deployed contracts, limited to the entry points this
// SDK uses. The full ABIs live in the protocol's contracts repository.

const streamReceiverComponents = `[
	{"name": "accountId", "type": "uint256"},
	{"name": "config", "type": "uint256"}
]`

const addressDriverABIJSON = `[
	{
		"name": "calcAccountId",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "addr", "type": "address"}
		],
		"outputs": [
			{"name": "accountId", "type": "uint256"}
		]
	},
	{
		"name": "collect",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "erc20", "type": "address"},
			{"name": "transferTo", "type": "address"}
		],
		"outputs": [
			{"name": "amt", "type": "uint128"}
		]
	},
	{
		"name": "give",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "receiver", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "amt", "type": "uint128"}
		],
		"outputs": []
	},
	{
		"name": "setStreams",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "erc20", "type": "address"},
			{"name": "currReceivers", "type": "tuple[]", "components": ` + streamReceiverComponents + `},
			{"name": "balanceDelta", "type": "int128"},
			{"name": "newReceivers", "type": "tuple[]", "components": ` + streamReceiverComponents + `},
			{"name": "maxEndHint1", "type": "uint32"},
			{"name": "maxEndHint2", "type": "uint32"},
			{"name": "transferTo", "type": "address"}
		],
		"outputs": [
			{"name": "realBalanceDelta", "type": "int128"}
		]
	},
	{
		"name": "setSplits",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "receivers", "type": "tuple[]", "components": [
				{"name": "accountId", "type": "uint256"},
				{"name": "weight", "type": "uint32"}
			]}
		],
		"outputs": []
	},
	{
		"name": "emitAccountMetadata",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "accountMetadata", "type": "tuple[]", "components": [
				{"name": "key", "type": "bytes32"},
				{"name": "value", "type": "bytes"}
			]}
		],
		"outputs": []
	}
]`

const nftDriverABIJSON = `[
	{
		"name": "mint",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "accountMetadata", "type": "tuple[]", "components": [
				{"name": "key", "type": "bytes32"},
				{"name": "value", "type": "bytes"}
			]}
		],
		"outputs": [
			{"name": "tokenId", "type": "uint256"}
		]
	},
	{
		"name": "safeMint",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "accountMetadata", "type": "tuple[]", "components": [
				{"name": "key", "type": "bytes32"},
				{"name": "value", "type": "bytes"}
			]}
		],
		"outputs": [
			{"name": "tokenId", "type": "uint256"}
		]
	},
	{
		"name": "collect",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "tokenId", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "transferTo", "type": "address"}
		],
		"outputs": [
			{"name": "amt", "type": "uint128"}
		]
	},
	{
		"name": "give",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "tokenId", "type": "uint256"},
			{"name": "receiver", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "amt", "type": "uint128"}
		],
		"outputs": []
	},
	{
		"name": "setStreams",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "tokenId", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "currReceivers", "type": "tuple[]", "components": ` + streamReceiverComponents + `},
			{"name": "balanceDelta", "type": "int128"},
			{"name": "newReceivers", "type": "tuple[]", "components": ` + streamReceiverComponents + `},
			{"name": "maxEndHint1", "type": "uint32"},
			{"name": "maxEndHint2", "type": "uint32"},
			{"name": "transferTo", "type": "address"}
		],
		"outputs": [
			{"name": "realBalanceDelta", "type": "int128"}
		]
	},
	{
		"name": "setSplits",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "tokenId", "type": "uint256"},
			{"name": "receivers", "type": "tuple[]", "components": [
				{"name": "accountId", "type": "uint256"},
				{"name": "weight", "type": "uint32"}
			]}
		],
		"outputs": []
	},
	{
		"name": "emitAccountMetadata",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "tokenId", "type": "uint256"},
			{"name": "accountMetadata", "type": "tuple[]", "components": [
				{"name": "key", "type": "bytes32"},
				{"name": "value", "type": "bytes"}
			]}
		],
		"outputs": []
	}
]`

const hubABIJSON = `[
	{
		"name": "cycleSecs",
		"type": "function",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [
			{"name": "", "type": "uint32"}
		]
	},
	{
		"name": "streamsState",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"}
		],
		"outputs": [
			{"name": "streamsHash", "type": "bytes32"},
			{"name": "streamsHistoryHash", "type": "bytes32"},
			{"name": "updateTime", "type": "uint32"},
			{"name": "balance", "type": "uint128"},
			{"name": "maxEnd", "type": "uint32"}
		]
	},
	{
		"name": "balanceAt",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "currReceivers", "type": "tuple[]", "components": ` + streamReceiverComponents + `},
			{"name": "timestamp", "type": "uint32"}
		],
		"outputs": [
			{"name": "balance", "type": "uint128"}
		]
	},
	{
		"name": "receivableStreamsCycles",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"}
		],
		"outputs": [
			{"name": "cycles", "type": "uint32"}
		]
	},
	{
		"name": "receiveStreamsResult",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "maxCycles", "type": "uint32"}
		],
		"outputs": [
			{"name": "receivableAmt", "type": "uint128"}
		]
	},
	{
		"name": "receiveStreams",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "maxCycles", "type": "uint32"}
		],
		"outputs": [
			{"name": "receivedAmt", "type": "uint128"}
		]
	},
	{
		"name": "squeezeStreams",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "senderId", "type": "uint256"},
			{"name": "historyHash", "type": "bytes32"},
			{"name": "streamsHistory", "type": "tuple[]", "components": [
				{"name": "streamsHash", "type": "bytes32"},
				{"name": "receivers", "type": "tuple[]", "components": ` + streamReceiverComponents + `},
				{"name": "updateTime", "type": "uint32"},
				{"name": "maxEnd", "type": "uint32"}
			]}
		],
		"outputs": [
			{"name": "amt", "type": "uint128"}
		]
	},
	{
		"name": "squeezeStreamsResult",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "senderId", "type": "uint256"},
			{"name": "historyHash", "type": "bytes32"},
			{"name": "streamsHistory", "type": "tuple[]", "components": [
				{"name": "streamsHash", "type": "bytes32"},
				{"name": "receivers", "type": "tuple[]", "components": ` + streamReceiverComponents + `},
				{"name": "updateTime", "type": "uint32"},
				{"name": "maxEnd", "type": "uint32"}
			]}
		],
		"outputs": [
			{"name": "amt", "type": "uint128"}
		]
	},
	{
		"name": "splittable",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"}
		],
		"outputs": [
			{"name": "amt", "type": "uint128"}
		]
	},
	{
		"name": "split",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"},
			{"name": "currReceivers", "type": "tuple[]", "components": [
				{"name": "accountId", "type": "uint256"},
				{"name": "weight", "type": "uint32"}
			]}
		],
		"outputs": [
			{"name": "collectableAmt", "type": "uint128"},
			{"name": "splitAmt", "type": "uint128"}
		]
	},
	{
		"name": "collectable",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "accountId", "type": "uint256"},
			{"name": "erc20", "type": "address"}
		],
		"outputs": [
			{"name": "amt", "type": "uint128"}
		]
	}
]`

const callerABIJSON = `[
	{
		"name": "authorize",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "user", "type": "address"}
		],
		"outputs": []
	},
	{
		"name": "unauthorize",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "user", "type": "address"}
		],
		"outputs": []
	},
	{
		"name": "isAuthorized",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "sender", "type": "address"},
			{"name": "user", "type": "address"}
		],
		"outputs": [
			{"name": "authorized", "type": "bool"}
		]
	},
	{
		"name": "allAuthorized",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "sender", "type": "address"}
		],
		"outputs": [
			{"name": "authorized", "type": "address[]"}
		]
	},
	{
		"name": "callAs",
		"type": "function",
		"stateMutability": "payable",
		"inputs": [
			{"name": "sender", "type": "address"},
			{"name": "to", "type": "address"},
			{"name": "data", "type": "bytes"}
		],
		"outputs": [
			{"name": "returnData", "type": "bytes"}
		]
	},
	{
		"name": "callBatched",
		"type": "function",
		"stateMutability": "payable",
		"inputs": [
			{"name": "calls", "type": "tuple[]", "components": [
				{"name": "to", "type": "address"},
				{"name": "data", "type": "bytes"},
				{"name": "value", "type": "uint256"}
			]}
		],
		"outputs": [
			{"name": "returnData", "type": "bytes[]"}
		]
	}
]`

// Parsed ABIs, shared by all client instances.
var (
	addressDriverABI = MustParseABI(addressDriverABIJSON)
	nftDriverABI     = MustParseABI(nftDriverABIJSON)
	hubABI           = MustParseABI(hubABIJSON)
	callerABI        = MustParseABI(callerABIJSON)
)
