package subgraph

// GraphQL documents for the typed queries. All list queries page with
// $first/$skip, ordered so paging is stable.

const queryStreamsSetEvents = `
query streamsSetEvents($accountId: BigInt!, $assetId: BigInt!, $first: Int!, $skip: Int!) {
	streamsSetEvents(
		where: {accountId: $accountId, assetId: $assetId}
		orderBy: blockTimestamp
		orderDirection: asc
		first: $first
		skip: $skip
	) {
		id
		accountId
		assetId
		receiversHash
		streamsHistoryHash
		balance
		maxEnd
		blockTimestamp
		streamReceiverSeenEvents {
			id
			receiverAccountId
			config
		}
	}
}`

const queryStreamsSetEventsByReceiver = `
query streamsSetEventsByReceiver($receiverId: BigInt!, $first: Int!, $skip: Int!) {
	streamReceiverSeenEvents(
		where: {receiverAccountId: $receiverId}
		orderBy: id
		orderDirection: asc
		first: $first
		skip: $skip
	) {
		streamsSetEvent {
			id
			accountId
			assetId
			receiversHash
			streamsHistoryHash
			balance
			maxEnd
			blockTimestamp
			streamReceiverSeenEvents {
				id
				receiverAccountId
				config
			}
		}
	}
}`

const querySplitsEntries = `
query splitsEntries($accountId: BigInt!, $first: Int!, $skip: Int!) {
	splitsEntries(
		where: {accountId: $accountId}
		orderBy: receiverAccountId
		orderDirection: asc
		first: $first
		skip: $skip
	) {
		id
		accountId
		receiverAccountId
		weight
	}
}`

const queryAssetConfigs = `
query assetConfigs($accountId: BigInt!, $first: Int!, $skip: Int!) {
	assetConfigs(
		where: {accountId: $accountId}
		orderBy: assetId
		orderDirection: asc
		first: $first
		skip: $skip
	) {
		id
		accountId
		assetId
		balance
		amountCollected
		lastUpdatedBlockTimestamp
	}
}`

const queryAccountMetadata = `
query accountMetadata($accountId: BigInt!, $key: Bytes!, $first: Int!, $skip: Int!) {
	accountMetadataEvents(
		where: {accountId: $accountId, key: $key}
		orderBy: lastUpdatedBlockTimestamp
		orderDirection: desc
		first: $first
		skip: $skip
	) {
		id
		accountId
		key
		value
		lastUpdatedBlockTimestamp
	}
}`
