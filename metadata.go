package drips

// AccountMetadata is one key-value entry emitted with emitAccountMetadata.
// The protocol stores nothing; metadata only exists as event history for
// off-chain consumers such as the subgraph.
type AccountMetadata struct {
	Key   [32]byte
	Value []byte
}

// abiAccountMetadata matches the AccountMetadata struct layout for ABI packing.
type abiAccountMetadata struct {
	Key   [32]byte `abi:"key"`
	Value []byte   `abi:"value"`
}

func toABIAccountMetadata(metadata []AccountMetadata) []abiAccountMetadata {
	out := make([]abiAccountMetadata, len(metadata))
	for i, m := range metadata {
		out[i] = abiAccountMetadata{Key: m.Key, Value: m.Value}
	}
	return out
}

// MetadataKey builds a metadata key from a short string, right-padded with
// zero bytes. Strings longer than 32 bytes are truncated.
func MetadataKey(key string) [32]byte {
	var k [32]byte
	copy(k[:], key)
	return k
}
