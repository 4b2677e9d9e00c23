package drips

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestNFTDriverMint(t *testing.T) {
	driver := NewNFTDriver(common.HexToAddress("0x00000000000000000000000000000000000000cf"), nil)
	owner := common.HexToAddress("0x0000000000000000000000000000000000000001")

	call, err := driver.Mint(owner, nil)
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if call.To != driver.Address() {
		t.Errorf("To = %s, want driver address", call.To)
	}
	if !bytes.Equal(call.Data[:4], nftDriverABI.Methods["mint"].ID) {
		t.Error("mint selector mismatch")
	}

	safe, err := driver.SafeMint(owner, []AccountMetadata{{Key: MetadataKey("ipfs"), Value: []byte("x")}})
	if err != nil {
		t.Fatalf("SafeMint failed: %v", err)
	}
	if !bytes.Equal(safe.Data[:4], nftDriverABI.Methods["safeMint"].ID) {
		t.Error("safeMint selector mismatch")
	}
}

func TestNFTDriverTokenCalls(t *testing.T) {
	driver := NewNFTDriver(common.Address{}, nil)
	tokenID := big.NewInt(99)

	give, err := driver.Give(tokenID, big.NewInt(1), common.Address{}, big.NewInt(10))
	if err != nil {
		t.Fatalf("Give failed: %v", err)
	}
	args, err := nftDriverABI.Methods["give"].Inputs.Unpack(give.Data[4:])
	if err != nil {
		t.Fatalf("unpacking calldata failed: %v", err)
	}
	if args[0].(*big.Int).Int64() != 99 {
		t.Errorf("tokenId = %s, want 99", args[0])
	}

	set, err := driver.SetStreams(tokenID, common.Address{}, nil, big.NewInt(0),
		[]StreamReceiver{streamReceiver(1, 0, 1)}, 0, 0, common.Address{})
	if err != nil {
		t.Fatalf("SetStreams failed: %v", err)
	}
	if !bytes.Equal(set.Data[:4], nftDriverABI.Methods["setStreams"].ID) {
		t.Error("setStreams selector mismatch")
	}

	unsorted := []StreamReceiver{streamReceiver(2, 0, 1), streamReceiver(1, 0, 1)}
	_, err = driver.SetStreams(tokenID, common.Address{}, nil, big.NewInt(0), unsorted, 0, 0, common.Address{})
	if !errors.Is(err, ErrReceiversNotSorted) {
		t.Errorf("error = %v, want ErrReceiversNotSorted", err)
	}
}
