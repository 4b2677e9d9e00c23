package drips

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Driver IDs registered in the hub. The driver ID occupies the top 32 bits
// of every account ID, so accounts of different drivers can never collide.
const (
	DriverIDAddress         uint32 = 0
	DriverIDNFT             uint32 = 1
	DriverIDImmutableSplits uint32 = 2
	DriverIDRepo            uint32 = 3
)

// driverSubIDBits is the width of the driver-specific part of an account ID.
const driverSubIDBits = 224

// AccountID combines a driver ID and a driver-specific sub-ID into a full
// account ID: driverID (32 bits) | subID (224 bits).
func AccountID(driverID uint32, subID *big.Int) (*big.Int, error) {
	if subID.Sign() < 0 || subID.BitLen() > driverSubIDBits {
		return nil, ErrAccountIDOverflow
	}
	sub, _ := uint256.FromBig(subID)
	id := uint256.NewInt(uint64(driverID))
	id.Lsh(id, driverSubIDBits)
	id.Or(id, sub)
	return id.ToBig(), nil
}

// AddressDriverAccountID derives the account ID the AddressDriver assigns to
// an address. It matches the contract's calcAccountId without a network call.
func AddressDriverAccountID(addr common.Address) *big.Int {
	id, err := AccountID(DriverIDAddress, new(big.Int).SetBytes(addr.Bytes()))
	if err != nil {
		// An address is 160 bits, always within the sub-ID field.
		panic(err)
	}
	return id
}

// DriverIDOf extracts the driver ID from the top 32 bits of an account ID.
func DriverIDOf(accountID *big.Int) uint32 {
	id, overflow := uint256.FromBig(accountID)
	if overflow {
		return 0
	}
	return uint32(new(uint256.Int).Rsh(id, driverSubIDBits).Uint64())
}
