package drips

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Stream configuration constants.
const (
	// AmtPerSecExtraDecimals is the number of extra decimals of precision
	// carried by an amtPerSec value on top of the token's own decimals.
	AmtPerSecExtraDecimals = 9

	// AmtPerSecMultiplier converts a per-second token amount into an
	// amtPerSec value: amtPerSec = tokens/sec * AmtPerSecMultiplier.
	AmtPerSecMultiplier = 1_000_000_000

	// amtPerSecBits is the width of the amtPerSec field in a packed config.
	amtPerSecBits = 160
)

// StreamConfig describes a single stream: its rate and its active window.
//
// A zero Start means the stream starts at the timestamp of the update that
// sets it. A zero Duration means the stream runs until balance runs out.
type StreamConfig struct {
	// DripID is an arbitrary number used to identify a stream. It has no
	// on-chain meaning beyond being part of the receiver's identity.
	DripID uint32

	// AmtPerSec is the streaming rate per second, with AmtPerSecExtraDecimals
	// extra decimals. Must be positive and fit in 160 bits.
	AmtPerSec *big.Int

	// Start is the stream start as a Unix timestamp, or zero.
	Start uint32

	// Duration is the stream duration in seconds, or zero.
	Duration uint32
}

// Validate checks that the configuration can be packed.
func (c StreamConfig) Validate() error {
	if c.AmtPerSec == nil || c.AmtPerSec.Sign() <= 0 {
		return ErrAmtPerSecZero
	}
	if c.AmtPerSec.BitLen() > amtPerSecBits {
		return ErrAmtPerSecTooLarge
	}
	return nil
}

// Pack encodes the configuration into its on-chain uint256 representation:
//
//	dripId (32 bits) | amtPerSec (160 bits) | start (32 bits) | duration (32 bits)
//
// with dripId in the most significant bits.
func (c StreamConfig) Pack() (*uint256.Int, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	amt, overflow := uint256.FromBig(c.AmtPerSec)
	if overflow {
		return nil, ErrAmtPerSecTooLarge
	}

	w := uint256.NewInt(uint64(c.DripID))
	w.Lsh(w, amtPerSecBits)
	w.Or(w, amt)
	w.Lsh(w, 32)
	w.Or(w, uint256.NewInt(uint64(c.Start)))
	w.Lsh(w, 32)
	w.Or(w, uint256.NewInt(uint64(c.Duration)))
	return w, nil
}

// MustPack is like Pack but panics on error.
// Use only with already-validated configurations.
func (c StreamConfig) MustPack() *uint256.Int {
	w, err := c.Pack()
	if err != nil {
		panic(err)
	}
	return w
}

// PackBig is like Pack but returns a *big.Int for ABI encoding.
func (c StreamConfig) PackBig() (*big.Int, error) {
	w, err := c.Pack()
	if err != nil {
		return nil, err
	}
	return w.ToBig(), nil
}

// Cmp compares two configurations by their packed representation.
// This is the order the protocol requires of receiver lists.
func (c StreamConfig) Cmp(other StreamConfig) int {
	a := c.MustPack()
	b := other.MustPack()
	return a.Cmp(b)
}

// UnpackStreamConfig decodes a packed uint256 configuration.
// The decoded configuration is validated, so a zero amtPerSec is rejected.
func UnpackStreamConfig(w *uint256.Int) (StreamConfig, error) {
	rest := new(uint256.Int).Set(w)

	duration := uint32(rest.Uint64())
	rest.Rsh(rest, 32)
	start := uint32(rest.Uint64())
	rest.Rsh(rest, 32)

	amtMask := new(uint256.Int).Lsh(uint256.NewInt(1), amtPerSecBits)
	amtMask.SubUint64(amtMask, 1)
	amt := new(uint256.Int).And(rest, amtMask)
	rest.Rsh(rest, amtPerSecBits)

	cfg := StreamConfig{
		DripID:    uint32(rest.Uint64()),
		AmtPerSec: amt.ToBig(),
		Start:     start,
		Duration:  duration,
	}
	if err := cfg.Validate(); err != nil {
		return StreamConfig{}, err
	}
	return cfg, nil
}

// UnpackStreamConfigBig is like UnpackStreamConfig for *big.Int values,
// as returned by ABI decoding and the subgraph.
func UnpackStreamConfigBig(v *big.Int) (StreamConfig, error) {
	w, overflow := uint256.FromBig(v)
	if overflow || v.Sign() < 0 {
		return StreamConfig{}, ErrConfigTooLarge
	}
	return UnpackStreamConfig(w)
}
