package drips

import (
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func TestStreamConfigPackLayout(t *testing.T) {
	cfg := StreamConfig{
		DripID:    1,
		AmtPerSec: big.NewInt(2_000_000_000),
		Start:     100,
		Duration:  200,
	}

	packed, err := cfg.Pack()
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	// Rebuild the word with independent big.Int arithmetic.
	want := big.NewInt(1)
	want.Lsh(want, 160)
	want.Or(want, big.NewInt(2_000_000_000))
	want.Lsh(want, 32)
	want.Or(want, big.NewInt(100))
	want.Lsh(want, 32)
	want.Or(want, big.NewInt(200))

	if packed.ToBig().Cmp(want) != 0 {
		t.Errorf("packed = %s, want %s", packed.ToBig(), want)
	}
}

func TestStreamConfigRoundTrip(t *testing.T) {
	maxAmt := new(big.Int).Lsh(big.NewInt(1), 160)
	maxAmt.Sub(maxAmt, big.NewInt(1))

	tests := []struct {
		name string
		cfg  StreamConfig
	}{
		{"minimal", StreamConfig{AmtPerSec: big.NewInt(1)}},
		{"typical", StreamConfig{DripID: 7, AmtPerSec: big.NewInt(123_456_789), Start: 1_700_000_000, Duration: 86400}},
		{"max fields", StreamConfig{DripID: ^uint32(0), AmtPerSec: maxAmt, Start: ^uint32(0), Duration: ^uint32(0)}},
		{"zero start and duration", StreamConfig{DripID: 42, AmtPerSec: big.NewInt(1_000_000_000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := tt.cfg.Pack()
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			got, err := UnpackStreamConfig(packed)
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if got.DripID != tt.cfg.DripID {
				t.Errorf("DripID = %d, want %d", got.DripID, tt.cfg.DripID)
			}
			if got.AmtPerSec.Cmp(tt.cfg.AmtPerSec) != 0 {
				t.Errorf("AmtPerSec = %s, want %s", got.AmtPerSec, tt.cfg.AmtPerSec)
			}
			if got.Start != tt.cfg.Start {
				t.Errorf("Start = %d, want %d", got.Start, tt.cfg.Start)
			}
			if got.Duration != tt.cfg.Duration {
				t.Errorf("Duration = %d, want %d", got.Duration, tt.cfg.Duration)
			}
		})
	}
}

func TestStreamConfigValidate(t *testing.T) {
	tooLarge := new(big.Int).Lsh(big.NewInt(1), 160)

	tests := []struct {
		name    string
		cfg     StreamConfig
		wantErr error
	}{
		{"valid", StreamConfig{AmtPerSec: big.NewInt(1)}, nil},
		{"nil amtPerSec", StreamConfig{}, ErrAmtPerSecZero},
		{"zero amtPerSec", StreamConfig{AmtPerSec: big.NewInt(0)}, ErrAmtPerSecZero},
		{"negative amtPerSec", StreamConfig{AmtPerSec: big.NewInt(-1)}, ErrAmtPerSecZero},
		{"amtPerSec too large", StreamConfig{AmtPerSec: tooLarge}, ErrAmtPerSecTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if _, packErr := tt.cfg.Pack(); packErr == nil {
					t.Error("Pack() succeeded on invalid config")
				}
			}
		})
	}
}

func TestStreamConfigCmp(t *testing.T) {
	low := StreamConfig{DripID: 0, AmtPerSec: big.NewInt(1), Start: 0, Duration: 0}
	mid := StreamConfig{DripID: 0, AmtPerSec: big.NewInt(2), Start: 0, Duration: 0}
	high := StreamConfig{DripID: 1, AmtPerSec: big.NewInt(1), Start: 0, Duration: 0}

	if low.Cmp(mid) >= 0 {
		t.Error("expected low < mid")
	}
	if mid.Cmp(high) >= 0 {
		t.Error("expected mid < high: dripId dominates amtPerSec")
	}
	if low.Cmp(low) != 0 {
		t.Error("expected low == low")
	}
}

func TestUnpackStreamConfigZeroAmt(t *testing.T) {
	// A packed word with zero amtPerSec is malformed.
	w := uint256.NewInt(0)
	w.Or(w, uint256.NewInt(100)) // duration only
	if _, err := UnpackStreamConfig(w); !errors.Is(err, ErrAmtPerSecZero) {
		t.Errorf("UnpackStreamConfig = %v, want ErrAmtPerSecZero", err)
	}
}

func TestUnpackStreamConfigBig(t *testing.T) {
	cfg := StreamConfig{DripID: 3, AmtPerSec: big.NewInt(5_000_000_000), Start: 10, Duration: 20}
	packed, err := cfg.PackBig()
	if err != nil {
		t.Fatalf("PackBig failed: %v", err)
	}

	got, err := UnpackStreamConfigBig(packed)
	if err != nil {
		t.Fatalf("UnpackStreamConfigBig failed: %v", err)
	}
	if got.DripID != cfg.DripID || got.AmtPerSec.Cmp(cfg.AmtPerSec) != 0 || got.Start != cfg.Start || got.Duration != cfg.Duration {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, cfg)
	}

	overflow := new(big.Int).Lsh(big.NewInt(1), 256)
	if _, err := UnpackStreamConfigBig(overflow); !errors.Is(err, ErrConfigTooLarge) {
		t.Errorf("overflow error = %v, want ErrConfigTooLarge", err)
	}
	if _, err := UnpackStreamConfigBig(big.NewInt(-1)); !errors.Is(err, ErrConfigTooLarge) {
		t.Errorf("negative error = %v, want ErrConfigTooLarge", err)
	}
}
