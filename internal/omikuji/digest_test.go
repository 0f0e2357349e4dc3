package omikuji

import (
	"crypto/sha256"
	"fmt"
	"testing"
)

func TestDeriveDeterministic(t *testing.T) {
	d1 := Derive(2026, "alice")
	d2 := Derive(2026, "alice")
	if d1 != d2 {
		t.Errorf("same seed produced different digests: %s != %s", d1.Hex(), d2.Hex())
	}
}

func TestDeriveSensitivity(t *testing.T) {
	base := Derive(2026, "alice")

	cases := []struct {
		name string
		year uint32
		user string
	}{
		{"different user", 2026, "bob"},
		{"different year", 2025, "alice"},
		{"empty user", 2026, ""},
	}
	for _, tc := range cases {
		if d := Derive(tc.year, tc.user); d == base {
			t.Errorf("%s: digest collided with (2026, alice)", tc.name)
		}
	}
}

func TestDeriveMatchesSeedString(t *testing.T) {
	want := Digest(sha256.Sum256([]byte("2026-alice-sha-omikuji-2026")))
	got := Derive(2026, "alice")
	if got != want {
		t.Errorf("Derive(2026, alice) = %s, want digest of the canonical seed string", got.Hex())
	}
}

func TestSeedString(t *testing.T) {
	got := SeedString(2026, "alice")
	want := "2026-alice-sha-omikuji-2026"
	if got != want {
		t.Errorf("SeedString = %q, want %q", got, want)
	}
}

func TestHexFormat(t *testing.T) {
	hex := Derive(2026, "test").Hex()
	if len(hex) != 64 {
		t.Fatalf("hex length = %d, want 64", len(hex))
	}
	for i, c := range hex {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Errorf("hex[%d] = %q, want lowercase hex digit", i, c)
		}
	}
}

func TestReadBits(t *testing.T) {
	var d Digest
	d[0] = 0b1010_0110
	d[1] = 0b1100_0000

	cases := []struct {
		start, n int
		want     uint64
	}{
		{0, 1, 1},
		{0, 4, 0b1010},
		{0, 8, 0b10100110},
		{4, 4, 0b0110},
		{6, 4, 0b1011}, // crosses the byte boundary
		{0, 10, 0b1010011011},
		{16, 8, 0},
	}
	for _, tc := range cases {
		if got := d.ReadBits(tc.start, tc.n); got != tc.want {
			t.Errorf("ReadBits(%d, %d) = %b, want %b", tc.start, tc.n, got, tc.want)
		}
	}
}

func TestReadBitsAllOnes(t *testing.T) {
	var d Digest
	for i := range d {
		d[i] = 0xFF
	}
	if got := d.ReadBits(0, 64); got != ^uint64(0) {
		t.Errorf("ReadBits(0, 64) on all-ones digest = %x, want all ones", got)
	}
	if got := d.ReadBits(200, 16); got != 0xFFFF {
		t.Errorf("ReadBits(200, 16) = %x, want ffff", got)
	}
}

func TestReadBitsPastEndTruncates(t *testing.T) {
	var d Digest
	for i := range d {
		d[i] = 0xFF
	}
	// 8 in-range bits plus 8 past the end: the overflow contributes
	// nothing, it does not widen the result.
	if got := d.ReadBits(248, 16); got != 0xFF {
		t.Errorf("ReadBits(248, 16) = %x, want ff (silent truncation)", got)
	}
	if got := d.ReadBits(256, 8); got != 0 {
		t.Errorf("ReadBits(256, 8) = %x, want 0", got)
	}
}

func TestReadBitsIdempotent(t *testing.T) {
	d := Derive(2026, "test")
	before := d
	for i := 0; i < 3; i++ {
		d.ReadBits(0, 64)
		DecodeAll(d)
	}
	if d != before {
		t.Error("digest mutated by reads")
	}
}

func sampleDigests(n int) []Digest {
	out := make([]Digest, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Derive(2026, fmt.Sprintf("test-%d", i)))
	}
	return out
}
