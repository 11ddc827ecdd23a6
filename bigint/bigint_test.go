package bigint

import (
	"bytes"
	"testing"
)

func TestFromBytesBERoundTrip(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}
	x := FromBytesBE(buf)
	out, err := x.ToBytesBE(4)
	if err != nil {
		t.Fatalf("ToBytesBE returned error: %v", err)
	}
	if !bytes.Equal(out, buf) {
		t.Fatalf("round trip mismatch: got %x want %x", out, buf)
	}
}

func TestFromBytesBEShorterThanWidthLeftPads(t *testing.T) {
	x := FromBytesBE([]byte{0xAB})
	out, err := x.ToBytesBE(4)
	if err != nil {
		t.Fatalf("ToBytesBE returned error: %v", err)
	}
	want := []byte{0x00, 0x00, 0x00, 0xAB}
	if !bytes.Equal(out, want) {
		t.Fatalf("left-pad mismatch: got %x want %x", out, want)
	}
}

func TestToBytesBEFailsWhenTooNarrow(t *testing.T) {
	x := FromU64(1 << 20)
	if _, err := x.ToBytesBE(2); err == nil {
		t.Fatalf("expected error when value does not fit")
	}
}

func TestBitLen(t *testing.T) {
	if got := FromU64(0).BitLen(); got != 0 {
		t.Fatalf("BitLen(0) = %d, want 0", got)
	}
	if got := FromU64(1).BitLen(); got != 1 {
		t.Fatalf("BitLen(1) = %d, want 1", got)
	}
	if got := FromU64(256).BitLen(); got != 9 {
		t.Fatalf("BitLen(256) = %d, want 9", got)
	}
}

func TestAddSubMul(t *testing.T) {
	a := FromU64(7)
	b := FromU64(5)
	if got := a.Add(b); got.Cmp(FromU64(12)) != 0 {
		t.Fatalf("Add mismatch: got %s", got)
	}
	if got := a.Sub(b); got.Cmp(FromU64(2)) != 0 {
		t.Fatalf("Sub mismatch: got %s", got)
	}
	if got := a.Mul(b); got.Cmp(FromU64(35)) != 0 {
		t.Fatalf("Mul mismatch: got %s", got)
	}
}

func TestDivRem(t *testing.T) {
	q, r := FromU64(17).DivRem(FromU64(5))
	if q.Cmp(FromU64(3)) != 0 || r.Cmp(FromU64(2)) != 0 {
		t.Fatalf("DivRem(17,5) = (%s,%s), want (3,2)", q, r)
	}
}

func TestModNonNegHandlesNegativeDividend(t *testing.T) {
	a := FromU64(3).Sub(FromU64(10)) // -7
	m := FromU64(5)
	got := a.ModNonNeg(m)
	if got.Cmp(FromU64(3)) != 0 {
		t.Fatalf("ModNonNeg(-7, 5) = %s, want 3", got)
	}
}

func TestModInverse(t *testing.T) {
	inv, err := FromU64(3).ModInverse(FromU64(11))
	if err != nil {
		t.Fatalf("ModInverse returned error: %v", err)
	}
	// 3 * 4 = 12 = 1 mod 11
	if inv.Cmp(FromU64(4)) != 0 {
		t.Fatalf("ModInverse(3, 11) = %s, want 4", inv)
	}
}

func TestModInverseFailsWithoutGCDOne(t *testing.T) {
	if _, err := FromU64(4).ModInverse(FromU64(8)); err == nil {
		t.Fatalf("expected error for non-invertible value")
	}
}

func TestRandRangeStaysInBounds(t *testing.T) {
	upper := FromU64(1000)
	for i := 0; i < 50; i++ {
		n, err := RandRange(upper)
		if err != nil {
			t.Fatalf("RandRange returned error: %v", err)
		}
		if n.Cmp(upper) >= 0 {
			t.Fatalf("RandRange produced %s, out of [0, %s)", n, upper)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromU64(42)
	b := a.Clone()
	a.Zero()
	if b.Cmp(FromU64(42)) != 0 {
		t.Fatalf("clone mutated by zeroing original: got %s", b)
	}
}

func TestZeroResetsValue(t *testing.T) {
	a := FromU64(123456)
	a.Zero()
	if !a.IsZero() {
		t.Fatalf("expected zeroed value to report IsZero")
	}
}
