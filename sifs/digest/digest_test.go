package digest

import "testing"

func TestSumDeterministic(t *testing.T) {
	data := []byte("the quick brown fox")
	d1 := Sum(data)
	d2 := Sum(data)
	if d1 != d2 {
		t.Errorf("Sum is not deterministic: %x != %x", d1, d2)
	}
}

func TestSumDiffersOnDifferentInput(t *testing.T) {
	d1 := Sum([]byte("abc"))
	d2 := Sum([]byte("abd"))
	if d1 == d2 {
		t.Errorf("expected different digests for different inputs")
	}
}

func TestSumEmpty(t *testing.T) {
	d := Sum(nil)
	var zero Digest
	if d == zero {
		t.Errorf("digest of empty input should not be the zero digest")
	}
}
