package sifs

import (
	"testing"

	sifserrors "github.com/junnys6018/SIFS/sifs/errors"
)

func TestValidateBitmapRejectsUnknownKind(t *testing.T) {
	bm := Bitmap{Dir, Kind('?')}
	if err := ValidateBitmap(bm); !sifserrors.IsNotVolume(err) {
		t.Fatalf("ValidateBitmap: err = %v, want ENOTVOL", err)
	}
}

func TestValidateBitmapRequiresRootIsDir(t *testing.T) {
	bm := Bitmap{Unused, Dir}
	if err := ValidateBitmap(bm); !sifserrors.IsNotVolume(err) {
		t.Fatalf("ValidateBitmap: err = %v, want ENOTVOL", err)
	}
}

func TestValidateBitmapAcceptsWellFormed(t *testing.T) {
	bm := Bitmap{Dir, Unused, File, DataBlock}
	if err := ValidateBitmap(bm); err != nil {
		t.Fatalf("ValidateBitmap: %v", err)
	}
}

func TestKindStringAndValid(t *testing.T) {
	cases := []struct {
		k     Kind
		valid bool
		str   string
	}{
		{Unused, true, "."},
		{Dir, true, "D"},
		{File, true, "F"},
		{DataBlock, true, "d"},
		{Kind('x'), false, "x"},
	}
	for _, c := range cases {
		if c.k.Valid() != c.valid {
			t.Errorf("%q.Valid() = %v, want %v", c.k, c.k.Valid(), c.valid)
		}
		if c.k.String() != c.str {
			t.Errorf("%q.String() = %q, want %q", c.k, c.k.String(), c.str)
		}
	}
}
