package pemscan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet_AddGrowsAdditively(t *testing.T) {
	// WHY: The object table grows in fixed 4-slot steps; indices must be
	// stable across growth so the scanner's current-object index stays
	// valid.
	t.Parallel()
	set := &Set{}
	for i := 0; i < 11; i++ {
		if idx := set.add(KindCertificate); idx != i {
			t.Fatalf("slot %d claimed index %d", i, idx)
		}
	}
	if set.Len() != 11 {
		t.Errorf("Len = %d, want 11", set.Len())
	}
}

func TestSet_DropLastOnlyAffectsLastSlot(t *testing.T) {
	// WHY: Filter rejection releases exactly the most recent slot; earlier
	// objects keep their order, contents, and byte total.
	t.Parallel()
	set := &Set{}
	set.add(KindCertificate)
	set.Objects()[0].DER = []byte("a")
	set.accept()
	set.add(KindPrivateKey)
	set.Objects()[1].DER = []byte("bb")
	set.dropLast()

	if set.Len() != 1 {
		t.Fatalf("Len = %d, want 1", set.Len())
	}
	if string(set.Objects()[0].DER) != "a" {
		t.Errorf("surviving object payload = %q, want %q", set.Objects()[0].DER, "a")
	}
	if set.TotalBytes() != 1 {
		t.Errorf("TotalBytes = %d, want 1", set.TotalBytes())
	}
}

func TestSet_ByKind(t *testing.T) {
	t.Parallel()
	set := &Set{}
	for _, k := range []Kind{KindCertificate, KindPrivateKey, KindCertificate, KindRSAPrivateKey} {
		idx := set.add(k)
		set.Objects()[idx].DER = []byte{byte(idx)}
		set.accept()
	}

	var got []Kind
	for _, obj := range set.ByKind(KindCertificate | KindRSAPrivateKey) {
		got = append(got, obj.Kind)
	}
	want := []Kind{KindCertificate, KindCertificate, KindRSAPrivateKey}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ByKind kinds (-want +got):\n%s", diff)
	}
	if len(set.ByKind(0)) != 0 {
		t.Error("empty mask should select nothing")
	}
}
