package fx

import (
	"math"
	"testing"

	"github.com/theirongolddev/kakeibo/internal/model"
)

func snapshotWith(brl, usd float64) model.Snapshot {
	return model.Snapshot{Base: model.Reference, BRL: &brl, USD: &usd}
}

func TestConvertReferenceIsIdentity(t *testing.T) {
	got, ok := Convert(model.Snapshot{}, 1234, model.JPY)
	if !ok || got != 1234 {
		t.Fatalf("Convert(JPY) = %v, %v; want 1234, true", got, ok)
	}
}

func TestConvertDividesByRate(t *testing.T) {
	snap := snapshotWith(0.04, 0.0067)

	got, ok := Convert(snap, 200, model.USD)
	if !ok {
		t.Fatal("Convert(USD) reported unavailable with a loaded rate")
	}
	want := 200 / 0.0067
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("Convert(200 USD) = %v, want %v", got, want)
	}

	got, ok = Convert(snap, 100, model.BRL)
	if !ok || math.Abs(got-2500) > 1e-9 {
		t.Fatalf("Convert(100 BRL) = %v, %v; want 2500, true", got, ok)
	}
}

func TestConvertMissingRate(t *testing.T) {
	if _, ok := Convert(model.Snapshot{}, 100, model.BRL); ok {
		t.Fatal("Convert should report unavailable without a rate")
	}

	zero := 0.0
	snap := model.Snapshot{Base: model.Reference, BRL: &zero}
	if _, ok := Convert(snap, 100, model.BRL); ok {
		t.Fatal("Convert should treat a zero rate as unavailable")
	}
}

func TestToForeignMultipliesByRate(t *testing.T) {
	snap := snapshotWith(0.037, 0.0067)

	got, ok := ToForeign(snap, 100000, model.BRL)
	if !ok || math.Abs(got-3700) > 1e-9 {
		t.Fatalf("ToForeign(BRL) = %v, %v; want 3700, true", got, ok)
	}

	if _, ok := ToForeign(model.Snapshot{}, 100000, model.USD); ok {
		t.Fatal("ToForeign should report unavailable without a rate")
	}
}

func TestMissing(t *testing.T) {
	snap := model.Snapshot{}
	if Missing(snap, model.JPY) {
		t.Fatal("the reference currency never needs a rate")
	}
	if !Missing(snap, model.BRL) {
		t.Fatal("BRL should be missing from an empty snapshot")
	}
	full := snapshotWith(0.037, 0.0067)
	if Missing(full, model.USD) {
		t.Fatal("USD should not be missing from a full snapshot")
	}
}
