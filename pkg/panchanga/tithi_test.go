package panchanga

import (
	"math"
	"testing"
)

const typicalRate = 0.508 // mean elongation gain, degrees per hour

func TestTithiPartition(t *testing.T) {
	tests := []struct {
		elongation float64
		number     int
		paksha     Paksha
		name       string
	}{
		{0, 1, PakshaShukla, "Pratipada"},
		{11.999, 1, PakshaShukla, "Pratipada"},
		{12, 2, PakshaShukla, "Dwitiya"},
		{120, 11, PakshaShukla, "Ekadashi"},
		{168, 15, PakshaShukla, "Purnima"},
		{179.999, 15, PakshaShukla, "Purnima"},
		{180, 16, PakshaKrishna, "Pratipada"},
		{300, 26, PakshaKrishna, "Ekadashi"},
		{348, 30, PakshaKrishna, "Amavasya"},
		{359.999, 30, PakshaKrishna, "Amavasya"},
	}

	for _, tt := range tests {
		got := TithiFromElongation(tt.elongation, typicalRate)
		if got.Number != tt.number {
			t.Errorf("TithiFromElongation(%v).Number = %d, expected %d", tt.elongation, got.Number, tt.number)
		}
		if got.Paksha != tt.paksha {
			t.Errorf("TithiFromElongation(%v).Paksha = %s, expected %s", tt.elongation, got.Paksha, tt.paksha)
		}
		if got.Name != tt.name {
			t.Errorf("TithiFromElongation(%v).Name = %q, expected %q", tt.elongation, got.Name, tt.name)
		}
	}
}

func TestTithiPartitionCoversCircle(t *testing.T) {
	// Every elongation maps to exactly one tithi in [1,30], and the mapping
	// is invariant under full turns.
	for e := 0.0; e < 360.0; e += 0.25 {
		tithi := TithiFromElongation(e, typicalRate)
		if tithi.Number < 1 || tithi.Number > 30 {
			t.Fatalf("TithiFromElongation(%v).Number = %d, outside [1,30]", e, tithi.Number)
		}
		if want := int(math.Floor(e/12)) + 1; tithi.Number != want {
			t.Errorf("TithiFromElongation(%v).Number = %d, expected %d", e, tithi.Number, want)
		}
		wrapped := TithiFromElongation(e+360, typicalRate)
		if wrapped.Number != tithi.Number {
			t.Errorf("TithiFromElongation(%v+360).Number = %d, expected %d", e, wrapped.Number, tithi.Number)
		}
		if tithi.ProgressPercent < 0 || tithi.ProgressPercent >= 100 {
			t.Errorf("TithiFromElongation(%v).ProgressPercent = %v, outside [0,100)", e, tithi.ProgressPercent)
		}
	}
}

func TestTithiProgressAndMinutes(t *testing.T) {
	tithi := TithiFromElongation(6, 0.5) // halfway through tithi 1 at 0.5°/h
	if math.Abs(tithi.ProgressPercent-50) > 1e-9 {
		t.Errorf("ProgressPercent = %v, expected 50", tithi.ProgressPercent)
	}
	// 6° remaining at 0.5°/h = 12h = 720 minutes
	if math.Abs(tithi.MinutesToNext-720) > 1e-6 {
		t.Errorf("MinutesToNext = %v, expected 720", tithi.MinutesToNext)
	}
}

func TestTithiDegenerateRate(t *testing.T) {
	tithi := TithiFromElongation(100, 0)
	if tithi.MinutesToNext != UnboundedMinutes {
		t.Errorf("MinutesToNext with zero rate = %v, expected UnboundedMinutes sentinel", tithi.MinutesToNext)
	}
	if math.IsNaN(tithi.MinutesToNext) || math.IsInf(tithi.MinutesToNext, 0) {
		t.Errorf("MinutesToNext with zero rate must not be NaN/Inf, got %v", tithi.MinutesToNext)
	}
}

func TestTithiPredicates(t *testing.T) {
	purnima := TithiFromElongation(175, typicalRate)
	if !purnima.IsPurnima() {
		t.Error("tithi at elongation 175 should be Purnima")
	}
	if purnima.IsAmavasya() {
		t.Error("tithi at elongation 175 should not be Amavasya")
	}

	amavasya := TithiFromElongation(355, typicalRate)
	if !amavasya.IsAmavasya() {
		t.Error("tithi at elongation 355 should be Amavasya")
	}
	if amavasya.IsPurnima() {
		t.Error("tithi at elongation 355 should not be Purnima")
	}

	// Alternate fortnight-local numbering: a 15th tithi tagged Krishna also
	// counts as Amavasya.
	alt := Tithi{Number: 15, Paksha: PakshaKrishna}
	if !alt.IsAmavasya() {
		t.Error("tithi 15 of Krishna paksha should count as Amavasya")
	}

	for _, e := range []float64{125, 305} {
		if !TithiFromElongation(e, typicalRate).IsEkadashi() {
			t.Errorf("tithi at elongation %v should be Ekadashi", e)
		}
	}
	if TithiFromElongation(50, typicalRate).IsEkadashi() {
		t.Error("tithi at elongation 50 should not be Ekadashi")
	}
}
