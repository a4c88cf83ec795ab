package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chandrakala/vedicclock/pkg/vedictime"
)

func main() {
	var timeStr string
	var lat, lon float64
	flag.StringVar(&timeStr, "time", "", "UTC time to compute for (RFC3339 format, e.g., 2024-01-25T12:00:00Z)")
	flag.Float64Var(&lat, "lat", 28.6139, "Observer latitude in degrees north")
	flag.Float64Var(&lon, "lon", 77.2090, "Observer longitude in degrees east")
	flag.Parse()

	var t time.Time
	if timeStr == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	snap, err := vedictime.Compute(t, vedictime.Location{Latitude: lat, Longitude: lon})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Vedic clock for %s at (%.4f, %.4f)\n", t.Format(time.RFC3339), lat, lon)
	fmt.Printf("  Tithi:      %d %s (%s paksha), %.1f%% complete, ~%.0f min to next\n",
		snap.Tithi.Number, snap.Tithi.Name, snap.Tithi.Paksha,
		snap.Tithi.ProgressPercent, snap.Tithi.MinutesToNext)
	fmt.Printf("  Nakshatra:  %d %s (pada %d), %.1f%% complete, ~%.0f min to next\n",
		snap.Nakshatra.Number, snap.Nakshatra.Name, snap.Nakshatra.Pada,
		snap.Nakshatra.ProgressPercent, snap.Nakshatra.MinutesToNext)
	fmt.Printf("  Masa:       %d %s\n", snap.Masa.Number, snap.Masa.Name)
	fmt.Printf("  Elongation: %.2f° (phase %.4f, %.1f%% illuminated)\n",
		snap.Elongation, snap.PhaseFraction, snap.IlluminationPercent)
	fmt.Printf("  Sunrise:    %s\n", snap.Sunrise.Format(time.RFC3339))
	fmt.Printf("  Muhurta:    %d %s (%s), %.1f%% complete, %.1f min remaining\n",
		snap.Muhurta.Number, snap.Muhurta.Name, snap.Muhurta.Meaning,
		snap.Muhurta.ProgressPercent, snap.Muhurta.MinutesRemaining)
	fmt.Printf("  Prana:      #%d at %.2f°, %s (%.0f%% of phase)\n",
		snap.Prana.Number, snap.Prana.AngleDegrees, snap.Prana.Phase,
		snap.Prana.PhaseProgressPercent)

	if snap.Tithi.IsPurnima() {
		fmt.Println("  Today is Purnima (full moon)")
	}
	if snap.Tithi.IsAmavasya() {
		fmt.Println("  Today is Amavasya (new moon)")
	}
	if snap.Tithi.IsEkadashi() {
		fmt.Println("  Today is Ekadashi")
	}
}
