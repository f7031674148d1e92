package daylight

import (
	"testing"
	"time"

	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
)

func cordobaAirfield(t *testing.T) *c.AirfieldConfig {
	t.Helper()
	location, err := time.LoadLocation("America/Argentina/Cordoba")
	if err != nil {
		t.Fatalf("loading timezone: %v", err)
	}
	return &c.AirfieldConfig{
		Name:      "Aeroclub Córdoba",
		ICAOCode:  "SACO",
		Latitude:  -31.32,
		Longitude: -64.21,
		Timezone:  "America/Argentina/Cordoba",
		Location:  location,
	}
}

func TestForMidwinterDay(t *testing.T) {
	calculator := NewCalculator(cordobaAirfield(t))
	times := calculator.For(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC))

	if times.Polar {
		t.Fatal("Córdoba never sees a polar day")
	}
	if !times.Sunrise.Before(times.Sunset) {
		t.Error("sunrise must precede sunset")
	}
	if !times.CivilTwilightStart.Before(times.Sunrise) {
		t.Error("civil twilight begins before sunrise")
	}
	if !times.CivilTwilightEnd.After(times.Sunset) {
		t.Error("civil twilight ends after sunset")
	}

	// Midwinter sunrise at Córdoba falls around 08:15 local time.
	if hour := times.Sunrise.Hour(); hour < 7 || hour > 9 {
		t.Errorf("implausible local sunrise hour %d", hour)
	}
	if zone, _ := times.Sunrise.Zone(); zone == "UTC" {
		t.Error("sun times must be converted to the airfield timezone")
	}
}

func TestForPolarDay(t *testing.T) {
	location := time.UTC
	calculator := NewCalculator(&c.AirfieldConfig{
		Latitude:  78.22,
		Longitude: 15.65,
		Location:  location,
	})
	// Svalbard in late December: the sun never rises.
	times := calculator.For(time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC))
	if !times.Polar {
		t.Error("expected a polar day marker")
	}
}
