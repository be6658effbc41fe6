// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package aht10

import (
	"math"
	"testing"

	"periph.io/x/conn/v3/physic"
)

const maxRaw = 1<<20 - 1

func TestHumidity_RelativeHumidityPercent(t *testing.T) {
	last := float32(-1)
	for r := uint32(0); r <= maxRaw; r++ {
		got := NewHumidity(r).RelativeHumidityPercent()
		if want := 100.0 * float32(r) / 1048576.0; got != want {
			t.Fatalf("RelativeHumidityPercent(%d) = %v, want %v", r, got, want)
		}
		if got < last {
			t.Fatalf("RelativeHumidityPercent(%d) = %v decreased from %v", r, got, last)
		}
		last = got
	}
	if got := NewHumidity(0x80000).RelativeHumidityPercent(); got != 50 {
		t.Errorf("half scale = %v, want 50", got)
	}
}

func TestTemperature_Celsius(t *testing.T) {
	for r := uint32(0); r <= maxRaw; r++ {
		got := NewTemperature(r).Celsius()
		if want := 200.0*float32(r)/1048576.0 - 50.0; got != want {
			t.Fatalf("Celsius(%d) = %v, want %v", r, got, want)
		}
		if ref := 200*float64(r)/1048576 - 50; math.Abs(float64(got)-ref) > 1e-4 {
			t.Fatalf("Celsius(%d) = %v, too far from %v", r, got, ref)
		}
	}
	var tests = []struct {
		raw  uint32
		want float32
	}{
		{0, -50},
		{0x40000, 0},
		{0x80000, 50},
	}
	for _, test := range tests {
		if got := NewTemperature(test.raw).Celsius(); got != test.want {
			t.Errorf("Celsius(0x%x) = %v, want %v", test.raw, got, test.want)
		}
	}
}

func TestRaw(t *testing.T) {
	for _, r := range []uint32{0, 1, 0x19999, 0xA1999, maxRaw} {
		if got := NewHumidity(r).Raw(); got != r {
			t.Errorf("Humidity raw %d != %d", got, r)
		}
		if got := NewTemperature(r).Raw(); got != r {
			t.Errorf("Temperature raw %d != %d", got, r)
		}
	}
}

func TestValue(t *testing.T) {
	if got := NewTemperature(0x40000).Value(); got != physic.ZeroCelsius {
		t.Errorf("temperature %s != %s", got, physic.ZeroCelsius)
	}
	if got := NewTemperature(0).Value(); got != physic.ZeroCelsius-50*physic.Kelvin {
		t.Errorf("temperature %s != -50°C", got)
	}
	if got := NewHumidity(0x80000).Value(); got != 50*physic.PercentRH {
		t.Errorf("humidity %s != 50%%rH", got)
	}
	if got := NewHumidity(0).Value(); got != 0 {
		t.Errorf("humidity %s != 0", got)
	}
}

func TestString(t *testing.T) {
	if s := NewHumidity(0x80000).String(); s != "50.00%rH" {
		t.Errorf("humidity string %q", s)
	}
	if s := NewTemperature(0x40000).String(); s != "0.00°C" {
		t.Errorf("temperature string %q", s)
	}
}

func TestDecode(t *testing.T) {
	h, temp := decode([]byte{0x08, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	if h.Raw() != maxRaw || temp.Raw() != maxRaw {
		t.Errorf("all ones decoded to 0x%x 0x%x", h.Raw(), temp.Raw())
	}
	// The shared byte splits into the low humidity and the high temperature nibble.
	h, temp = decode([]byte{0x08, 0x00, 0x00, 0xA5, 0x00, 0x00, 0x00})
	if h.Raw() != 0xA || temp.Raw() != 0x50000 {
		t.Errorf("shared byte decoded to 0x%x 0x%x", h.Raw(), temp.Raw())
	}
}
