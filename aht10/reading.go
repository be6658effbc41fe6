// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package aht10

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Both measurements are 20 bit unsigned fixed point counts.
const (
	rawBits  = 20
	rawScale = float32(1 << rawBits)
)

// Humidity is a relative humidity reading from the AHT10.
type Humidity struct {
	raw uint32
}

// NewHumidity wraps a raw 20 bit humidity count.
func NewHumidity(raw uint32) Humidity {
	return Humidity{raw: raw}
}

// Raw returns the raw humidity count.
func (h Humidity) Raw() uint32 {
	return h.raw
}

// RelativeHumidityPercent returns the humidity in %RH.
func (h Humidity) RelativeHumidityPercent() float32 {
	return 100 * float32(h.raw) / rawScale
}

// Value returns the humidity as a physic.RelativeHumidity.
func (h Humidity) Value() physic.RelativeHumidity {
	return physic.RelativeHumidity(float64(h.raw) / float64(rawScale) * 100 * float64(physic.PercentRH))
}

func (h Humidity) String() string {
	return fmt.Sprintf("%.2f%%rH", h.RelativeHumidityPercent())
}

// Temperature is a temperature reading from the AHT10.
type Temperature struct {
	raw uint32
}

// NewTemperature wraps a raw 20 bit temperature count.
func NewTemperature(raw uint32) Temperature {
	return Temperature{raw: raw}
}

// Raw returns the raw temperature count.
func (t Temperature) Raw() uint32 {
	return t.raw
}

// Celsius returns the temperature in °C.
func (t Temperature) Celsius() float32 {
	return 200*float32(t.raw)/rawScale - 50
}

// Value returns the temperature as a physic.Temperature.
func (t Temperature) Value() physic.Temperature {
	c := float64(t.raw)/float64(rawScale)*200 - 50
	return physic.Temperature(c*float64(physic.Kelvin)) + physic.ZeroCelsius
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.2f°C", t.Celsius())
}

// decode unpacks the two interleaved 20 bit counts from a measurement
// response. b[0] is the status byte.
func decode(b []byte) (Humidity, Temperature) {
	h := uint32(b[1])<<12 | uint32(b[2])<<4 | uint32(b[3])>>4
	t := (uint32(b[3])&0x0F)<<16 | uint32(b[4])<<8 | uint32(b[5])
	return Humidity{raw: h}, Temperature{raw: t}
}
