// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package aht10

import "strings"

// command is a one byte AHT10 opcode. Every command is sent with a 16 bit
// big endian data word.
type command byte

const (
	cmdCalibrate command = 0xE1
	cmdGetRaw    command = 0xA8
	cmdGetCT     command = 0xAC
	cmdReset     command = 0xBA
)

// frame returns the three byte wire form of the command.
func (c command) frame(data uint16) []byte {
	return []byte{byte(c), byte(data >> 8), byte(data)}
}

// Status is the status byte the AHT10 returns in front of every measurement.
type Status byte

const (
	// StatusBusy is set while a conversion is in progress.
	StatusBusy Status = 1 << 7
	// StatusMode holds the two bit operating mode.
	StatusMode Status = 1<<6 | 1<<5
	StatusCRC  Status = 1 << 4
	// StatusCalibrated is set when the calibration coefficients are active.
	// Readings without it are not physically meaningful.
	StatusCalibrated  Status = 1 << 3
	StatusFIFOEnabled Status = 1 << 2
	StatusFIFOFull    Status = 1 << 1
	StatusFIFOEmpty   Status = 1 << 0
)

var statusNames = []struct {
	s    Status
	name string
}{
	{StatusBusy, "Busy"},
	{StatusCRC, "CRC"},
	{StatusCalibrated, "Calibrated"},
	{StatusFIFOEnabled, "FIFOEnabled"},
	{StatusFIFOFull, "FIFOFull"},
	{StatusFIFOEmpty, "FIFOEmpty"},
}

// Has reports whether all the bits of f are set.
func (s Status) Has(f Status) bool {
	return s&f == f
}

// Busy reports whether the sensor is still converting.
func (s Status) Busy() bool {
	return s.Has(StatusBusy)
}

// Calibrated reports whether the calibration enable bit is set.
func (s Status) Calibrated() bool {
	return s.Has(StatusCalibrated)
}

// Mode returns the two mode bits, in the range [0, 3].
func (s Status) Mode() uint8 {
	return uint8(s&StatusMode) >> 5
}

func (s Status) String() string {
	var parts []string
	for _, n := range statusNames {
		if s.Has(n.s) {
			parts = append(parts, n.name)
		}
	}
	if m := s.Mode(); m != 0 {
		parts = append(parts, "Mode"+string(rune('0'+m)))
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}
