// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package aht10

import "fmt"

// UncalibratedError is returned by Read when the status byte does not have the
// calibration enable bit set. The sensor needs Initialize before it can be
// trusted again.
type UncalibratedError struct {
	Status Status
}

func (e *UncalibratedError) Error() string {
	return fmt.Sprintf("aht10: sensor is not calibrated (status %s)", e.Status)
}

// DataCorruptionError is returned when CRC validation is enabled and the
// checksum does not match.
type DataCorruptionError struct {
	Want byte
	Got  byte
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("aht10: data is corrupt, crc 0x%02x != 0x%02x", e.Got, e.Want)
}

// BusError wraps an error returned by the I²C bus. The bus error is passed
// through unchanged and is available with errors.Is and errors.As.
type BusError struct {
	// Op names the command that failed.
	Op  string
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("aht10: %s: %v", e.Op, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
