// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package aht10

// crc8Polynomial is x^8 + x^5 + x^4 + 1 with the x^8 term omitted.
const crc8Polynomial byte = 0x31

// CRC8 returns the checksum the AHT10 appends to a measurement. It is the same
// CRC-8 used by the AHT20 and the Sensirion sensors.
func CRC8(data []byte) byte {
	crc := byte(0xFF)
	for _, b := range data {
		crc ^= b
		for range 8 {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ crc8Polynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
