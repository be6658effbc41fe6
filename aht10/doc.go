// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package aht10 controls an AHT10 device over I²C.
//
// The sensor is a temperature and humidity sensor with a typical accuracy of
// ±2% RH and ±0.3°C. The aht10.Dev type implements the physic.SenseEnv
// interface. The physic.Env measurement results contain a temperature and a
// humidity value, the pressure is never set.
//
// The AHT10 datasheet is underspecified. The FIFO mode and the data bytes that
// accompany the calibrate and measure commands are mentioned but not
// documented. This driver sends the fixed values observed to work and does not
// support FIFO mode.
//
// # Datasheet
//
// https://server4.eca.ir/eshop/AHT10/Aosong_AHT10_en_draft_0c.pdf
package aht10
