// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package aht10

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const deviceAddress = 0x38

const (
	// calibrateData sets the calibration enable bit. The other bits of the
	// word are undocumented.
	calibrateData uint16 = 0x0800

	// measureConfig follows the measure command. Its bits are undocumented;
	// this is the pattern observed to work.
	measureConfig uint16 = 0xFF00

	responseSize = 7
)

const (
	settleInit  = 300 * time.Millisecond
	settleReset = 20 * time.Millisecond

	minSenseInterval = 100 * time.Millisecond
)

var argsMeasure = cmdGetCT.frame(measureConfig)

// Sleeper pauses the calling goroutine for at least the requested duration
// while the sensor completes an internal conversion.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a function such as time.Sleep to the Sleeper interface.
type SleeperFunc func(d time.Duration)

// Sleep calls f(d).
func (f SleeperFunc) Sleep(d time.Duration) {
	f(d)
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Sleeper paces the settling delays after each command. nil uses
	// time.Sleep.
	Sleeper Sleeper
	// ValidateCRC checks the trailing CRC8 byte of every measurement and
	// returns a DataCorruptionError on mismatch. Default is false, the
	// checksum byte is read and ignored.
	ValidateCRC bool
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{}

// Dev is a handle to an AHT10 sensor.
type Dev struct {
	d     *i2c.Dev
	opts  Opts
	sleep Sleeper

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewI2C returns an object that communicates over I²C to an AHT10
// environmental sensor. The sensor is triggered and calibrated before the
// function returns, which takes at least 600ms. The Opts can be nil.
//
// A bus failure aborts the initialization and is returned as a *BusError.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{d: &i2c.Dev{Bus: b, Addr: deviceAddress}, opts: *opts, sleep: opts.Sleeper}
	if d.sleep == nil {
		d.sleep = SleeperFunc(time.Sleep)
	}
	if err := d.Initialize(); err != nil {
		return nil, err
	}
	return d, nil
}

// Initialize runs the trigger and calibration handshake. NewI2C calls it; call
// it again after Reset or after Read returned an UncalibratedError.
//
// Nothing is read back. A sensor that ignored the calibration is only detected
// on the next Read.
func (d *Dev) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writeCmd("trigger", cmdGetRaw, 0); err != nil {
		return err
	}
	d.sleep.Sleep(settleInit)
	if err := d.writeCmd("calibrate", cmdCalibrate, calibrateData); err != nil {
		return err
	}
	d.sleep.Sleep(settleInit)
	return nil
}

// Reset soft resets the sensor. It does not recalibrate; call Initialize
// afterward to get trustworthy readings.
func (d *Dev) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writeCmd("reset", cmdReset, 0); err != nil {
		return err
	}
	d.sleep.Sleep(settleReset)
	return nil
}

// Read measures the humidity and the temperature in a single bus transaction.
//
// An *UncalibratedError is returned if the sensor reports that the calibration
// is not enabled. No values are returned in that case.
func (d *Dev) Read() (Humidity, Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var buf [responseSize]byte
	if err := d.d.Tx(argsMeasure, buf[:]); err != nil {
		return Humidity{}, Temperature{}, &BusError{Op: "measure", Err: err}
	}
	if s := Status(buf[0]); !s.Calibrated() {
		return Humidity{}, Temperature{}, &UncalibratedError{Status: s}
	}
	if d.opts.ValidateCRC {
		if crc := CRC8(buf[:6]); crc != buf[6] {
			return Humidity{}, Temperature{}, &DataCorruptionError{Want: crc, Got: buf[6]}
		}
	}
	h, t := decode(buf[:])
	return h, t, nil
}

// Sense implements physic.SenseEnv. It returns the current temperature and
// humidity, the pressure is always 0 since the AHT10 does not measure it.
func (d *Dev) Sense(e *physic.Env) error {
	h, t, err := d.Read()
	if err != nil {
		return err
	}
	e.Temperature = t.Value()
	e.Humidity = h.Value()
	return nil
}

// SenseContinuous implements physic.SenseEnv. It returns a channel that
// receives a measurement every interval. Failed measurements are skipped. It
// is the caller's responsibility to call Halt() when done.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < minSenseInterval {
		return nil, fmt.Errorf("aht10: sense interval %s is below %s", interval, minSenseInterval)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("aht10: SenseContinuous already running")
	}
	stop := make(chan struct{})
	d.stop = stop
	sensing := make(chan physic.Env)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(sensing)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				var e physic.Env
				if err := d.Sense(&e); err != nil {
					continue
				}
				select {
				case sensing <- e:
				case <-stop:
					return
				}
			}
		}
	}()
	return sensing, nil
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = 10 * physic.MilliKelvin
	e.Humidity = 240 * physic.MicroRH
	e.Pressure = 0
}

// Halt stops the AHT10 from acquiring measurements as initiated by
// SenseContinuous().
func (d *Dev) Halt() error {
	d.mu.Lock()
	stop := d.stop
	d.stop = nil
	d.mu.Unlock()
	if stop == nil {
		return nil
	}
	close(stop)
	d.wg.Wait()
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("aht10: %s", d.d)
}

func (d *Dev) writeCmd(op string, c command, data uint16) error {
	if err := d.d.Tx(c.frame(data), nil); err != nil {
		return &BusError{Op: op, Err: err}
	}
	return nil
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
