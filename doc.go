// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package aosong is a container for drivers of Aosong temperature and
// humidity sensors built on periph.io.
package aosong
