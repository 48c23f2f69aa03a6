// Copyright 2026 The sdump Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package base defines the small set of ambient types shared by the dump
// packages: the Logger interface and its stock implementations.
package base
