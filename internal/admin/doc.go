// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Levashov

// Package admin implements the interactive admin-console application runtime.
//
// It wires the portal transport adapter and the terminal UI into a single
// process lifecycle.
package admin
