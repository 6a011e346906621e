// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Levashov

package admin

import "context"

// Console defines the minimal lifecycle contract for runnable console
// applications.
type Console interface {
	// Run starts the console application and blocks until exit.
	Run(ctx context.Context) error
}
