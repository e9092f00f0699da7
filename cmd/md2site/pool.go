package main

import "runtime"

// resolveWorkers determines the number of concurrent page builders.
// Priority: explicit setting > GOMAXPROCS-based calculation.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0) / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
