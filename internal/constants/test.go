package constants

import "time"

// Test Constants
//
// IMPORTANT: These constants are for testing only. DO NOT use in production code.

const (
	// TestSeed seeds every deterministic RNG in unit tests.
	TestSeed = 42

	// TestSpawnTrials is the number of randomized trials in spawn exclusion tests.
	TestSpawnTrials = 10_000

	// TestSoakTicks is the number of ticks a headless soak test runs.
	TestSoakTicks = 3_000
)

const (
	// TestDBTimeout bounds database integration tests.
	TestDBTimeout = 60 * time.Second
)
