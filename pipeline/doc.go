// Package pipeline orchestrates categorical encoding: it resolves an
// encoding scheme from the registry, owns one missing-value handler and one
// strategy instance, sequences fit/transform calls through both, profiles the
// expensive phases, and persists the fitted pair as a versioned snapshot.
//
// The ordering contract is strict: missing-value normalization always runs
// before the strategy sees the data, at fit time and at transform time. The
// pipeline layer itself introduces no randomness and performs no recovery;
// collaborator errors propagate to the caller unwrapped.
//
// A Manager is single-threaded: no manager instance may be shared across
// goroutines without external synchronization.
package pipeline
