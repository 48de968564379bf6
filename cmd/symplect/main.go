// Command symplect computes symplectic polar-space graphs and their
// invariants: construction, strongly-regular parameters and spectra,
// automorphism groups, simplicial homology, and isomorphism search.
// Each subcommand is a standalone deterministic computation emitting one
// YAML record on stdout; diagnostics go to stderr.
package main

import (
	"log/slog"
	"os"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
