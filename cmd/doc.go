// Package cmd implements the command-line interface of dShelf. It provides a
// hierarchical command structure for running the server and for reading a
// served shelf as a client.
//
// The package is organized into several subpackages:
//
//   - serve: Starts and configures the dShelf server
//   - shelf: Catalog operations against a running server (tab, card, stamp, verify, perf, ...)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See dshelf -help for a list of all commands.
package cmd
