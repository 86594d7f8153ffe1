// Package server implements the dShelf RPC server. It builds one catalog
// index per configured shelf and answers requests addressed to a shelf ID.
//
// Key Components:
//
//   - IRPCServerAdapter: Interface defining the contract for all server adapters,
//     with the Handle method that processes incoming requests against a
//     catalog.ICatalog.
//
//   - NewCatalogServerAdapter: Adapter translating RPC requests into catalog
//     lookups, library and stamp assignment, card projection and the analysis report.
//
//   - NewRPCServer: Factory function creating a configured server with the specified
//     transport and serializer mechanisms.
//
// Usage Example:
//
//	config := common.ServerConfig{
//	  Shelves: []common.ServerShelf{
//	    {ShelfID: 100, Source: "builtin"},
//	    {ShelfID: 200, Source: "/etc/dshelf/poetry.yaml"},
//	  },
//	  Endpoint:      "0.0.0.0:8080",
//	  TimeoutSecond: 5,
//	  LogLevel:      "info",
//	}
//
//	s := server.NewRPCServer(config, http.NewHttpServerTransport(), serializer.NewJSONSerializer())
//	if err := s.Serve(ctx); err != nil {
//	  log.Fatalf("Server error: %v", err)
//	}
//
// Shelf sources are loaded in parallel at start up. A source that cannot be
// read, or a catalog that fails its integrity check, aborts the start; a
// running server never serves a partial catalog.
//
// Every request is counted per message type in the prometheus metrics
// dshelf_rpc_requests_total, dshelf_rpc_errors_total and
// dshelf_rpc_request_duration_seconds.
//
// Thread Safety:
//
//	Catalog indexes are immutable after start up, so requests are handled
//	concurrently without locking. Serve must be called only once.
package server
