// Package client implements the RPC client of a dShelf server. NewRPCShelf
// returns an IShelf that forwards every call to one shelf of a remote server
// via the configured transport and serializer.
//
// Usage Example:
//
//	config := common.ClientConfig{
//	  Endpoints:     []string{"http://localhost:8080"},
//	  TimeoutSecond: 5,
//	  RetryCount:    3,
//	}
//
//	s, err := client.NewRPCShelf(100, config, http.NewHttpClientTransport(), serializer.NewJSONSerializer())
//	if err != nil {
//	  log.Fatal(err)
//	}
//	defer s.Close()
//
//	view, _ := s.BooksForTab("Fiction")
//	for _, e := range view.Entries {
//	  fmt.Println(e.FormNumber, e.Book)
//	}
//
// Errors raised by the catalog on the server (empty titles, empty library
// sets) come back as *shelf.Error with their original code, so errors.Is with
// the shelf sentinels works on both sides of the wire.
//
// Thread Safety:
//
//	Clients are safe for concurrent use from multiple goroutines.
package client
