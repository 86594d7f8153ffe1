// Package serializer provides message serialization for the dShelf RPC
// system. It defines a common interface and two implementations for encoding
// the messages exchanged between the shelf server and its clients.
//
// Key Components:
//
//   - IRPCSerializer: Core interface that all serializer implementations must satisfy.
//
//   - jsonSerializerImpl: JSON encoding. Message types are written as their
//     names, so payloads are readable with curl and jq. This is the default.
//
//   - gobSerializerImpl: Go's gob encoding. Smaller payloads for Go clients,
//     at the price of a type description in every message.
//
// Responses carry whole tab views, cards and reports, so payload size is
// dominated by the catalog content rather than the envelope.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	s, ok := serializer.New("json")
//	data, err := s.Serialize(message)
//	// ... send data ...
//	var receivedMsg common.Message
//	err = s.Deserialize(receivedData, &receivedMsg)
package serializer
