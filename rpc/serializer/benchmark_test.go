package serializer

import (
	"testing"

	"github.com/ValentinKolb/dShelf/lib/catalog"
	"github.com/ValentinKolb/dShelf/rpc/common"
)

// benchmarkMessages returns a set of messages for targeted benchmarking
func benchmarkMessages(b *testing.B) map[string]common.Message {
	src, err := catalog.Builtin()
	if err != nil {
		b.Fatalf("Failed to load builtin catalog: %v", err)
	}
	idx, err := catalog.NewIndex(src)
	if err != nil {
		b.Fatalf("Failed to build index: %v", err)
	}

	return map[string]common.Message{
		"Empty":       {MsgType: common.MsgTSuccess},
		"TabRequest":  *common.NewTabRequest("Business & Tech"),
		"FormNumber":  *common.NewFormNumberResponse("CR3"),
		"QueueTab":    *common.NewTabResponse(idx.BooksForTab("Queue").View()),
		"AllTab":      *common.NewTabResponse(idx.BooksForTab("All").View()),
		"AllBooks":    *common.NewAllBooksResponse(idx.AllBooks()),
		"Verify":      *common.NewVerifyResponse(idx.Verify()),
		"ErrorString": *common.NewErrorResponse("Lorem ipsum dolor sit amet, consectetur adipiscing elit."),
	}
}

// BenchmarkSerialize benchmarks serialization for all implementations with various message types
func BenchmarkSerialize(b *testing.B) {
	messages := benchmarkMessages(b)

	for name, factory := range testSerializers {
		for msgName, msg := range messages {
			b.Run(name+"_"+msgName, func(b *testing.B) {
				serializer := factory()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := serializer.Serialize(msg)
					if err != nil {
						b.Fatalf("Failed to serialize: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkDeserialize benchmarks deserialization for all implementations with various message types
func BenchmarkDeserialize(b *testing.B) {
	messages := benchmarkMessages(b)
	serializedData := make(map[string]map[string][]byte)

	// Pre-serialize all messages with all serializers
	for name, factory := range testSerializers {
		serializer := factory()
		serializedData[name] = make(map[string][]byte)

		for msgName, msg := range messages {
			data, err := serializer.Serialize(msg)
			if err != nil {
				b.Fatalf("Failed to serialize %s with %s: %v", msgName, name, err)
			}
			serializedData[name][msgName] = data
		}
	}

	// Benchmark deserialization
	for name, factory := range testSerializers {
		for msgName := range messages {
			b.Run(name+"_"+msgName, func(b *testing.B) {
				serializer := factory()
				data := serializedData[name][msgName]
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					var msg common.Message
					err := serializer.Deserialize(data, &msg)
					if err != nil {
						b.Fatalf("Failed to deserialize: %v", err)
					}
				}
			})
		}
	}
}
