package client

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/ValentinKolb/dShelf/lib/shelf"
	"github.com/ValentinKolb/dShelf/rpc/common"
	"github.com/ValentinKolb/dShelf/rpc/serializer"
	"github.com/ValentinKolb/dShelf/rpc/server"
	httpTransport "github.com/ValentinKolb/dShelf/rpc/transport/http"
)

const testShelfID = 100

// startServer runs a shelf server serving the builtin catalog until the test ends
func startServer(t *testing.T, ser serializer.IRPCSerializer) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	addr := l.Addr().String()
	l.Close()

	s := server.NewRPCServer(common.ServerConfig{
		Shelves:       []common.ServerShelf{{ShelfID: testShelfID, Source: "builtin"}},
		Endpoint:      addr,
		TimeoutSecond: 5,
		LogLevel:      "error",
	}, httpTransport.NewHttpServerTransport(), ser)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	for i := 0; i < 100; i++ {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err == nil {
			resp.Body.Close()
			return "http://" + addr
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server on %s did not come up", addr)
	return ""
}

func newShelf(t *testing.T, endpoint string, shelfId uint64, ser serializer.IRPCSerializer) IShelf {
	t.Helper()
	s, err := NewRPCShelf(shelfId, common.ClientConfig{
		Endpoints:     []string{endpoint},
		TimeoutSecond: 5,
		RetryCount:    2,
	}, httpTransport.NewHttpClientTransport(), ser)
	if err != nil {
		t.Fatalf("NewRPCShelf() returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRPCShelf(t *testing.T) {
	for _, name := range []string{"json", "gob"} {
		t.Run(name, func(t *testing.T) {
			ser, _ := serializer.New(name)
			s := newShelf(t, startServer(t, ser), testShelfID, ser)

			tabs, err := s.Tabs()
			if err != nil || len(tabs) != 6 {
				t.Fatalf("Tabs() = %v, %v", tabs, err)
			}

			view, err := s.BooksForTab("Queue")
			if err != nil {
				t.Fatalf("BooksForTab() returned error: %v", err)
			}
			if len(view.Entries) != 6 || view.Entries[5].FormNumber != "Q6" {
				t.Errorf("unexpected Queue view: %+v", view)
			}

			view, err = s.BooksForTab("Poetry")
			if err != nil || len(view.Entries) != 0 || view.AriaLabel != "Books carousel" {
				t.Errorf("unexpected unknown tab view: %+v, %v", view, err)
			}

			books, err := s.AllBooks()
			if err != nil || len(books) != 29 {
				t.Errorf("AllBooks() returned %d books, %v", len(books), err)
			}

			report, err := s.Verify()
			if err != nil || !report.Ok() || report.LibraryCounts["JHU"] != 7 {
				t.Errorf("Verify() = %+v, %v", report, err)
			}

			form, err := s.FormNumber(shelf.TabAll, 8)
			if err != nil || form != "770" {
				t.Errorf("FormNumber() = %s, %v, want 770", form, err)
			}

			lib, err := s.AssignLibrary("1984")
			if err != nil || lib.ShortName != "BU" {
				t.Errorf("AssignLibrary() = %+v, %v, want BU", lib, err)
			}

			stamp, class, err := s.Stamp("JAN 15 2019", shelf.StampGreen)
			if err != nil || stamp.OffsetX != -6 || stamp.OffsetY != -5 || class != "text-green-600" {
				t.Errorf("Stamp() = %+v, %s, %v", stamp, class, err)
			}

			c, ok, err := s.Card("Fiction", 0)
			if err != nil || !ok || c.Title != "Recursion" || c.Library.ShortName != "FLP" {
				t.Errorf("Card() = %+v, %v, %v", c, ok, err)
			}
			if _, ok, err := s.Card("Fiction", 42); err != nil || ok {
				t.Errorf("Card() out of range = %v, %v", ok, err)
			}

			a, err := s.Analysis()
			if err != nil || a.Subject != "PSYCHOLOGICAL PROFILE: ISABELLE" {
				t.Errorf("Analysis() = %+v, %v", a, err)
			}
		})
	}
}

func TestRPCShelfErrors(t *testing.T) {
	ser := serializer.NewJSONSerializer()
	endpoint := startServer(t, ser)

	// domain errors keep their code across the wire
	s := newShelf(t, endpoint, testShelfID, ser)
	if _, err := s.AssignLibrary(" "); !errors.Is(err, shelf.ErrInvalidInput) {
		t.Errorf("AssignLibrary(blank) error = %v, want %v", err, shelf.ErrInvalidInput)
	}

	// unknown shelf
	missing := newShelf(t, endpoint, testShelfID+1, ser)
	if _, err := missing.Tabs(); err == nil {
		t.Error("Tabs() on an unknown shelf should fail")
	}

	// connect errors are reported by the constructor
	if _, err := NewRPCShelf(1, common.ClientConfig{}, httpTransport.NewHttpClientTransport(), ser); err == nil {
		t.Error("NewRPCShelf() without endpoints should fail")
	}
}
