package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ValentinKolb/dShelf/lib/shelf"
	"github.com/ValentinKolb/dShelf/rpc/common"
	"github.com/ValentinKolb/dShelf/rpc/serializer"
	"github.com/ValentinKolb/dShelf/rpc/transport"
)

// captureTransport records the registered handler instead of listening
type captureTransport struct {
	handler transport.ServerHandleFunc
}

func (c *captureTransport) RegisterHandler(handler transport.ServerHandleFunc) {
	c.handler = handler
}

func (c *captureTransport) Listen(ctx context.Context, config common.ServerConfig) error {
	<-ctx.Done()
	return nil
}

func newTestServer(t *testing.T, shelves ...common.ServerShelf) (*rpcServer, *captureTransport) {
	t.Helper()
	tr := &captureTransport{}
	s := NewRPCServer(common.ServerConfig{Shelves: shelves, LogLevel: "error"}, tr, serializer.NewJSONSerializer())
	if err := s.init(); err != nil {
		t.Fatalf("init() returned error: %v", err)
	}
	return &s, tr
}

// call sends a request through the registered handler
func call(t *testing.T, tr *captureTransport, shelfId uint64, req *common.Message) common.Message {
	t.Helper()
	ser := serializer.NewJSONSerializer()
	data, err := ser.Serialize(*req)
	if err != nil {
		t.Fatalf("failed to serialize request: %v", err)
	}
	var resp common.Message
	if err := ser.Deserialize(tr.handler(shelfId, data), &resp); err != nil {
		t.Fatalf("failed to deserialize response: %v", err)
	}
	return resp
}

func TestServerHandlesCatalogRequests(t *testing.T) {
	_, tr := newTestServer(t, common.ServerShelf{ShelfID: 1, Source: "builtin"})

	resp := call(t, tr, 1, common.NewTabsRequest())
	if len(resp.Tabs) != 6 || resp.Tabs[0] != shelf.TabAll {
		t.Errorf("unexpected tabs: %v", resp.Tabs)
	}

	resp = call(t, tr, 1, common.NewTabRequest("Fiction"))
	if resp.Collection == nil || len(resp.Collection.Entries) != 8 {
		t.Fatalf("unexpected Fiction collection: %+v", resp.Collection)
	}
	if resp.Collection.Entries[0].FormNumber != "760" {
		t.Errorf("first Fiction form number = %s, want 760", resp.Collection.Entries[0].FormNumber)
	}

	resp = call(t, tr, 1, common.NewAllBooksRequest())
	if len(resp.Books) != 29 {
		t.Errorf("len(Books) = %d, want 29", len(resp.Books))
	}

	resp = call(t, tr, 1, common.NewVerifyRequest())
	if !resp.Ok || resp.Report == nil || resp.Report.TotalBooks != 29 {
		t.Errorf("unexpected verify response: %+v", resp)
	}

	resp = call(t, tr, 1, common.NewFormNumberRequest(shelf.TabAll, 28))
	if resp.Value != "Q6" {
		t.Errorf("form number = %s, want Q6", resp.Value)
	}

	resp = call(t, tr, 1, common.NewAssignLibraryRequest("Book A"))
	if resp.Library == nil || resp.Library.ShortName != "LOC" {
		t.Errorf("unexpected library: %+v", resp.Library)
	}

	resp = call(t, tr, 1, common.NewStampRequest("2025-09-28", shelf.StampBrown))
	if resp.Stamp == nil || resp.Stamp.OffsetX != -5 || resp.Stamp.OffsetY != -6 || resp.Stamp.Rotation != -7 {
		t.Errorf("unexpected stamp: %+v", resp.Stamp)
	}
	if resp.Value != "text-amber-900" {
		t.Errorf("colour class = %s, want text-amber-900", resp.Value)
	}

	resp = call(t, tr, 1, common.NewCardRequest(shelf.TabCurrentlyReading, 0))
	if !resp.Ok || resp.Card == nil || resp.Card.FormNumber != "CR1" {
		t.Errorf("unexpected card response: %+v", resp)
	}
	resp = call(t, tr, 1, common.NewCardRequest(shelf.TabCurrentlyReading, 99))
	if resp.Ok || resp.Card != nil {
		t.Errorf("card out of range should not be ok: %+v", resp)
	}

	resp = call(t, tr, 1, common.NewAnalysisRequest())
	if resp.Analysis == nil || len(resp.Analysis.Sections) != 7 {
		t.Errorf("unexpected analysis: %+v", resp.Analysis)
	}
}

func TestServerErrors(t *testing.T) {
	_, tr := newTestServer(t, common.ServerShelf{ShelfID: 1, Source: "builtin"})

	// unknown shelf
	resp := call(t, tr, 2, common.NewTabsRequest())
	if resp.MsgType != common.MsgTError || !strings.Contains(resp.Err, "not found") {
		t.Errorf("unexpected response for unknown shelf: %+v", resp)
	}

	// garbage request
	var msg common.Message
	if err := serializer.NewJSONSerializer().Deserialize(tr.handler(1, []byte("{")), &msg); err != nil {
		t.Fatalf("failed to deserialize response: %v", err)
	}
	if msg.MsgType != common.MsgTError {
		t.Errorf("unexpected response for garbage: %+v", msg)
	}

	// unsupported type
	resp = call(t, tr, 1, &common.Message{MsgType: common.MsgTSuccess})
	if resp.MsgType != common.MsgTError || resp.Code != shelf.RetCInvalidInput {
		t.Errorf("unexpected response for unsupported type: %+v", resp)
	}

	// domain error keeps its code
	resp = call(t, tr, 1, common.NewAssignLibraryRequest("   "))
	if resp.Err == "" || resp.Code != shelf.RetCInvalidInput {
		t.Errorf("unexpected response for blank title: %+v", resp)
	}
}

func TestServerInitErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("categories:\n  - name: X\n    books:\n      - {title: A, author: B, category: X}\n"), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	tests := []struct {
		name    string
		config  common.ServerConfig
		wantErr string
	}{
		{"no shelves", common.ServerConfig{LogLevel: "info"}, "no shelves"},
		{"bad log level", common.ServerConfig{LogLevel: "loud"}, "invalid log level"},
		{"duplicate id", common.ServerConfig{LogLevel: "info", Shelves: []common.ServerShelf{{ShelfID: 1, Source: "builtin"}, {ShelfID: 1, Source: "builtin"}}}, "used by"},
		{"missing file", common.ServerConfig{LogLevel: "info", Shelves: []common.ServerShelf{{ShelfID: 1, Source: filepath.Join(dir, "missing.yaml")}}}, "shelf 1"},
		{"broken catalog", common.ServerConfig{LogLevel: "info", Shelves: []common.ServerShelf{{ShelfID: 3, Source: broken}}}, "no libraries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRPCServer(tt.config, &captureTransport{}, serializer.NewJSONSerializer())
			err := s.init()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("init() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestServeStopsWithContext(t *testing.T) {
	s := NewRPCServer(common.ServerConfig{LogLevel: "info", Shelves: []common.ServerShelf{{ShelfID: 1, Source: "builtin"}}},
		&captureTransport{}, serializer.NewGOBSerializer())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Serve(ctx); err != nil {
		t.Errorf("Serve() returned error: %v", err)
	}
}
