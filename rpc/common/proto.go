package common

import (
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/dShelf/lib/analysis"
	"github.com/ValentinKolb/dShelf/lib/assign"
	"github.com/ValentinKolb/dShelf/lib/card"
	"github.com/ValentinKolb/dShelf/lib/catalog"
	"github.com/ValentinKolb/dShelf/lib/shelf"
)

// --------------------------------------------------------------------------
// Message Structure
// --------------------------------------------------------------------------

// Message represents a single message used for both requests and responses.
// Which fields are used depends on the type of message.
type Message struct {
	// Type of message
	MsgType MessageType `json:"msg_type"`

	// Request fields
	Tab   string           `json:"tab,omitempty"`   // Used for: Tab, FormNumber, Card
	Key   string           `json:"key,omitempty"`   // Used for: AssignLibrary (title), Stamp (date label)
	Index int              `json:"index,omitempty"` // Used for: FormNumber, Card
	Color shelf.StampColor `json:"color,omitempty"` // Used for: Stamp

	// Response fields
	Collection *catalog.TabView `json:"collection,omitempty"` // Used for: Tab
	Books      []shelf.Book     `json:"books,omitempty"`      // Used for: AllBooks
	Tabs       []string         `json:"tabs,omitempty"`       // Used for: Tabs
	Library    *shelf.Library   `json:"library,omitempty"`    // Used for: AssignLibrary
	Stamp      *assign.Stamp    `json:"stamp,omitempty"`      // Used for: Stamp
	Report     *catalog.Report  `json:"report,omitempty"`     // Used for: Verify
	Card       *card.Card       `json:"card,omitempty"`       // Used for: Card
	Analysis   *analysis.Report `json:"analysis,omitempty"`   // Used for: Analysis
	Value      string           `json:"value,omitempty"`      // Used for: FormNumber, Stamp (colour class)

	// Response only fields
	Ok   bool          `json:"ok,omitempty"`   // Used for: Card (false if the index is out of range)
	Err  string        `json:"err,omitempty"`  // Empty if no error, otherwise contains the error message
	Code shelf.RetCode `json:"code,omitempty"` // Return code of the error, lets clients rebuild a shelf.Error
}

// --------------------------------------------------------------------------
// Message Factory Functions
// --------------------------------------------------------------------------

// setErr copies err into the message
func (m *Message) setErr(err error) *Message {
	if err != nil {
		m.Err = err.Error()
		m.Code = shelf.CodeOf(err)
	}
	return m
}

// NewTabRequest creates a new Tab request
func NewTabRequest(tab string) *Message {
	return &Message{
		MsgType: MsgTTab,
		Tab:     tab,
	}
}

// NewTabResponse creates a new Tab response
func NewTabResponse(view catalog.TabView) *Message {
	return &Message{
		MsgType:    MsgTTab,
		Collection: &view,
	}
}

// NewAllBooksRequest creates a new AllBooks request
func NewAllBooksRequest() *Message {
	return &Message{
		MsgType: MsgTAllBooks,
	}
}

// NewAllBooksResponse creates a new AllBooks response
func NewAllBooksResponse(books []shelf.Book) *Message {
	return &Message{
		MsgType: MsgTAllBooks,
		Books:   books,
	}
}

// NewTabsRequest creates a new Tabs request
func NewTabsRequest() *Message {
	return &Message{
		MsgType: MsgTTabs,
	}
}

// NewTabsResponse creates a new Tabs response
func NewTabsResponse(tabs []string) *Message {
	return &Message{
		MsgType: MsgTTabs,
		Tabs:    tabs,
	}
}

// NewVerifyRequest creates a new Verify request
func NewVerifyRequest() *Message {
	return &Message{
		MsgType: MsgTVerify,
	}
}

// NewVerifyResponse creates a new Verify response
func NewVerifyResponse(report catalog.Report) *Message {
	return &Message{
		MsgType: MsgTVerify,
		Report:  &report,
		Ok:      report.Ok(),
	}
}

// NewFormNumberRequest creates a new FormNumber request
func NewFormNumberRequest(tab string, index int) *Message {
	return &Message{
		MsgType: MsgTFormNumber,
		Tab:     tab,
		Index:   index,
	}
}

// NewFormNumberResponse creates a new FormNumber response
func NewFormNumberResponse(formNumber string) *Message {
	return &Message{
		MsgType: MsgTFormNumber,
		Value:   formNumber,
	}
}

// NewAssignLibraryRequest creates a new AssignLibrary request
func NewAssignLibraryRequest(title string) *Message {
	return &Message{
		MsgType: MsgTAssignLibrary,
		Key:     title,
	}
}

// NewAssignLibraryResponse creates a new AssignLibrary response
func NewAssignLibraryResponse(lib shelf.Library, err error) *Message {
	msg := &Message{
		MsgType: MsgTAssignLibrary,
	}
	if err != nil {
		return msg.setErr(err)
	}
	msg.Library = &lib
	return msg
}

// NewStampRequest creates a new Stamp request
func NewStampRequest(date string, color shelf.StampColor) *Message {
	return &Message{
		MsgType: MsgTStamp,
		Key:     date,
		Color:   color,
	}
}

// NewStampResponse creates a new Stamp response
func NewStampResponse(stamp assign.Stamp, colorClass string) *Message {
	return &Message{
		MsgType: MsgTStamp,
		Stamp:   &stamp,
		Value:   colorClass,
	}
}

// NewCardRequest creates a new Card request
func NewCardRequest(tab string, index int) *Message {
	return &Message{
		MsgType: MsgTCard,
		Tab:     tab,
		Index:   index,
	}
}

// NewCardResponse creates a new Card response, ok is false if there is no book at the index
func NewCardResponse(c card.Card, ok bool) *Message {
	msg := &Message{
		MsgType: MsgTCard,
		Ok:      ok,
	}
	if ok {
		msg.Card = &c
	}
	return msg
}

// NewAnalysisRequest creates a new Analysis request
func NewAnalysisRequest() *Message {
	return &Message{
		MsgType: MsgTAnalysis,
	}
}

// NewAnalysisResponse creates a new Analysis response
func NewAnalysisResponse(report analysis.Report) *Message {
	return &Message{
		MsgType:  MsgTAnalysis,
		Analysis: &report,
	}
}

// NewErrorResponse creates a new Error response
func NewErrorResponse(err string) *Message {
	return &Message{
		MsgType: MsgTError,
		Err:     err,
	}
}

// NewShelfErrorResponse creates a new Error response that keeps the return code of err
func NewShelfErrorResponse(err error) *Message {
	return (&Message{MsgType: MsgTError}).setErr(err)
}

// --------------------------------------------------------------------------
// Message Type Definition
// --------------------------------------------------------------------------

// MessageType defines the type of message used in RPC communication.
type MessageType uint8

var msgTypeNames = map[MessageType]string{
	MsgTUnknown:       "unknown",
	MsgTSuccess:       "success",
	MsgTError:         "error",
	MsgTTab:           "tab",
	MsgTAllBooks:      "allBooks",
	MsgTTabs:          "tabs",
	MsgTVerify:        "verify",
	MsgTFormNumber:    "formNumber",
	MsgTAssignLibrary: "assignLibrary",
	MsgTStamp:         "stamp",
	MsgTCard:          "card",
	MsgTAnalysis:      "analysis",
}

// String returns the string representation of a MessageType.
func (t MessageType) String() string {
	if name, ok := msgTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON implements the json.Marshaller interface for MessageType.
// This allows MessageType to be serialized as a string in JSON.
func (t MessageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for MessageType.
// This allows MessageType to be deserialized from a string in JSON.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for msgType, name := range msgTypeNames {
		if name == s {
			*t = msgType
			return nil
		}
	}
	return fmt.Errorf("unknown message type: %s", s)
}

// --------------------------------------------------------------------------
// Message Type Constants
// --------------------------------------------------------------------------

const (
	// General message types

	MsgTUnknown MessageType = iota
	MsgTSuccess             // Indicates a successful operation
	MsgTError               // Indicates an error occurred

	// ICatalog operations

	MsgTTab        // Get the collection of a tab
	MsgTAllBooks   // Get the flattened catalog
	MsgTTabs       // Get the tab identifiers in display order
	MsgTVerify     // Run the integrity scan
	MsgTFormNumber // Get the form number of a position on a tab

	// Assignment operations

	MsgTAssignLibrary // Assign a library to a title
	MsgTStamp         // Compute the placement of a checkout stamp

	// Presentation operations

	MsgTCard     // Project a book onto a library card
	MsgTAnalysis // Get the literary profile of the shelf
)
