package analysis

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/ValentinKolb/dShelf/lib/catalog"
)

//go:embed data/report.txt
var reportText string

const (
	Title       = "Literary Psychology Analysis"
	Description = "AI-powered personality insights based on your literary collection"
	Number      = "Analysis Report #2025-001"
	Engine      = "AI Literary Profiler v3.0"
	Motto       = "Every library is a portrait of the mind that assembled it."

	headingMarker = "**"
)

// Section is a headed block of the report
type Section struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
}

// Report is the canned literary profile shown for a shelf.
type Report struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Number      string    `json:"number"`
	Engine      string    `json:"engine"`
	Subject     string    `json:"subject"`
	Intro       []string  `json:"intro"`
	Sections    []Section `json:"sections"`
	Basis       string    `json:"basis"`
	Motto       string    `json:"motto"`
}

// parsed holds the intro and sections of the embedded report text
var parsed = sync.OnceValues(func() ([]string, []Section) {
	return Parse(reportText)
})

// Parse splits a report text into paragraphs on blank lines. A paragraph
// containing **markers** is split on them: odd parts open a new section,
// the remaining non-blank parts are paragraphs of the current section.
// Paragraphs before the first heading form the intro.
func Parse(text string) (intro []string, sections []Section) {
	intro = []string{}
	sections = []Section{}

	for _, paragraph := range strings.Split(strings.TrimSpace(text), "\n\n") {
		if !strings.Contains(paragraph, headingMarker) {
			if p := strings.TrimSpace(paragraph); p != "" {
				if len(sections) == 0 {
					intro = append(intro, p)
				} else {
					last := &sections[len(sections)-1]
					last.Paragraphs = append(last.Paragraphs, p)
				}
			}
			continue
		}

		for i, part := range strings.Split(paragraph, headingMarker) {
			if i%2 == 1 {
				sections = append(sections, Section{Heading: part, Paragraphs: []string{}})
				continue
			}
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			if len(sections) == 0 {
				intro = append(intro, p)
			} else {
				last := &sections[len(sections)-1]
				last.Paragraphs = append(last.Paragraphs, p)
			}
		}
	}
	return intro, sections
}

// New builds the report for a catalog. The text is fixed, only the subject
// line and the statistics in the footer depend on the catalog.
func New(idx catalog.ICatalog) Report {
	intro, sections := parsed()
	report := idx.Verify()

	return Report{
		Title:       Title,
		Description: Description,
		Number:      Number,
		Engine:      Engine,
		Subject:     "PSYCHOLOGICAL PROFILE: " + strings.ToUpper(idx.Owner()),
		Intro:       append([]string(nil), intro...),
		Sections:    cloneSections(sections),
		Basis: fmt.Sprintf("Generated by Advanced Literary Analysis Engine • Based on analysis of %d books across %d categories",
			report.TotalBooks, len(report.CategoryCounts)),
		Motto: Motto,
	}
}

func cloneSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section{Heading: s.Heading, Paragraphs: append([]string(nil), s.Paragraphs...)}
	}
	return out
}

// String renders the report as plain text
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%s\n\n%s | %s\n%s\n\n", r.Title, r.Description, r.Number, r.Engine, r.Subject)
	for _, p := range r.Intro {
		sb.WriteString(p + "\n\n")
	}
	for _, s := range r.Sections {
		sb.WriteString(s.Heading + "\n")
		for _, p := range s.Paragraphs {
			sb.WriteString(p + "\n")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "%s\n%q\n", r.Basis, r.Motto)
	return sb.String()
}
