package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// anchorRe matches an inline anchor; the first group is its id.
var anchorRe = regexp.MustCompile(`\^([A-Za-z0-9_-]+)`)

// FindStubAnchors scans the body for ^id markers and matches them to
// each stub's declared inline anchors. Lines count from the first line
// of the document, header included.
func (s *Switchboard) FindStubAnchors(text string) (*domain.AnchorReport, error) {
	doc, err := s.ParseDocument(text)
	if err != nil {
		return nil, err
	}

	anchors := scanAnchors(text, doc.Span)
	present := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		present[a.ID] = true
	}

	report := &domain.AnchorReport{
		Anchors: anchors,
		Stubs:   make([]domain.StubAnchorMatch, 0, len(doc.Properties.Stubs)),
	}
	for i, stub := range doc.Properties.Stubs {
		m := domain.StubAnchorMatch{
			Index:    i,
			Type:     stub.Type,
			Declared: []string{},
			Found:    []string{},
		}
		for _, declared := range stub.InlineAnchors {
			id := domain.NormaliseAnchorID(declared)
			m.Declared = append(m.Declared, id)
			if present[id] {
				m.Found = append(m.Found, id)
			} else {
				m.Missing = append(m.Missing, id)
			}
		}
		report.Stubs = append(report.Stubs, m)
	}
	return report, nil
}

// scanAnchors returns every anchor in the body, in document order.
func scanAnchors(text string, span domain.Span) []domain.AnchorOccurrence {
	out := []domain.AnchorOccurrence{}
	if span.BodyOffset >= len(text) {
		return out
	}
	line := span.BodyStartLine()
	for _, l := range strings.Split(text[span.BodyOffset:], "\n") {
		for _, m := range anchorRe.FindAllStringSubmatch(l, -1) {
			out = append(out, domain.AnchorOccurrence{ID: m[1], Line: line})
		}
		line++
	}
	return out
}
