package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

const parseBasic = "---\ntitle: T\nrefinement: 0.75\naudience: internal\n---\n# body"

const threeStubs = `---
title: Three
refinement: 0.5
stubs:
  - type: source
    description: one
    stub_form: blocking
    priority: high
  - type: expand
    description: two
  - type: source-check
    description: three
    priority: high
    inline_anchors: ["^intro"]
---
Intro paragraph ^intro
`

func stubsOf(t *testing.T, sb *Switchboard, text string) []domain.Stub {
	t.Helper()
	doc, err := sb.ParseDocument(text)
	require.NoError(t, err)
	return doc.Properties.Stubs
}

// TestAddResolveRoundTrip tests adding then resolving a stub
func TestAddResolveRoundTrip(t *testing.T) {
	sb := newTestSwitchboard()

	added, err := sb.AddStub(parseBasic, domain.StubSpec{Type: "expand", Description: "more detail"})
	require.NoError(t, err)
	assert.Equal(t, 0, added.Index)
	assert.True(t, strings.HasSuffix(added.Text, "---\n# body"))

	listed, err := sb.ListStubs(added.Text, domain.StubFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.StubSpec{Type: "expand", Description: "more detail"}.Canonicalize(), listed[0].Stub)

	resolved, err := sb.ResolveStub(added.Text, 0)
	require.NoError(t, err)
	assert.Equal(t, "expand", resolved.Removed.Type)
	assert.Empty(t, stubsOf(t, sb, resolved.Text))
	assert.True(t, strings.HasSuffix(resolved.Text, "---\n# body"))
}

// TestAddStub_AppendsAtEnd tests index assignment
func TestAddStub_AppendsAtEnd(t *testing.T) {
	sb := newTestSwitchboard()

	res, err := sb.AddStub(threeStubs, domain.StubSpec{Type: "draft", StubForm: "weird", Priority: "HIGH"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Index)

	stubs := stubsOf(t, sb, res.Text)
	require.Len(t, stubs, 4)
	assert.Equal(t, "draft", stubs[3].Type)
	assert.Equal(t, domain.StubFormTransient, stubs[3].Form)
	assert.Equal(t, domain.PriorityHigh, stubs[3].Priority)
	assert.Equal(t, "one", stubs[0].Description)
}

// TestAddStub_NoHeader tests adding to a document without a header fails
func TestAddStub_NoHeader(t *testing.T) {
	_, err := newTestSwitchboard().AddStub("just text\n", domain.StubSpec{Type: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoFrontmatter))
}

// TestResolveStub_ShiftsIndices tests later stubs move down
func TestResolveStub_ShiftsIndices(t *testing.T) {
	sb := newTestSwitchboard()
	before := stubsOf(t, sb, threeStubs)

	res, err := sb.ResolveStub(threeStubs, 1)
	require.NoError(t, err)
	assert.Equal(t, before[1], res.Removed)

	after := stubsOf(t, sb, res.Text)
	assert.Equal(t, []domain.Stub{before[0], before[2]}, after)
	assert.True(t, strings.HasSuffix(res.Text, "---\nIntro paragraph ^intro\n"))
}

// TestStubIndexOutOfRange tests every indexed operation rejects bad indices
func TestStubIndexOutOfRange(t *testing.T) {
	sb := newTestSwitchboard()
	desc := "x"

	ops := map[string]func(int) error{
		"resolve": func(i int) error { _, err := sb.ResolveStub(threeStubs, i); return err },
		"update": func(i int) error {
			_, err := sb.UpdateStub(threeStubs, i, domain.StubUpdate{Description: &desc})
			return err
		},
		"link":   func(i int) error { _, err := sb.LinkStubAnchor(threeStubs, i, "a"); return err },
		"unlink": func(i int) error { _, err := sb.UnlinkStubAnchor(threeStubs, i, "a"); return err },
	}

	for name, op := range ops {
		for _, idx := range []int{3, -1, 100} {
			t.Run(name, func(t *testing.T) {
				err := op(idx)
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrStubIndexOutOfRange))
				de, ok := domain.AsError(err)
				require.True(t, ok)
				assert.Equal(t, domain.KindStubOperation, de.Kind)
			})
		}
	}
}

// TestUpdateStub tests partial updates
func TestUpdateStub(t *testing.T) {
	sb := newTestSwitchboard()
	desc := "rewritten"
	prio := domain.PriorityCritical

	res, err := sb.UpdateStub(threeStubs, 1, domain.StubUpdate{Description: &desc, Priority: &prio})
	require.NoError(t, err)
	assert.Equal(t, "rewritten", res.Stub.Description)
	assert.Equal(t, domain.PriorityCritical, res.Stub.Priority)
	assert.Equal(t, domain.StubFormTransient, res.Stub.Form)

	stubs := stubsOf(t, sb, res.Text)
	assert.Equal(t, res.Stub, stubs[1])
}

// TestUpdateStub_Empty tests an empty update returns the input unchanged
func TestUpdateStub_Empty(t *testing.T) {
	res, err := newTestSwitchboard().UpdateStub(threeStubs, 0, domain.StubUpdate{})
	require.NoError(t, err)
	assert.Equal(t, threeStubs, res.Text)
}

// TestUpdateStub_InvalidEnum tests invalid enum values are rejected
func TestUpdateStub_InvalidEnum(t *testing.T) {
	bad := domain.Priority("asap")
	_, err := newTestSwitchboard().UpdateStub(threeStubs, 0, domain.StubUpdate{Priority: &bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidEnumValue))
}

// TestLinkStubAnchor_Idempotent tests linking twice equals linking once
func TestLinkStubAnchor_Idempotent(t *testing.T) {
	sb := newTestSwitchboard()

	once, err := sb.LinkStubAnchor(threeStubs, 0, "methods")
	require.NoError(t, err)
	assert.Equal(t, []string{"^methods"}, once.Stub.InlineAnchors)

	twice, err := sb.LinkStubAnchor(once.Text, 0, "^methods")
	require.NoError(t, err)
	assert.Equal(t, once.Text, twice.Text)
	assert.Equal(t, stubsOf(t, sb, once.Text), stubsOf(t, sb, twice.Text))
}

// TestLinkStubAnchor_InvalidID tests anchor id validation
func TestLinkStubAnchor_InvalidID(t *testing.T) {
	sb := newTestSwitchboard()

	_, err := sb.LinkStubAnchor(threeStubs, 0, "^")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = sb.LinkStubAnchor(threeStubs, 0, "has space")
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
}

// TestUnlinkStubAnchor tests removal and the absent no-op
func TestUnlinkStubAnchor(t *testing.T) {
	sb := newTestSwitchboard()

	absent, err := sb.UnlinkStubAnchor(threeStubs, 2, "nothere")
	require.NoError(t, err)
	assert.Equal(t, threeStubs, absent.Text)
	assert.Equal(t, []string{"^intro"}, absent.Stub.InlineAnchors)

	removed, err := sb.UnlinkStubAnchor(threeStubs, 2, "intro")
	require.NoError(t, err)
	assert.Empty(t, removed.Stub.InlineAnchors)
	assert.Empty(t, stubsOf(t, sb, removed.Text)[2].InlineAnchors)
}

// TestListStubs_Filter tests filter combinations
func TestListStubs_Filter(t *testing.T) {
	sb := newTestSwitchboard()

	tests := []struct {
		name    string
		filter  domain.StubFilter
		indices []int
	}{
		{"all", domain.StubFilter{}, []int{0, 1, 2}},
		{"type substring", domain.StubFilter{Type: "SOURCE"}, []int{0, 2}},
		{"blocking only", domain.StubFilter{BlockingOnly: true}, []int{0}},
		{"priority", domain.StubFilter{Priority: domain.PriorityHigh}, []int{0, 2}},
		{"combined", domain.StubFilter{Type: "source", Priority: domain.PriorityMedium}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sb.ListStubs(threeStubs, tt.filter)
			require.NoError(t, err)
			indices := make([]int, 0, len(got))
			for _, s := range got {
				indices = append(indices, s.Index)
			}
			assert.Equal(t, tt.indices, indices)
		})
	}
}

// TestInitDocument tests stamping with and without a header
func TestInitDocument(t *testing.T) {
	sb := newTestSwitchboard()

	t.Run("creates header", func(t *testing.T) {
		res, err := sb.InitDocument("# Note\n", domain.InitOptions{UID: "u-1", Title: "Note"})
		require.NoError(t, err)
		assert.True(t, res.Created)
		assert.True(t, strings.HasSuffix(res.Text, "---\n\n# Note\n"))

		doc, err := sb.ParseDocument(res.Text)
		require.NoError(t, err)
		assert.Equal(t, "u-1", doc.Properties.UID)
		assert.Equal(t, "Note", doc.Properties.Title)
		require.NotNil(t, doc.Properties.Created)
		assert.True(t, doc.Properties.Created.Equal(fixedNow))
	})

	t.Run("keeps existing values", func(t *testing.T) {
		text := "---\nuid: keep\ntitle: Kept\ncreated: 2020-01-01\n---\nbody\n"
		res, err := sb.InitDocument(text, domain.InitOptions{UID: "new"})
		require.NoError(t, err)
		assert.False(t, res.Created)
		assert.Equal(t, "keep", res.Properties.UID)
		assert.Equal(t, 2020, res.Properties.Created.Year())
		assert.True(t, res.Properties.Modified.Equal(fixedNow))
		assert.True(t, strings.HasSuffix(res.Text, "---\nbody\n"))
	})

	t.Run("unclosed header fails", func(t *testing.T) {
		_, err := sb.InitDocument("---\ntitle: x\n", domain.InitOptions{})
		assert.ErrorIs(t, err, domain.ErrInvalidDelimiters)
	})
}

// TestEdit_ErrorMapping tests lower-level errors become domain errors
func TestEdit_ErrorMapping(t *testing.T) {
	doc := &domain.ParsedDocument{Properties: domain.NewProperties()}

	t.Run("parser failure becomes operation error", func(t *testing.T) {
		sb := NewSwitchboard(&mockParser{err: errors.New("disk gone")}, &mockWriter{}, nil, nil)
		_, err := sb.AddStub("x", domain.StubSpec{Type: "a"})
		de, ok := domain.AsError(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindOperation, de.Kind)
		assert.Equal(t, "disk gone", de.Message)
	})

	t.Run("writer failure becomes serialize error", func(t *testing.T) {
		w := &mockWriter{err: errors.New("encoder broke")}
		sb := NewSwitchboard(&mockParser{doc: doc}, w, nil, nil)
		_, err := sb.AddStub("x", domain.StubSpec{Type: "a"})
		de, ok := domain.AsError(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindSerialize, de.Kind)
		assert.True(t, errors.Is(err, domain.ErrSerialize))
		assert.Equal(t, 1, w.calls)
	})
}
