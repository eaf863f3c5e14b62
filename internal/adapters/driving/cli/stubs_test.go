package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

func TestStubsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(stubsCmd.Commands()))
	for _, c := range stubsCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"list", "add", "resolve", "update", "link", "unlink", "anchors"}, names)
}

func TestStubsListCmd(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name:     "all",
			contains: []string{"[0] expand  transient, medium", "[1] source  blocking, high", "anchors: ^bench", "Total: 2 stubs"},
		},
		{
			name:        "blocking only",
			args:        []string{"--blocking"},
			contains:    []string{"[1] source"},
			notContains: []string{"[0] expand"},
		},
		{
			name:        "by type",
			args:        []string{"--type", "EXP"},
			contains:    []string{"[0] expand", "Total: 1 stubs"},
			notContains: []string{"[1] source"},
		},
		{
			name:     "by priority",
			args:     []string{"--priority", "low"},
			contains: []string{"No stubs found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestServices()
			defer cleanup()
			path := writeDoc(t, "guide.md", guideDoc)

			out, err := execute(append([]string{"stubs", "list", path}, tt.args...)...)

			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestStubsListCmd_InvalidPriority(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	_, err := execute("stubs", "list", path, "--priority", "urgent")

	require.Error(t, err)
	assert.Equal(t, "invalid_enum_value", domain.CodeOf(err))
}

func TestStubsListCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	out, err := execute("stubs", "list", "--json", path)
	require.NoError(t, err)

	var got []domain.IndexedStub
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[1].Index)
	assert.Equal(t, domain.StubFormBlocking, got[1].Stub.Form)
}

func TestStubsAddCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	out, err := execute("stubs", "add", path,
		"-t", "verify", "-d", "Check the numbers",
		"--priority", "CRITICAL", "--urgency", "0.9",
		"--assignee", "ana", "--assignee", "ben")

	require.NoError(t, err)
	assert.Contains(t, out, "Added stub [2] to "+path)

	out, err = execute("stubs", "list", "--json", path)
	require.NoError(t, err)
	var got []domain.IndexedStub
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	added := got[2].Stub
	assert.Equal(t, "verify", added.Type)
	assert.Equal(t, domain.PriorityCritical, added.Priority)
	require.NotNil(t, added.Urgency)
	assert.InDelta(t, 0.9, added.Urgency.Float64(), 1e-9)
	assert.Nil(t, added.Impact)
	assert.Equal(t, []string{"ana", "ben"}, added.Assignees)
}

func TestStubsAddCmd_DryRun(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	out, err := execute("stubs", "add", path, "--dry-run", "-t", "verify", "-d", "Check")

	require.NoError(t, err)
	assert.Contains(t, out, "type: verify")
	assert.NotContains(t, out, "Added stub")
	assert.Equal(t, guideDoc, readDoc(t, path))
}

func TestStubsAddCmd_RequiresTypeAndDescription(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	_, err := execute("stubs", "add", path, "-t", "verify")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "description" not set`)
}

func TestStubsAddCmd_Stdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeWithInput(guideDoc, "stubs", "add", "-", "-t", "verify", "-d", "Check")

	require.NoError(t, err)
	assert.Contains(t, out, "type: verify")
	assert.Contains(t, out, "# Guide")
}

func TestStubsResolveCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	out, err := execute("stubs", "resolve", path, "0")

	require.NoError(t, err)
	assert.Contains(t, out, "Resolved stub [0] expand: More examples")
	assert.NotContains(t, readDoc(t, path), "More examples")
	assert.Contains(t, readDoc(t, path), "Cite the benchmark")
}

func TestStubsResolveCmd_Errors(t *testing.T) {
	tests := []struct {
		name  string
		index string
		want  string
	}{
		{"not a number", "first", `invalid stub index "first"`},
		{"out of range", "5", "failed to resolve stub"},
		{"negative", "-1", "failed to resolve stub"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestServices()
			defer cleanup()
			path := writeDoc(t, "guide.md", guideDoc)

			_, err := execute("stubs", "resolve", path, "--", tt.index)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, guideDoc, readDoc(t, path))
		})
	}
}

func TestStubsUpdateCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	out, err := execute("stubs", "update", path, "0", "--priority", "HIGH", "-d", "Add three examples")

	require.NoError(t, err)
	assert.Contains(t, out, "Updated stub [0] in "+path)

	out, err = execute("stubs", "list", "--json", path)
	require.NoError(t, err)
	var got []domain.IndexedStub
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.PriorityHigh, got[0].Stub.Priority)
	assert.Equal(t, "Add three examples", got[0].Stub.Description)
	assert.Equal(t, domain.StubFormTransient, got[0].Stub.Form)
}

func TestStubsUpdateCmd_InvalidForm(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	_, err := execute("stubs", "update", path, "0", "--form", "eternal")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update stub")
	assert.Equal(t, guideDoc, readDoc(t, path))
}

func TestStubsLinkUnlinkCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	out, err := execute("stubs", "link", path, "0", "^intro")
	require.NoError(t, err)
	assert.Contains(t, out, "Linked anchor on stub [0] in "+path)
	assert.Contains(t, readDoc(t, path), "^intro")

	out, err = execute("stubs", "unlink", path, "0", "intro")
	require.NoError(t, err)
	assert.Contains(t, out, "Unlinked anchor on stub [0] in "+path)
	assert.NotContains(t, readDoc(t, path), "^intro")
}

func TestStubsAnchorsCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := writeDoc(t, "guide.md", guideDoc)

	out, err := execute("stubs", "anchors", path)

	require.NoError(t, err)
	assert.Contains(t, out, "^bench  line")
	assert.Contains(t, out, "[1] source: 1 of 1 anchors found")
	assert.NotContains(t, out, "[0] expand")
}

func TestStubsAnchorsCmd_Missing(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	doc := "---\ntitle: T\nstubs:\n  - type: source\n    description: d\n    inline_anchors: [\"^gone\"]\n---\nbody\n"
	path := writeDoc(t, "gone.md", doc)

	out, err := execute("stubs", "anchors", path)

	require.NoError(t, err)
	assert.Contains(t, out, "No anchors found.")
	assert.Contains(t, out, "0 of 1 anchors found, missing")
}

func TestParseIndex(t *testing.T) {
	i, err := parseIndex("3")
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = parseIndex("x")
	assert.Error(t, err)
}
