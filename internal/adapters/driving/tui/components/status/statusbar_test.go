package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateLoading, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.StubCount())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilArguments(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		count    int
		contains []string
	}{
		{"loading", StateLoading, "", 0, []string{"Loading..."}},
		{"ready", StateReady, "", 3, []string{"Ready", "3 stubs", "x: resolve"}},
		{"modified", StateModified, "resolved stub [1]", 2, []string{"Modified", "2 stubs", "resolved stub [1]"}},
		{"saving", StateSaving, "", 0, []string{"Saving..."}},
		{"editing", StateEditing, "", 0, []string{"Editing description", "enter: apply", "esc: cancel"}},
		{"error", StateError, "disk full", 0, []string{"Error: disk full"}},
		{"error without message", StateError, "", 0, []string{"Error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(160)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)
			bar.SetStubCount(tt.count)

			view := bar.View()
			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}
		})
	}
}
