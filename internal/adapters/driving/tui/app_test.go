package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driven/codec/frontmatter"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driven/schema"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/doc-doctor/internal/core/domain"
	"github.com/custodia-labs/doc-doctor/internal/core/services"
)

const twoStubs = `---
title: Guide
refinement: 0.8
stubs:
  - type: expand
    description: More examples
  - type: source
    description: Cite the benchmark
    stub_form: blocking
    priority: high
---
# Guide
`

// memStore is an in-memory DocumentStore.
type memStore struct {
	text    string
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Path() string { return "guide.md" }

func (m *memStore) Load(_ context.Context) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.text, nil
}

func (m *memStore) Save(_ context.Context, text string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.text = text
	return nil
}

func newTestApp(t *testing.T, store *memStore) *App {
	t.Helper()
	codec := frontmatter.New()
	sb := services.NewSwitchboard(codec, codec, schema.NewProvider(), nil)
	app, err := NewApp(NewPorts(sb, store))
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app
}

// loaded returns an app with the store's document loaded.
func loaded(t *testing.T, store *memStore) *App {
	t.Helper()
	app := newTestApp(t, store)
	msg := app.loadCmd()()
	app.Update(msg)
	require.NoError(t, app.Err())
	return app
}

// press sends a key and feeds the resulting message back, one round trip.
// Commands issued while the editor is open only drive the cursor and are dropped.
func press(app *App, k tea.KeyMsg) {
	_, cmd := app.Update(k)
	if cmd == nil || app.Editing() {
		return
	}
	if msg := cmd(); msg != nil {
		app.Update(msg)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// selectStub moves the selection onto the stub with document index.
func selectStub(t *testing.T, app *App, index int) {
	t.Helper()
	for i := 0; i < len(app.stubList.Stubs()); i++ {
		if app.Selected().Index == index {
			return
		}
		press(app, runes("j"))
	}
	require.Equal(t, index, app.Selected().Index)
}

func TestNewApp_InvalidPorts(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"nil", nil, ErrInvalidPorts},
		{"no switchboard", &Ports{Store: &memStore{}}, ErrMissingSwitchboard},
		{"no store", &Ports{Switchboard: services.NewSwitchboard(frontmatter.New(), frontmatter.New(), schema.NewProvider(), nil)}, ErrMissingStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.ports)

			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, app)
		})
	}
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, &memStore{})

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t, &memStore{text: twoStubs})

	assert.NotNil(t, app.Init())
}

func TestApp_View_BeforeReady(t *testing.T) {
	codec := frontmatter.New()
	sb := services.NewSwitchboard(codec, codec, schema.NewProvider(), nil)
	app, err := NewApp(NewPorts(sb, &memStore{}))
	require.NoError(t, err)

	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Loading document...")
}

func TestApp_Load(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})

	require.NotNil(t, app.Analysis())
	assert.Len(t, app.Analysis().Ranked, 2)
	assert.False(t, app.Dirty())
	assert.Equal(t, status.StateReady, app.Status())

	view := app.View()
	assert.Contains(t, view, "guide.md")
	assert.Contains(t, view, "Guide")
	assert.Contains(t, view, "Stubs (2)")
	assert.Contains(t, view, "1 blocking stub(s)")
}

func TestApp_LoadError(t *testing.T) {
	app := newTestApp(t, &memStore{loadErr: errors.New("permission denied")})

	app.Update(app.loadCmd()())

	assert.EqualError(t, app.Err(), "permission denied")
	assert.Equal(t, status.StateError, app.Status())
}

func TestApp_UnparseableDocument(t *testing.T) {
	app := newTestApp(t, &memStore{text: "# no header\n"})

	app.Update(app.loadCmd()())

	require.Error(t, app.Err())
	assert.Nil(t, app.Analysis())
	assert.Contains(t, app.View(), "Cannot analyse document")
}

func TestApp_Resolve(t *testing.T) {
	store := &memStore{text: twoStubs}
	app := loaded(t, store)
	selectStub(t, app, 1)

	press(app, runes("x"))

	require.NoError(t, app.Err())
	require.Len(t, app.Analysis().Ranked, 1)
	assert.Equal(t, "expand", app.Analysis().Ranked[0].Stub.Type)
	assert.True(t, app.Dirty())
	assert.Equal(t, status.StateModified, app.Status())
	assert.Contains(t, app.statusBar.Message(), "resolved stub [1] source")
	assert.Equal(t, twoStubs, store.text)
}

func TestApp_ResolveLastStub(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})

	press(app, runes("x"))
	press(app, runes("x"))
	press(app, runes("x"))

	require.NoError(t, app.Err())
	assert.Empty(t, app.Analysis().Ranked)
	assert.Nil(t, app.Selected())
	assert.Contains(t, app.View(), "No stubs")
}

func TestApp_IgnoresEditsWhilePending(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})
	selectStub(t, app, 1)

	_, first := app.Update(runes("x"))
	require.NotNil(t, first)
	require.True(t, app.Pending())

	for _, k := range []string{"x", "p", "f", "e", "s", "R"} {
		_, cmd := app.Update(runes(k))
		assert.Nil(t, cmd, k)
		assert.False(t, app.Editing(), k)
		assert.Equal(t, "edit in progress", app.statusBar.Message(), k)
	}

	app.Update(first())

	assert.False(t, app.Pending())
	require.NoError(t, app.Err())
	require.Len(t, app.Analysis().Ranked, 1)
	assert.Equal(t, "expand", app.Analysis().Ranked[0].Stub.Type)

	press(app, runes("x"))
	assert.Empty(t, app.Analysis().Ranked)
}

func TestApp_PendingClearsOnError(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})

	_, cmd := app.Update(runes("p"))
	require.NotNil(t, cmd)
	require.True(t, app.Pending())

	app.Update(messages.StubEdited{Index: 0, Err: errors.New("boom")})

	assert.False(t, app.Pending())
	_, cmd = app.Update(runes("p"))
	assert.NotNil(t, cmd)
}

func TestApp_CyclePriority(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})
	selectStub(t, app, 0)

	press(app, runes("p"))

	require.NoError(t, app.Err())
	require.NotNil(t, app.Selected())
	assert.Equal(t, 0, app.Selected().Index)
	assert.Equal(t, domain.PriorityHigh, app.Selected().Stub.Priority)
}

func TestApp_CycleForm(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})
	selectStub(t, app, 1)

	press(app, runes("f"))

	require.NoError(t, app.Err())
	assert.Equal(t, 1, app.Selected().Index)
	assert.Equal(t, domain.StubFormStructural, app.Selected().Stub.Form)
	assert.Equal(t, 0, app.Analysis().Stubs.Blocking)
}

func TestApp_EditDescription(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})
	selectStub(t, app, 0)

	press(app, runes("e"))
	require.True(t, app.Editing())
	assert.Equal(t, status.StateEditing, app.Status())
	assert.Equal(t, "More examples", app.editor.Value())

	// q is typed into the editor, not treated as quit
	press(app, runes("q"))
	assert.Equal(t, "More examplesq", app.editor.Value())
	press(app, tea.KeyMsg{Type: tea.KeyBackspace})

	press(app, runes("!"))
	press(app, tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, app.Err())
	assert.False(t, app.Editing())
	assert.Equal(t, "More examples!", app.Selected().Stub.Description)
	assert.True(t, app.Dirty())
}

func TestApp_EditCancel(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})

	press(app, runes("e"))
	press(app, runes("z"))
	press(app, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, app.Editing())
	assert.False(t, app.Dirty())
	assert.Equal(t, status.StateReady, app.Status())
}

func TestApp_EditRejectsEmptyDescription(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})

	press(app, runes("e"))
	for range len(app.editor.Value()) {
		press(app, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	press(app, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, app.Editing())
	assert.Contains(t, app.statusBar.Message(), "must not be empty")
	assert.Contains(t, app.View(), "must not be empty")
	assert.False(t, app.Dirty())
}

func TestApp_Save(t *testing.T) {
	store := &memStore{text: twoStubs}
	app := loaded(t, store)

	press(app, runes("s"))
	assert.Equal(t, 0, store.saves)
	assert.Contains(t, app.statusBar.Message(), "no changes")

	press(app, runes("x"))
	press(app, runes("s"))

	require.NoError(t, app.Err())
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, app.Text(), store.text)
	assert.False(t, app.Dirty())
	assert.Equal(t, status.StateReady, app.Status())
	assert.Contains(t, app.statusBar.Message(), "saved guide.md")
}

func TestApp_SaveError(t *testing.T) {
	store := &memStore{text: twoStubs, saveErr: errors.New("disk full")}
	app := loaded(t, store)

	press(app, runes("x"))
	press(app, runes("s"))

	assert.EqualError(t, app.Err(), "disk full")
	assert.True(t, app.Dirty())
}

func TestApp_Reload(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})
	press(app, runes("x"))
	require.True(t, app.Dirty())

	press(app, runes("R"))

	assert.False(t, app.Dirty())
	assert.Len(t, app.Analysis().Ranked, 2)
}

func TestApp_QuitConfirmsUnsavedChanges(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})

	_, cmd := app.Update(runes("q"))
	require.NotNil(t, cmd)

	press(app, runes("x"))
	_, cmd = app.Update(runes("q"))
	assert.Nil(t, cmd)
	assert.Contains(t, app.statusBar.Message(), "unsaved changes")

	_, cmd = app.Update(runes("q"))
	assert.NotNil(t, cmd)
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})
	press(app, runes("e"))

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
}

func TestApp_HelpToggle(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})

	press(app, runes("?"))
	assert.True(t, app.ShowingHelp())
	assert.Contains(t, app.View(), "reload")

	press(app, runes("?"))
	assert.False(t, app.ShowingHelp())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := loaded(t, &memStore{text: twoStubs})

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Contains(t, app.View(), "Error: boom")
}

func TestNextPriority(t *testing.T) {
	assert.Equal(t, domain.PriorityMedium, nextPriority(domain.PriorityLow))
	assert.Equal(t, domain.PriorityLow, nextPriority(domain.PriorityCritical))
	assert.Equal(t, domain.DefaultPriority, nextPriority("bogus"))
}

func TestNextForm(t *testing.T) {
	assert.Equal(t, domain.StubFormPersistent, nextForm(domain.StubFormTransient))
	assert.Equal(t, domain.StubFormTransient, nextForm(domain.StubFormStructural))
	assert.Equal(t, domain.DefaultStubForm, nextForm("bogus"))
}
