package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/components/stublist"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/doc-doctor/internal/adapters/driving/tui/views/summary"
	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// noStub marks that no stub is being edited or should stay selected.
const noStub = -1

// reservedLines is the height used by everything except the stub list.
const reservedLines = 18

// App is the stub browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides the switchboard and the document store.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	summaryView *summary.View
	stubList    *stublist.List
	detailView  *detail.View
	editor      *input.DescriptionInput
	statusBar   *status.Bar

	// text is the working copy; saved is the text as last loaded or saved.
	text  string
	saved string

	analysis *domain.Analysis

	// editing is the stub whose description is open in the editor.
	editing int

	// pending is set while a load, save or stub edit is in flight.
	// Those commands capture the working copy when dispatched, so no
	// other one may start until the result is back.
	pending bool

	showHelp    bool
	confirmQuit bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its dimensions.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new stub browser with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	h := help.New()
	h.ShowAll = true

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        h,
		summaryView: summary.NewView(s),
		stubList:    stublist.New(s),
		detailView:  detail.NewView(s),
		editor:      input.NewDescriptionInput(s),
		statusBar:   status.NewBar(s, km),
		editing:     noStub,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It loads the document once the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("doc-doctor - "+a.ports.Store.Path()),
		a.loadCmd(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.Editing() {
			return a.handleEditKey(msg)
		}
		return a.handleKey(msg)

	case messages.DocumentLoaded:
		a.pending = false
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.text = msg.Text
		a.saved = msg.Text
		a.refresh(noStub, "")
		return a, nil

	case messages.DocumentSaved:
		a.pending = false
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.saved = msg.Text
		a.settle("saved " + msg.Path)
		return a, nil

	case messages.StubEdited:
		a.pending = false
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.text = msg.Text
		a.refresh(msg.Index, msg.Summary)
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	if a.Editing() {
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKey handles key presses while browsing.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, a.keymap.Quit) {
		if a.Dirty() && !a.confirmQuit {
			a.confirmQuit = true
			a.statusBar.SetMessage("unsaved changes, press q again to quit")
			return a, nil
		}
		return a, tea.Quit
	}
	a.confirmQuit = false

	if a.pending && a.changesDocument(keyStr) {
		a.statusBar.SetMessage("edit in progress")
		return a, nil
	}

	sel := a.stubList.SelectedStub()

	switch {
	case keymap.Matches(keyStr, a.keymap.Help):
		a.showHelp = !a.showHelp

	case keymap.Matches(keyStr, a.keymap.Up), keymap.Matches(keyStr, a.keymap.Down):
		a.stubList, _ = a.stubList.Update(msg)
		a.detailView.SetStub(a.stubList.SelectedStub())

	case keymap.Matches(keyStr, a.keymap.Resolve):
		if sel != nil {
			return a, a.resolveCmd(sel.Index)
		}

	case keymap.Matches(keyStr, a.keymap.Priority):
		if sel != nil {
			p := nextPriority(sel.Stub.Priority)
			return a, a.updateCmd(sel.Index, domain.StubUpdate{Priority: &p},
				fmt.Sprintf("stub [%d] priority %s", sel.Index, p))
		}

	case keymap.Matches(keyStr, a.keymap.Form):
		if sel != nil {
			f := nextForm(sel.Stub.Form)
			return a, a.updateCmd(sel.Index, domain.StubUpdate{Form: &f},
				fmt.Sprintf("stub [%d] form %s", sel.Index, f))
		}

	case keymap.Matches(keyStr, a.keymap.Edit):
		if sel != nil {
			a.editing = sel.Index
			a.statusBar.SetState(status.StateEditing)
			a.statusBar.SetMessage("")
			return a, a.editor.Open(fmt.Sprintf("Stub [%d]", sel.Index), sel.Stub.Description)
		}

	case keymap.Matches(keyStr, a.keymap.Save):
		if !a.Dirty() {
			a.statusBar.SetMessage("no changes to save")
			return a, nil
		}
		a.statusBar.SetState(status.StateSaving)
		return a, a.saveCmd()

	case keymap.Matches(keyStr, a.keymap.Reload):
		a.statusBar.SetState(status.StateLoading)
		return a, a.loadCmd()
	}

	return a, nil
}

// changesDocument reports whether keyStr starts a command that reads or
// replaces the working copy.
func (a *App) changesDocument(keyStr string) bool {
	for _, b := range []key.Binding{
		a.keymap.Resolve, a.keymap.Priority, a.keymap.Form,
		a.keymap.Edit, a.keymap.Save, a.keymap.Reload,
	} {
		if keymap.Matches(keyStr, b) {
			return true
		}
	}
	return false
}

// handleEditKey handles key presses while the description editor is open.
func (a *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Confirm):
		index := a.editing
		desc := strings.TrimSpace(a.editor.Value())
		if desc == "" {
			a.statusBar.SetMessage("description must not be empty")
			return a, nil
		}
		a.closeEditor()
		return a, a.updateCmd(index, domain.StubUpdate{Description: &desc},
			fmt.Sprintf("stub [%d] description updated", index))

	case keymap.Matches(keyStr, a.keymap.Cancel):
		a.closeEditor()
		a.settle("")
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

// closeEditor closes the description editor.
func (a *App) closeEditor() {
	a.editor.Close()
	a.editing = noStub
}

// loadCmd reads the document from the store.
func (a *App) loadCmd() tea.Cmd {
	ctx, store := a.ctx, a.ports.Store
	a.pending = true
	return func() tea.Msg {
		text, err := store.Load(ctx)
		return messages.DocumentLoaded{Path: store.Path(), Text: text, Err: err}
	}
}

// saveCmd writes the working copy to the store.
func (a *App) saveCmd() tea.Cmd {
	ctx, store, text := a.ctx, a.ports.Store, a.text
	a.pending = true
	return func() tea.Msg {
		err := store.Save(ctx, text)
		return messages.DocumentSaved{Path: store.Path(), Text: text, Err: err}
	}
}

// resolveCmd removes the stub at index from the working copy.
func (a *App) resolveCmd(index int) tea.Cmd {
	sb, text := a.ports.Switchboard, a.text
	a.pending = true
	return func() tea.Msg {
		res, err := sb.ResolveStub(text, index)
		if err != nil {
			return messages.StubEdited{Index: index, Err: err}
		}
		return messages.StubEdited{
			Text:    res.Text,
			Index:   noStub,
			Summary: fmt.Sprintf("resolved stub [%d] %s", index, res.Removed.Type),
		}
	}
}

// updateCmd applies update to the stub at index in the working copy.
func (a *App) updateCmd(index int, update domain.StubUpdate, summary string) tea.Cmd {
	sb, text := a.ports.Switchboard, a.text
	a.pending = true
	return func() tea.Msg {
		res, err := sb.UpdateStub(text, index, update)
		if err != nil {
			return messages.StubEdited{Index: index, Err: err}
		}
		return messages.StubEdited{Text: res.Text, Index: res.Index, Summary: summary}
	}
}

// refresh re-analyses the working copy and keeps stub keep selected.
func (a *App) refresh(keep int, message string) {
	analysis, err := a.ports.Switchboard.AnalyzeDocument(a.text)
	if err != nil {
		a.analysis = nil
		a.summaryView.SetAnalysis(nil)
		a.stubList.SetStubs(nil, noStub)
		a.detailView.SetStub(nil)
		a.statusBar.SetStubCount(0)
		a.setError(err)
		return
	}

	a.analysis = analysis
	a.summaryView.SetAnalysis(analysis)
	a.stubList.SetStubs(analysis.Ranked, keep)
	a.detailView.SetStub(a.stubList.SelectedStub())
	a.statusBar.SetStubCount(len(analysis.Ranked))
	a.settle(message)
}

// settle returns the status bar to ready or modified with message.
func (a *App) settle(message string) {
	if a.Dirty() {
		a.statusBar.SetState(status.StateModified)
	} else {
		a.statusBar.SetState(status.StateReady)
	}
	a.statusBar.SetMessage(message)
}

// setError records err and shows it in the status bar.
func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// View implements tea.Model.
// It renders the browser as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("doc-doctor"))
	b.WriteString(a.styles.Muted.Render("  " + a.ports.Store.Path()))
	if a.Dirty() {
		b.WriteString(a.styles.Warning.Render("  [modified]"))
	}
	b.WriteString("\n\n")

	if a.analysis == nil {
		if a.err != nil {
			b.WriteString(a.styles.Error.Render("Cannot analyse document: " + a.err.Error()))
		} else {
			b.WriteString(a.styles.Muted.Render("Loading document..."))
		}
		b.WriteString("\n\n")
		b.WriteString(a.statusBar.View())
		return b.String()
	}

	b.WriteString(a.summaryView.View())
	b.WriteString("\n\n")
	b.WriteString(a.stubList.View())
	b.WriteString("\n\n")

	if a.Editing() {
		b.WriteString(a.editor.View())
	} else {
		b.WriteString(a.detailView.View())
	}
	b.WriteString("\n")

	if a.showHelp {
		b.WriteString("\n")
		b.WriteString(a.help.View(a.keymap))
		b.WriteString("\n")
	}

	b.WriteString(a.statusBar.View())
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Text returns the working copy of the document.
func (a *App) Text() string {
	return a.text
}

// Dirty reports whether the working copy differs from the stored text.
func (a *App) Dirty() bool {
	return a.text != a.saved
}

// Analysis returns the analysis of the working copy.
func (a *App) Analysis() *domain.Analysis {
	return a.analysis
}

// Selected returns the selected stub, or nil when there is none.
func (a *App) Selected() *domain.RankedStub {
	return a.stubList.SelectedStub()
}

// Pending reports whether a load, save or stub edit is in flight.
func (a *App) Pending() bool {
	return a.pending
}

// Editing reports whether the description editor is open.
func (a *App) Editing() bool {
	return a.editing != noStub
}

// ShowingHelp reports whether the full help is shown.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Status returns the status bar state.
func (a *App) Status() status.State {
	return a.statusBar.State()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	listHeight := height - reservedLines
	if listHeight < 3 {
		listHeight = 3
	}
	a.stubList.SetSize(width, listHeight)
	a.summaryView.SetWidth(width)
	a.detailView.SetWidth(width)
	a.editor.SetWidth(width)
	a.statusBar.SetWidth(width)
	a.help.Width = width
}

// nextPriority cycles through priorities from lowest to highest.
func nextPriority(p domain.Priority) domain.Priority {
	all := domain.AllPriorities()
	for i, v := range all {
		if v == p {
			return all[(i+1)%len(all)]
		}
	}
	return domain.DefaultPriority
}

// nextForm cycles through stub forms.
func nextForm(f domain.StubForm) domain.StubForm {
	all := domain.AllStubForms()
	for i, v := range all {
		if v == f {
			return all[(i+1)%len(all)]
		}
	}
	return domain.DefaultStubForm
}
