package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carbonwise/carbonwise/internal/compare"
	"github.com/carbonwise/carbonwise/internal/render"
	"github.com/carbonwise/carbonwise/internal/vehicle"
)

// AppTitle heads the interactive screen.
const AppTitle = "CarbonWise · Vehicle Lifecycle CO₂ Comparison"

// CompareButtonLabel is the submit action.
const CompareButtonLabel = "Compare Vehicles"

const (
	numberInputCharLimit = 12
	numberInputWidth     = 12
	// formHeight is the number of lines the header and form take up.
	formHeight    = 14
	minBodyHeight = 5
)

// Focus targets, in tab order.
type focus int

const (
	focusDailyMileage focus = iota
	focusOwnershipYears
	focusSegment
	focusSubmit
	focusCount
)

// Service is what the interactive model needs from the ranking service.
type Service interface {
	compare.SegmentSource
	compare.Comparer
}

// catalogLoadedMsg carries the one-time segment catalog response.
type catalogLoadedMsg struct {
	segments []vehicle.Segment
	err      error
}

// compareDoneMsg carries a completed compare round trip.
type compareDoneMsg struct {
	outcome compare.Outcome
}

// Model is the interactive comparison screen. Bubble Tea delivers messages
// to Update one at a time, which makes Update the session's event loop:
// round trips run in commands and come back as messages.
type Model struct {
	ctx     context.Context
	service Service
	session *compare.Session

	mileage textinput.Model
	years   textinput.Model
	focused focus
	segment int

	loading *LoadingState
	results viewport.Model
	view    *render.View
	// notice is a submission problem that is not a validation error.
	notice string

	width    int
	height   int
	quitting bool
}

// NewModel returns the interactive screen for service. The segment catalog
// is requested by Init.
func NewModel(ctx context.Context, service Service) *Model {
	session := compare.NewSession()
	m := &Model{
		ctx:     ctx,
		service: service,
		session: session,
		mileage: newNumberInput(session.Form().DailyMileage),
		years:   newNumberInput(session.Form().OwnershipYears),
		loading: NewLoadingState(MsgAnalyzing),
		results: viewport.New(defaultWidth, defaultHeight-formHeight),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.mileage.Focus()
	return m
}

func newNumberInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = numberInputCharLimit
	ti.Width = numberInputWidth
	ti.SetValue(value)
	return ti
}

// Session exposes the underlying session state.
func (m *Model) Session() *compare.Session {
	return m.session
}

// Init requests the segment catalog.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), textinput.Blink)
}

func (m *Model) loadCatalog() tea.Cmd {
	ctx := m.ctx
	service := m.service
	return func() tea.Msg {
		segments, err := service.Segments(ctx)
		return catalogLoadedMsg{segments: segments, err: err}
	}
}

func (m *Model) runCompare(ticket compare.Ticket) tea.Cmd {
	ctx := m.ctx
	service := m.service
	return func() tea.Msg {
		return compareDoneMsg{outcome: ticket.Run(ctx, service)}
	}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeResults()
		return m, nil

	case catalogLoadedMsg:
		m.session.ApplyCatalog(m.ctx, msg.segments, msg.err)
		m.segment = 0
		return m, nil

	case compareDoneMsg:
		return m.handleCompareDone(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.session.Phase() == compare.PhaseLoading {
		return m, m.loading.Update(msg)
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleCompareDone(msg compareDoneMsg) (tea.Model, tea.Cmd) {
	if !m.session.Apply(m.ctx, msg.outcome) {
		return m, nil
	}
	m.view = nil
	if m.session.Phase() == compare.PhaseSuccess {
		v := render.Build(m.ctx, *m.session.Result(), *m.session.LastSubmitted())
		m.view = &v
		m.results.SetContent(RenderResult(v, m.width))
		m.results.GotoTop()
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case keyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case keyEsc:
		if m.session.Dismiss() {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case keyTab, keyDown:
		m.setFocus((m.focused + 1) % focusCount)
		return m, nil

	case keyShiftTab, keyUp:
		m.setFocus((m.focused + focusCount - 1) % focusCount)
		return m, nil

	case keyPgUp, keyPgDown:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd

	case keyEnter:
		if m.session.Dismiss() {
			return m, nil
		}
		return m.submit()
	}

	if m.focused == focusSegment || m.focused == focusSubmit {
		switch key {
		case keyLeft:
			m.cycleSegment(-1)
		case keyRight:
			m.cycleSegment(1)
		case keyQuit:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) setFocus(f focus) {
	m.focused = f
	m.mileage.Blur()
	m.years.Blur()
	switch f {
	case focusDailyMileage:
		m.mileage.Focus()
	case focusOwnershipYears:
		m.years.Focus()
	case focusSegment, focusSubmit, focusCount:
	}
}

// updateFocusedInput forwards msg to the focused text field and copies the
// new text into the form draft.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	form := m.session.Form()
	switch m.focused {
	case focusDailyMileage:
		m.mileage, cmd = m.mileage.Update(msg)
		form.UpdateField(compare.FieldDailyMileage, m.mileage.Value())
	case focusOwnershipYears:
		m.years, cmd = m.years.Update(msg)
		form.UpdateField(compare.FieldOwnershipYears, m.years.Value())
	case focusSegment, focusSubmit, focusCount:
	}
	return cmd
}

func (m *Model) cycleSegment(delta int) {
	catalog := m.session.Catalog()
	if len(catalog) == 0 {
		return
	}
	m.segment = (m.segment + delta + len(catalog)) % len(catalog)
	m.session.Form().UpdateField(compare.FieldSegment, string(catalog[m.segment]))
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	ticket, err := m.session.Submit(m.ctx)
	if err != nil {
		m.notice = ""
		if !compare.IsValidationError(err) {
			m.notice = err.Error()
		}
		return m, nil
	}
	m.notice = ""
	m.view = nil
	return m, tea.Batch(m.runCompare(ticket), m.loading.Init())
}

func (m *Model) resizeResults() {
	m.results.Width = m.width
	m.results.Height = max(m.height-formHeight, minBodyHeight)
	if m.view != nil {
		m.results.SetContent(RenderResult(*m.view, m.width))
	}
}

// View renders the current view.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	sections := []string{
		TitleStyle.Render(AppTitle),
		m.renderForm(),
		m.renderBody(),
		m.renderHelp(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) label(f focus, text string) string {
	if m.focused == f {
		return FocusedStyle.Render("› " + text)
	}
	return LabelStyle.Render("  " + text)
}

func (m *Model) renderForm() string {
	var sb strings.Builder

	sb.WriteString(m.label(focusDailyMileage, "Daily mileage (km):  "))
	sb.WriteString(m.mileage.View())
	sb.WriteString("\n")
	sb.WriteString(m.label(focusOwnershipYears, "Ownership (years):   "))
	sb.WriteString(m.years.View())
	sb.WriteString("\n")
	sb.WriteString(m.label(focusSegment, "Vehicle segment:     "))
	sb.WriteString(m.renderSegmentPicker())
	sb.WriteString("\n\n")

	button := ButtonStyle.Render(CompareButtonLabel)
	if !m.session.CanSubmit() || m.session.Phase() == compare.PhaseLoading {
		button = DisabledStyle.Render(CompareButtonLabel)
	}
	if m.focused == focusSubmit {
		button = FocusedStyle.Render("› ") + button
	} else {
		button = "  " + button
	}
	sb.WriteString(button)

	if verr := m.session.Form().LastError(); verr != nil {
		sb.WriteString("\n")
		sb.WriteString(WarningStyle.Render("  " + verr.Message))
	} else if m.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(WarningStyle.Render("  " + m.notice))
	}
	return sb.String()
}

func (m *Model) renderSegmentPicker() string {
	switch {
	case m.session.CatalogError() != "":
		return CriticalStyle.Render(m.session.CatalogError())
	case !m.session.CatalogLoaded():
		return SubtleStyle.Render(MsgLoadingSegments)
	case len(m.session.Catalog()) == 0:
		return SubtleStyle.Render("No vehicle segments available")
	}
	selected := string(m.session.Form().Segment)
	if m.focused == focusSegment {
		return FocusedStyle.Render("‹ ") + ValueStyle.Render(selected) + FocusedStyle.Render(" ›")
	}
	return ValueStyle.Render(selected)
}

func (m *Model) renderBody() string {
	switch m.session.Phase() {
	case compare.PhaseLoading:
		return RenderLoading(m.loading)
	case compare.PhaseFailed:
		return RenderErrorPanel(m.session.Failure(), m.width)
	case compare.PhaseSuccess:
		return m.results.View()
	case compare.PhaseIdle:
		return RenderIdle(m.width)
	default:
		return ""
	}
}

func (m *Model) renderHelp() string {
	shortcuts := []string{
		"tab/↑↓: Move",
		"←/→: Segment",
		"Enter: Compare",
		"PgUp/PgDn: Scroll",
		"Esc: Quit",
	}
	if m.session.Phase() == compare.PhaseFailed {
		shortcuts[2] = "Enter/Esc: " + DismissLabel
		shortcuts = shortcuts[:4]
	}
	return HelpStyle.Render(strings.Join(shortcuts, " | "))
}
