// Package imageeditor is the image edit overlay opened from a showcase card.
package imageeditor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lumibot/internal/config"
	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/editor"
	"github.com/julianstephens/lumibot/internal/imagegen"
	"github.com/julianstephens/lumibot/internal/logger"
)

// GeneratedMsg carries the generator's answer for one request.
type GeneratedMsg struct {
	RequestID string
	Data      []byte
	Err       error
}

// CloseMsg asks the shell to close the editor.
type CloseMsg struct{}

type KeyMap struct {
	Open     key.Binding
	Generate key.Binding
	Save     key.Binding
	Close    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open image"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save result"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2).
			Width(70)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(10)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

type Model struct {
	workflow   *editor.Workflow
	generator  imagegen.Generator
	timeout    time.Duration
	prompt     textinput.Model
	spinner    spinner.Model
	form       *huh.Form
	pathForm   *PathFormModel
	cancel     context.CancelFunc
	keys       KeyMap
	source     string // path of the selected image
	cardTitle  string
	notice     string
	savedPath  string
	resultDims string
}

func New(generator imagegen.Generator, timeout time.Duration) Model {
	if timeout <= 0 {
		timeout = constants.DefaultGenerateTimeout
	}

	ti := textinput.New()
	ti.Placeholder = constants.EditorPlaceholder
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		workflow:  editor.New(),
		generator: generator,
		timeout:   timeout,
		prompt:    ti,
		spinner:   sp,
		keys:      DefaultKeyMap(),
	}
}

// Open resets the editor for a new session started from the card titled cardTitle.
func (m *Model) Open(cardTitle string) tea.Cmd {
	m.Close()
	m.cardTitle = cardTitle
	return m.prompt.Focus()
}

// Close abandons any in-flight request and forgets the session.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.workflow.Close()
	m.prompt.Reset()
	m.prompt.Blur()
	m.form = nil
	m.pathForm = nil
	m.source = ""
	m.cardTitle = ""
	m.notice = ""
	m.savedPath = ""
	m.resultDims = ""
}

func (m Model) Phase() editor.Phase { return m.workflow.Phase() }

func (m Model) Message() string { return m.workflow.Message() }

// SelectFile loads path as the source image.
func (m *Model) SelectFile(path string) error {
	path, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		m.notice = err.Error()
		return err
	}
	img, err := imagegen.ReadImageFile(path)
	if err != nil {
		m.notice = err.Error()
		return err
	}
	if err := m.workflow.SelectImage(img); err != nil {
		return err
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.source = path
	m.notice = ""
	m.savedPath = ""
	m.resultDims = ""
	logger.Debug("Image selected for editing", "path", path, "bytes", len(img.Data))
	return nil
}

// Picking reports whether the path form is showing.
func (m Model) Picking() bool { return m.form != nil }

func (m Model) KeyBindings() []key.Binding {
	return []key.Binding{m.keys.Open, m.keys.Generate, m.keys.Save, m.keys.Close}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// generator answers and spinner ticks keep flowing while the path form is open
	switch msg := msg.(type) {
	case GeneratedMsg:
		return m.resolve(msg), nil

	case spinner.TickMsg:
		if m.workflow.Phase() != editor.PhaseGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.Close()
			return m, func() tea.Msg { return CloseMsg{} }
		case key.Matches(msg, m.keys.Open):
			m.pathForm = &PathFormModel{Path: m.source}
			m.form = NewPathForm(m.pathForm)
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Generate):
			return m.begin()
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.pathForm = nil
		return m, nil
	}
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		path := m.pathForm.Path
		m.form = nil
		m.pathForm = nil
		_ = m.SelectFile(path)
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.pathForm = nil
		return m, nil
	}
	return m, cmd
}

func (m Model) begin() (Model, tea.Cmd) {
	req, err := m.workflow.Begin(m.prompt.Value())
	if err != nil {
		if errors.Is(err, editor.ErrBusy) {
			m.notice = err.Error()
		}
		return m, nil
	}
	m.notice = ""
	m.savedPath = ""
	m.resultDims = ""

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	m.cancel = cancel
	logger.Info("Starting image edit", "request", req.ID, "image", req.Image.Name)
	return m, tea.Batch(m.spinner.Tick, generate(ctx, m.generator, req, m.timeout))
}

func generate(ctx context.Context, gen imagegen.Generator, req editor.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		data, err := gen.Generate(ctx, imagegen.FromEditor(req))
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("request timed out after %s", timeout)
		}
		return GeneratedMsg{RequestID: req.ID, Data: data, Err: err}
	}
}

func (m Model) resolve(msg GeneratedMsg) Model {
	orig, _ := m.workflow.Original()
	result := imagegen.ResultImage(orig.Name, msg.Data)

	if !m.workflow.Resolve(msg.RequestID, result, msg.Err) {
		logger.Debug("Discarded stale image response", "request", msg.RequestID)
		return m
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	if m.workflow.Phase() == editor.PhaseFailed {
		logger.Warn("Image edit failed", "request", msg.RequestID, "error", m.workflow.Message())
		return m
	}
	if w, h, err := imagegen.Dimensions(msg.Data); err == nil {
		m.resultDims = fmt.Sprintf("%dx%d", w, h)
	}
	logger.Info("Image edit finished", "request", msg.RequestID, "bytes", len(msg.Data))
	return m
}

func (m *Model) save() {
	result, ok := m.workflow.Result()
	if !ok || m.source == "" {
		return
	}
	path := imagegen.EditedPath(m.source)
	if err := imagegen.WriteImageFile(path, result.Data); err != nil {
		m.notice = err.Error()
		logger.Error("Failed to save edited image", "path", path, "error", err)
		return
	}
	m.savedPath = path
	m.notice = ""
}

// SavedPath is where the last result was written, empty if it was not saved.
func (m Model) SavedPath() string { return m.savedPath }

func (m Model) View() string {
	if m.form != nil {
		return boxStyle.Render(titleStyle.Render(constants.EditorTitle) + "\n\n" + m.form.View())
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(constants.EditorTitle))
	if m.cardTitle != "" {
		s.WriteString(mutedStyle.Render("  " + m.cardTitle))
	}
	s.WriteString("\n\n")

	if orig, ok := m.workflow.Original(); ok {
		s.WriteString(labelStyle.Render("Original") + fmt.Sprintf("%s (%s, %d bytes)", orig.Name, orig.MIMEType, len(orig.Data)))
	} else {
		s.WriteString(labelStyle.Render("Original") + mutedStyle.Render(constants.EditorNoImage+" (ctrl+o)"))
	}
	s.WriteString("\n\n")
	s.WriteString(m.prompt.View())
	s.WriteString("\n\n")

	switch m.workflow.Phase() {
	case editor.PhaseGenerating:
		s.WriteString(m.spinner.View() + " " + constants.EditorGenerating)
	case editor.PhaseFailed:
		s.WriteString(errorStyle.Render("✗ " + m.workflow.Message()))
	case editor.PhaseSucceeded:
		result, _ := m.workflow.Result()
		line := fmt.Sprintf("✓ Edited image ready: %d bytes", len(result.Data))
		if m.resultDims != "" {
			line += ", " + m.resultDims
		}
		s.WriteString(successStyle.Render(line))
		if m.savedPath != "" {
			s.WriteString("\n" + mutedStyle.Render("Saved to "+m.savedPath))
		} else {
			s.WriteString("\n" + mutedStyle.Render("ctrl+s to save next to the original"))
		}
	default:
		s.WriteString(mutedStyle.Render(constants.EditorEmptyResult))
	}

	if msg := m.workflow.Message(); msg != "" && m.workflow.Phase() != editor.PhaseFailed {
		s.WriteString("\n" + errorStyle.Render(msg))
	}

	if m.notice != "" {
		s.WriteString("\n" + errorStyle.Render(m.notice))
	}
	return boxStyle.Render(s.String())
}
