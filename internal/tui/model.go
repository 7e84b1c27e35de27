// Package tui is an interactive browser for the preset kits. The left panel
// lists the kits; the right panel shows the highlighted kit's build summary
// and validation result in a scrollable viewport.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/pcbuild/foundation/core/i18n"
	"github.com/msto63/pcbuild/internal/build"
	"github.com/msto63/pcbuild/internal/kits"
	"github.com/msto63/pcbuild/internal/locales"
	"github.com/msto63/pcbuild/internal/render"
	"github.com/msto63/pcbuild/pkg/core/logging"
)

const (
	listWidth      = 28
	defaultWidth   = 100
	defaultHeight  = 24
	chromeHeight   = 6 // title, help and panel borders
	viewportMargin = 4
)

// Config holds browser settings
type Config struct {
	Translator i18n.Translator
	Currency   string
	Logger     *logging.Logger
	Plain      bool
}

// Model is the bubbletea model of the kit browser
type Model struct {
	width  int
	height int

	kits     []string
	cursor   int
	selected string
	content  string
	err      error

	viewport viewport.Model

	tr       i18n.Translator
	renderer *render.Renderer
	currency string
	logger   *logging.Logger
}

// New creates the browser with the first kit highlighted
func New(cfg Config) Model {
	tr := cfg.Translator
	if tr == nil {
		tr = locales.Shared()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	m := Model{
		width:    defaultWidth,
		height:   defaultHeight,
		kits:     kits.Names(),
		tr:       tr,
		renderer: render.New(render.WithTranslator(tr), render.WithPlain(cfg.Plain)),
		currency: cfg.Currency,
		logger:   logger.Named("tui"),
	}
	m.viewport = viewport.New(m.detailWidth(), m.detailHeight())
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.detailWidth()
		m.viewport.Height = m.detailHeight()
		m.viewport.SetContent(m.content)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.kits)-1 {
			m.cursor++
			m.refresh()
		}
		return m, nil

	case "enter":
		m.selected = m.Current()
		m.logger.Debug("kit selected", "kit", m.selected)
		m.viewport.GotoTop()
		return m, nil

	case "pgup":
		m.viewport.ViewUp()
		return m, nil

	case "pgdown":
		m.viewport.ViewDown()
		return m, nil
	}

	return m, nil
}

// refresh rebuilds the detail panel for the highlighted kit
func (m *Model) refresh() {
	id := m.Current()
	if id == "" {
		m.content = ""
		m.viewport.SetContent("")
		return
	}

	opts := []build.Option{build.WithTranslator(m.tr), build.WithID(id)}
	if m.currency != "" {
		opts = append(opts, build.WithCurrency(m.currency))
	}
	b := build.New(opts...)

	m.err = nil
	if err := b.AddKit(kits.MustPreset(id)); err != nil {
		m.err = err
		m.logger.Error("kit rejected", "kit", id, "error", err)
	}

	var sb strings.Builder
	if desc, err := kits.Describe(id); err == nil {
		sb.WriteString(desc)
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.renderer.Summary(b.Summary()))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderer.Report(b.Validate()))
	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(m.err.Error())
	}

	m.content = sb.String()
	m.viewport.SetContent(m.content)
	m.viewport.GotoTop()
}

// Current returns the highlighted kit id
func (m Model) Current() string {
	if m.cursor < 0 || m.cursor >= len(m.kits) {
		return ""
	}
	return m.kits[m.cursor]
}

// Selected returns the kit last confirmed with enter
func (m Model) Selected() string {
	return m.selected
}

// Content returns the detail panel text of the highlighted kit
func (m Model) Content() string {
	return m.content
}

// View implements tea.Model
func (m Model) View() string {
	title := TitleStyle.Render(m.tr.T("tui.title"))

	list := ListPanelStyle.
		Width(listWidth).
		Height(m.detailHeight()).
		Render(m.renderList())
	detail := DetailPanelStyle.
		Width(m.detailWidth()).
		Height(m.detailHeight()).
		Render(m.viewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
	help := HelpStyle.Render(m.tr.T("tui.help"))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (m Model) renderList() string {
	lines := make([]string, 0, len(m.kits))
	for i, id := range m.kits {
		label := id
		if id == m.selected {
			label += " ✓"
		}
		if i == m.cursor {
			lines = append(lines, CursorItemStyle.Render(fmt.Sprintf("› %s", label)))
			continue
		}
		lines = append(lines, ItemStyle.Render("  "+label))
	}
	return strings.Join(lines, "\n")
}

func (m Model) detailWidth() int {
	w := m.width - listWidth - viewportMargin*2
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) detailHeight() int {
	h := m.height - chromeHeight
	if h < 5 {
		h = 5
	}
	return h
}

// Run starts the browser on the terminal's alternate screen
func Run(cfg Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}
