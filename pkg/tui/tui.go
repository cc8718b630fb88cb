// Package tui provides a terminal user interface for ripples
package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/james-see/ripples/pkg/generator"
	"github.com/james-see/ripples/pkg/render"
)

// Deep-water color scheme
var (
	rippleBlue = lipgloss.Color("#00BFFF")
	foamWhite  = lipgloss.Color("#E0FFFF")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(rippleBlue).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(silverGray).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(foamWhite).
			PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(rippleBlue).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(rippleBlue).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateSeedInput State = iota
	StateGenerating
	StateResult
)

// Model represents the TUI model
type Model struct {
	state      State
	seedInput  textinput.Model
	spinner    spinner.Model
	song       *generator.Song
	outputFile string
	err        error
	width      int
	height     int
}

// generationDoneMsg signals generation completion
type generationDoneMsg struct {
	song       *generator.Song
	outputFile string
	err        error
}

// New creates a new TUI model
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "seed (blank for random)"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(rippleBlue)

	return Model{
		state:     StateSeedInput,
		seedInput: ti,
		spinner:   s,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func generateCmd(seed string) tea.Cmd {
	return func() tea.Msg {
		gen, err := generator.New(generator.DefaultConfig(), seed)
		if err != nil {
			return generationDoneMsg{err: err}
		}
		song, err := gen.Generate()
		if err != nil {
			return generationDoneMsg{err: err}
		}
		filename := render.Filename(seed)
		if err := render.New().WriteFile(song, filename); err != nil {
			return generationDoneMsg{err: err}
		}
		return generationDoneMsg{song: song, outputFile: filename}
	}
}

// Update handles TUI events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != StateSeedInput || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		case "enter":
			switch m.state {
			case StateSeedInput:
				seed := strings.TrimSpace(m.seedInput.Value())
				if seed == "" {
					seed = fmt.Sprint(rand.Intn(65536))
				}
				m.state = StateGenerating
				return m, tea.Batch(m.spinner.Tick, generateCmd(seed))
			case StateResult:
				m.state = StateSeedInput
				m.seedInput.SetValue("")
				m.seedInput.Focus()
				m.song = nil
				m.err = nil
				return m, textinput.Blink
			}
		case "esc":
			return m, tea.Quit
		}

	case generationDoneMsg:
		m.state = StateResult
		m.song = msg.song
		m.outputFile = msg.outputFile
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.state == StateSeedInput {
		var cmd tea.Cmd
		m.seedInput, cmd = m.seedInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("~ ripples ~ procedural song generator"))
	b.WriteString("\n\n")

	switch m.state {
	case StateSeedInput:
		b.WriteString(labelStyle.Render("Enter a seed to grow a song from:"))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render(m.seedInput.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: generate • esc: quit"))

	case StateGenerating:
		b.WriteString(statusStyle.Render(fmt.Sprintf("%s generating...", m.spinner.View())))

	case StateResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(successStyle.Render(fmt.Sprintf("Wrote %s", m.outputFile)))
			b.WriteString("\n\n")
			b.WriteString(boxStyle.Render(m.song.Summary()))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: another seed • q: quit"))
	}

	b.WriteString("\n")
	return b.String()
}

// Run starts the TUI
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
