package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-zapp/internal/core"
	"github.com/vovakirdan/word-zapp/internal/game"
	"github.com/vovakirdan/word-zapp/internal/storage"
	"github.com/vovakirdan/word-zapp/internal/zapp"
)

// Model is the Bubble Tea model for playing word zapp.
type Model struct {
	game   *game.Game
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger
	player string

	keys  KeyMap
	help  help.Model
	input textinput.Model

	state    core.GameState
	message  string
	kind     messageKind
	width    int
	quitting bool
	saved    bool // Whether the result has been saved for current game over
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer sets the name recorded with saved results.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithLogger sets the logger for storage failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates a new Bubble Tea model and deals the first round.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "type a word"
	ti.Prompt = "> "
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	m := Model{
		game:   g,
		store:  store,
		config: cfg,
		logger: log.New(io.Discard),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  ti,
		width:  cfg.ScreenW,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.game.Flush(&m)
	m.state = m.game.State()

	return m
}

// Init starts the cursor blink and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		if !m.state.GameOver {
			m.game.End()
			m.sync()
		}
		m.quitting = true
		return m, tea.Quit

	case ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case ActionRestart:
		if m.state.GameOver {
			m.restart()
		}
		return m, nil

	case ActionSubmit:
		if m.state.GameOver {
			return m, nil
		}
		word := m.input.Value()
		m.input.Reset()
		if strings.TrimSpace(word) == "" {
			return m, nil
		}
		// Rejections arrive as events
		_ = m.game.Submit(word)
		m.sync()
		return m, nil
	}

	// Input is disabled once the game is over
	if m.state.GameOver {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(tickInterval(m.config.TickRate))
	m.state = result.State
	if result.Events > 0 {
		m.sync()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// sync applies queued game events and saves the result on game over.
func (m *Model) sync() {
	m.game.Flush(m)
	m.state = m.game.State()

	if m.state.GameOver && !m.saved {
		m.saveResult()
		m.saved = true
	}
}

// Present updates the status line from a game event.
func (m *Model) Present(e game.Event) {
	switch e := e.(type) {
	case game.LettersDealtEvent:
		m.setMessage(messageInfo, fmt.Sprintf("Make words from %d letters.", len(e.Letters)))
	case game.SubmitAcceptedEvent:
		m.setMessage(messageInfo, fmt.Sprintf("%s counted.", e.Word))
	case game.SubmitRejectedEvent:
		m.setMessage(messageError, e.Message())
	case game.WordZappedEvent:
		m.setMessage(messageZap, fmt.Sprintf("ZAP! %s is gone.", e.Word))
	case game.GameOverEvent:
		m.setMessage(messageOver, fmt.Sprintf("Game over! Total words: %d", e.Tally))
		m.input.Blur()
	}
}

func (m *Model) setMessage(kind messageKind, text string) {
	m.kind = kind
	m.message = text
}

// saveResult records the finished round. Failures are logged, not fatal.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		GameID:    m.game.RunID(),
		Player:    m.player,
		Letters:   string(m.game.Letters()),
		Tally:     m.state.Score,
		Submitted: m.game.Submitted(),
		Zapped:    m.game.Zapped(),
		Reason:    m.game.Reason().String(),
		Duration:  int(m.game.Elapsed() / time.Second),
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

// restart deals a fresh round with a new seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.saved = false
	m.input.Reset()
	m.input.Focus()
	m.game.Flush(m)
	m.state = m.game.State()
}

// saveScreenshot saves the current round as plain text.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	// Create screenshots directory
	dir := filepath.Join(home, ".zapp", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.plainText()), 0o600)
}

// plainText is the unstyled round summary used for screenshots.
func (m Model) plainText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", m.game.Title(), formatClock(m.state.TimeLeft))
	fmt.Fprintf(&b, "Letters:   %s\n", string(m.game.Letters()))
	fmt.Fprintf(&b, "Submitted: %s\n", strings.Join(m.game.Submitted(), " "))
	fmt.Fprintf(&b, "Zapped:    %s\n", strings.Join(m.game.Zapped(), " "))
	fmt.Fprintf(&b, "Total:     %d\n", m.state.Score)
	if m.message != "" {
		b.WriteString(m.message)
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(strings.ToUpper(m.game.Title())),
		"   ",
		renderClock(m.state.TimeLeft),
	)
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(renderTiles(m.game.Letters(), zapp.IsVowel))
	b.WriteString("\n\n")

	if !m.state.GameOver {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(m.kind.style().Render(m.message))
	}
	b.WriteString("\n\n")

	settings := m.game.Settings()
	submitted := renderColumn(
		fmt.Sprintf("Words %d/%d", m.state.Score, settings.WordLimit),
		m.game.Submitted(),
		submittedWordStyle,
	)
	zapped := renderColumn("Zapped", m.game.Zapped(), zappedWordStyle)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, submitted, " ", zapped))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Message returns the current status line.
func (m Model) Message() string {
	return m.message
}

// GameOver reports whether the current round has ended.
func (m Model) GameOver() bool {
	return m.state.GameOver
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(g, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
