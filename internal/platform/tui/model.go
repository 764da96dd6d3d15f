package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Rows reserved around the arena.
const (
	headerRows = 1
	footerRows = 1
)

// nudgeCells is how far one arrow key press moves the pointer, in cells.
const nudgeCells = 2

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	clearedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// hud holds text written by the world's score display. It is shared by
// pointer because Bubble Tea copies the model on every update.
type hud struct {
	score string
}

// Model is the Bubble Tea model for one breakout session.
type Model struct {
	game    config.BreakoutConfig
	config  core.RuntimeConfig
	logger  *log.Logger
	loop    *breakout.Loop
	input   *breakout.InputSource
	surface *Surface
	hud     *hud
	keys    KeyMap
	help    help.Model

	lastStats breakout.Stats
	paused    bool
	quitting  bool
}

// NewModel creates a model and initializes a world sized for cfg's screen.
func NewModel(game config.BreakoutConfig, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(cfg.ScreenW, arenaRows(cfg.ScreenH))
	m := Model{
		game:    game,
		config:  cfg,
		logger:  logger,
		input:   breakout.NewInputSource(),
		surface: NewSurface(screen, game.Arena.Width, game.Arena.Height),
		hud:     &hud{},
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.help.Width = cfg.ScreenW

	if err := m.newGame(cfg.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// arenaRows returns the screen rows left for the arena.
func arenaRows(screenH int) int {
	return core.Max(screenH-headerRows-footerRows, 1)
}

// newGame replaces the world with a freshly initialized one.
func (m *Model) newGame(seed int64) error {
	world, err := breakout.NewWorld(m.game, seed)
	if err != nil {
		return err
	}
	h := m.hud
	world.SetScoreDisplay(breakout.ScoreDisplayFunc(func(text string) {
		h.score = text
	}))
	world.Initialize()

	clock := breakout.NewClock(m.game.Clock.MaxStep, nil)
	m.loop = breakout.NewLoop(world, m.input, clock, m.surface)
	m.lastStats = breakout.Stats{}
	m.surface.Screen().Clear()

	m.logger.Debug("new game", "seed", seed, "blocks", world.BlockCount())
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Launch):
		if !m.paused {
			m.input.Activate()
		}
	case key.Matches(msg, m.keys.Left):
		m.nudge(-nudgeCells)
	case key.Matches(msg, m.keys.Right):
		m.nudge(nudgeCells)
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.input.ClearActivation()
		m.logger.Debug("pause toggled", "paused", m.paused)
	case key.Matches(msg, m.keys.Restart):
		m.config.Seed = time.Now().UnixNano()
		if err := m.newGame(m.config.Seed); err != nil {
			m.logger.Error("restart failed", "error", err)
		}
		m.paused = false
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// nudge moves the pointer by a number of cells, starting from the paddle
// center when the pointer has never been set. The pointer stays within the
// range of paddle centers, so a press the other way always moves the paddle.
func (m Model) nudge(cells int) {
	w := m.loop.World()
	arenaW := w.Config().Arena.Width
	step := float64(cells) * arenaW / float64(core.Max(m.surface.Screen().Width(), 1))
	p := w.Paddle()
	origin := core.Point{X: p.CenterX(), Y: p.Y}
	m.input.NudgePointer(step, origin, p.Width/2, arenaW-p.Width/2)
}

// handleMouse maps pointer motion and clicks to arena coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.movePointer(msg.X, msg.Y)
	case tea.MouseActionPress:
		// Clicks on the header, the help footer or a paused game do not launch.
		if msg.Button == tea.MouseButtonLeft {
			p := m.movePointer(msg.X, msg.Y)
			if !m.paused && m.loop.World().Arena().Contains(p) {
				m.input.Activate()
			}
		}
	}
	return m, nil
}

func (m Model) movePointer(col, row int) core.Point {
	p := m.surface.ToArena(col, row-headerRows)
	m.input.MovePointer(p.X, p.Y)
	return p
}

// handleResize rescales the arena onto the new grid. The world is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	screen := m.surface.Screen()
	screen.Resize(msg.Width, arenaRows(msg.Height))
	screen.Clear()
	m.loop.World().Draw(m.surface)
	return m, nil
}

// handleTick runs one frame unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.loop.Frame()
		m.logStats()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logStats reports simulation events that happened during the last frame.
func (m *Model) logStats() {
	stats := m.loop.World().Stats()
	if stats.Launches != m.lastStats.Launches {
		m.logger.Debug("ball launched", "launches", stats.Launches)
	}
	if stats.BallsLost != m.lastStats.BallsLost {
		m.logger.Debug("ball lost", "lost", stats.BallsLost, "frame", stats.Frames)
	}
	if stats.BlocksDestroyed != m.lastStats.BlocksDestroyed {
		m.logger.Debug("block destroyed",
			"destroyed", stats.BlocksDestroyed,
			"score", m.loop.World().Score(),
		)
		if m.loop.World().Cleared() {
			m.logger.Info("board cleared", "score", m.loop.World().Score(), "frames", stats.Frames)
		}
	}
	m.lastStats = stats
}

// World returns the world currently being played.
func (m Model) World() *breakout.World {
	return m.loop.World()
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// ScoreText returns the most recent score text shown by the world.
func (m Model) ScoreText() string {
	return m.hud.score
}

// View renders the header, the arena and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteRune('\n')
	b.WriteString(RenderScreen(m.surface.Screen()))
	b.WriteRune('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) header() string {
	w := m.loop.World()
	left := headerStyle.Render(m.hud.score)

	var status string
	switch {
	case w.Cleared():
		status = clearedStyle.Render("Board cleared! Press r to play again")
	case m.paused:
		status = statusStyle.Render("PAUSED")
	default:
		for _, b := range w.Balls() {
			if b.Parked() {
				status = statusStyle.Render("Click or press space to launch")
				break
			}
		}
	}

	gap := core.Max(m.config.ScreenW-lipgloss.Width(left)-lipgloss.Width(status), 1)
	return fmt.Sprintf("%s%s%s", left, strings.Repeat(" ", gap), status)
}

// Run starts the Bubble Tea program with a new model.
func Run(game config.BreakoutConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion without a pressed button
	)

	_, err = p.Run()
	return err
}
