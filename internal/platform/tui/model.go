package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/serpientes/internal/config"
	"github.com/vovakirdan/serpientes/internal/core"
	"github.com/vovakirdan/serpientes/internal/game"
)

const noVerseText = "No hay verso aquí."

// boardTop is the screen row the board starts on, below the title.
const boardTop = 2

// overlay is what is drawn on top of the board.
type overlay int

const (
	overlayNone overlay = iota
	overlayDetail
	overlayVictory
	overlayHistory
	overlayHelp
)

// Options configure a board session.
type Options struct {
	Runtime   core.RuntimeConfig
	Animation config.AnimationConfig
	// History is where the victory table is read from. May be nil.
	History VictoryLister
}

// detailView is the position detail shown after a move settles.
type detailView struct {
	index int
	verse string
	ok    bool
}

// Model is the Bubble Tea model of the board screen.
// The engine is shared by every copy of the model; the model only keeps
// presentation state.
type Model struct {
	ctx     context.Context
	engine  *game.Engine
	anim    config.AnimationConfig
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	history HistoryModel
	faces   *rand.Rand

	width  int
	height int
	player string

	face    int // die face on display, 0 before the first roll
	rolling bool
	rollSeq int
	outcome game.Outcome

	overlay   overlay
	detail    detailView
	detailSeq int
	status    string
	err       error
	quitting  bool
}

// NewModel creates the board screen for an engine that already loaded its progress.
func NewModel(ctx context.Context, engine *game.Engine, opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Animation == (config.AnimationConfig{}) {
		opts.Animation = config.DefaultAnimation()
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := Model{
		ctx:     ctx,
		engine:  engine,
		anim:    opts.Animation,
		keys:    DefaultKeyMap(),
		help:    h,
		screen:  newBoardScreen(engine.Board().Layout),
		history: NewHistoryModel(opts.History, opts.Runtime.Player, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		faces:   rand.New(rand.NewSource(opts.Runtime.Seed)),
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
		player:  opts.Runtime.Player,
	}
	if opts.Runtime.Muted {
		engine.SetMuted(true)
	}
	if engine.Snapshot().Phase == game.PhaseVictory {
		m.overlay = overlayVictory
	}
	return m
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Serpientes & Poemas")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.history.Resize(msg.Width, msg.Height)
		return m, nil

	case diceTickMsg:
		return m.handleDiceTick(msg)

	case advancedMsg:
		return m.handleAdvanced(msg)

	case detailExpiredMsg:
		if msg.seq == m.detailSeq && m.overlay == overlayDetail {
			m.overlay = overlayNone
		}
		return m, nil

	case playbackDoneMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayHistory:
		if action == core.ActionBack || action == core.ActionHistory {
			m.overlay = overlayNone
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd

	case overlayHelp:
		if action == core.ActionBack || action == core.ActionHelp {
			m.overlay = overlayNone
		}
		return m, nil

	case overlayVictory:
		switch action {
		case core.ActionRestart, core.ActionRoll, core.ActionBack:
			return m.dismissVictory()
		case core.ActionReplay:
			m.status = "Leyendo tus versos..."
			return m, playVictoryCmd(m.ctx, m.engine)
		}
	}

	switch action {
	case core.ActionRoll:
		return m.roll()

	case core.ActionDetail:
		return m.reopenDetail()

	case core.ActionMute:
		muted := !m.engine.Snapshot().Muted
		m.engine.SetMuted(muted)
		m.status = "Voz activada"
		if muted {
			m.status = "Voz silenciada"
		}
		return m, nil

	case core.ActionHistory:
		m.history.Load(m.ctx)
		m.overlay = overlayHistory
		return m, nil

	case core.ActionHelp:
		m.overlay = overlayHelp
		return m, nil

	case core.ActionBack:
		if m.overlay == overlayDetail {
			m.overlay = overlayNone
		}
		return m, nil
	}

	return m, nil
}

// handleMouse reopens the detail when a board cell is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.overlay != overlayNone && m.overlay != overlayDetail {
		return m, nil
	}
	if _, _, ok := boardGrid(m.engine.Board().Layout).At(msg.X, msg.Y-boardTop); !ok {
		return m, nil
	}
	return m.reopenDetail()
}

// reopenDetail shows the detail of the current space again. Nothing is shown
// on the start space or while a move is playing.
func (m Model) reopenDetail() (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()
	if m.rolling || snap.Busy() || snap.State.Position == 0 {
		return m, nil
	}
	return m.showDetail(snap.State.Position)
}

// roll draws the die and starts the dice animation. The move itself is
// resolved and saved before the animation starts.
func (m Model) roll() (tea.Model, tea.Cmd) {
	if m.rolling {
		return m, nil
	}

	out, err := m.engine.Roll(m.ctx)
	switch {
	case errors.Is(err, game.ErrMoveInProgress):
		return m, nil
	case errors.Is(err, game.ErrGameOver):
		m.overlay = overlayVictory
		return m, nil
	case err != nil:
		m.err = err
		return m, nil
	}

	m.err = nil
	m.status = ""
	m.outcome = out
	m.overlay = overlayNone
	m.rollSeq++

	if m.anim.RollDuration <= 0 || m.anim.RollInterval <= 0 {
		m.face = out.Die
		return m, advanceCmd(m.ctx, m.engine, m.anim.StepDelay)
	}
	m.rolling = true
	m.face = m.faces.Intn(game.Faces) + 1
	return m, diceTick(m.rollSeq, m.anim.RollInterval, 0)
}

// handleDiceTick cycles the die faces until the roll duration is over.
func (m Model) handleDiceTick(msg diceTickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.rollSeq || !m.rolling {
		return m, nil
	}
	if msg.elapsed >= m.anim.RollDuration {
		m.rolling = false
		m.face = m.outcome.Die
		return m, advanceCmd(m.ctx, m.engine, m.anim.StepDelay)
	}
	m.face = m.faces.Intn(game.Faces) + 1
	return m, diceTick(msg.seq, m.anim.RollInterval, msg.elapsed)
}

// handleAdvanced schedules the next event, or finishes the move.
func (m Model) handleAdvanced(msg advancedMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		return m.settled()
	}
	if s := describeEvent(msg.event); s != "" {
		m.status = s
	}

	next, ok := m.engine.Peek()
	if !ok {
		return m.settled()
	}
	delay := m.anim.StepDelay
	if next.Kind != game.EventStep {
		delay = m.anim.SettleDelay
	}
	return m, advanceCmd(m.ctx, m.engine, delay)
}

// settled shows the victory screen or the detail of the settled space.
func (m Model) settled() (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()
	if snap.Phase == game.PhaseVictory {
		m.overlay = overlayVictory
		return m, nil
	}
	return m.showDetail(snap.State.Position)
}

// showDetail opens the detail of a space for a limited time.
func (m Model) showDetail(index int) (tea.Model, tea.Cmd) {
	verse, ok := m.engine.Board().Spaces.VerseAt(index)
	m.detail = detailView{index: index, verse: verse, ok: ok}
	m.overlay = overlayDetail
	m.detailSeq++

	d := m.anim.EmptyDetailDuration
	if ok {
		d = m.anim.DetailDuration
	}
	return m, detailTimeout(m.detailSeq, d)
}

// dismissVictory starts a new game.
func (m Model) dismissVictory() (tea.Model, tea.Cmd) {
	if err := m.engine.Reset(m.ctx); err != nil {
		m.err = err
		if errors.Is(err, game.ErrMoveInProgress) {
			return m, nil
		}
	}
	m.overlay = overlayNone
	m.face = 0
	m.status = "Nuevo juego"
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.overlay {
	case overlayHistory:
		return m.page(m.history.View())
	case overlayHelp:
		full := m.help
		full.ShowAll = true
		return m.page(panelStyle.Render(titleStyle.Render("AYUDA") + "\n\n" + full.View(m.keys)))
	}

	snap := m.engine.Snapshot()
	DrawBoard(m.screen, m.engine.Board(), snap.Display)

	side := m.renderStatus(snap)
	switch m.overlay {
	case overlayDetail:
		side = lipgloss.JoinVertical(lipgloss.Left, side, m.renderDetail())
	case overlayVictory:
		side = m.renderVictory(snap)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, RenderScreen(m.screen), "  ", side)

	var b strings.Builder
	b.WriteString(titleStyle.Render("SERPIENTES & POEMAS"))
	if m.player != "" {
		b.WriteString(dimStyle.Render("  · " + m.player))
	}
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// page centers a full-screen view.
func (m Model) page(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderStatus(snap game.Snapshot) string {
	b := m.engine.Board()
	voice := "on"
	if snap.Muted {
		voice = "off"
	}

	lines := []string{
		titleStyle.Render("Dado  ") + dieFace(m.face),
		fmt.Sprintf("Casilla %d / %d", snap.Display, b.Final()),
		fmt.Sprintf("Versos  %d / %d", len(snap.State.Verses), len(b.Spaces.VerseSpaces())),
		fmt.Sprintf("Tiros   %d", snap.Rolls),
		dimStyle.Render("Voz     " + voice),
	}
	if m.status != "" {
		lines = append(lines, "", m.status)
	}
	return panelStyle.Width(30).Render(strings.Join(lines, "\n"))
}

func (m Model) renderDetail() string {
	text := dimStyle.Render(noVerseText)
	if m.detail.ok {
		text = verseStyle.Render(m.detail.verse)
	}
	header := titleStyle.Render(fmt.Sprintf("Casilla %d", m.detail.index))
	return panelStyle.Width(30).Render(header + "\n" + text)
}

func (m Model) renderVictory(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("¡GANASTE!"))
	b.WriteString("\n\n")
	if len(snap.State.Verses) == 0 {
		b.WriteString(dimStyle.Render("Llegaste sin recoger versos."))
	}
	for _, v := range snap.State.Verses {
		b.WriteString(verseStyle.Render(v))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("r: nuevo juego · p: releer"))
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	return overlayStyle.Width(44).Render(b.String())
}

// Snapshot returns the state of the engine behind the screen.
func (m Model) Snapshot() game.Snapshot {
	return m.engine.Snapshot()
}

// Run starts the Bubble Tea program with the board screen.
func Run(ctx context.Context, engine *game.Engine, opts Options) error {
	model := NewModel(ctx, engine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
