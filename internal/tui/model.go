// Package tui is an interactive board for playing a bingo race in the
// terminal.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/internal/boardcode"
	"github.com/lox/speedbingo/internal/render"
)

// Options configures a new Model.
type Options struct {
	Catalog bingo.Catalog
	Mode    bingo.Mode
	Seed    uint32
	Render  render.Options
}

type tickMsg time.Time

// Model is the bubbletea model for a single race.
type Model struct {
	logger *log.Logger
	clock  quartz.Clock

	catalog bingo.Catalog
	mode    bingo.Mode
	seed    uint32
	board   bingo.Board
	layout  render.Options

	marks  [bingo.Cells]bool
	cursor int

	started    time.Time
	firstBingo time.Duration // zero until a line is completed

	seedInput textinput.Model
	prompting bool
	err       error
	quitting  bool
}

// New builds a model showing the board for opts.Seed.
func New(logger *log.Logger, clock quartz.Clock, opts Options) (*Model, error) {
	ti := textinput.New()
	ti.Placeholder = "seed or board code"
	ti.CharLimit = 16
	ti.Width = 20
	ti.Prompt = "seed> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(render.CursorColor).Bold(true)

	m := &Model{
		logger:    logger.WithPrefix("tui"),
		clock:     clock,
		catalog:   opts.Catalog,
		mode:      opts.Mode,
		layout:    opts.Render,
		seedInput: ti,
	}
	if err := m.load(opts.Seed, opts.Mode); err != nil {
		return nil, err
	}
	return m, nil
}

// load generates a board and starts a fresh race on it.
func (m *Model) load(seed uint32, mode bingo.Mode) error {
	board, err := bingo.Generate(seed, mode, m.catalog)
	if err != nil {
		return err
	}
	m.seed = seed
	m.mode = mode
	m.board = board
	m.marks = [bingo.Cells]bool{}
	m.cursor = 0
	m.resetTimer()
	m.logger.Debug("Loaded board", "seed", seed, "mode", mode)
	return nil
}

func (m *Model) resetTimer() {
	m.started = m.clock.Now()
	m.firstBingo = 0
}

// Seed returns the seed of the current board.
func (m *Model) Seed() uint32 { return m.seed }

// Mode returns the mode of the current board.
func (m *Model) Mode() bingo.Mode { return m.mode }

// Board returns the current board.
func (m *Model) Board() bingo.Board { return m.board }

// Cursor returns the focused cell index.
func (m *Model) Cursor() int { return m.cursor }

// Marked reports whether a cell has been claimed.
func (m *Model) Marked(index int) bool { return m.marks[index] }

// Elapsed is the race time so far.
func (m *Model) Elapsed() time.Duration {
	return m.clock.Since(m.started)
}

// FirstBingo is the race time at which the first line was completed.
func (m *Model) FirstBingo() (time.Duration, bool) {
	return m.firstBingo, m.firstBingo > 0
}

// CompletedLines returns the indices into bingo.Lines of fully marked lines.
func (m *Model) CompletedLines() []int {
	var done []int
	for i, line := range bingo.Lines() {
		complete := true
		for _, cell := range line {
			if !m.marks[cell] {
				complete = false
				break
			}
		}
		if complete {
			done = append(done, i)
		}
	}
	return done
}

func (m *Model) onCompletedLine() [bingo.Cells]bool {
	var on [bingo.Cells]bool
	lines := bingo.Lines()
	for _, i := range m.CompletedLines() {
		for _, cell := range lines[i] {
			on[cell] = true
		}
	}
	return on
}

func (m *Model) toggle() {
	m.marks[m.cursor] = !m.marks[m.cursor]
	if m.firstBingo == 0 && len(m.CompletedLines()) > 0 {
		m.firstBingo = max(m.Elapsed(), time.Millisecond)
		m.logger.Info("Bingo", "seed", m.seed, "time", formatDuration(m.firstBingo))
	}
}

func (m *Model) move(dRow, dCol int) {
	row := (m.cursor/bingo.Size + dRow + bingo.Size) % bingo.Size
	col := (m.cursor%bingo.Size + dCol + bingo.Size) % bingo.Size
	m.cursor = row*bingo.Size + col
}

// parseSeedInput accepts a decimal seed or a board code.
func parseSeedInput(s string, mode bingo.Mode) (uint32, bingo.Mode, error) {
	s = strings.TrimSpace(s)
	if seed, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(seed), mode, nil
	}
	seed, codeMode, err := boardcode.Decode(s)
	if err != nil {
		return 0, mode, fmt.Errorf("%q is neither a seed nor a board code", s)
	}
	return seed, codeMode, nil
}

func (m *Model) tick() tea.Cmd {
	return func() tea.Msg {
		t := m.clock.NewTimer(100 * time.Millisecond)
		return tickMsg(<-t.C)
	}
}

// Init starts the race timer.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles key presses and timer ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		m.err = nil
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.move(-1, 0)
		case "down", "j":
			m.move(1, 0)
		case "left", "h":
			m.move(0, -1)
		case "right", "l":
			m.move(0, 1)
		case " ", "x", "enter":
			m.toggle()
		case "r":
			m.resetTimer()
		case "n":
			m.prompting = true
			m.seedInput.SetValue("")
			return m, m.seedInput.Focus()
		}
	}
	return m, nil
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.prompting = false
		m.seedInput.Blur()
		return m, nil
	case "enter":
		m.prompting = false
		m.seedInput.Blur()
		seed, mode, err := parseSeedInput(m.seedInput.Value(), m.mode)
		if err == nil {
			err = m.load(seed, mode)
		}
		if err != nil {
			m.logger.Warn("Could not load board", "input", m.seedInput.Value(), "error", err)
			m.err = err
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	return m, cmd
}

func formatDuration(d time.Duration) string {
	d = d.Truncate(100 * time.Millisecond)
	h := int(d / time.Hour)
	mins := int(d/time.Minute) % 60
	secs := int(d/time.Second) % 60
	tenths := int(d/(100*time.Millisecond)) % 10
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%d", h, mins, secs, tenths)
	}
	return fmt.Sprintf("%02d:%02d.%d", mins, secs, tenths)
}

// View renders the board, timer and key help.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	header := fmt.Sprintf("seed %d  %s  code %s", m.seed, m.mode, boardcode.Format(boardcode.Encode(m.seed, m.mode)))
	sb.WriteString(HeaderStyle.Render(header))
	sb.WriteString("\n\n")

	onLine := m.onCompletedLine()
	sb.WriteString(render.Styled(nil, m.board, render.StyledOptions{
		Options: m.layout,
		State: func(i int) render.CellState {
			return render.CellState{Marked: m.marks[i], OnLine: onLine[i], Cursor: i == m.cursor}
		},
	}))
	sb.WriteString("\n\n")

	sb.WriteString(TimerStyle.Render(formatDuration(m.Elapsed())))
	if t, ok := m.FirstBingo(); ok {
		sb.WriteString("  ")
		sb.WriteString(BingoStyle.Render(fmt.Sprintf("BINGO at %s (%d lines)", formatDuration(t), len(m.CompletedLines()))))
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(ErrorStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}
	if m.prompting {
		sb.WriteString(m.seedInput.View())
		sb.WriteString("\n")
	}
	sb.WriteString(HelpStyle.Render("arrows/hjkl move  space mark  n new seed  r reset timer  q quit"))
	return sb.String()
}

// Run plays the model full screen until the user quits or ctx ends.
func Run(ctx context.Context, m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
