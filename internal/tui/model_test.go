package tui

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/catalogs"
	"github.com/lox/speedbingo/internal/boardcode"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestModel(t *testing.T, clock quartz.Clock) *Model {
	t.Helper()
	data, err := catalogs.Read(catalogs.DefaultName)
	require.NoError(t, err)
	var c bingo.Catalog
	require.NoError(t, json.Unmarshal(data, &c))

	m, err := New(quietLogger(), clock, Options{Catalog: c, Mode: bingo.Normal, Seed: 587062})
	require.NoError(t, err)
	return m
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func advance(t *testing.T, clock *quartz.Mock, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	clock.Advance(d).MustWait(ctx)
}

func TestNewShowsGeneratedBoard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, quartz.NewMock(t))
	want, err := bingo.Generate(587062, bingo.Normal, m.catalog)
	require.NoError(t, err)
	assert.Equal(t, want, m.Board())
	assert.Equal(t, uint32(587062), m.Seed())
	assert.Equal(t, 0, m.Cursor())
}

func TestNewFailsOnIncompleteCatalog(t *testing.T) {
	t.Parallel()

	_, err := New(quietLogger(), quartz.NewMock(t), Options{Catalog: bingo.Catalog{}, Seed: 1})
	assert.ErrorIs(t, err, bingo.ErrTierMissing)
}

func TestCursorMovementWraps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, quartz.NewMock(t))

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 20, m.Cursor())
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 24, m.Cursor())
	press(m, keys("l"))
	assert.Equal(t, 20, m.Cursor())
	press(m, keys("j"), keys("l"), keys("l"))
	assert.Equal(t, 2, m.Cursor())
	press(m, keys("k"), keys("h"))
	assert.Equal(t, 21, m.Cursor())
}

func TestMarkingAndLines(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	m := newTestModel(t, clock)

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.Marked(0))
	press(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.Marked(0))

	// Mark the main diagonal.
	for i := 0; i < bingo.Size; i++ {
		press(m, keys("x"))
		if i < bingo.Size-1 {
			press(m, keys("j"), keys("l"))
		}
		if i == 2 {
			advance(t, clock, 75*time.Second)
		}
	}

	assert.Equal(t, []int{10}, m.CompletedLines())
	at, ok := m.FirstBingo()
	require.True(t, ok)
	assert.Equal(t, 75*time.Second, at)

	on := m.onCompletedLine()
	assert.True(t, on[0])
	assert.True(t, on[24])
	assert.False(t, on[1])

	// The first bingo time stays put as more lines complete.
	advance(t, clock, 10*time.Second)
	press(m, keys("h"), keys("h"), keys("h"), keys("h"), keys("x"))
	for i := 0; i < bingo.Size-2; i++ {
		press(m, keys("l"), keys("x"))
	}
	assert.Equal(t, []int{4, 10}, m.CompletedLines())
	at, _ = m.FirstBingo()
	assert.Equal(t, 75*time.Second, at)
}

func TestTimerReset(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	m := newTestModel(t, clock)

	advance(t, clock, 42*time.Second)
	assert.Equal(t, 42*time.Second, m.Elapsed())

	press(m, keys("r"))
	assert.Equal(t, time.Duration(0), m.Elapsed())

	advance(t, clock, 1500*time.Millisecond)
	assert.Contains(t, m.View(), "00:01.5")
}

func TestSeedPrompt(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, quartz.NewMock(t))
	press(m, keys("x"))

	press(m, keys("n"))
	require.True(t, m.prompting)
	assert.Contains(t, m.View(), "seed>")

	press(m, keys("123456"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.prompting)
	assert.NoError(t, m.err)
	assert.Equal(t, uint32(123456), m.Seed())
	assert.False(t, m.Marked(0), "new board starts unmarked")

	want, err := bingo.Generate(123456, bingo.Normal, m.catalog)
	require.NoError(t, err)
	assert.Equal(t, want, m.Board())
}

func TestSeedPromptAcceptsBoardCode(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, quartz.NewMock(t))
	code := boardcode.Format(boardcode.Encode(42, bingo.Long))

	press(m, keys("n"), keys(code), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, uint32(42), m.Seed())
	assert.Equal(t, bingo.Long, m.Mode())
}

func TestSeedPromptErrors(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, quartz.NewMock(t))

	press(m, keys("n"), keys("banana"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Error(t, m.err)
	assert.Equal(t, uint32(587062), m.Seed())
	assert.Contains(t, m.View(), "banana")

	// Any key clears the error.
	press(m, keys("j"))
	assert.NoError(t, m.err)

	// Escape leaves the prompt without changing the board.
	press(m, keys("n"), keys("99"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.prompting)
	assert.Equal(t, uint32(587062), m.Seed())
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, quartz.NewMock(t))
	cmd := press(m, keys("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestViewShowsBoard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, quartz.NewMock(t))
	view := m.View()
	assert.Contains(t, view, "seed 587062")
	assert.Contains(t, view, boardcode.Format(boardcode.Encode(587062, bingo.Normal)))
	assert.Contains(t, view, "q quit")

	first := strings.Fields(m.Board().Cell(0, 0))[0]
	assert.Contains(t, view, first)
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00.0"},
		{1234 * time.Millisecond, "00:01.2"},
		{61*time.Second + 990*time.Millisecond, "01:01.9"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d))
	}
}

func TestParseSeedInput(t *testing.T) {
	t.Parallel()

	seed, mode, err := parseSeedInput(" 4294967295 ", bingo.Short)
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), seed)
	assert.Equal(t, bingo.Short, mode)

	_, _, err = parseSeedInput("4294967296", bingo.Short)
	assert.Error(t, err)
}
