package boardfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lox/speedbingo/bingo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letterBoard(offset int) bingo.Board {
	var b bingo.Board
	for i := 0; i < bingo.Cells; i++ {
		b.Cells[i/bingo.Size][i%bingo.Size] = string(rune('a'+(i+offset)%26)) + " goal"
	}
	return b
}

func TestEncodeSingle(t *testing.T) {
	t.Parallel()

	rec := NewRecord(587062, bingo.Long, letterBoard(0), "sample")
	data, err := EncodeToBytes(&rec)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "seed = 587062")
	assert.Contains(t, text, `mode = "long"`)
	assert.Contains(t, text, `catalog = "sample"`)
	assert.NotContains(t, text, "generated_at")

	records, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])

	board, err := records[0].Board()
	require.NoError(t, err)
	assert.Equal(t, letterBoard(0), board)
	assert.NoError(t, records[0].Check())
}

func TestEncodeAll(t *testing.T) {
	t.Parallel()

	records := []Record{
		NewRecord(1, bingo.Normal, letterBoard(1), ""),
		NewRecord(2, bingo.Short, letterBoard(2), ""),
		NewRecord(3, bingo.Special, letterBoard(3), ""),
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeAll(&buf, records))
	assert.Equal(t, 3, strings.Count(buf.String(), "[[board]]"))

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, back)
}

func TestRecordCheck(t *testing.T) {
	t.Parallel()

	rec := NewRecord(10, bingo.Normal, letterBoard(0), "")
	rec.Seed = 11
	assert.Error(t, rec.Check())

	rec.Code = ""
	assert.NoError(t, rec.Check())

	rec.Code = "nonsense"
	assert.Error(t, rec.Check())
}

func TestRecordBoardShape(t *testing.T) {
	t.Parallel()

	rec := NewRecord(10, bingo.Normal, letterBoard(0), "")
	rec.Rows = rec.Rows[:3]
	_, err := rec.Board()
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("seed = "))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`mode = "sideways"`))
	assert.Error(t, err)
}

func TestEncodeNil(t *testing.T) {
	t.Parallel()

	assert.Error(t, Encode(&bytes.Buffer{}, nil))
}
