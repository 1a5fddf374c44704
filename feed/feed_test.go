package feed

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floe/domain/book"
)

func TestParseLimitOrder(t *testing.T) {
	o, err := Parse("B,1,10,1000")
	require.NoError(t, err)
	assert.Equal(t, &book.Order{ID: "1", Price: 10, Volume: 1000, Side: book.Buy}, o)
}

func TestParseIcebergOrder(t *testing.T) {
	o, err := Parse("sell, ice, 2, 300, 140")
	require.NoError(t, err)
	assert.Equal(t, &book.Order{
		ID:          "ice",
		Price:       2,
		Volume:      300,
		Side:        book.Sell,
		Iceberg:     true,
		DisplaySize: 140,
	}, o)
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{
		"B,1,10",
		"X,1,10,1000",
		"B,,10,1000",
		"B,1,abc,1000",
		"B,1,0,1000",
		"B,1,10,-5",
		"B,1,10,1000,0",
	} {
		_, err := Parse(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestReaderSkipsBlanksAndComments(t *testing.T) {
	input := strings.Join([]string{
		"# resting bid",
		"",
		"B,1,10,1000",
		"   ",
		"S,2,9,1200",
	}, "\n")

	r := NewReader(strings.NewReader(input))

	o, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", o.ID)

	o, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", o.ID)

	_, err = r.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestReaderRecoversAfterBadLine(t *testing.T) {
	r := NewReader(strings.NewReader("garbage\nB,1,10,1000\n"))

	_, err := r.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	o, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", o.ID)
}
