package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floe/domain/book"
)

func TestWriteTwoColumns(t *testing.T) {
	b := book.NewOrderBook()
	require.NoError(t, b.Insert(&book.Order{ID: "b1", Price: 99, Volume: 50000, Side: book.Buy}))
	require.NoError(t, b.Insert(&book.Order{ID: "b2", Price: 98, Volume: 25500, Side: book.Buy}))
	require.NoError(t, b.Insert(&book.Order{ID: "a1", Price: 100, Volume: 500, Side: book.Sell}))

	var out strings.Builder
	require.NoError(t, Write(&out, b))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	// Best bid pairs with best ask on the first row.
	assert.Contains(t, lines[0], "50000")
	assert.Contains(t, lines[0], "99")
	assert.Contains(t, lines[0], "500")
	assert.Contains(t, lines[0], "100")
	assert.Contains(t, lines[0], "|")

	// Second row has only the bid side.
	assert.Contains(t, lines[1], "25500")
	assert.Contains(t, lines[1], "98")
}

func TestWriteEmptyBook(t *testing.T) {
	var out strings.Builder
	require.NoError(t, Write(&out, book.NewOrderBook()))
	assert.Empty(t, out.String())
}

func TestWriteShowsOnlyVisibleIcebergSlice(t *testing.T) {
	b := book.NewOrderBook()
	require.NoError(t, b.Insert(&book.Order{
		ID: "ice", Price: 2, Volume: 300, Side: book.Sell, Iceberg: true, DisplaySize: 140,
	}))

	var out strings.Builder
	require.NoError(t, Write(&out, b))

	assert.Contains(t, out.String(), "140")
	assert.NotContains(t, out.String(), "300")
}
