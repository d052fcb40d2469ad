package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwoColumnsPadsToLineWidth(t *testing.T) {
	doc := NewDocument()
	doc.TwoColumns("Subtotal:", "350.00")

	out := doc.Bytes()
	line := bytes.TrimPrefix(out, escInit)
	line = bytes.TrimSuffix(line, escFeed)

	assert.Len(t, line, LineWidth)
	assert.True(t, bytes.HasPrefix(line, []byte("Subtotal:")))
	assert.True(t, bytes.HasSuffix(line, []byte("350.00")))
}

func TestTwoColumnsTruncatesLongLeft(t *testing.T) {
	doc := NewDocument()
	long := "A very long product name that cannot possibly fit on a receipt line"
	doc.TwoColumns(long, "9.99")

	line := bytes.TrimPrefix(doc.Bytes(), escInit)
	line = bytes.TrimSuffix(line, escFeed)

	assert.Len(t, line, LineWidth)
	assert.True(t, bytes.HasSuffix(line, []byte("9.99")))
}

func TestDocumentStartsWithInit(t *testing.T) {
	doc := NewDocument()
	assert.True(t, bytes.HasPrefix(doc.Bytes(), escInit))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "120.50", FormatMoney(12050))
	assert.Equal(t, "0.07", FormatMoney(7))
	assert.Equal(t, "-3.00", FormatMoney(-300))
	assert.Equal(t, "0.00", FormatMoney(0))
}
