package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS control sequences for thermal receipt printers.
var (
	escInit      = []byte{0x1B, 0x40}       // ESC @ - initialize
	escAlignL    = []byte{0x1B, 0x61, 0x00} // ESC a 0 - align left
	escAlignC    = []byte{0x1B, 0x61, 0x01} // ESC a 1 - align center
	escAlignR    = []byte{0x1B, 0x61, 0x02} // ESC a 2 - align right
	escBoldOn    = []byte{0x1B, 0x45, 0x01} // ESC E 1
	escBoldOff   = []byte{0x1B, 0x45, 0x00} // ESC E 0
	escDoubleOn  = []byte{0x1D, 0x21, 0x11} // GS ! - double width+height
	escDoubleOff = []byte{0x1D, 0x21, 0x00} // GS ! - normal size
	escCut       = []byte{0x1D, 0x56, 0x42, 0x00} // GS V B 0 - partial cut with feed
	escFeed      = []byte{0x0A}
)

// LineWidth is the character width of a standard 80mm thermal printer.
const LineWidth = 48

// Document builds an ESC/POS byte stream for a receipt.
type Document struct {
	buf bytes.Buffer
}

// NewDocument creates a Document initialized with the printer reset sequence.
func NewDocument() *Document {
	d := &Document{}
	d.buf.Write(escInit)
	return d
}

func (d *Document) AlignLeft() *Document {
	d.buf.Write(escAlignL)
	return d
}

func (d *Document) AlignCenter() *Document {
	d.buf.Write(escAlignC)
	return d
}

func (d *Document) AlignRight() *Document {
	d.buf.Write(escAlignR)
	return d
}

// BoldLine prints a line in bold and resets bold afterwards.
func (d *Document) BoldLine(text string) *Document {
	d.buf.Write(escBoldOn)
	d.Line(text)
	d.buf.Write(escBoldOff)
	return d
}

// TitleLine prints a line in double-size bold, for receipt headers.
func (d *Document) TitleLine(text string) *Document {
	d.buf.Write(escDoubleOn)
	d.buf.Write(escBoldOn)
	d.Line(text)
	d.buf.Write(escBoldOff)
	d.buf.Write(escDoubleOff)
	return d
}

// Line prints text followed by a line feed.
func (d *Document) Line(text string) *Document {
	d.buf.WriteString(text)
	d.buf.Write(escFeed)
	return d
}

// Separator prints a full-width dashed rule.
func (d *Document) Separator() *Document {
	return d.Line(strings.Repeat("-", LineWidth))
}

// TwoColumns prints left- and right-aligned text on one line, padded to
// the full line width. Left text is truncated if the pair does not fit.
func (d *Document) TwoColumns(left, right string) *Document {
	space := LineWidth - len(right)
	if space < 1 {
		space = 1
	}
	if len(left) >= space {
		left = left[:space-1]
	}
	pad := space - len(left)
	return d.Line(left + strings.Repeat(" ", pad) + right)
}

// Feed advances the paper by n lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.Write(escFeed)
	}
	return d
}

// Cut feeds paper and performs a partial cut.
func (d *Document) Cut() *Document {
	d.Feed(3)
	d.buf.Write(escCut)
	return d
}

// Bytes returns the assembled ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// FormatMoney renders cents as a decimal string, e.g. 12050 -> "120.50".
func FormatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
