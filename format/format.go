// Package format implements the Annotated Formatter: it renders a
// bitfield.Record as an IETF-RFC-style bit-field diagram (a 32-column
// ruled grid with boxed titles for non-leaf records), without mutating
// the value it renders.
package format

import (
	"fmt"
	"strings"

	"github.com/packetcraft/bitframe/bitfield"
)

// StringMode selects how KindBytes fields are rendered.
type StringMode uint8

const (
	// ElideStrings renders byte strings as a single elision marker.
	ElideStrings StringMode = iota
	// NeatStrings renders byte strings as a windowed hex+ASCII dump, 16
	// bytes per row; a full row is 69 columns wide, borders included.
	NeatStrings
	// DetailedStrings renders one annotated line (binary, hex, ASCII) per
	// byte.
	DetailedStrings
)

const ruleWidth = 32

// Options controls the formatter's verbosity.
type Options struct {
	Strings StringMode
}

// Record renders r as a bit-field diagram using the given options.
func Record(r bitfield.Record, opts Options) string {
	var b strings.Builder
	writeRecord(&b, r, opts, 0)
	return b.String()
}

func writeRecord(b *strings.Builder, r bitfield.Record, opts Options, depth int) {
	boxed := r.RecordKind() != bitfield.RecordBasic && r.RecordKind() != bitfield.RecordOption
	if boxed {
		writeTitle(b, r)
	}
	writeRuler(b)

	pos := 0
	for _, f := range r.Fields() {
		w := f.BitWidth()
		switch f.Kind {
		case bitfield.KindBytes:
			writeByteString(b, f, opts)
			pos = 0
			continue
		case bitfield.KindRecord, bitfield.KindVariant, bitfield.KindOptional:
			if f.Sub != nil {
				fmt.Fprintf(b, "-- %s --\n", f.Name)
				writeRecord(b, f.Sub, opts, depth+1)
			}
			continue
		}
		pos = writeLeafField(b, f.Name, w, pos)
	}
	if depth == 0 {
		writeCutoff(b)
	}
}

// writeTitle draws a boxed title line, e.g. "+-- HEADER: Ethernet header ---...---+",
// padded with dashes to 100 columns when the title fits.
func writeTitle(b *strings.Builder, r bitfield.Record) {
	title := fmt.Sprintf(" %s: %s ", r.RecordKind(), r.DisplayName())
	pad := ruleWidth*3 - len(title)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(b, "+%s+\n", strings.Repeat("-", 2)+title+strings.Repeat("-", pad))
}

// writeRuler draws the column index line for bits 0 through 31, one digit
// per column: the column index modulo 10 ("0 1 ... 9 0 1 ... 9 0 1").
func writeRuler(b *strings.Builder) {
	b.WriteString(" ")
	for i := 0; i < ruleWidth; i++ {
		fmt.Fprintf(b, "%-2d", i%10)
	}
	b.WriteString("\n")
}

// writeLeafField draws one uint/bool field, word-wrapping at 32 bits and
// prefixing each row with its word index. Returns the new bit position
// within the current 32-bit word.
func writeLeafField(b *strings.Builder, name string, width, pos int) int {
	remaining := width
	for remaining > 0 {
		if pos == 0 {
			fmt.Fprintf(b, "[%2d] ", 0)
		}
		take := ruleWidth - pos
		if take > remaining {
			take = remaining
		}
		fmt.Fprintf(b, "| %s (%d bit%s) ", name, take, plural(take))
		pos += take
		remaining -= take
		if pos >= ruleWidth {
			b.WriteString("|\n")
			pos = 0
		}
	}
	if pos > 0 {
		b.WriteString("\n")
	}
	return pos
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// writeByteString renders a KindBytes field as a titled block, using one
// of the three string-rendering modes.
func writeByteString(b *strings.Builder, f bitfield.Field, opts Options) {
	data := f.Bytes()
	fmt.Fprintf(b, "+-- %s (%d bytes) --+\n", f.Name, len(data))
	switch opts.Strings {
	case ElideStrings:
		b.WriteString("| ... |\n")
	case NeatStrings:
		writeNeatDump(b, data)
	case DetailedStrings:
		writeDetailedDump(b, data)
	}
}

// writeNeatDump renders data as a windowed hex+ASCII dump, 16 bytes per
// row. A full row is 69 columns wide: 2 border + 48 hex + 1 separator +
// 16 ASCII + 2 border.
func writeNeatDump(b *strings.Builder, data []byte) {
	const windowBytes = 16
	for i := 0; i < len(data); i += windowBytes {
		end := i + windowBytes
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		var hexPart, asciiPart strings.Builder
		for _, c := range chunk {
			fmt.Fprintf(&hexPart, "%02x ", c)
			if c >= 0x20 && c < 0x7f {
				asciiPart.WriteByte(c)
			} else {
				asciiPart.WriteByte('.')
			}
		}
		fmt.Fprintf(b, "| %-48s %s |\n", hexPart.String(), asciiPart.String())
	}
}

// writeDetailedDump renders one annotated line per byte: binary, hex and
// character form.
func writeDetailedDump(b *strings.Builder, data []byte) {
	for i, c := range data {
		ch := "."
		if c >= 0x20 && c < 0x7f {
			ch = string(c)
		}
		fmt.Fprintf(b, "| [%4d] %08b  0x%02x  %q |\n", i, c, c, ch)
	}
}

// writeCutoff emits the closing rule for the outermost record only.
func writeCutoff(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", ruleWidth*3) + "\n")
}
