// utils/bom.go
package utils

import (
	"bufio"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SkipBOM returns a reader with any leading UTF-8 byte-order mark
// removed. The FAA bulk files are produced on Windows and start with a
// BOM that would otherwise end up glued to the first CSV header name.
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(utf8BOM))
	if err != nil {
		// Too short to hold a BOM; let the caller see the bytes as-is.
		return br
	}
	if head[0] == utf8BOM[0] && head[1] == utf8BOM[1] && head[2] == utf8BOM[2] {
		br.Discard(len(utf8BOM))
	}
	return br
}
