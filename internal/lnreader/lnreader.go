package lnreader

import (
	"bufio"
	"bytes"
	"io"
	"unicode"
)

// LineNumberReader reads newline-delimited rows and keeps the 1-based number
// of the last row returned.
type LineNumberReader struct {
	r         *bufio.Reader
	rawBuffer []byte
	NumLine   int
}

func NewLineNumberReader(r io.Reader) *LineNumberReader {
	return &LineNumberReader{
		r: bufio.NewReader(r),
	}
}

// ReadLine returns the next row without its line terminator. The returned
// slice is only valid until the next call.
func (r *LineNumberReader) ReadLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.rawBuffer = append(r.rawBuffer[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			r.rawBuffer = append(r.rawBuffer, line...)
		}
		line = r.rawBuffer
	}
	if len(line) > 0 && err == io.EOF {
		err = nil
	} else if err == nil {
		line = trimEOL(line)
	}
	if err == nil {
		r.NumLine++
	}
	return line, err
}

func trimEOL(line []byte) []byte {
	n := len(line)
	if n >= 2 && line[n-2] == '\r' && line[n-1] == '\n' {
		return line[:n-2]
	}
	if n >= 1 && line[n-1] == '\n' {
		return line[:n-1]
	}
	return line
}

// isSpace matches the separators of a whitespace split on decoded text:
// unicode.IsSpace plus the ASCII file, group, record and unit separators.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// FirstField returns the first field of l split on Unicode whitespace, or
// nil if l is blank.
func FirstField(l []byte) []byte {
	start := bytes.IndexFunc(l, func(r rune) bool { return !isSpace(r) })
	if start < 0 {
		return nil
	}
	l = l[start:]
	if end := bytes.IndexFunc(l, isSpace); end >= 0 {
		return l[:end]
	}
	return l
}

// IsEmptyLine reports whether l holds nothing but whitespace.
func IsEmptyLine(l []byte) bool {
	return bytes.IndexFunc(l, func(r rune) bool { return !isSpace(r) }) < 0
}
