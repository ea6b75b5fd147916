package artifact

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMalformedLiteral is returned when a definition artifact cannot be read
// back.
var ErrMalformedLiteral = errors.New("malformed string literal")

const literalWidth = 76

// escapeByte appends the C string literal form of c. Everything outside
// printable ASCII becomes a three digit octal escape, so the next byte can
// never extend it. '?' is escaped to keep trigraphs out.
func escapeByte(dst []byte, c byte) []byte {
	switch {
	case c == '\\':
		return append(dst, '\\', '\\')
	case c == '"':
		return append(dst, '\\', '"')
	case c == '?':
		return append(dst, '\\', '?')
	case c >= 0x20 && c < 0x7f:
		return append(dst, c)
	}
	return appendOctal(dst, c)
}

func appendOctal(dst []byte, c byte) []byte {
	return append(dst, '\\', '0'+(c>>6), '0'+((c>>3)&7), '0'+(c&7))
}

// tableLiteral renders one packed word table as adjacent C string literals,
// one or more records per line, each line prefixed by indent.
func tableLiteral(table []byte, indent string) (string, error) {
	var b strings.Builder
	line := make([]byte, 0, literalWidth*2)
	flush := func() {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteByte('"')
		b.Write(line)
		b.WriteByte('"')
		line = line[:0]
	}

	for off := 0; off < len(table); {
		n := int(table[off])
		if off+1+n > len(table) {
			return "", errors.Wrapf(ErrMalformedLiteral, "record at offset %d runs past the table", off)
		}
		record := appendOctal(nil, table[off])
		for _, c := range table[off+1 : off+1+n] {
			record = escapeByte(record, c)
		}
		if len(line) > 0 && len(line)+len(record) > literalWidth {
			flush()
		}
		line = append(line, record...)
		off += 1 + n
	}
	if len(line) > 0 || b.Len() == 0 {
		flush()
	}
	return b.String(), nil
}

// unquote decodes the C string literal starting at src[0] == '"' and returns
// the bytes and the remaining input.
func unquote(src []byte) ([]byte, []byte, error) {
	if len(src) == 0 || src[0] != '"' {
		return nil, src, errors.Wrapf(ErrMalformedLiteral, "expected '\"'")
	}
	var out []byte
	i := 1
	for i < len(src) {
		c := src[i]
		switch c {
		case '"':
			return out, src[i+1:], nil
		case '\n':
			return nil, src, errors.Wrapf(ErrMalformedLiteral, "newline in literal")
		case '\\':
			i++
			if i >= len(src) {
				return nil, src, errors.Wrapf(ErrMalformedLiteral, "dangling escape")
			}
			e := src[i]
			switch {
			case e >= '0' && e <= '7':
				v := 0
				j := 0
				for ; j < 3 && i+j < len(src) && src[i+j] >= '0' && src[i+j] <= '7'; j++ {
					v = v*8 + int(src[i+j]-'0')
				}
				if v > 0xff {
					return nil, src, errors.Wrapf(ErrMalformedLiteral, "octal escape out of range")
				}
				out = append(out, byte(v))
				i += j
				continue
			case e == '\\' || e == '"' || e == '?' || e == '\'':
				out = append(out, e)
			case e == 'n':
				out = append(out, '\n')
			case e == 't':
				out = append(out, '\t')
			default:
				return nil, src, errors.Wrapf(ErrMalformedLiteral, "unsupported escape \\%c", e)
			}
			i++
		default:
			out = append(out, c)
			i++
		}
	}
	return nil, src, errors.Wrapf(ErrMalformedLiteral, "unterminated literal")
}

// unquoteAdjacent decodes a run of adjacent string literals separated by
// whitespace, as the compiler concatenates them.
func unquoteAdjacent(src []byte) ([]byte, []byte, error) {
	var out []byte
	rest := bytes.TrimLeft(src, " \t\r\n")
	if len(rest) == 0 || rest[0] != '"' {
		return nil, src, errors.Wrapf(ErrMalformedLiteral, "expected string literal")
	}
	for len(rest) > 0 && rest[0] == '"' {
		part, after, err := unquote(rest)
		if err != nil {
			return nil, src, err
		}
		out = append(out, part...)
		rest = bytes.TrimLeft(after, " \t\r\n")
	}
	if out == nil {
		out = []byte{}
	}
	return out, rest, nil
}
