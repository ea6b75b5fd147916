package dictionary

import (
	"github.com/cockroachdb/errors"
)

// MaxWordLength is the longest token a one-byte length prefix can carry.
const MaxWordLength = 255

// AppendWord appends one record, a length byte followed by the token bytes.
func AppendWord(table []byte, token string) ([]byte, error) {
	if len(token) > MaxWordLength {
		return table, errors.Wrapf(ErrTokenTooLong, "%d bytes, maximum is %d: %.32q...", len(token), MaxWordLength, token)
	}
	table = append(table, byte(len(token)))
	return append(table, token...), nil
}

// EncodeWordTable packs tokens into a word table in order. There is no
// terminator record; the table length marks the end.
func EncodeWordTable(tokens []string) ([]byte, error) {
	size := len(tokens)
	for _, token := range tokens {
		size += len(token)
	}
	table := make([]byte, 0, size)
	var err error
	for _, token := range tokens {
		table, err = AppendWord(table, token)
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}

// WordIterable is a sequence view over one packed word table.
type WordIterable struct {
	table []byte
}

func NewWordIterable(table []byte) WordIterable {
	return WordIterable{table: table}
}

func (wi WordIterable) Begin() WordIterator {
	return WordIterator{table: wi.table}
}

// End is positioned at the table length.
func (wi WordIterable) End() WordIterator {
	return WordIterator{table: wi.table, offset: len(wi.table)}
}

// Len returns the table size in bytes.
func (wi WordIterable) Len() int {
	return len(wi.table)
}

// Each calls f with every word in order. It stops at the first decoding
// error or when f returns false.
func (wi WordIterable) Each(f func(word string) bool) error {
	end := wi.End()
	for it := wi.Begin(); !it.Equal(end); {
		word, err := it.Word()
		if err != nil {
			return err
		}
		if !f(word) {
			return nil
		}
		if err := it.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Words decodes the whole table.
func (wi WordIterable) Words() ([]string, error) {
	var words []string
	err := wi.Each(func(word string) bool {
		words = append(words, word)
		return true
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// WordIterator is a byte offset into a word table.
type WordIterator struct {
	table  []byte
	offset int
}

func (it WordIterator) Offset() int {
	return it.offset
}

// Equal reports whether both iterators are at the same offset.
func (it WordIterator) Equal(other WordIterator) bool {
	return it.offset == other.offset
}

func (it WordIterator) recordLen() (int, error) {
	if it.offset >= len(it.table) {
		return 0, errors.Wrapf(ErrEndOfTable, "offset %d", it.offset)
	}
	n := int(it.table[it.offset])
	if rest := len(it.table) - it.offset - 1; n > rest {
		return 0, errors.Wrapf(ErrTruncatedTable, "record at offset %d claims %d bytes, %d remain", it.offset, n, rest)
	}
	return n, nil
}

// Word decodes the record at the current offset. A zero length byte is an
// empty word.
func (it WordIterator) Word() (string, error) {
	n, err := it.recordLen()
	if err != nil {
		return "", err
	}
	start := it.offset + 1
	return string(it.table[start : start+n]), nil
}

// Next moves past the current record.
func (it *WordIterator) Next() error {
	n, err := it.recordLen()
	if err != nil {
		return err
	}
	it.offset += 1 + n
	return nil
}
