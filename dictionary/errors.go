package dictionary

import "github.com/cockroachdb/errors"

var (
	// ErrDuplicateToken is returned when a token occurs twice in one source.
	ErrDuplicateToken = errors.New("same token occurs multiple times in a frequency list")
	// ErrDuplicateSource is returned when two files map to one dictionary name.
	ErrDuplicateSource = errors.New("dictionary has more than one source file")
	// ErrTokenTooLong is returned when a token cannot be length-prefixed by one byte.
	ErrTokenTooLong = errors.New("token is too long")
	// ErrTruncatedTable is returned when a length byte claims more bytes than remain.
	ErrTruncatedTable = errors.New("word table is truncated")
	ErrEndOfTable     = errors.New("word iterator is at the end of the table")
)
