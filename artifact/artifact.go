// Package artifact serializes filtered dictionaries into the files consumed
// by the password strength estimator.
package artifact

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/msnoigrs/gofreqlist/dictionary"
)

// Kind selects the output format.
type Kind int

const (
	// KindModule is a CommonJS/CoffeeScript module with comma-joined lists.
	KindModule Kind = iota
	// KindDeclaration is the C++ header declaring the dictionary tags.
	KindDeclaration
	// KindDefinition is the C++ source embedding the packed word tables.
	KindDefinition
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindDeclaration:
		return "declaration"
	case KindDefinition:
		return "definition"
	}
	return "unknown"
}

// KindForPath picks the format from the output file extension: .cpp is the
// definition, .hpp the declaration, anything else the module format.
func KindForPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cpp":
		return KindDefinition
	case ".hpp":
		return KindDeclaration
	}
	return KindModule
}

type emitFunc func(w *bufio.Writer, scriptName string, lists []dictionary.FilteredList) error

var emitters = map[Kind]emitFunc{
	KindModule:      emitModule,
	KindDeclaration: emitDeclaration,
	KindDefinition:  emitDefinition,
}

// Emit writes lists to w in the given format. Dictionaries are emitted in
// slice order, which is also the tag order.
func Emit(w io.Writer, kind Kind, scriptName string, lists []dictionary.FilteredList) error {
	emit, ok := emitters[kind]
	if !ok {
		return errors.Newf("unknown artifact kind %d", int(kind))
	}
	bw := bufio.NewWriter(w)
	if err := emit(bw, scriptName, lists); err != nil {
		return err
	}
	return bw.Flush()
}
