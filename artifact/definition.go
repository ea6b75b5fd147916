package artifact

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/msnoigrs/gofreqlist/dictionary"
)

const definitionHeader = `#include <zxcvbn/_frequency_lists.hpp>
#include <zxcvbn/frequency_lists_common.hpp>

#include <array>
#include <cstddef>
#include <mutex>
#include <stdexcept>
#include <string>
#include <type_traits>
#include <unordered_map>

namespace zxcvbn {

namespace _frequency_lists {

struct FreqList {
  const char *words;
  std::size_t len;
};

// The table length comes from the literal itself, not from a terminator.
#define FREQ_LIST(s) FreqList{s, sizeof(s) - 1}

`

const (
	freqListsOpen  = "FREQ_LISTS = {{"
	freqListsClose = "}};"
	freqListOpen   = "FREQ_LIST("
)

const definitionRuntime = `
#undef FREQ_LIST

class WordIterator {
  const char *_words;
  const char *_end;
  std::string _cur;

  std::size_t _get_len() const {
    if (_words == _end) return 0;
    auto len = static_cast<unsigned char>(_words[0]);
    if (static_cast<std::size_t>(_end - _words) - 1 < len) {
      throw std::out_of_range("frequency list record runs past the table");
    }
    return len;
  }

  std::string _get_cur() const {
    auto len = _get_len();
    if (!len) return std::string();
    return std::string(&_words[1], &_words[1 + len]);
  }

public:
  WordIterator(const char *words, const char *end) :
    _words(words), _end(end), _cur(_get_cur()) {}

  std::string & operator *() {
    return _cur;
  }

  const std::string & operator *() const {
    return _cur;
  }

  WordIterator & operator++() {
    _words += 1 + _get_len();
    _cur = _get_cur();
    return *this;
  }

  bool operator==(const WordIterator & rhs) const {
    return rhs._words == _words;
  }

  bool operator!=(const WordIterator & rhs) const {
    return rhs._words != _words;
  }
};

class WordIterable {
  const char *_words;
  const std::size_t _len;

public:
  WordIterable(const char *words, std::size_t len)
    : _words(words), _len(len) {}

  WordIterator begin() const {
    return WordIterator(_words, _words + _len);
  }

  WordIterator end() const {
    return WordIterator(_words + _len, _words + _len);
  }
};

static
std::unordered_map<DictionaryTag, RankedDict> build_static_ranked_dicts() {
  std::unordered_map<DictionaryTag, RankedDict> toret;
  std::underlying_type_t<DictionaryTag> tag_idx = 0;
  for (const auto & freq_list : FREQ_LISTS) {
    toret.insert(std::make_pair(static_cast<DictionaryTag>(tag_idx),
                                build_ranked_dict(WordIterable(freq_list.words, freq_list.len))));
    tag_idx += 1;
  }
  return toret;
}

static std::once_flag _ranked_dicts_once;
static std::unordered_map<DictionaryTag, RankedDict> *_ranked_dicts = nullptr;

std::unordered_map<DictionaryTag, RankedDict> & get_default_ranked_dicts() {
  std::call_once(_ranked_dicts_once, [] {
    _ranked_dicts = new std::unordered_map<DictionaryTag, RankedDict>(build_static_ranked_dicts());
  });
  return *_ranked_dicts;
}

}

}
`

func emitDefinition(w *bufio.Writer, scriptName string, lists []dictionary.FilteredList) error {
	literals := make([]string, len(lists))
	for i, l := range lists {
		table, err := dictionary.EncodeWordTable(l.Tokens)
		if err != nil {
			return errors.Wrapf(err, "dictionary %s", l.Name)
		}
		literals[i], err = tableLiteral(table, "    ")
		if err != nil {
			return errors.Wrapf(err, "dictionary %s", l.Name)
		}
	}

	if _, err := fmt.Fprintf(w, "// generated by %s\n", scriptName); err != nil {
		return err
	}
	if _, err := w.WriteString(definitionHeader); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "static const std::array<FreqList, %d> %s\n", len(lists), freqListsOpen); err != nil {
		return err
	}
	for i, l := range lists {
		if _, err := fmt.Fprintf(w, "  // %s\n  %s\n%s),\n", l.Name, freqListOpen, literals[i]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s\n", freqListsClose); err != nil {
		return err
	}
	_, err := w.WriteString(definitionRuntime)
	return err
}

// Table is one packed word table read back from a definition artifact.
type Table struct {
	Name  string
	Words []byte
}

// ReadDefinition extracts the packed word tables, in tag order, from the
// source of a definition artifact.
func ReadDefinition(src []byte) ([]Table, error) {
	start := bytes.Index(src, []byte(freqListsOpen))
	if start < 0 {
		return nil, errors.Wrapf(ErrMalformedLiteral, "%s not found", freqListsOpen)
	}
	rest := src[start+len(freqListsOpen):]

	var tables []Table
	var name string
	for {
		rest = bytes.TrimLeft(rest, " \t\r\n")
		switch {
		case bytes.HasPrefix(rest, []byte(freqListsClose)):
			return tables, nil
		case bytes.HasPrefix(rest, []byte("//")):
			eol := bytes.IndexByte(rest, '\n')
			if eol < 0 {
				return nil, errors.Wrapf(ErrMalformedLiteral, "unterminated comment")
			}
			name = string(bytes.TrimSpace(rest[2:eol]))
			rest = rest[eol+1:]
		case bytes.HasPrefix(rest, []byte(freqListOpen)):
			words, after, err := unquoteAdjacent(rest[len(freqListOpen):])
			if err != nil {
				return nil, errors.Wrapf(err, "table %d", len(tables))
			}
			if len(after) == 0 || after[0] != ')' {
				return nil, errors.Wrapf(ErrMalformedLiteral, "table %d: expected ')'", len(tables))
			}
			rest = bytes.TrimPrefix(after[1:], []byte(","))
			tables = append(tables, Table{Name: name, Words: words})
			name = ""
		default:
			return nil, errors.Wrapf(ErrMalformedLiteral, "unexpected input after table %d", len(tables))
		}
	}
}
