package artifact

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/msnoigrs/gofreqlist/dictionary"
)

// ErrDuplicateTag is returned when two dictionary names map to one tag.
var ErrDuplicateTag = errors.New("dictionary names collide as tags")

const declarationTemplate = `#ifndef __ZXCVBN___FREQUENCY_LISTS_HPP
#define __ZXCVBN___FREQUENCY_LISTS_HPP

#include <zxcvbn/frequency_lists_common.hpp>

#include <initializer_list>
#include <unordered_map>

namespace zxcvbn {

namespace _frequency_lists {

enum class DictionaryTag {
  %s
};

std::unordered_map<DictionaryTag, RankedDict> & get_default_ranked_dicts();

}

}

#endif
`

func emitDeclaration(w *bufio.Writer, scriptName string, lists []dictionary.FilteredList) error {
	tags, err := tagNames(lists)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "// generated by %s\n", scriptName); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, declarationTemplate, strings.Join(tags, ",\n  "))
	return err
}

func tagNames(lists []dictionary.FilteredList) ([]string, error) {
	tags := dictionary.TagNames(dictionary.Names(lists))
	seen := make(map[string]string, len(tags))
	for i, tag := range tags {
		name := dictionary.UserInputsTagName
		if i < len(lists) {
			name = lists[i].Name
		}
		if prev, ok := seen[tag]; ok {
			return nil, errors.Wrapf(ErrDuplicateTag, "%s: %s and %s", tag, prev, name)
		}
		seen[tag] = name
	}
	return tags, nil
}
