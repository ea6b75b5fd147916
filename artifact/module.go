package artifact

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/msnoigrs/gofreqlist/dictionary"
)

// moduleEntry renders `name: "a,b,c".split(",")`. Tokens never contain a
// comma or a double quote, the filter drops those.
func moduleEntry(l dictionary.FilteredList) string {
	return fmt.Sprintf("%s: \"%s\".split(\",\")", l.Name, strings.Join(l.Tokens, ","))
}

func emitModule(w *bufio.Writer, scriptName string, lists []dictionary.FilteredList) error {
	lines := make([]string, 0, len(lists))
	for _, l := range lists {
		lines = append(lines, moduleEntry(l))
	}
	_, err := fmt.Fprintf(w, "# generated by %s\nfrequency_lists = \n  %s\nmodule.exports = frequency_lists\n",
		scriptName, strings.Join(lines, "\n  "))
	return err
}
