package dictionary

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// FilterStats counts what happened to the tokens of one frequency list.
type FilterStats struct {
	Loaded         int
	OwnedElsewhere int
	RareAndShort   int
	UnsafeChar     int
	Truncated      int
}

// Kept is the number of tokens in the filtered dictionary.
func (s FilterStats) Kept() int {
	return s.Loaded - s.OwnedElsewhere - s.RareAndShort - s.UnsafeChar - s.Truncated
}

// FilteredList is a dictionary ready to be emitted: its tokens in ascending
// rank order, ranks dropped.
type FilteredList struct {
	Name   string
	Tokens []string
	Stats  FilterStats
}

type tokenRank struct {
	token string
	rank  int
}

// Owner is the dictionary holding a token at its globally minimum rank.
type Owner struct {
	Name string
	Rank int
}

// IsRareAndShort reports whether rank >= 10^len(token), with the length
// counted in characters. A bruteforce match would already guess such a
// token in fewer attempts than its rank.
func IsRareAndShort(token string, rank int) bool {
	threshold := 1
	for n := utf8.RuneCountInString(token); n > 0; n-- {
		if threshold > rank/10 {
			return false
		}
		threshold *= 10
	}
	return rank >= threshold
}

// HasUnsafeChar reports whether token contains a comma or a double quote,
// the delimiters of the module and definition formats.
func HasUnsafeChar(token string) bool {
	return strings.ContainsAny(token, ",\"")
}

// ResolveOwners maps every token to the dictionary where its rank is
// smallest. Lists are visited in name order and tokens in load order; on an
// equal rank the first owner seen keeps the token.
func ResolveOwners(lists *FrequencyLists) map[string]Owner {
	minimum := make(map[string]Owner)
	lists.Each(func(fl *FrequencyList) {
		fl.Each(func(token string, rank int) {
			o, ok := minimum[token]
			if !ok || rank < o.Rank {
				minimum[token] = Owner{Name: fl.Name, Rank: rank}
			}
		})
	})
	return minimum
}

// FilterFrequencyLists keeps every token only in its owning dictionary,
// drops rare-and-short tokens and tokens with unsafe characters, sorts by
// rank and truncates each dictionary to its cap. The result is ordered by
// dictionary name.
func FilterFrequencyLists(lists *FrequencyLists, dictionaries DictionarySet) []FilteredList {
	minimum := ResolveOwners(lists)

	result := make([]FilteredList, 0, lists.Size())
	lists.Each(func(fl *FrequencyList) {
		stats := FilterStats{Loaded: fl.Size()}
		pairs := make([]tokenRank, 0, fl.Size())
		fl.Each(func(token string, rank int) {
			switch {
			case minimum[token].Name != fl.Name:
				stats.OwnedElsewhere++
			case IsRareAndShort(token, rank):
				stats.RareAndShort++
			case HasUnsafeChar(token):
				stats.UnsafeChar++
			default:
				pairs = append(pairs, tokenRank{token: token, rank: rank})
			}
		})

		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].rank < pairs[j].rank
		})
		n := dictionaries.Cap(fl.Name).apply(len(pairs))
		stats.Truncated = len(pairs) - n

		tokens := make([]string, n)
		for i := range tokens {
			tokens[i] = pairs[i].token
		}
		result = append(result, FilteredList{
			Name:   fl.Name,
			Tokens: tokens,
			Stats:  stats,
		})
	})
	return result
}

// Names returns the dictionary names of lists in order.
func Names(lists []FilteredList) []string {
	names := make([]string, len(lists))
	for i, l := range lists {
		names[i] = l.Name
	}
	return names
}
