package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLists(t *testing.T, sources map[string]string) *FrequencyLists {
	t.Helper()
	fls := NewFrequencyLists()
	for name, content := range sources {
		fl, err := ReadFrequencyList(name, strings.NewReader(content))
		require.NoError(t, err)
		require.NoError(t, fls.Put(fl))
	}
	return fls
}

func filteredMap(lists []FilteredList) map[string][]string {
	m := make(map[string][]string, len(lists))
	for _, l := range lists {
		m[l.Name] = l.Tokens
	}
	return m
}

func TestFilterOwnershipAndCap(t *testing.T) {
	fls := buildLists(t, map[string]string{
		"A": "x\na\nb\n",
		"B": "a\n",
	})
	dicts := DictionarySet{"A": Limit(2), "B": Unlimited}

	got := FilterFrequencyLists(fls, dicts)
	assert.Equal(t, map[string][]string{
		"A": {"x", "b"},
		"B": {"a"},
	}, filteredMap(got))
	assert.Equal(t, []string{"A", "B"}, Names(got))
	assert.Equal(t, 1, got[0].Stats.OwnedElsewhere)
	assert.Equal(t, 2, got[0].Stats.Kept())
}

func TestFilterCapTruncates(t *testing.T) {
	fls := buildLists(t, map[string]string{
		"surnames":   "smith\njones\nwilliams\nbrown\n",
		"male_names": "james\njohn\nrobert\nmichael\n",
	})
	dicts := DictionarySet{"surnames": Limit(2), "male_names": Unlimited}

	got := filteredMap(FilterFrequencyLists(fls, dicts))
	assert.Equal(t, []string{"smith", "jones"}, got["surnames"])
	assert.Equal(t, []string{"james", "john", "robert", "michael"}, got["male_names"])
}

func TestFilterUnsafeChars(t *testing.T) {
	fls := buildLists(t, map[string]string{
		"english_wikipedia": "the\nps8,000\nsay\"hi\"\nof\n",
	})
	got := FilterFrequencyLists(fls, DictionarySet{"english_wikipedia": Unlimited})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"the", "of"}, got[0].Tokens)
	assert.Equal(t, 2, got[0].Stats.UnsafeChar)
	for _, token := range got[0].Tokens {
		assert.False(t, strings.ContainsAny(token, ",\""))
	}
}

func TestFilterRareAndShort(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 120; i++ {
		switch i {
		case 9:
			b.WriteString("q\n")
		case 10:
			b.WriteString("z\n")
		case 100:
			b.WriteString("zz\n")
		default:
			b.WriteString("word" + strings.Repeat("x", i) + "\n")
		}
	}
	fls := buildLists(t, map[string]string{"passwords": b.String()})
	got := FilterFrequencyLists(fls, DictionarySet{"passwords": Unlimited})
	require.Len(t, got, 1)

	assert.Contains(t, got[0].Tokens, "q")
	assert.NotContains(t, got[0].Tokens, "z")
	assert.NotContains(t, got[0].Tokens, "zz")
	assert.Equal(t, 2, got[0].Stats.RareAndShort)
	assert.Len(t, got[0].Tokens, 118)
}

func TestIsRareAndShort(t *testing.T) {
	assert.False(t, IsRareAndShort("a", 9))
	assert.True(t, IsRareAndShort("a", 10))
	assert.False(t, IsRareAndShort("ab", 99))
	assert.True(t, IsRareAndShort("ab", 100))
	assert.False(t, IsRareAndShort("é", 9), "length is counted in characters")
	assert.True(t, IsRareAndShort("é", 10))
	assert.False(t, IsRareAndShort(strings.Repeat("x", 40), 1<<62))
}

func TestFilterOrderNonDecreasingRank(t *testing.T) {
	fls := buildLists(t, map[string]string{
		"us_tv_and_film":    "you\ni\nthe\nto\nokay\nhello\n",
		"english_wikipedia": "the\nof\nand\nhello\nokay\n",
	})
	dicts := DictionarySet{"us_tv_and_film": Unlimited, "english_wikipedia": Unlimited}
	got := FilterFrequencyLists(fls, dicts)

	owners := ResolveOwners(fls)
	for _, l := range got {
		prev := 0
		for _, token := range l.Tokens {
			o := owners[token]
			assert.Equal(t, l.Name, o.Name, token)
			assert.GreaterOrEqual(t, o.Rank, prev)
			prev = o.Rank
		}
	}

	m := filteredMap(got)
	assert.Equal(t, []string{"the", "of", "and", "hello", "okay"}, m["english_wikipedia"])
	assert.Equal(t, []string{"you", "i", "to"}, m["us_tv_and_film"])
}

func TestFilterTokenInExactlyOneDictionary(t *testing.T) {
	fls := buildLists(t, map[string]string{
		"passwords":    "dragon\nmonkey\nsmith\n",
		"surnames":     "smith\njohnson\nmonkey\n",
		"female_names": "mary\nsmith\n",
	})
	dicts := DictionarySet{"passwords": Unlimited, "surnames": Unlimited, "female_names": Unlimited}
	got := FilterFrequencyLists(fls, dicts)

	seen := map[string]string{}
	for _, l := range got {
		for _, token := range l.Tokens {
			prev, dup := seen[token]
			assert.False(t, dup, "%s in both %s and %s", token, prev, l.Name)
			seen[token] = l.Name
		}
	}
	assert.Equal(t, "surnames", seen["smith"])
	assert.Equal(t, "passwords", seen["monkey"])
}

func TestFilterEqualRankTieBreak(t *testing.T) {
	fls := buildLists(t, map[string]string{
		"surnames":   "jordan\n",
		"male_names": "jordan\n",
	})
	dicts := DictionarySet{"surnames": Unlimited, "male_names": Unlimited}
	got := filteredMap(FilterFrequencyLists(fls, dicts))

	assert.Equal(t, []string{"jordan"}, got["male_names"], "lexicographically first name wins a tie")
	assert.Empty(t, got["surnames"])
}
