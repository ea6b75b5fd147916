package dictionary

import (
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// RankedDict maps a token to its 1-based rank. It is read-only once built.
type RankedDict struct {
	ranks map[string]int
}

func (rd RankedDict) Rank(token string) (int, bool) {
	rank, ok := rd.ranks[token]
	return rank, ok
}

func (rd RankedDict) Len() int {
	return len(rd.ranks)
}

// BuildRankedDict walks words and ranks each by its position + 1. A repeated
// word keeps its first rank.
func BuildRankedDict(words WordIterable) (RankedDict, error) {
	ranks := make(map[string]int)
	rank := 0
	err := words.Each(func(word string) bool {
		rank++
		if _, ok := ranks[word]; !ok {
			ranks[word] = rank
		}
		return true
	})
	if err != nil {
		return RankedDict{}, err
	}
	return RankedDict{ranks: ranks}, nil
}

// RankedDicts is the set of ranked dictionaries keyed by tag.
type RankedDicts struct {
	dicts map[Tag]RankedDict
}

func (r *RankedDicts) Get(tag Tag) (RankedDict, bool) {
	rd, ok := r.dicts[tag]
	return rd, ok
}

// Len returns the number of dictionaries, excluding the user input tag.
func (r *RankedDicts) Len() int {
	return len(r.dicts)
}

// Tags returns every dictionary tag in ascending order.
func (r *RankedDicts) Tags() []Tag {
	tags := make([]Tag, 0, len(r.dicts))
	for tag := 0; tag < len(r.dicts); tag++ {
		tags = append(tags, Tag(tag))
	}
	return tags
}

// BuildStaticRankedDicts builds one ranked dictionary per packed table. The
// table at index i gets tag i; the user input tag has no table.
func BuildStaticRankedDicts(tables [][]byte) (*RankedDicts, error) {
	dicts := make(map[Tag]RankedDict, len(tables))
	for i, table := range tables {
		rd, err := BuildRankedDict(NewWordIterable(table))
		if err != nil {
			return nil, errors.Wrapf(err, "tag %d", i)
		}
		dicts[Tag(i)] = rd
	}
	return &RankedDicts{dicts: dicts}, nil
}

// RankedDictCache builds its ranked dictionaries on first use, exactly once,
// and hands the same instance to every later caller.
type RankedDictCache struct {
	tables [][]byte
	once   sync.Once
	dicts  *RankedDicts
	err    error
}

func NewRankedDictCache(tables [][]byte) *RankedDictCache {
	return &RankedDictCache{tables: tables}
}

// Get is safe for concurrent use. A build error is returned to every caller.
func (c *RankedDictCache) Get() (*RankedDicts, error) {
	c.once.Do(func() {
		c.dicts, c.err = BuildStaticRankedDicts(c.tables)
		c.tables = nil
	})
	return c.dicts, c.err
}

var (
	ErrNoDefaultFreqLists = errors.New("default frequency lists are not registered")

	defaultCache atomic.Pointer[RankedDictCache]
)

// SetDefaultFreqLists registers the packed tables behind
// DefaultRankedDicts. Only the first registration takes effect; it reports
// whether this call was it.
func SetDefaultFreqLists(tables [][]byte) bool {
	return defaultCache.CompareAndSwap(nil, NewRankedDictCache(tables))
}

// DefaultRankedDicts returns the process-wide ranked dictionaries, building
// them on first access.
func DefaultRankedDicts() (*RankedDicts, error) {
	c := defaultCache.Load()
	if c == nil {
		return nil, ErrNoDefaultFreqLists
	}
	return c.Get()
}
