package dictionary

import "sort"

// Cap is the maximum number of tokens kept for a dictionary. The zero value
// means unlimited.
type Cap struct {
	limit int
}

var Unlimited = Cap{}

// Limit returns a cap of n tokens. Values below one are unlimited.
func Limit(n int) Cap {
	if n <= 0 {
		return Unlimited
	}
	return Cap{limit: n}
}

func (c Cap) IsUnlimited() bool {
	return c.limit <= 0
}

// Value returns the limit and whether there is one.
func (c Cap) Value() (int, bool) {
	return c.limit, !c.IsUnlimited()
}

func (c Cap) apply(n int) int {
	if c.IsUnlimited() || n <= c.limit {
		return n
	}
	return c.limit
}

// DictionarySet maps every recognized dictionary name to its cap.
type DictionarySet map[string]Cap

func (ds DictionarySet) Contains(name string) bool {
	_, ok := ds[name]
	return ok
}

// Cap returns the cap of name. Unknown names are unlimited.
func (ds DictionarySet) Cap(name string) Cap {
	return ds[name]
}

// Names returns the dictionary names in lexicographic order.
func (ds DictionarySet) Names() []string {
	names := make([]string, 0, len(ds))
	for name := range ds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
