// Package dictionary turns per-category frequency files into ranked,
// deduplicated word lists and defines the packed word table read back by the
// runtime ranked dictionaries.
package dictionary

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/msnoigrs/gofreqlist/internal/lnreader"
	"github.com/msnoigrs/gofreqlist/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FrequencyList is one loaded source: token to rank, in load order.
type FrequencyList struct {
	Name  string
	Path  string
	ranks *linkedhashmap.Map
}

func NewFrequencyList(name string) *FrequencyList {
	return &FrequencyList{
		Name:  name,
		ranks: linkedhashmap.New(),
	}
}

// Add records token at rank. A token already present is ErrDuplicateToken.
func (fl *FrequencyList) Add(token string, rank int) error {
	if v, ok := fl.ranks.Get(token); ok {
		first, _ := v.(int)
		return errors.Wrapf(ErrDuplicateToken, "%q at line %d, first seen at line %d", token, rank, first)
	}
	fl.ranks.Put(token, rank)
	return nil
}

func (fl *FrequencyList) Rank(token string) (int, bool) {
	v, ok := fl.ranks.Get(token)
	if !ok {
		return 0, false
	}
	rank, _ := v.(int)
	return rank, true
}

func (fl *FrequencyList) Size() int {
	return fl.ranks.Size()
}

// Each calls f for every token in load order.
func (fl *FrequencyList) Each(f func(token string, rank int)) {
	it := fl.ranks.Iterator()
	for it.Next() {
		token, _ := it.Key().(string)
		rank, _ := it.Value().(int)
		f(token, rank)
	}
}

// ReadFrequencyList reads rows from r. The first field of each row is the
// token and the 1-based line number is its rank. Blank rows are skipped but
// still count as a line.
func ReadFrequencyList(name string, r io.Reader) (*FrequencyList, error) {
	fl := NewFrequencyList(name)
	lr := lnreader.NewLineNumberReader(r)
	for {
		line, err := lr.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "at line %d", lr.NumLine+1)
		}
		if lnreader.IsEmptyLine(line) {
			continue
		}
		if err := fl.Add(string(lnreader.FirstField(line)), lr.NumLine); err != nil {
			return nil, err
		}
	}
	return fl, nil
}

// FrequencyLists holds the loaded sources keyed by dictionary name. Iteration
// is in lexicographic name order.
type FrequencyLists struct {
	lists *treemap.Map
}

func NewFrequencyLists() *FrequencyLists {
	return &FrequencyLists{
		lists: treemap.NewWithStringComparator(),
	}
}

func (fls *FrequencyLists) Put(fl *FrequencyList) error {
	if prev, ok := fls.Get(fl.Name); ok {
		return errors.Wrapf(ErrDuplicateSource, "%s: %s and %s", fl.Name, prev.Path, fl.Path)
	}
	fls.lists.Put(fl.Name, fl)
	return nil
}

func (fls *FrequencyLists) Get(name string) (*FrequencyList, bool) {
	v, ok := fls.lists.Get(name)
	if !ok {
		return nil, false
	}
	fl, _ := v.(*FrequencyList)
	return fl, true
}

func (fls *FrequencyLists) Size() int {
	return fls.lists.Size()
}

func (fls *FrequencyLists) Names() []string {
	names := make([]string, 0, fls.lists.Size())
	for _, k := range fls.lists.Keys() {
		name, _ := k.(string)
		names = append(names, name)
	}
	return names
}

func (fls *FrequencyLists) Each(f func(fl *FrequencyList)) {
	it := fls.lists.Iterator()
	for it.Next() {
		fl, _ := it.Value().(*FrequencyList)
		f(fl)
	}
}

// SplitExt splits filename into stem and extension the way the data
// directory is named: the extension starts at the last dot, and leading dots
// never start one.
func SplitExt(filename string) (string, string) {
	i := strings.LastIndexByte(filename, '.')
	if i <= 0 || strings.Trim(filename[:i], ".") == "" {
		return filename, ""
	}
	return filename[:i], filename[i:]
}

// ParseFrequencyLists loads one frequency file per recognized dictionary name
// from dataDir. Unrecognized files and recognized names without a file are
// logged as warnings and excluded.
func ParseFrequencyLists(dataDir string, dictionaries DictionarySet, log *zap.Logger) (*FrequencyLists, error) {
	log = logger.OrNop(log)

	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, errors.Wrapf(err, "read data directory %s", dataDir)
	}

	p := message.NewPrinter(language.English)
	fls := NewFrequencyLists()
	for _, entry := range entries {
		if entry.IsDir() {
			log.Debug("skipping directory", zap.String("path", filepath.Join(dataDir, entry.Name())))
			continue
		}
		name, _ := SplitExt(entry.Name())
		if !dictionaries.Contains(name) {
			log.Warn("frequency list appears in data directory but not in dictionary settings, excluding",
				zap.String("name", name),
				zap.String("dir", dataDir),
			)
			continue
		}

		path := filepath.Join(dataDir, entry.Name())
		fl, err := readFrequencyFile(name, path)
		if err != nil {
			return nil, err
		}
		if err := fls.Put(fl); err != nil {
			return nil, err
		}
		log.Info("loaded frequency list",
			zap.String("name", name),
			zap.String("tokens", p.Sprintf("%d", fl.Size())),
		)
	}

	for _, name := range dictionaries.Names() {
		if _, ok := fls.Get(name); !ok {
			log.Warn("dictionary appears in settings but not in data directory, excluding",
				zap.String("name", name),
				zap.String("dir", dataDir),
			)
		}
	}
	return fls, nil
}

func readFrequencyFile(name string, path string) (*FrequencyList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open frequency list")
	}
	defer f.Close()

	fl, err := ReadFrequencyList(name, f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	fl.Path = path
	return fl, nil
}
