package gofreqlist

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/msnoigrs/gofreqlist/dictionary"
	"github.com/pelletier/go-toml/v2"
)

// Settings controls which frequency data is included and how many tokens
// each dictionary keeps at most.
type Settings struct {
	Dictionaries dictionary.DictionarySet
}

func NewSettings() *Settings {
	return &Settings{
		Dictionaries: dictionary.DictionarySet{},
	}
}

// DefaultSettings returns the dictionary table of the stock word lists.
func DefaultSettings() *Settings {
	return &Settings{
		Dictionaries: dictionary.DictionarySet{
			"us_tv_and_film":    dictionary.Limit(30000),
			"english_wikipedia": dictionary.Limit(30000),
			"passwords":         dictionary.Limit(30000),
			"surnames":          dictionary.Limit(10000),
			"male_names":        dictionary.Unlimited,
			"female_names":      dictionary.Unlimited,
		},
	}
}

// ParseSettingsJSON reads
//
//	{"dictionaries": {"passwords": 30000, "male_names": null}}
//
// where null or a value below one means unlimited.
func (settings *Settings) ParseSettingsJSON(reader io.Reader) error {
	internal := &struct {
		Dictionaries *map[string]*int
	}{}

	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(internal)
	if err != nil {
		return errors.Wrap(err, "parse settings")
	}
	if internal.Dictionaries == nil {
		return errors.New("settings: dictionaries is missing")
	}
	for name, limit := range *internal.Dictionaries {
		if limit == nil {
			settings.Dictionaries[name] = dictionary.Unlimited
		} else {
			settings.Dictionaries[name] = dictionary.Limit(*limit)
		}
	}
	return settings.validate()
}

// ParseSettingsTOML reads a [dictionaries] table of name = cap, where a cap
// below one means unlimited.
func (settings *Settings) ParseSettingsTOML(reader io.Reader) error {
	internal := &struct {
		Dictionaries *map[string]int `toml:"dictionaries"`
	}{}

	decoder := toml.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(internal)
	if err != nil {
		return errors.Wrap(err, "parse settings")
	}
	if internal.Dictionaries == nil {
		return errors.New("settings: [dictionaries] is missing")
	}
	for name, limit := range *internal.Dictionaries {
		settings.Dictionaries[name] = dictionary.Limit(limit)
	}
	return settings.validate()
}

func (settings *Settings) validate() error {
	if len(settings.Dictionaries) == 0 {
		return errors.New("settings: no dictionaries configured")
	}
	for name := range settings.Dictionaries {
		if strings.TrimSpace(name) == "" {
			return errors.New("settings: empty dictionary name")
		}
	}
	return nil
}

// ReadSettingsFile loads settings from path, TOML for a .toml extension and
// JSON otherwise.
func ReadSettingsFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	settings := NewSettings()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = settings.ParseSettingsTOML(f)
	} else {
		err = settings.ParseSettingsJSON(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return settings, nil
}
