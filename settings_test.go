package gofreqlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msnoigrs/gofreqlist/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsJSON = `
{
  "dictionaries": {
    "passwords": 30000,
    "surnames": 10000,
    "male_names": null,
    "female_names": 0
  }
}
`

var settingsTOML = `
[dictionaries]
passwords = 30000
surnames = 10000
male_names = 0
`

func TestSettings_ParseSettingsJSON(t *testing.T) {
	settings := NewSettings()
	require.NoError(t, settings.ParseSettingsJSON(strings.NewReader(settingsJSON)))

	assert.Equal(t, []string{"female_names", "male_names", "passwords", "surnames"}, settings.Dictionaries.Names())
	limit, ok := settings.Dictionaries.Cap("passwords").Value()
	assert.True(t, ok)
	assert.Equal(t, 30000, limit)
	assert.True(t, settings.Dictionaries.Cap("male_names").IsUnlimited())
	assert.True(t, settings.Dictionaries.Cap("female_names").IsUnlimited())
}

func TestSettings_ParseSettingsTOML(t *testing.T) {
	settings := NewSettings()
	require.NoError(t, settings.ParseSettingsTOML(strings.NewReader(settingsTOML)))

	assert.Equal(t, dictionary.Limit(10000), settings.Dictionaries.Cap("surnames"))
	assert.True(t, settings.Dictionaries.Cap("male_names").IsUnlimited())
	assert.False(t, settings.Dictionaries.Contains("female_names"))
}

func TestSettings_Invalid(t *testing.T) {
	assert.Error(t, NewSettings().ParseSettingsJSON(strings.NewReader(`{"dictionaries": {}}`)))
	assert.Error(t, NewSettings().ParseSettingsJSON(strings.NewReader(`{"dicts": {"a": 1}}`)))
	assert.Error(t, NewSettings().ParseSettingsJSON(strings.NewReader(`{}`)))
	assert.Error(t, NewSettings().ParseSettingsTOML(strings.NewReader("[dictionaries]\n\"\" = 3\n")))
	assert.Error(t, NewSettings().ParseSettingsTOML(strings.NewReader("passwords = 3\n")))
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Len(t, settings.Dictionaries, 6)
	assert.Equal(t, dictionary.Limit(30000), settings.Dictionaries.Cap("us_tv_and_film"))
	assert.True(t, settings.Dictionaries.Cap("female_names").IsUnlimited())
}

func TestReadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "freqlists.toml")
	jsonPath := filepath.Join(dir, "freqlists.json")
	require.NoError(t, os.WriteFile(tomlPath, []byte(settingsTOML), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(settingsJSON), 0o644))

	fromTOML, err := ReadSettingsFile(tomlPath)
	require.NoError(t, err)
	assert.Len(t, fromTOML.Dictionaries, 3)

	fromJSON, err := ReadSettingsFile(jsonPath)
	require.NoError(t, err)
	assert.Len(t, fromJSON.Dictionaries, 4)

	_, err = ReadSettingsFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
