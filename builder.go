// Package gofreqlist builds zxcvbn's ranked frequency lists from raw word
// frequency data.
//
// If a token appears in multiple frequency lists, it is only kept in the
// dictionary where it has the lowest rank. Short tokens are dropped when they
// are rare: a token whose rank is at least 10^len(token) would be guessed
// faster by bruteforce. Each dictionary is cut off at its configured cap.
package gofreqlist

import (
	"bytes"

	"github.com/dustin/go-humanize"
	"github.com/msnoigrs/gofreqlist/artifact"
	"github.com/msnoigrs/gofreqlist/dictionary"
	"github.com/msnoigrs/gofreqlist/internal/fileutil"
	"github.com/msnoigrs/gofreqlist/internal/logger"
	"go.uber.org/zap"
)

const DefaultScriptName = "buildfreqlists"

type Builder struct {
	Settings   *Settings
	Logger     *zap.Logger
	ScriptName string
}

func NewBuilder(settings *Settings, log *zap.Logger) *Builder {
	if settings == nil {
		settings = DefaultSettings()
	}
	return &Builder{
		Settings:   settings,
		Logger:     logger.OrNop(log),
		ScriptName: DefaultScriptName,
	}
}

// Filter loads dataDir and returns the filtered dictionaries in tag order.
func (b *Builder) Filter(dataDir string) ([]dictionary.FilteredList, error) {
	lists, err := dictionary.ParseFrequencyLists(dataDir, b.Settings.Dictionaries, b.Logger)
	if err != nil {
		return nil, err
	}
	filtered := dictionary.FilterFrequencyLists(lists, b.Settings.Dictionaries)
	for _, l := range filtered {
		b.Logger.Debug("filtered frequency list",
			zap.String("name", l.Name),
			zap.Int("loaded", l.Stats.Loaded),
			zap.Int("owned_elsewhere", l.Stats.OwnedElsewhere),
			zap.Int("rare_and_short", l.Stats.RareAndShort),
			zap.Int("unsafe_char", l.Stats.UnsafeChar),
			zap.Int("truncated", l.Stats.Truncated),
			zap.Int("kept", l.Stats.Kept()),
		)
	}
	return filtered, nil
}

// Render serializes lists in the format chosen by the extension of
// outputPath.
func (b *Builder) Render(outputPath string, lists []dictionary.FilteredList) ([]byte, error) {
	var buf bytes.Buffer
	if err := artifact.Emit(&buf, artifact.KindForPath(outputPath), b.ScriptName, lists); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Build runs the whole pipeline and replaces outputPath only when every
// step succeeded.
func (b *Builder) Build(dataDir string, outputPath string) error {
	lists, err := b.Filter(dataDir)
	if err != nil {
		return err
	}
	data, err := b.Render(outputPath, lists)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(outputPath, data, 0o644); err != nil {
		return err
	}

	tokens := 0
	for _, l := range lists {
		tokens += len(l.Tokens)
	}
	b.Logger.Info("wrote frequency lists",
		zap.String("path", outputPath),
		zap.Stringer("format", artifact.KindForPath(outputPath)),
		zap.Int("dictionaries", len(lists)),
		zap.Int("tokens", tokens),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
	)
	return nil
}
