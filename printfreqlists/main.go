package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/msnoigrs/gofreqlist/artifact"
	"github.com/msnoigrs/gofreqlist/dictionary"
	"github.com/msnoigrs/gofreqlist/internal/mmap"
	"github.com/spf13/cobra"
)

func readTables(path string) ([]artifact.Table, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	finfo, err := fd.Stat()
	if err != nil {
		return nil, err
	}

	bytebuffer, err := mmap.Map(fd, finfo.Size())
	if err != nil {
		return nil, err
	}
	defer mmap.Unmap(bytebuffer)

	tables, err := artifact.ReadDefinition(bytebuffer)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return tables, nil
}

func printSummary(w io.Writer, tables []artifact.Table, dicts *dictionary.RankedDicts) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Tag", "Name", "Identifier", "Words", "Size"})
	for _, tag := range dicts.Tags() {
		rd, _ := dicts.Get(tag)
		t := tables[tag]
		tw.AppendRow(table.Row{int(tag), t.Name, dictionary.TagName(t.Name), rd.Len(), humanize.Bytes(uint64(len(t.Words)))})
	}
	user := dictionary.UserInputsTag(dicts.Len())
	tw.AppendRow(table.Row{int(user), "", dictionary.UserInputsTagName, "-", "-"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	tw.Render()
}

func printWords(w io.Writer, t artifact.Table, rd dictionary.RankedDict) error {
	return dictionary.NewWordIterable(t.Words).Each(func(word string) bool {
		rank, _ := rd.Rank(word)
		fmt.Fprintf(w, "%d\t%s\n", rank, word)
		return true
	})
}

func findTag(tables []artifact.Table, name string, tag int) (dictionary.Tag, error) {
	if name == "" {
		if tag < 0 || tag >= len(tables) {
			return 0, errors.Newf("tag %d out of range [0, %d)", tag, len(tables))
		}
		return dictionary.Tag(tag), nil
	}
	for i, t := range tables {
		if t.Name == name || dictionary.TagName(t.Name) == name {
			return dictionary.Tag(i), nil
		}
	}
	return 0, errors.Newf("no dictionary named %s", name)
}

func newRootCommand() *cobra.Command {
	var (
		name string
		tag  int
	)

	cmd := &cobra.Command{
		Use:           "printfreqlists [--name NAME | --tag N] file.cpp",
		Short:         "Print the ranked dictionaries embedded in a generated .cpp file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := readTables(args[0])
			if err != nil {
				return err
			}

			raw := make([][]byte, len(tables))
			for i, t := range tables {
				raw[i] = t.Words
			}
			// One artifact per process: a later registration is ignored.
			dictionary.SetDefaultFreqLists(raw)
			dicts, err := dictionary.DefaultRankedDicts()
			if err != nil {
				return err
			}

			if name == "" && !cmd.Flags().Changed("tag") {
				printSummary(cmd.OutOrStdout(), tables, dicts)
				return nil
			}
			selected, err := findTag(tables, name, tag)
			if err != nil {
				return err
			}
			rd, _ := dicts.Get(selected)
			return printWords(cmd.OutOrStdout(), tables[selected], rd)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "print the words of the dictionary with this name or identifier")
	cmd.Flags().IntVarP(&tag, "tag", "t", 0, "print the words of the dictionary with this tag")
	cmd.MarkFlagsMutuallyExclusive("name", "tag")
	return cmd
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
