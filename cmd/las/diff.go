package main

import (
	"fmt"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"github.com/spf13/cobra"

	"go.wellcurve.dev/las"
)

func newDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <before.las> <after.las>",
		Short: "Show a unified diff and a mnemonic-level summary between two LAS 2.0 files",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}

	return cmd
}

func runDiff(beforePath, afterPath string) error {
	beforeFile, beforeText, err := loadLAS(beforePath)
	if err != nil {
		return err
	}

	afterFile, afterText, err := loadLAS(afterPath)
	if err != nil {
		return err
	}

	if text := las.UnifiedDiff(beforePath, afterPath, beforeText, afterText); text != "" {
		fmt.Print(text)
	} else {
		fmt.Println("no textual differences")
	}

	bw, aw := beforeFile.Well, afterFile.Well
	printMnemonicDiff("Well",
		entryMap(bw.STRT, bw.STOP, bw.STEP, bw.NULL, bw.COMP, bw.WELL, bw.FLD, bw.LOC, bw.PROV, bw.CNTY,
			bw.STAT, bw.CTRY, bw.SRVC, bw.DATE, bw.UWI, bw.API, bw.Additional),
		entryMap(aw.STRT, aw.STOP, aw.STEP, aw.NULL, aw.COMP, aw.WELL, aw.FLD, aw.LOC, aw.PROV, aw.CNTY,
			aw.STAT, aw.CTRY, aw.SRVC, aw.DATE, aw.UWI, aw.API, aw.Additional))

	return nil
}

func loadLAS(path string) (*las.File, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("las diff: %w", err)
	}
	defer f.Close()

	sink := las.NewAstSink()
	if err := las.NewParser(f, sink).Parse(); err != nil {
		return nil, "", fmt.Errorf("las diff: %w", err)
	}

	file, err := sink.File()
	if err != nil {
		return nil, "", fmt.Errorf("las diff: %w", err)
	}

	text, err := file.LAS()
	if err != nil {
		return nil, "", fmt.Errorf("las diff: %w", err)
	}

	return file, text, nil
}

// entryMap preserves mnemonic insertion order so the diff summary reports
// additions, removals, and changes in the order the entries are passed.
// Nil *las.Entry values (absent optional mnemonics) are skipped.
func entryMap(entries ...any) *orderedmap.OrderedMap[string, string] {
	om := orderedmap.New[string, string]()

	for _, e := range entries {
		switch v := e.(type) {
		case las.Entry:
			om.Set(v.Line.Mnemonic, v.Line.Value.String())
		case *las.Entry:
			if v != nil {
				om.Set(v.Line.Mnemonic, v.Line.Value.String())
			}
		case []las.Entry:
			for _, entry := range v {
				om.Set(entry.Line.Mnemonic, entry.Line.Value.String())
			}
		}
	}

	return om
}

func printMnemonicDiff(section string, before, after *orderedmap.OrderedMap[string, string]) {
	var changed bool

	for pair := before.Oldest(); pair != nil; pair = pair.Next() {
		val, ok := after.Get(pair.Key)
		switch {
		case !ok:
			fmt.Printf("%s: -%s = %s\n", section, pair.Key, pair.Value)
			changed = true
		case val != pair.Value:
			fmt.Printf("%s: ~%s = %s -> %s\n", section, pair.Key, pair.Value, val)
			changed = true
		}
	}

	for pair := after.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := before.Get(pair.Key); !ok {
			fmt.Printf("%s: +%s = %s\n", section, pair.Key, pair.Value)
			changed = true
		}
	}

	if !changed {
		fmt.Printf("%s: no mnemonic-level differences\n", section)
	}
}
