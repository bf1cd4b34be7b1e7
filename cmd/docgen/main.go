// docgen generates the same documentation the makedocs command
// produces, written to disk instead of delivered over Discord. Useful
// for publishing docs from CI without a live session.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	_ "github.com/LeDeathAmongst/vrt-cogs/internal/commands"

	"github.com/LeDeathAmongst/vrt-cogs/internal/core"
	"github.com/LeDeathAmongst/vrt-cogs/internal/docs"
)

type flags struct {
	cogName        string
	outDir         string
	prefix         string
	botName        string
	replaceBotName bool
	extendedInfo   bool
	includeHidden  bool
	includeHelp    bool
	maxLevel       string
	minLevel       string
	csvExport      bool
}

func main() {
	var f flags

	root := &cobra.Command{
		Use:           "docgen",
		Short:         "Generate cog documentation to disk",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	root.Flags().StringVar(&f.cogName, "cog", "all", "cog to document, or 'all'")
	root.Flags().StringVar(&f.outDir, "out", "CogDocs", "output directory")
	root.Flags().StringVar(&f.prefix, "prefix", "", "substitute [p] with this prefix")
	root.Flags().StringVar(&f.botName, "botname", "", "substitute [botname] with this name")
	root.Flags().BoolVar(&f.replaceBotName, "replace-botname", false, "enable [botname] substitution")
	root.Flags().BoolVar(&f.extendedInfo, "extended-info", false, "include parameter documentation")
	root.Flags().BoolVar(&f.includeHidden, "include-hidden", false, "include hidden commands")
	root.Flags().BoolVar(&f.includeHelp, "include-help", true, "include cog help text")
	root.Flags().StringVar(&f.maxLevel, "max-level", "botowner", "hide commands above this privilege level")
	root.Flags().StringVar(&f.minLevel, "min-level", "user", "hide commands below this privilege level")
	root.Flags().BoolVar(&f.csvExport, "csv", false, "also write csv exports")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "docgen:", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	maxTier, err := docs.ParseTier(f.maxLevel)
	if err != nil {
		return err
	}
	minTier, err := docs.ParseTier(f.minLevel)
	if err != nil {
		return err
	}
	band := docs.Band{Min: minTier, Max: maxTier}
	if !band.Valid() {
		return fmt.Errorf("min level %s is above max level %s", minTier, maxTier)
	}

	opts := docs.AssembleOptions{
		Prefix:         f.prefix,
		BotName:        f.botName,
		ReplaceBotName: f.replaceBotName,
		ExtendedInfo:   f.extendedInfo,
		IncludeHidden:  f.includeHidden,
		IncludeHelp:    f.includeHelp,
	}

	packager := docs.NewPackager(core.BuildCogs(), docs.DefaultIgnored)

	if f.cogName == "all" {
		arc, names, err := packager.BuildAll(opts, band, f.csvExport)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(f.outDir, 0755); err != nil {
			return err
		}
		path := filepath.Join(f.outDir, arc.Name)
		if err := os.WriteFile(path, arc.Data, 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d cogs)\n", path, len(names))
		return nil
	}

	artifacts, err := packager.BuildCog(f.cogName, opts, band, f.csvExport)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, docs.Artifact{
		Name: "index.rst",
		Data: []byte(docs.GenerateIndex([]string{f.cogName})),
	})

	for _, a := range artifacts {
		path := filepath.Join(f.outDir, a.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, a.Data, 0644); err != nil {
			return err
		}
		fmt.Println("wrote", path)
	}
	return nil
}
