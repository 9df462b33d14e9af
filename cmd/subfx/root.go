package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/subfx/config"
	"github.com/npillmayer/subfx/dom/htmldom"
	"github.com/spf13/cobra"
)

var traceKeys = []string{"subfx.effects", "subfx.dom", "subfx.presenter", "subfx.lint"}

var rootCmd = &cobra.Command{
	Use:   "subfx",
	Short: "subfx applies substep effects to HTML presentations",
	Long:  `subfx drives the substep effects engine over an impress.js style HTML document.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := tracing.LevelError
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = tracing.LevelDebug
		}
		for _, key := range traceKeys {
			tracing.Select(key).SetTraceLevel(level)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Trace engine events")
}

// load reads the configuration (if given) and the document named by path.
func load(cmd *cobra.Command, path string) (*htmldom.Document, config.Config, error) {
	conf := config.Default()
	if cpath, _ := cmd.Flags().GetString("config"); cpath != "" {
		var err error
		if conf, err = config.Load(cpath); err != nil {
			return nil, conf, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, conf, err
	}
	defer f.Close()
	doc, err := htmldom.Parse(f)
	if err != nil {
		return nil, conf, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, conf, nil
}
