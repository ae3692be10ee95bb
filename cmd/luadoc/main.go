package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachacious/go-luadoc/internal/diagnostic"
)

// These variables are set at build time by the Makefile's ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "luadoc",
		Short: "luadoc extracts documentation from Lua doc comments.",
		Long: `luadoc reads the --[=[ ]=] and --- doc comments of a Lua or Luau project,
parses their @tags and writes one structured document describing every
documented class, function and type. It is configured through a .luadoc.yaml
or luadoc.toml file in the project root.`,
		SilenceUsage: true,
	}

	extractCmd := &cobra.Command{
		Use:   "extract [path]",
		Short: "Extract documentation and write it to the output file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.color = !opts.noColor && diagnostic.ShouldColor(os.Stderr)
			return runExtract(cmd.Context(), projectArg(args), opts, cmd.Flags().Changed, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	extractCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default from config, docs.json)")
	extractCmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json, yaml or msgpack")

	checkCmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Report documentation problems without writing anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.color = !opts.noColor && diagnostic.ShouldColor(os.Stderr)
			return runCheck(cmd.Context(), projectArg(args), opts, cmd.Flags().Changed, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of luadoc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "luadoc version %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built at: %s\n", date)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.within, "within", "", "Scope for entries with no @within tag and no owning table")
	pf.IntVar(&opts.workers, "workers", 0, "Files read in parallel (0 means one per CPU)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored diagnostics")

	rootCmd.AddCommand(extractCmd, checkCmd, versionCmd)
	return rootCmd
}

func projectArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
