package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cps "github.com/tylerjw/cps-config"
	"github.com/tylerjw/cps-config/printer"
)

var (
	cflags          bool
	cflagsOnlyI     bool
	cflagsOnlyOther bool
)

var rootCmd = &cobra.Command{
	Use:           "cps-config",
	Short:         "Query CPS package descriptions in pkg-config style",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var pkgconfCmd = &cobra.Command{
	Use:   "pkgconf <cps-file>",
	Short: "Print compiler flags for a CPS document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pkg, err := cps.Load(args[0])
		if err != nil {
			return err
		}

		conf := printer.DefaultConfig()
		// --cflags is the default output and only kept for pkg-config
		// familiarity; the -only variants narrow it.
		if cflagsOnlyI {
			conf.CFlags = false
			conf.Defines = false
		}
		if cflagsOnlyOther {
			conf.Includes = false
		}

		fmt.Fprint(cmd.OutOrStdout(), printer.Pkgconf(pkg, conf))
		return nil
	},
}

func init() {
	pkgconfCmd.Flags().BoolVar(&cflags, "cflags", false, "print all compile flags (default)")
	pkgconfCmd.Flags().BoolVar(&cflagsOnlyI, "cflags-only-I", false, "print only include flags")
	pkgconfCmd.Flags().BoolVar(&cflagsOnlyOther, "cflags-only-other", false, "print flags other than include flags")
	rootCmd.AddCommand(pkgconfCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
