// Package printer projects a loaded CPS package into pkg-config compatible
// output. Rendering is a pure function of the Package and a Config; it cannot
// fail once given a valid Package.
package printer

import (
	"sort"
	"strings"

	cps "github.com/tylerjw/cps-config"
)

// Config gates which flag categories Pkgconf emits. The booleans affect
// rendering only, never loading.
type Config struct {
	CFlags   bool
	Defines  bool
	Includes bool
}

// DefaultConfig enables every category.
func DefaultConfig() Config {
	return Config{CFlags: true, Defines: true, Includes: true}
}

// Pkgconf renders the C compiler flags of pkg as a single pkg-config style
// line with a trailing newline. Components are the Default-Components when
// the document names them, otherwise all components in sorted name order.
// Compile flags are categorized by prefix: -D flags are defines, -I flags are
// includes, everything else is a plain cflag; Includes lang values are
// emitted as -I<path>. Each enabled category is emitted in order cflags,
// defines, includes, with duplicates removed.
func Pkgconf(pkg *cps.Package, conf Config) string {
	names := pkg.DefaultComponents
	if len(names) == 0 {
		names = make([]string, 0, len(pkg.Components))
		for name := range pkg.Components {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	var cflags, defines, includes []string
	for _, name := range names {
		comp, ok := pkg.Components[name]
		if !ok {
			// A Default-Components entry naming no component is a document
			// inconsistency the renderer is not allowed to fail on.
			continue
		}
		for _, f := range comp.CompileFlags.Get(cps.LangC) {
			switch {
			case strings.HasPrefix(f, "-D"):
				defines = append(defines, f)
			case strings.HasPrefix(f, "-I"):
				includes = append(includes, f)
			default:
				cflags = append(cflags, f)
			}
		}
		for _, dir := range comp.Includes.Get(cps.LangC) {
			includes = append(includes, "-I"+dir)
		}
	}

	var out []string
	if conf.CFlags {
		out = append(out, cflags...)
	}
	if conf.Defines {
		out = append(out, defines...)
	}
	if conf.Includes {
		out = append(out, includes...)
	}
	return strings.Join(dedup(out), " ") + "\n"
}

// dedup keeps the first occurrence of each flag, preserving order.
func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
