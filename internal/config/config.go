// Package config holds the jsontree CLI's flag-derived settings, read
// with github.com/spf13/pflag per SPEC_FULL.md §4 ("Config"). The engine
// itself takes no persisted configuration (spec.md §6); these are purely
// driver-layer display/behavior knobs.
package config

import "github.com/spf13/pflag"

// Config is the set of flags shared across jsontree subcommands.
type Config struct {
	// Indent is currently fixed at writer.indentStep (2 spaces); the
	// flag is accepted for forward compatibility but only 2 is
	// supported today.
	Indent int
	// StrictDuplicates, when set, makes `find`/`parse` warn on duplicate
	// object keys instead of silently preserving them.
	StrictDuplicates bool
	// MaxDepth overrides the parser's nesting guard (parser.Options.MaxDepth)
	// for CLI-driven parses, and also bounds how deep `parse`'s tree
	// summary descends; zero means "use the package default" for both.
	MaxDepth int
	Debug    bool
}

// RegisterFlags binds fs to a new Config.
func RegisterFlags(fs *pflag.FlagSet) *Config {
	c := &Config{}
	fs.IntVar(&c.Indent, "indent", 2, "indentation width in spaces")
	fs.BoolVar(&c.StrictDuplicates, "strict-duplicates", false, "warn on duplicate object keys")
	fs.IntVar(&c.MaxDepth, "max-depth", 0, "override maximum nesting depth (0 = package default)")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	return c
}
