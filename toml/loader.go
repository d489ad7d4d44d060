// Package toml loads command-line defaults from TOML configuration files.
package toml

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// Loader is a kong.ConfigurationLoader for TOML files.
//
// Keys match flag names written in snake_case or kebab-case. Flags of a
// subcommand may also be set in a table named after the command, which takes
// precedence over top-level keys:
//
//	db = "soundboard.db"
//
//	[sync]
//	end_page = 20
//	delay = "500ms"
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if table, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookup(table, flag.Name); ok {
					return v, nil
				}
			}
		}
		if v, ok := lookup(values, flag.Name); ok {
			return v, nil
		}
		return nil, nil
	}
	return f, nil
}

func lookup(values map[string]any, name string) (any, bool) {
	if v, ok := values[strings.ReplaceAll(name, "-", "_")]; ok {
		return v, true
	}
	v, ok := values[name]
	return v, ok
}
