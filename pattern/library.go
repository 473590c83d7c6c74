package pattern

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed assets/*.rle
var assets embed.FS

const assetDir = "assets"

// Names lists the built-in patterns, sorted.
func Names() []string {
	entries, err := assets.ReadDir(assetDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".rle"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Lookup parses a built-in pattern by name. Names are case-insensitive and
// accept '_' or ' ' in place of '-'.
func Lookup(name string) (*Pattern, error) {
	key := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(name)))
	data, err := assets.ReadFile(path.Join(assetDir, key+".rle"))
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownPattern, "[pattern.Lookup] %q", name)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "[pattern.Lookup] built-in %q", key)
	}
	return p, nil
}
