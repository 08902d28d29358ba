package scenario

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hay-kot/banners/pkg/ioyaml"
)

// Discover returns the scenario files in fsys matching pattern, which may
// use ** to match across directories. Paths are sorted.
func Discover(fsys fs.FS, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Load decodes the scenario at path in fsys. A scenario without a name is
// named after its path.
func Load(fsys fs.FS, path string) (Scenario, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sc, err := ioyaml.Decode[Scenario](f)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}
