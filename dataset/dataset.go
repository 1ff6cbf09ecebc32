package dataset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/statkit/reglin/frame"
)

//go:embed data/*.csv
var embedded embed.FS

// ErrUnknownDataset is returned when no dataset exists under the
// requested name.
var ErrUnknownDataset = errors.New("dataset: unknown dataset")

// Names returns the bundled dataset names in sorted order.
func Names() []string {
	entries, err := embedded.ReadDir("data")
	if err != nil {
		// The embedded tree is fixed at build time.
		panic(fmt.Sprintf("dataset: read embedded data: %v", err))
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(names)

	return names
}

// Load parses a bundled dataset into a data frame.
func Load(name string) (*frame.Frame, error) {
	raw, err := embedded.ReadFile("data/" + name + ".csv")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (bundled: %s)",
			ErrUnknownDataset, name, strings.Join(Names(), ", "))
	}

	return frame.ReadCSV(bytes.NewReader(raw))
}
