// Package catalogs embeds the goal catalogs that ship with speedbingo.
package catalogs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var files embed.FS

// DefaultName is the catalog used when none is configured.
const DefaultName = "sample"

// Names lists the embedded catalogs without their extension.
func Names() []string {
	entries, _ := fs.ReadDir(files, ".")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Read returns the raw JSON document of an embedded catalog.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name + ".json")
	if err != nil {
		return nil, fmt.Errorf("no embedded catalog %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return data, nil
}
