package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is where tuning files live relative to the working directory.
const Dir = "prefabs"

//go:embed *.yaml
var files embed.FS

// Load returns the tuning file called name. A copy under Dir wins over the
// one built into the binary so tuning can change without a rebuild. name may
// carry the Dir prefix.
func Load(name string) ([]byte, error) {
	rel := relName(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return files.ReadFile(rel)
}

func relName(name string) string {
	rel := path.Clean(filepath.ToSlash(name))
	return strings.TrimPrefix(rel, Dir+"/")
}
