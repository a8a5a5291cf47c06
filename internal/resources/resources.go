package resources

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/firefly-engineering/berth-ctl/internal/system"
)

// HelperWAR is the logical path of the administrative helper deployable
// scheduled into every bootstrapped domain.
const HelperWAR = "berth-cpc.war"

//go:embed files
var embedded embed.FS

var root = mustSub(embedded, "files")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Read returns the contents of the resource at logicalPath.
func Read(logicalPath string) ([]byte, error) {
	if !fs.ValidPath(logicalPath) {
		return nil, fmt.Errorf("invalid resource path %q", logicalPath)
	}
	data, err := fs.ReadFile(root, logicalPath)
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", logicalPath, err)
	}
	return data, nil
}

// ReadText returns the resource at logicalPath as a string.
func ReadText(logicalPath string) (string, error) {
	data, err := Read(logicalPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Copy writes the resource at logicalPath to dest.
func Copy(fsys system.FileSystem, logicalPath, dest string) error {
	data, err := Read(logicalPath)
	if err != nil {
		return err
	}
	return fsys.WriteFile(dest, data, 0644)
}
