package breakpoint

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

const (
	// DefaultRCFile pdb启动时读取的配置文件
	DefaultRCFile = "~/.pdbrc"
)

// Exporter 将断点写入pdb的run-control文件
type Exporter struct {
	Fs   afero.Fs
	Path string // 支持~开头的路径
}

// NewExporter creates an exporter writing to path on the OS filesystem.
func NewExporter(path string) *Exporter {
	if path == "" {
		path = DefaultRCFile
	}
	return &Exporter{
		Fs:   afero.NewOsFs(),
		Path: path,
	}
}

// Render 生成run-control文件内容，每个断点一行，末尾带换行
func Render(bps Breakpoints) []byte {
	return []byte(strings.Join(bps.Commands(), "\n") + "\n")
}

// Export 覆盖写run-control文件，返回写入的断点数量
//
// An empty set still writes a file holding a single newline.
func (e *Exporter) Export(bps Breakpoints) (int, error) {
	path, err := homedir.Expand(e.Path)
	if err != nil {
		return 0, fmt.Errorf("expand %s: %w", e.Path, err)
	}
	if err = afero.WriteFile(e.Fs, path, Render(bps), 0644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(bps), nil
}

// Status returns the message shown to the user after writing n breakpoints.
func (e *Exporter) Status(n int) string {
	if n == 0 {
		return fmt.Sprintf("No breakpoints on %s", e.Path)
	}
	return fmt.Sprintf("Saved %d breakpoints to %s", n, e.Path)
}
