// Package pdburger keeps per-buffer breakpoints and mirrors them into the pdb
// run-control file whenever a buffer is saved or loaded.
package pdburger

import (
	"fmt"

	"github.com/hitzhangjie/pdburger/pkg/breakpoint"
)

const (
	// StatusKey 状态栏信息使用的key
	StatusKey = "pdburger"
)

// View is a host editor buffer as seen by the user commands.
type View interface {
	breakpoint.View

	Selections() []breakpoint.Region
	IsDirty() bool
	SetStatus(key, msg string)
	ShowAt(r breakpoint.Region)
}

// Options 插件配置
type Options struct {
	RCFile       string            // pdb run-control文件，默认~/.pdbrc
	ExportOnLoad bool              // buffer加载时是否导出
	Marker       breakpoint.Marker // 断点标记样式
}

// Plugin holds all process-wide state: one breakpoint manager per buffer and
// the exporter writing the run-control file. It is created once at startup
// and passed to every command.
type Plugin struct {
	registry     *breakpoint.Registry
	exporter     *breakpoint.Exporter
	exportOnLoad bool
}

// New creates a plugin with an empty registry.
func New(opts Options) *Plugin {
	return NewWithExporter(opts, breakpoint.NewExporter(opts.RCFile))
}

// NewWithExporter is like New but writes through exporter.
func NewWithExporter(opts Options, exporter *breakpoint.Exporter) *Plugin {
	marker := opts.Marker
	if marker == (breakpoint.Marker{}) {
		marker = breakpoint.DefaultMarker
	}
	return &Plugin{
		registry:     breakpoint.NewRegistry(marker),
		exporter:     exporter,
		exportOnLoad: opts.ExportOnLoad,
	}
}

// Registry returns the per-buffer managers.
func (p *Plugin) Registry() *breakpoint.Registry {
	return p.registry
}

// Exporter returns the run-control file writer.
func (p *Plugin) Exporter() *breakpoint.Exporter {
	return p.exporter
}

// Manager returns the breakpoint manager of view, creating it on first use.
func (p *Plugin) Manager(view View) *breakpoint.Manager {
	return p.registry.Manager(view)
}

// Export 将所有buffer中的断点写入run-control文件，并在view的状态栏显示结果
func (p *Plugin) Export(view View) (int, error) {
	n, err := p.exporter.Export(p.registry.Breakpoints())
	if err != nil {
		return 0, err
	}
	view.SetStatus(StatusKey, p.exporter.Status(n))
	return n, nil
}

// exportIfClean exports only when view has no unsaved changes: line numbers of
// a dirty buffer may not match the file pdb will read.
func (p *Plugin) exportIfClean(view View) error {
	if view.IsDirty() {
		return nil
	}
	_, err := p.Export(view)
	return err
}

// OnPostSave 文件保存后导出断点
func (p *Plugin) OnPostSave(view View) error {
	_, err := p.Export(view)
	return err
}

// OnLoad 文件加载后导出断点
func (p *Plugin) OnLoad(view View) error {
	if !p.exportOnLoad {
		return nil
	}
	_, err := p.Export(view)
	return err
}

// String returns the debug representation of every manager.
func (p *Plugin) String() string {
	return fmt.Sprintf("%v", p.registry.Managers())
}
