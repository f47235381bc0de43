package style

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

const (
	// MaxStyleFileSize is the maximum allowed size for a style file (64KB).
	// A style file is a handful of short lists; anything larger is rejected.
	MaxStyleFileSize = 64 * 1024

	// SupportedVersion is the currently supported style file format version.
	SupportedVersion = 1
)

// ErrNotRegularFile is returned when the style file path names something
// other than a regular file (symlink, FIFO, device, directory).
var ErrNotRegularFile = errors.New("not a regular file")

// File represents the structure of a YAML style file.
//
// Example:
//
//	version: 1
//	styles:
//	  error: [red, bold]
//	  warning: [yellow]
//	  box: [cyan, underline]
type File struct {
	// Version is the style file format version. Currently only version 1
	// is supported.
	Version int `yaml:"version"`

	// Styles maps a class name (error, warning, font_warning, box, source,
	// rule, header, passthrough) to a list of attribute names from the
	// fixed attribute table.
	Styles map[string][]string `yaml:"styles"`
}

// ConfigError reports a problem with a single style entry.
type ConfigError struct {
	ClassName string
	Message   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("style %q: %s", e.ClassName, e.Message)
}

// Load reads and parses a style file from the given path.
//
// The file must be a regular file no larger than MaxStyleFileSize; FIFOs,
// devices and symlinked specials are rejected before reading.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening style file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating style file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("opening style file: %w", ErrNotRegularFile)
	}
	if info.Size() > MaxStyleFileSize {
		return nil, fmt.Errorf("style file too large: %d bytes (max %d)", info.Size(), MaxStyleFileSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxStyleFileSize))
	if err != nil {
		return nil, fmt.Errorf("reading style file: %w", err)
	}

	var sf File
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing style file: %w", err)
	}
	if sf.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported style file version %d (want %d)", sf.Version, SupportedVersion)
	}
	return &sf, nil
}

// Palette builds a palette from the file, starting from Default and
// overriding the listed classes. An empty attribute list clears the class.
func (f *File) Palette() (*Palette, error) {
	p := Default()
	for name, attrs := range f.Styles {
		class, ok := classNames[name]
		if !ok {
			return nil, &ConfigError{ClassName: name, Message: "unknown class"}
		}
		if len(attrs) == 0 {
			p.Set(class, nil)
			continue
		}
		list := make([]color.Attribute, 0, len(attrs))
		for _, a := range attrs {
			attr, ok := attrNames[a]
			if !ok {
				return nil, &ConfigError{ClassName: name, Message: fmt.Sprintf("unknown attribute %q", a)}
			}
			list = append(list, attr)
		}
		p.Set(class, color.New(list...))
	}
	return p, nil
}

// LoadPalette loads a style file and builds its palette in one step.
func LoadPalette(path string) (*Palette, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return f.Palette()
}
