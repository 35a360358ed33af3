package options

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Options carries everything the setup phase needs: window geometry, the
// shader sources, the clear color, and the record-mode settings. Shader
// sources travel here as explicit parameters rather than living as package
// constants next to the renderer.
type Options struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	ClearColor [4]float32

	VertexShaderSource   string
	FragmentShaderSource string

	// Record mode.
	Record     bool
	Duration   float64
	FPS        int
	OutputFile string
	FFMPEGPath string
}

// Default returns the options the original tutorial program hard-codes.
// Shader sources are left empty; the caller decides which pipeline to build.
func Default() *Options {
	return &Options{
		Width:      800,
		Height:     600,
		Title:      "gl",
		ClearColor: [4]float32{0.11, 0.11, 0.11, 1.0},
		Duration:   10.0,
		FPS:        60,
		OutputFile: "output.mp4",
	}
}

// Validate rejects option combinations the window and encoder layers cannot
// serve.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.Record {
		if o.FPS <= 0 {
			return fmt.Errorf("record fps must be positive, got %d", o.FPS)
		}
		if o.Duration <= 0 {
			return fmt.Errorf("record duration must be positive, got %g", o.Duration)
		}
		if o.OutputFile == "" {
			return fmt.Errorf("record mode needs an output file")
		}
	}
	return nil
}

// fileOptions mirrors the TOML config layout. Pointer fields distinguish
// "absent" from zero so a partial file only overrides what it names.
type fileOptions struct {
	Window struct {
		Width  *int    `toml:"width"`
		Height *int    `toml:"height"`
		Title  *string `toml:"title"`
		VSync  *bool   `toml:"vsync"`
	} `toml:"window"`
	Render struct {
		ClearColor []float32 `toml:"clear_color"`
	} `toml:"render"`
	Record struct {
		Duration *float64 `toml:"duration"`
		FPS      *int     `toml:"fps"`
		Output   *string  `toml:"output"`
	} `toml:"record"`
}

// LoadFile overlays the TOML config at path onto o. Fields the file does not
// mention keep their current values.
func LoadFile(path string, o *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var f fileOptions
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if f.Window.Width != nil {
		o.Width = *f.Window.Width
	}
	if f.Window.Height != nil {
		o.Height = *f.Window.Height
	}
	if f.Window.Title != nil {
		o.Title = *f.Window.Title
	}
	if f.Window.VSync != nil {
		o.VSync = *f.Window.VSync
	}
	if f.Render.ClearColor != nil {
		if len(f.Render.ClearColor) != 4 {
			return fmt.Errorf("render.clear_color needs 4 components, got %d", len(f.Render.ClearColor))
		}
		copy(o.ClearColor[:], f.Render.ClearColor)
	}
	if f.Record.Duration != nil {
		o.Duration = *f.Record.Duration
	}
	if f.Record.FPS != nil {
		o.FPS = *f.Record.FPS
	}
	if f.Record.Output != nil {
		o.OutputFile = *f.Record.Output
	}
	return nil
}
