package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/gogfx/hellotriangle/glfwcontext"
	"github.com/gogfx/hellotriangle/graphics"
	"github.com/gogfx/hellotriangle/options"
	"github.com/gogfx/hellotriangle/renderer"
	"github.com/gogfx/hellotriangle/shader"
)

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	opts := options.Default()
	opts.VertexShaderSource = shader.VertexSource
	opts.FragmentShaderSource = shader.FragmentSource

	var configPath string
	var verbose bool
	flag.StringVar(&configPath, "config", "", "path to a TOML config file")
	flag.IntVar(&opts.Width, "width", opts.Width, "window width in pixels")
	flag.IntVar(&opts.Height, "height", opts.Height, "window height in pixels")
	flag.StringVar(&opts.Title, "title", opts.Title, "window title")
	flag.BoolVar(&opts.VSync, "vsync", opts.VSync, "synchronize buffer swaps with the display refresh")
	flag.BoolVar(&opts.Record, "record", false, "render offscreen and encode to a video file instead of opening a window")
	flag.Float64Var(&opts.Duration, "duration", opts.Duration, "seconds to record")
	flag.IntVar(&opts.FPS, "fps", opts.FPS, "frames per second when recording")
	flag.StringVar(&opts.OutputFile, "output", opts.OutputFile, "output file name when recording")
	flag.StringVar(&opts.FFMPEGPath, "ffmpeg", "", "path to the ffmpeg executable")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if configPath != "" {
		// Values given on the command line win over the file.
		fromFlags := *opts
		if err := options.LoadFile(configPath, opts); err != nil {
			log.Error("failed to load config", "err", err)
			os.Exit(1)
		}
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "width":
				opts.Width = fromFlags.Width
			case "height":
				opts.Height = fromFlags.Height
			case "title":
				opts.Title = fromFlags.Title
			case "vsync":
				opts.VSync = fromFlags.VSync
			case "duration":
				opts.Duration = fromFlags.Duration
			case "fps":
				opts.FPS = fromFlags.FPS
			case "output":
				opts.OutputFile = fromFlags.OutputFile
			}
		})
	}
	if err := opts.Validate(); err != nil {
		log.Error("invalid options", "err", err)
		os.Exit(1)
	}

	if err := glfwcontext.Init(); err != nil {
		log.Error("failed to initialize glfw", "err", err)
		os.Exit(-1)
	}

	ctx, err := glfwcontext.New(opts, !opts.Record)
	if err != nil {
		log.Error("failed to create a glfw window, exiting", "err", err)
		glfwcontext.Terminate()
		os.Exit(-1)
	}

	r, err := renderer.New(ctx, graphics.GL33{}, opts)
	if err != nil {
		log.Error("failed to initialize OpenGL", "err", err)
		ctx.Shutdown()
		glfwcontext.Terminate()
		os.Exit(-1)
	}
	ctx.SetVSync(opts.VSync)
	r.Setup()

	if opts.Record {
		err := r.RunOffscreen()
		r.Shutdown()
		glfwcontext.Terminate()
		if err != nil {
			log.Error("recording failed", "err", err)
			os.Exit(1)
		}
		log.Info("wrote recording", "output", opts.OutputFile)
		return
	}

	r.Run()
	r.Shutdown()
	glfwcontext.Terminate()
}
