package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/hubastard/canopy/engine/assets"
	"github.com/hubastard/canopy/engine/core"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/platform"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type App struct {
	shaders fs.FS
	title   string
	overlay *LayerOverlay
}

func (a *App) OnStart(e *core.Engine) error {
	var err error
	a.overlay, err = newLayerOverlay(e, a.shaders)
	if err != nil {
		return err
	}
	e.PushLayer(a.overlay)
	e.PushLayer(&LayerStats{ov: a.overlay.ov, title: a.title})
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnShutdown(e *core.Engine)              {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "overlaydemo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("overlaydemo", pflag.ContinueOnError)
	cfgPath := flags.StringP("config", "c", "canopy.toml", "TOML config file")
	width := flags.Int("width", 0, "window width in pixels")
	height := flags.Int("height", 0, "window height in pixels")
	vsync := flags.Bool("vsync", true, "wait for vertical sync")
	level := flags.String("log-level", "", "log level (debug, info, warn, error)")
	dev := flags.Bool("dev", false, "human readable development logging")
	shaderDir := flags.String("shaders", "", "load shaders from this directory instead of the built-in set")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := core.LoadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if flags.Changed("width") {
		cfg.Width = *width
	}
	if flags.Changed("height") {
		cfg.Height = *height
	}
	if flags.Changed("vsync") {
		cfg.VSync = *vsync
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = *level
	}
	if flags.Changed("dev") {
		cfg.Development = *dev
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer log.Sync()

	app := &App{shaders: assets.Shaders, title: cfg.Title}
	if *shaderDir != "" {
		app.shaders = assets.ShadersFrom(*shaderDir)
	}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, log)
		win = w
		return w, err
	}
	newRenderer := func(w core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(w, cfg, log)
	}

	err = core.Run(app, cfg, log, newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Error("run failed", zap.Error(err))
	}
	return err
}
