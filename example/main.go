// Example renders a rotating, checker-textured pyramid with a color-gradient
// wireframe overlay.
//
// Requires cgo and the OpenGL/X11 development headers GLFW builds against.
//
//	go run ./example/
//
// Controls: A/D or Left/Right orbit the camera, W/S or Up/Down zoom,
// Escape quits.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/pyramid"
	"github.com/go-theft-auto/pyramid/backend/opengl"
)

const exitInitFailure = -1

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(exitInitFailure)
	}
}

func run(logger *slog.Logger) error {
	cfg := pyramid.DefaultConfig()

	window, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer := opengl.NewRenderer(pyramid.Pyramid(), pyramid.NewChecker(4, 4), cfg, logger)

	loop := pyramid.NewLoop(window, renderer,
		pyramid.WithConfig(cfg),
		pyramid.WithLogger(logger))
	loop.Run()

	return nil
}
