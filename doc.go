/*
Package pyramid renders a single rotating pyramid: checker-textured faces
with a color-gradient wireframe on top, viewed by a camera that orbits the
origin under keyboard control.

# Overview

The package holds everything that does not need a GPU. Mesh data, the
checker bitmap, camera controls, the model/view/projection math and the
frame loop are plain Go and are tested without a window. The
backend/opengl package supplies the GLFW window and the OpenGL 3.3 core
renderer that the loop drives through the Window and Renderer interfaces.

# Quick Start

	cfg := pyramid.DefaultConfig()

	window, err := opengl.NewWindow(cfg)
	if err != nil {
	    return err
	}
	defer window.Destroy()

	renderer := opengl.NewRenderer(pyramid.Pyramid(), pyramid.NewChecker(4, 4), cfg, logger)

	loop := pyramid.NewLoop(window, renderer, pyramid.WithConfig(cfg))
	loop.Run()

# Frame

Each Loop.Step, while the window is not closing:

  - delta time is taken from the window clock
  - held keys move the camera (Camera.Update)
  - color and depth are cleared
  - the model matrix rotates by elapsed × SpinSpeed about SpinAxis
  - the view matrix looks from the orbit position at the origin
  - faces are drawn, then edges
  - buffers are swapped and events polled

Once the close flag is seen the loop is in StateClosing and never draws
again. Run then releases the renderer.

# Keyboard

	A / Left      orbit left   (-OrbitSpeed rad/s)
	D / Right     orbit right  (+OrbitSpeed rad/s)
	W / Up        zoom in      (radius -ZoomSpeed/s, min MinRadius)
	S / Down      zoom out     (radius +ZoomSpeed/s, max MaxRadius)
	Escape        quit

Keys are level-triggered: holding one applies every frame, scaled by delta
time. Held keys for different actions combine in the same frame.
*/
package pyramid
