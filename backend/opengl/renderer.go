// Package opengl provides the OpenGL 3.3 core backend for the pyramid demo.
package opengl

import (
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/pyramid"
)

// Line pipeline: per-vertex color, interpolated along each edge.
const lineVertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 vColor;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
    vColor = aColor;
}
` + "\x00"

const lineFragmentShaderSource = `
#version 330 core
in vec3 vColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(vColor, 1.0);
}
` + "\x00"

// Face pipeline: samples the checker texture.
const texVertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 2) in vec2 aTexCoord;

out vec2 vTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
    vTexCoord = aTexCoord;
}
` + "\x00"

const texFragmentShaderSource = `
#version 330 core
in vec2 vTexCoord;

out vec4 FragColor;

uniform sampler2D uTexture;

void main() {
    FragColor = texture(uTexture, vTexCoord);
}
` + "\x00"

// ShaderLog is a compiler or linker diagnostic.
type ShaderLog struct {
	Program string // "line" or "texture"
	Stage   string // "vertex", "fragment" or "link"
	Log     string
}

// program is a linked pipeline and its matrix uniform slots.
type program struct {
	id                      uint32
	model, view, projection int32
}

// Renderer draws the textured pyramid and its wireframe.
type Renderer struct {
	logger *slog.Logger

	lineProgram program
	texProgram  program

	vao         uint32
	vbo         uint32
	triEBO      uint32
	lineEBO     uint32
	triCount    int32
	lineCount   int32
	checkerTex  uint32
	background  [3]float32
	diagnostics []ShaderLog
}

// NewRenderer builds both programs, uploads mesh and checker, and sets
// the projection and sampler uniforms once.
// A shader that fails to compile or link is logged and kept; rendering
// with it is undefined but does not stop the demo.
func NewRenderer(mesh *pyramid.Mesh, checker *pyramid.Checker, cfg pyramid.Config, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{
		logger:     logger,
		background: cfg.Background,
	}

	r.lineProgram = r.buildProgram("line", lineVertexShaderSource, lineFragmentShaderSource)
	r.texProgram = r.buildProgram("texture", texVertexShaderSource, texFragmentShaderSource)

	r.uploadMesh(mesh)
	r.checkerTex = uploadChecker(checker)

	projection := pyramid.Projection(cfg)

	gl.UseProgram(r.lineProgram.id)
	gl.UniformMatrix4fv(r.lineProgram.projection, 1, false, &projection[0])

	gl.UseProgram(r.texProgram.id)
	gl.UniformMatrix4fv(r.texProgram.projection, 1, false, &projection[0])
	gl.Uniform1i(gl.GetUniformLocation(r.texProgram.id, gl.Str("uTexture\x00")), 0)

	r.logger.Info("renderer ready",
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))

	return r
}

// Diagnostics returns every shader log recorded while building the programs.
func (r *Renderer) Diagnostics() []ShaderLog {
	return r.diagnostics
}

// Clear clears color and depth.
func (r *Renderer) Clear() {
	gl.ClearColor(r.background[0], r.background[1], r.background[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawFaces draws the six textured triangles.
func (r *Renderer) DrawFaces(model, view mgl32.Mat4) {
	gl.UseProgram(r.texProgram.id)
	gl.UniformMatrix4fv(r.texProgram.model, 1, false, &model[0])
	gl.UniformMatrix4fv(r.texProgram.view, 1, false, &view[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.checkerTex)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.triEBO)
	gl.DrawElements(gl.TRIANGLES, r.triCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// DrawEdges draws the eight color-gradient edges.
func (r *Renderer) DrawEdges(model, view mgl32.Mat4) {
	gl.UseProgram(r.lineProgram.id)
	gl.UniformMatrix4fv(r.lineProgram.model, 1, false, &model[0])
	gl.UniformMatrix4fv(r.lineProgram.view, 1, false, &view[0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.lineEBO)
	gl.DrawElements(gl.LINES, r.lineCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.triEBO != 0 {
		gl.DeleteBuffers(1, &r.triEBO)
	}
	if r.lineEBO != 0 {
		gl.DeleteBuffers(1, &r.lineEBO)
	}
	if r.lineProgram.id != 0 {
		gl.DeleteProgram(r.lineProgram.id)
	}
	if r.texProgram.id != 0 {
		gl.DeleteProgram(r.texProgram.id)
	}
	if r.checkerTex != 0 {
		gl.DeleteTextures(1, &r.checkerTex)
	}
}

// uploadMesh creates the VAO, the interleaved VBO and one EBO per topology.
func (r *Renderer) uploadMesh(mesh *pyramid.Mesh) {
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.triEBO)
	gl.GenBuffers(1, &r.lineEBO)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, mesh.VertexBytes(), gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.triEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, mesh.TriangleBytes(), gl.Ptr(mesh.Triangles), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(pyramid.AttribPosition, 3, gl.FLOAT, false, pyramid.VertexStride, pyramid.OffsetPosition)
	gl.EnableVertexAttribArray(pyramid.AttribPosition)

	gl.VertexAttribPointerWithOffset(pyramid.AttribColor, 3, gl.FLOAT, false, pyramid.VertexStride, pyramid.OffsetColor)
	gl.EnableVertexAttribArray(pyramid.AttribColor)

	gl.VertexAttribPointerWithOffset(pyramid.AttribTexCoord, 2, gl.FLOAT, false, pyramid.VertexStride, pyramid.OffsetTexCoord)
	gl.EnableVertexAttribArray(pyramid.AttribTexCoord)

	// The draw calls rebind whichever EBO they need.
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.lineEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, mesh.LineBytes(), gl.Ptr(mesh.Lines), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.triCount = int32(len(mesh.Triangles))
	r.lineCount = int32(len(mesh.Lines))
}

// uploadChecker creates a repeating, mipmapped RGB texture from the bitmap.
func uploadChecker(c *pyramid.Checker) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(c.Width), int32(c.Height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(c.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

// buildProgram compiles and links a program. Failures are logged, not returned.
func (r *Renderer) buildProgram(name, vertexSource, fragmentSource string) program {
	vertexShader := r.compileShader(name, "vertex", gl.VERTEX_SHADER, vertexSource)
	fragmentShader := r.compileShader(name, "fragment", gl.FRAGMENT_SHADER, fragmentSource)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(id, logLength, nil, &log[0])
		r.report(ShaderLog{Program: name, Stage: "link", Log: trimLog(log)})
	}

	// Linked into the program now
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program{
		id:         id,
		model:      gl.GetUniformLocation(id, gl.Str("model\x00")),
		view:       gl.GetUniformLocation(id, gl.Str("view\x00")),
		projection: gl.GetUniformLocation(id, gl.Str("projection\x00")),
	}
}

func (r *Renderer) compileShader(name, stage string, kind uint32, source string) uint32 {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		r.report(ShaderLog{Program: name, Stage: stage, Log: trimLog(log)})
	}
	return shader
}

func (r *Renderer) report(d ShaderLog) {
	r.diagnostics = append(r.diagnostics, d)
	r.logger.Error("shader build failed", "program", d.Program, "stage", d.Stage, "log", d.Log)
}

// trimLog drops the NUL terminator and trailing whitespace from a driver log.
func trimLog(b []byte) string {
	return strings.TrimRight(string(b), "\x00 \t\r\n")
}
