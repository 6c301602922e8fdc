package opengl

import (
	"strings"
	"testing"
)

func TestShaderSources(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains []string
	}{
		{"line vertex", lineVertexShaderSource, []string{"uniform mat4 model;", "uniform mat4 view;", "uniform mat4 projection;", "location = 1) in vec3 aColor"}},
		{"line fragment", lineFragmentShaderSource, []string{"in vec3 vColor;"}},
		{"texture vertex", texVertexShaderSource, []string{"uniform mat4 model;", "uniform mat4 view;", "uniform mat4 projection;", "location = 2) in vec2 aTexCoord"}},
		{"texture fragment", texFragmentShaderSource, []string{"uniform sampler2D uTexture;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.source, "#version 330 core") {
				t.Error("missing 3.3 core version directive")
			}
			if !strings.HasSuffix(tt.source, "\x00") {
				t.Error("source is not NUL-terminated")
			}
			for _, s := range tt.contains {
				if !strings.Contains(tt.source, s) {
					t.Errorf("missing %q", s)
				}
			}
		})
	}
}

func TestTrimLog(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte("0:3(1): error: syntax error\n\x00"), "0:3(1): error: syntax error"},
		{[]byte{0}, ""},
		{[]byte("ok"), "ok"},
	}
	for _, tt := range tests {
		if got := trimLog(tt.in); got != tt.want {
			t.Errorf("trimLog(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
