// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConverter implements Converter for testing. It returns canned text
// or an error, depending on configuration.
type fakeConverter struct {
	output string
	err    error
	calls  int
}

func (f *fakeConverter) Convert(context.Context, string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

// mockExecutor answers LookPath and Output from configuration.
type mockExecutor struct {
	missing bool
	output  string
	err     error
	args    []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.missing {
		return "", errors.New("not found: " + file)
	}
	return "/usr/bin/" + file, nil
}

func (m *mockExecutor) RunSilent(context.Context, string, ...string) error { return nil }

func (m *mockExecutor) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	m.args = append([]string{name}, args...)
	if m.err != nil {
		return nil, m.err
	}
	return []byte(m.output), nil
}

func (m *mockExecutor) RunPiped(context.Context, string, []string, io.Reader, io.Writer) error {
	return nil
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("text file read as-is", func(t *testing.T) {
		path := writeFile(t, "rider.txt", "PATCH LIST\n1. Kick")
		fc := &fakeConverter{}
		doc, err := Load(ctx, fc, path)
		require.NoError(t, err)
		assert.Equal(t, "PATCH LIST\n1. Kick", doc.Text)
		assert.Empty(t, doc.Path)
		assert.Zero(t, fc.calls)
	})

	t.Run("pdf converted and keeps its path", func(t *testing.T) {
		path := writeFile(t, "Rider.PDF", "%PDF-1.4")
		doc, err := Load(ctx, &fakeConverter{output: "stage plot"}, path)
		require.NoError(t, err)
		assert.Equal(t, "stage plot", doc.Text)
		assert.Equal(t, path, doc.Path)
	})

	t.Run("conversion failure", func(t *testing.T) {
		path := writeFile(t, "rider.pdf", "%PDF-1.4")
		_, err := Load(ctx, &fakeConverter{err: errors.New("container crashed")}, path)
		assert.ErrorContains(t, err, "container crashed")
	})

	t.Run("pdf without converter", func(t *testing.T) {
		path := writeFile(t, "rider.pdf", "%PDF-1.4")
		_, err := Load(ctx, nil, path)
		assert.ErrorContains(t, err, "no converter configured")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(ctx, &fakeConverter{}, "rider.docx")
		assert.ErrorContains(t, err, "unsupported input")
	})

	t.Run("missing text file", func(t *testing.T) {
		_, err := Load(ctx, nil, filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})
}

func TestIsInput(t *testing.T) {
	assert.True(t, IsInput("a.txt"))
	assert.True(t, IsInput("b.PDF"))
	assert.False(t, IsInput("c-score.yaml"))
	assert.False(t, IsInput("noext"))
}

func TestPdftotextConverter(t *testing.T) {
	exec := &mockExecutor{output: "TECHNICAL RIDER\n"}
	c, err := NewPdftotextConverter(exec)
	require.NoError(t, err)

	text, err := c.Convert(context.Background(), "/tmp/rider.pdf")
	require.NoError(t, err)
	assert.Equal(t, "TECHNICAL RIDER\n", text)
	assert.Equal(t, []string{"pdftotext", "-layout", "-enc", "UTF-8", "/tmp/rider.pdf", "-"}, exec.args)

	exec.err = errors.New("exit status 1")
	_, err = c.Convert(context.Background(), "/tmp/rider.pdf")
	assert.ErrorContains(t, err, "converting /tmp/rider.pdf with pdftotext")
}

func TestPdftotextConverter_Missing(t *testing.T) {
	_, err := NewPdftotextConverter(&mockExecutor{missing: true})
	assert.ErrorContains(t, err, "pdftotext not found")
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), "grobid")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `unknown converter "grobid"`))
}

// fakeRuntime implements container.Runtime for the markitdown converter.
type fakeRuntime struct {
	imageErr error
	output   string
}

func (f *fakeRuntime) Name() string                   { return "docker" }
func (f *fakeRuntime) Available(context.Context) bool { return true }

func (f *fakeRuntime) ImageExists(context.Context, string) error { return f.imageErr }

func (f *fakeRuntime) Run(_ context.Context, _ string, _ io.Reader, stdout io.Writer) error {
	_, err := io.WriteString(stdout, f.output)
	return err
}

func TestMarkitdownConverter(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, "rider.pdf", "%PDF-1.4")

	c, err := NewMarkitdownConverter(ctx, &fakeRuntime{output: "# Technical rider"})
	require.NoError(t, err)
	text, err := c.Convert(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Technical rider", text)

	for _, output := range []string{"", "<!-- page 1 -->\n"} {
		empty, err := NewMarkitdownConverter(ctx, &fakeRuntime{output: output})
		require.NoError(t, err)
		_, err = empty.Convert(ctx, path)
		assert.ErrorContains(t, err, "empty output")
	}

	_, err = NewMarkitdownConverter(ctx, &fakeRuntime{imageErr: errors.New("no such image")})
	assert.ErrorContains(t, err, "markitdown image not available in docker")
}

func TestMarkitdownConverter_PlainText(t *testing.T) {
	c, err := NewMarkitdownConverter(context.Background(), &fakeRuntime{})
	require.NoError(t, err)

	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "headings and emphasis",
			md:   "# TECHNICAL RIDER\n\n**Contact:** joan@elsamics.cat\n",
			want: "TECHNICAL RIDER\nContact: joan@elsamics.cat",
		},
		{
			name: "patch table rows stay on one line",
			md:   "| Ch | Source | Mic |\n|---|---|---|\n| 1 | Kick | Beta 91A |\n| 2 | Snare | SM57 |\n",
			want: "Ch  Source  Mic\n1  Kick  Beta 91A\n2  Snare  SM57",
		},
		{
			name: "link target kept",
			md:   "Online: [latest rider](https://riders.example.org/riders/amics)\n",
			want: "Online: latest rider https://riders.example.org/riders/amics",
		},
		{
			name: "bullets",
			md:   "Provided by the band:\n\n- Drum kit\n- Guitar amp\n",
			want: "Provided by the band:\n- Drum kit\n- Guitar amp",
		},
		{
			name: "numbered patch keeps channels",
			md:   "3. Hi-hat - SM81\n4. Bass - MD421\n",
			want: "3. Hi-hat - SM81\n4. Bass - MD421",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.PlainText([]byte(tt.md)))
		})
	}
}
