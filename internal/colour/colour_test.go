// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package colour

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/pdiddy/rider-engine/pkg/types"
)

// mockExecutor serves canned pdfimages output.
type mockExecutor struct {
	missing bool
	output  string
	err     error
	block   bool
	calls   int
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.missing {
		return "", errors.New("not found: " + file)
	}
	return "/usr/bin/" + file, nil
}

func (m *mockExecutor) RunSilent(ctx context.Context, name string, args ...string) error {
	return nil
}

func (m *mockExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.calls++
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return []byte(m.output), m.err
}

func (m *mockExecutor) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	return nil
}

const listHeader = `page   num  type   width height color comp bpc  enc interp  object ID x-ppi y-ppi size ratio
--------------------------------------------------------------------------------------------
`

func TestProbe_Check(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		exec     *mockExecutor
		want     types.Tri
		images   int
		coloured int
		calls    int
	}{
		{
			name:  "no images",
			path:  "rider.pdf",
			exec:  &mockExecutor{output: listHeader},
			want:  types.TriTrue,
			calls: 1,
		},
		{
			name: "grey images and masks",
			path: "rider.pdf",
			exec: &mockExecutor{output: listHeader +
				"   1     0 image     600   400  gray    1   8  jpeg   no         7  0   150   150 20K 8.5%\n" +
				"   1     1 smask     600   400  gray    1   8  image  no         8  0   150   150 2K 1%\n"},
			want:   types.TriTrue,
			images: 1,
			calls:  1,
		},
		{
			name: "colour image",
			path: "rider.pdf",
			exec: &mockExecutor{output: listHeader +
				"   1     0 image     600   400  gray    1   8  jpeg   no         7  0   150   150 20K 8.5%\n" +
				"   2     1 image     800   600  rgb     3   8  jpeg   no        12  0   150   150 90K 6.2%\n"},
			want:     types.TriFalse,
			images:   2,
			coloured: 1,
			calls:    1,
		},
		{
			name:  "file name declares black and white",
			path:  "/tmp/rider_bn.pdf",
			exec:  &mockExecutor{},
			want:  types.TriTrue,
			calls: 0,
		},
		{
			name:  "tool missing",
			path:  "rider.pdf",
			exec:  &mockExecutor{missing: true},
			want:  types.TriNull,
			calls: 0,
		},
		{
			name:  "tool fails",
			path:  "rider.pdf",
			exec:  &mockExecutor{err: errors.New("exit status 1")},
			want:  types.TriNull,
			calls: 1,
		},
		{
			name:  "garbage output",
			path:  "rider.pdf",
			exec:  &mockExecutor{output: "Syntax Error: Couldn't read xref table"},
			want:  types.TriNull,
			calls: 1,
		},
		{
			name:  "no path",
			path:  "",
			exec:  &mockExecutor{},
			want:  types.TriNull,
			calls: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewProbe(WithExecutor(tt.exec)).Check(context.Background(), tt.path)
			assert.Equal(t, tt.want, got.Value)
			assert.Equal(t, tt.images, got.Images)
			assert.Equal(t, tt.coloured, got.Coloured)
			assert.Equal(t, tt.calls, tt.exec.calls)
			if tt.want == types.TriNull {
				assert.NotEmpty(t, got.Reason)
			}
		})
	}
}

func TestProbe_Timeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewProbe(WithExecutor(&mockExecutor{block: true}), WithTimeout(20*time.Millisecond))
	got := p.Check(context.Background(), "rider.pdf")
	assert.Equal(t, types.TriNull, got.Value)
	assert.Contains(t, got.Reason, "timed out")
	assert.Equal(t, 60, got.Partial())
}

func TestResult_Partial(t *testing.T) {
	assert.Equal(t, 100, Result{Value: types.TriTrue}.Partial())
	assert.Equal(t, 40, Result{Value: types.TriFalse}.Partial())
	assert.Equal(t, 60, Result{}.Partial())
}
