// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/rider-engine/internal/container"
)

const imageMarkitdown = "markitdown:latest"

// cellSeparator joins table cells so a patch row reads like a pdftotext
// column layout.
const cellSeparator = "  "

// MarkitdownConverter converts rider PDFs by piping them through the
// markitdown container image and flattening its Markdown to plain text.
type MarkitdownConverter struct {
	runtime container.Runtime
	md      goldmark.Markdown
}

// NewMarkitdownConverter checks that the markitdown image exists in rt.
func NewMarkitdownConverter(ctx context.Context, rt container.Runtime) (*MarkitdownConverter, error) {
	if err := rt.ImageExists(ctx, imageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &MarkitdownConverter{
		runtime: rt,
		md:      goldmark.New(goldmark.WithExtensions(extension.Table)),
	}, nil
}

// Convert returns the plain text of the rider at pdfPath. Link targets are
// kept next to their label so repository links survive the conversion.
func (m *MarkitdownConverter) Convert(ctx context.Context, pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(ctx, imageMarkitdown, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with markitdown: %w", pdfPath, err)
	}
	plain := m.PlainText(out.Bytes())
	if strings.TrimSpace(plain) == "" {
		return "", fmt.Errorf("markitdown produced empty output for %s", pdfPath)
	}
	return plain, nil
}

// PlainText renders Markdown source as plain text: one line per block,
// table rows on one line, list markers kept and other markup dropped.
func (m *MarkitdownConverter) PlainText(src []byte) string {
	doc := m.md.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	newline := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(n.Segment.Value(src))
				if n.SoftLineBreak() || n.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				b.Write(n.Value)
			}
		case *ast.AutoLink:
			if entering {
				b.Write(n.URL(src))
			}
		case *ast.Link:
			if !entering {
				fmt.Fprintf(&b, " %s", n.Destination)
			}
		case *ast.ListItem:
			if entering {
				newline()
				b.WriteString(listMarker(n))
			}
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					b.Write(seg.Value(src))
				}
			}
		case *east.TableCell:
			if !entering && n.NextSibling() != nil {
				b.WriteString(cellSeparator)
			}
			return ast.WalkContinue, nil
		}
		if !entering && n.Type() == ast.TypeBlock {
			newline()
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// listMarker numbers ordered items so patch lists keep their channels.
func listMarker(item ast.Node) string {
	l, ok := item.Parent().(*ast.List)
	if !ok || !l.IsOrdered() {
		return "- "
	}
	idx := l.Start
	for s := item.PreviousSibling(); s != nil; s = s.PreviousSibling() {
		idx++
	}
	return fmt.Sprintf("%d. ", idx)
}
