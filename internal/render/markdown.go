package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"esg-sunshine/internal/domain"
)

// Assistant replies are Markdown. HTML in them is shown as text, never
// interpreted and never dropped.
var assistantMarkdown = goldmark.New(
	goldmark.WithRenderer(renderer.NewRenderer(
		renderer.WithNodeRenderers(
			util.Prioritized(html.NewRenderer(html.WithHardWraps()), 1000),
			util.Prioritized(literalHTMLRenderer{}, 100),
		),
	)),
)

// MessageHTML renders a chat message for display. User text is escaped
// verbatim with every newline turned into a line break; assistant text is
// rendered as Markdown with hard wraps.
func MessageHTML(msg domain.ChatMessage) (string, error) {
	if msg.Role != domain.RoleAssistant {
		return plainHTML(msg.Text), nil
	}
	var buf bytes.Buffer
	if err := assistantMarkdown.Convert([]byte(msg.Text), &buf); err != nil {
		return "", fmt.Errorf("render: convert message: %w", err)
	}
	return buf.String(), nil
}

func plainHTML(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	escaped := string(util.EscapeHTML([]byte(text)))
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

// literalHTMLRenderer writes raw HTML nodes as escaped text.
type literalHTMLRenderer struct{}

func (literalHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindRawHTML, renderRawHTML)
	reg.Register(ast.KindHTMLBlock, renderHTMLBlock)
}

func renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	segs := node.(*ast.RawHTML).Segments
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		_, _ = w.Write(util.EscapeHTML(seg.Value(source)))
	}
	return ast.WalkSkipChildren, nil
}

func renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.HTMLBlock)
	var raw bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		raw.Write(line.Value(source))
	}
	if n.HasClosure() {
		raw.Write(n.ClosureLine.Value(source))
	}
	_, _ = w.WriteString("<p>")
	_, _ = w.WriteString(plainHTML(strings.TrimRight(raw.String(), "\n")))
	_, _ = w.WriteString("</p>\n")
	return ast.WalkSkipChildren, nil
}
