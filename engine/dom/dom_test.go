package dom_test

import (
	"strings"
	"testing"

	"github.com/boxlab/bogen/engine/dom"
	"github.com/boxlab/bogen/engine/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var minihtml = `
<html><head>
<style>
  p { color: red; }
  p::before { content: "→"; direction: rtl; }
  span::-engine-table-grid { color: green; }
  #hello { color: purple !important; }
</style>
</head><body>
  <p id="hello">Hello <b>World</b>!</p>
  <p style="color: blue">Inline</p>
  <div style="display: table"><span>A</span><span>B</span></div>
</body></html>
`

func buildDOM(t *testing.T) *styledtree.StyNode {
	h, err := html.Parse(strings.NewReader(minihtml))
	require.NoError(t, err, "cannot create test document")
	domroot := dom.FromHTMLParseTree(h)
	require.NotNil(t, domroot, "could not build styled tree from HTML")
	return domroot
}

func TestStyledTreeFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	domroot := buildDOM(t)
	require.Equal(t, "#document", domroot.NodeName())
	require.NotNil(t, domroot.Styles(), "document root must carry user-agent defaults")
	//
	paragraphs, err := dom.Query(domroot, "//p")
	require.NoError(t, err)
	require.Len(t, paragraphs, 2)
}

func TestCascadeResolvesStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	domroot := buildDOM(t)
	paragraphs, err := dom.Query(domroot, "//p[@id='hello']")
	require.NoError(t, err)
	require.Len(t, paragraphs, 1)
	hello := paragraphs[0]
	require.Equal(t, "purple", hello.GetPropertyValue("color").String(),
		"!important id rule must win over element rule")
	//
	// color inherits down to the <b> child
	bolds, err := dom.Query(domroot, "//b")
	require.NoError(t, err)
	require.Len(t, bolds, 1)
	require.Equal(t, "purple", bolds[0].GetPropertyValue("color").String())
}

func TestInlineStylesWin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	domroot := buildDOM(t)
	paragraphs, err := dom.Query(domroot, "//p[not(@id)]")
	require.NoError(t, err)
	require.Len(t, paragraphs, 1)
	require.Equal(t, "blue", paragraphs[0].GetPropertyValue("color").String())
}

func TestPseudoElementStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	domroot := buildDOM(t)
	paragraphs, err := dom.Query(domroot, "//p[@id='hello']")
	require.NoError(t, err)
	before := paragraphs[0].PseudoStyles("before")
	require.NotNil(t, before, "::before rule must be resolved for the paragraph")
	content, ok := before.Property("content")
	require.True(t, ok)
	require.Equal(t, `"→"`, content.String())
}

func TestReservedPseudoElementsRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	domroot := buildDOM(t)
	spans, err := dom.Query(domroot, "//span")
	require.NoError(t, err)
	require.Len(t, spans, 2)
	for _, span := range spans {
		require.Nil(t, span.Styles(), "reserved pseudo-element selector must not style the element")
		require.Nil(t, span.PseudoStyles("-engine-table-grid"))
	}
}

func TestWhitespaceTextNodesSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	domroot := buildDOM(t)
	divs, err := dom.Query(domroot, "//div")
	require.NoError(t, err)
	require.Len(t, divs, 1)
	require.Equal(t, 2, divs[0].ChildCount(),
		"inter-element whitespace must not appear in the styled tree")
}

func TestElementStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	src := `<html><body>
	  <details open><summary>More</summary><p>rest</p></details>
	  <input type="checkbox" checked>
	  <input placeholder="type here">
	</body></html>`
	h, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	domroot := dom.FromHTMLParseTree(h)
	//
	details, err := dom.Query(domroot, "//details")
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.True(t, details[0].IsOpen())
	details[0].RemoveAttr("open")
	require.False(t, details[0].IsOpen())
	//
	inputs, err := dom.Query(domroot, "//input")
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	require.Equal(t, "checkbox", inputs[0].ControlType())
	require.True(t, inputs[0].IsChecked())
	require.Equal(t, "text", inputs[1].ControlType(), "input without type defaults to text")
	text, ok := inputs[1].Placeholder()
	require.True(t, ok)
	require.Equal(t, "type here", text)
}
