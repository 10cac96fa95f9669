package framedebug_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/boxlab/bogen/engine/dom"
	"github.com/boxlab/bogen/engine/frame/boxtree"
	"github.com/boxlab/bogen/engine/frame/framedebug"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestDumpBoxTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(`<html><body>
	  <div style="display: table"><span>A</span></div>
	</body></html>`))
	require.NoError(t, err)
	domroot := dom.FromHTMLParseTree(h)
	require.NotNil(t, domroot)
	bt, err := boxtree.BuildBoxTree(domroot)
	require.NoError(t, err)
	//
	var buf bytes.Buffer
	require.NoError(t, framedebug.Dump(&buf, bt.Root()))
	out := buf.String()
	require.Equal(t, out, framedebug.String(bt.Root()))
	//
	require.Contains(t, out, "#document")
	require.Contains(t, out, "body")
	require.Contains(t, out, "div")
	require.Contains(t, out, "table-row", "synthesized table boxes show their fixup kind")
	require.Contains(t, out, `"A"`)
	require.Contains(t, out, "▥", "table boxes carry the table symbol")
}

func TestDumpEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.frame")
	defer teardown()
	//
	require.NotPanics(t, func() { _ = framedebug.String(nil) })
}
