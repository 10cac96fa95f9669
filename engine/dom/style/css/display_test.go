package css_test

import (
	"testing"

	"github.com/boxlab/bogen/engine/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestParseDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	tests := []struct {
		display string
		mode    css.DisplayMode
	}{
		{"none", css.DisplayNone},
		{"block", css.BlockMode | css.InnerBlockMode},
		{"inline", css.InlineMode | css.InnerInlineMode},
		{"inline-block", css.InlineMode | css.InnerBlockMode},
		{"list-item", css.ListItemMode | css.BlockMode},
		{"flow-root", css.BlockMode | css.FlowRootMode},
		{"table", css.BlockMode | css.TableMode},
		{"inline-table", css.InlineMode | css.TableMode},
		{"table-row", css.TableRowMode},
		{"table-cell", css.TableCellMode | css.InnerBlockMode},
		{"table-header-group", css.TableRowGroupMode},
		{"table-caption", css.TableCaptionMode | css.InnerBlockMode},
		{"table-column-group", css.TableColumnMode},
		{"contents", css.ContentsMode},
	}
	for _, tc := range tests {
		mode, err := css.ParseDisplay(tc.display)
		require.NoError(t, err, tc.display)
		require.Equal(t, tc.mode, mode, tc.display)
	}
}

func TestParseDisplayClampsUnknownValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	mode, err := css.ParseDisplay("ruby-base-container")
	require.Error(t, err)
	require.Equal(t, css.BlockMode|css.InnerBlockMode, mode,
		"unknown display values must clamp to block")
}

func TestDisplayModePredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bogen.dom")
	defer teardown()
	//
	require.True(t, css.TableRowMode.IsTableInternal())
	require.True(t, css.TableCellMode.IsTableInternal())
	require.True(t, css.TableCaptionMode.IsTableInternal())
	require.False(t, (css.BlockMode | css.TableMode).IsTableInternal())
	//
	require.True(t, (css.BlockMode | css.TableMode).EstablishesRowContext())
	require.True(t, css.TableGridMode.EstablishesRowContext())
	require.True(t, css.TableRowGroupMode.EstablishesRowContext())
	require.False(t, css.TableRowMode.EstablishesRowContext())
	//
	require.True(t, (css.ListItemMode | css.BlockMode).IsBlockLevel())
	require.False(t, (css.InlineMode | css.InnerInlineMode).IsBlockLevel())
	//
	require.Equal(t, css.BlockMode, (css.BlockMode | css.InnerInlineMode).Outer())
	require.Equal(t, css.InlineMode, (css.InlineMode | css.TableMode).Outer())
	require.Equal(t, css.NoMode, (css.InnerBlockMode | css.TableCellMode).Outer())
}
