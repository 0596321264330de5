package options_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/overlayscroll/dom/style/css"
	"github.com/npillmayer/overlayscroll/options"
)

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.options")
	defer teardown()
	//
	o, err := options.Load(strings.NewReader(`
overflow:
  x: hidden
  y: visible-scroll
scrollbars:
  clickScroll: true
  pointers: [mouse]
nativeScrollbarsOverlaid:
  show: true
`))
	require.NoError(t, err)
	assert.Equal(t, css.Hidden(), o.Overflow.X)
	assert.Equal(t, css.VisibleScroll(), o.Overflow.Y)
	assert.True(t, o.Scrollbars.DragScroll, "dragScroll should keep its default")
	assert.True(t, o.Scrollbars.ClickScroll)
	assert.True(t, o.Scrollbars.PointerEnabled("mouse"))
	assert.False(t, o.Scrollbars.PointerEnabled("touch"))
	assert.True(t, o.NativeScrollbarsOverlaid.Show)
}

func TestLoadEmptyAndInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.options")
	defer teardown()
	//
	o, err := options.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, options.Default().Overflow, o.Overflow)
	_, err = options.Load(strings.NewReader("overflow: {x: sideways}"))
	assert.True(t, errors.Is(err, options.ErrInvalidOptions), "error is %v", err)
	_, err = options.Load(strings.NewReader("scrollbars: {pointers: [trackball]}"))
	assert.True(t, errors.Is(err, options.ErrUnknownPointer), "error is %v", err)
}

func TestChecker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "overlayscroll.options")
	defer teardown()
	//
	c := options.NewChecker(options.Default())
	assert.True(t, c.Overflow().Changed, "first check reports a change")
	assert.False(t, c.Overflow().Changed)
	assert.True(t, c.ShowNativeOverlaidScrollbars().Changed)
	assert.False(t, c.ShowNativeOverlaidScrollbars().Changed)
	c.Scrollbars()
	o := options.Default()
	o.Overflow.Y = css.Hidden()
	c.Set(o)
	v := c.Overflow()
	assert.True(t, v.Changed)
	assert.Equal(t, css.Scroll(), v.Previous.Y)
	assert.False(t, c.ShowNativeOverlaidScrollbars().Changed)
	assert.False(t, c.Scrollbars().Changed, "pointers compare by value")
}
