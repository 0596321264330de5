package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/overlayscroll/env"
)

func TestDefaults(t *testing.T) {
	e := env.New()
	assert.Equal(t, 17.0, e.NativeScrollbarSize().X)
	assert.True(t, e.FlexboxGlue())
	assert.True(t, e.IntersectionObserver())
	assert.False(t, e.NativeScrollbarStyling())
	assert.Equal(t, env.RTLDefault, e.RTLScrollBehavior())
}

func TestOptions(t *testing.T) {
	e := env.New(
		env.WithNativeScrollbarSize(0, 0),
		env.WithOverlaidScrollbars(true, true),
		env.WithFlexboxGlue(false),
		env.WithRTLScrollBehavior(env.RTLInverted),
		env.WithIntersectionObserver(false),
	)
	assert.True(t, e.NativeScrollbarIsOverlaid().X)
	assert.True(t, e.NativeScrollbarIsOverlaid().Y)
	assert.False(t, e.FlexboxGlue())
	assert.False(t, e.IntersectionObserver())
	switch m := e.RTLScrollBehavior().Match(); m {
	case m.Inverted():
	default:
		t.Errorf("expected inverted RTL behaviour, is %s", e.RTLScrollBehavior())
	}
	assert.Contains(t, e.String(), "rtl=inverted")
}
