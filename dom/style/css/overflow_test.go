package css_test

import (
	"testing"

	"github.com/npillmayer/overlayscroll/dom/style"
	"github.com/npillmayer/overlayscroll/dom/style/css"
)

func TestOverflowBasic(t *testing.T) {
	o := css.Overflow("Visible-Scroll")
	switch m := o.Match(); m {
	case m.VisibleScroll():
		t.Logf("overflow is %s", o)
	default:
		t.Errorf("expected visible-scroll, is %#v", o)
	}
	if o.HidesOverflow() {
		t.Errorf("expected visible-scroll not to hide overflow")
	}
	if !css.Scroll().HidesOverflow() || !css.Hidden().HidesOverflow() {
		t.Errorf("expected scroll and hidden to hide overflow")
	}
	if !css.Overflow("clip").IsUnset() {
		t.Errorf("expected unknown behaviour to be unset")
	}
}

func TestOverflowPattern(t *testing.T) {
	m := css.OverflowPattern[string](css.Hidden())
	out := m.OneOf(css.OverflowPatterns[string]{
		Scroll:  "S",
		Hidden:  "H",
		Default: "-",
	})
	if out != "H" {
		t.Errorf("expected H, have %v", out)
	}
}

func TestOverflowText(t *testing.T) {
	var o css.OverflowBehavior
	if err := o.UnmarshalText([]byte("scroll")); err != nil {
		t.Fatal(err)
	}
	switch m := o.Match(); m {
	case m.IsKind(css.Scroll()):
	default:
		t.Errorf("expected scroll, is %s", o)
	}
	if err := o.UnmarshalText([]byte("sideways")); err != css.ErrUnknownOverflow {
		t.Errorf("expected ErrUnknownOverflow, is %v", err)
	}
}

func TestLengths(t *testing.T) {
	for _, c := range []struct {
		got, want style.Property
	}{
		{css.Px(-17), "-17px"},
		{css.Px(0), "0px"},
		{css.Px(12.5), "12.5px"},
		{css.PxIf(false, 3), ""},
		{css.CalcPercentPlus(100, 17), "calc(100% + 17px)"},
		{css.TransparentBorder(42), "42px solid transparent"},
		{css.Percent(0.25), "25%"},
		{css.TranslatePercent("-100%", true), "translateX(-100%)"},
	} {
		if c.got != c.want {
			t.Errorf("expected %q, have %q", c.want, c.got)
		}
	}
}
