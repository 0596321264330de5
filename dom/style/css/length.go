package css

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/overlayscroll/dom/style"
)

// ErrUnknownOverflow is returned when decoding an unknown overflow behaviour.
var ErrUnknownOverflow = errors.New("unknown overflow behaviour")

// Px formats a pixel length, e.g. Px(-17) => "-17px".
// Integral values are written without decimals.
func Px(x float64) style.Property {
	if x == 0 {
		return "0px"
	}
	return style.Property(strconv.FormatFloat(x, 'f', -1, 64) + "px")
}

// PxIf returns Px(x) if cond holds, the null style otherwise.
func PxIf(cond bool, x float64) style.Property {
	if !cond {
		return style.NullStyle
	}
	return Px(x)
}

// CalcPercentPlus formats a `calc()` expression of a percentage plus a pixel
// offset, e.g. CalcPercentPlus(100, 17) => "calc(100% + 17px)".
func CalcPercentPlus(pct float64, px float64) style.Property {
	return style.Property(fmt.Sprintf("calc(%s%% + %s)",
		strconv.FormatFloat(pct, 'f', -1, 64), Px(px)))
}

// TransparentBorder formats a solid, transparent border of a given width,
// e.g. "42px solid transparent".
func TransparentBorder(width float64) style.Property {
	return style.Property(fmt.Sprintf("%s solid transparent", Px(width)))
}

// Percent formats a percentage, e.g. Percent(0.25) => "25%". The fraction is
// expected in [0,1].
func Percent(fraction float64) style.Property {
	return style.Property(strconv.FormatFloat(fraction*100, 'f', -1, 64) + "%")
}

// TranslatePercent formats a CSS translate transform along one axis,
// e.g. TranslatePercent("-100%", true) => "translateX(-100%)".
func TranslatePercent(value style.Property, horizontal bool) style.Property {
	if horizontal {
		return style.Property(fmt.Sprintf("translateX(%s)", value))
	}
	return style.Property(fmt.Sprintf("translateY(%s)", value))
}
