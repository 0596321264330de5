package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'overlayscroll.dom'
func tracer() tracing.Trace {
	return tracing.Select("overlayscroll.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//	overflow-x: hidden
//
// a property value of "hidden" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
//
// The null property has a special meaning within style patches: it
// removes an inline style property from an element.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// Px returns the numeric value of a pixel property, e.g. 17 for "17px".
// Unitless numbers are accepted as well. Anything else returns false.
func (p Property) Px() (float64, bool) {
	s := strings.TrimSpace(string(p))
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value)
}

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGOverflow  = "Overflow"
	PGDisplay   = "Display"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":     PGMargins, // Margins
	"margin-left":    PGMargins,
	"margin-right":   PGMargins,
	"margin-bottom":  PGMargins,
	"padding-top":    PGPadding, // Padding
	"padding-left":   PGPadding,
	"padding-right":  PGPadding,
	"padding-bottom": PGPadding,
	"border-top":     PGBorder, // Border
	"border-left":    PGBorder,
	"border-right":   PGBorder,
	"border-bottom":  PGBorder,
	"width":          PGDimension, // Dimension
	"height":         PGDimension,
	"min-width":      PGDimension,
	"min-height":     PGDimension,
	"max-width":      PGDimension,
	"max-height":     PGDimension,
	"overflow":       PGOverflow, // Overflow
	"overflow-x":     PGOverflow,
	"overflow-y":     PGOverflow,
	"display":        PGDisplay,
	"position":       PGDisplay,
	"transform":      PGDisplay,
	"top":            PGDisplay,
	"left":           PGDisplay,
	"direction":      PGText,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//
//	GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("margin", "3px")
//
// will return
//
//	"margin-top"    => "3px"
//	"margin-right"  => "3px"
//	"margin-bottom" => "3px"
//	"margin-left"   => "3px"
//
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	at := func(i int) Property {
		switch {
		case i < l:
			return Property(fields[i])
		case i == 2:
			return Property(fields[0])
		case i == 3 && l >= 2:
			return Property(fields[1])
		}
		return Property(fields[0])
	}
	for i := range dirs {
		r[i] = KeyValue{p(pre, suf, dirs[i]), at(i)}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	return prefix + "-" + tag + "-" + suffix
}
