/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
based on the CSS parser github.com/aymerick/douceur.

It also parses and serializes the declaration lists of inline `style`
attributes.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/npillmayer/overlayscroll/dom/style"
	"github.com/npillmayer/overlayscroll/dom/style/cssom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet. At-rules are
// skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// --- Inline styles ---------------------------------------------------------

// ParseInline parses the content of a `style` attribute into key-value pairs,
// in declaration order. Later duplicates replace earlier ones. Shorthands for
// margins, paddings and border widths are split into their longhands.
func ParseInline(text string) ([]style.KeyValue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if !strings.HasSuffix(strings.TrimSpace(text), ";") {
		text += ";" // douceur drops an unterminated last declaration
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse inline style %q: %w", text, err)
	}
	kv := make([]style.KeyValue, 0, len(decls))
	index := make(map[string]int, len(decls))
	for _, d := range decls {
		longhands, err := style.SplitCompoundProperty(d.Property, style.Property(d.Value))
		if err != nil {
			longhands = []style.KeyValue{{Key: d.Property, Value: style.Property(d.Value)}}
		}
		for _, p := range longhands {
			if i, ok := index[p.Key]; ok {
				kv[i] = p
				continue
			}
			index[p.Key] = len(kv)
			kv = append(kv, p)
		}
	}
	return kv, nil
}

// SerializeInline writes key-value pairs as the content of a `style`
// attribute. Pairs with a null value are skipped.
func SerializeInline(kv []style.KeyValue) string {
	decls := make([]string, 0, len(kv))
	for _, p := range kv {
		if p.Value.IsEmpty() {
			continue
		}
		d := css.Declaration{Property: p.Key, Value: p.Value.String()}
		decls = append(decls, d.String())
	}
	return strings.Join(decls, " ")
}
