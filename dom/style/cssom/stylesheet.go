package cssom

import "github.com/npillmayer/overlayscroll/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Matcher tells wether an element matches a selector.
type Matcher func(selector string) bool

// Lookup finds the value of a property for an element by applying the
// matching rules of all stylesheets in document order. A later rule wins over
// an earlier one, an important declaration wins over normal ones.
// Specificity is not considered.
//
// Returns false if no matching rule declares the property.
func Lookup(sheets []StyleSheet, matches Matcher, key string) (style.Property, bool) {
	var value style.Property
	found, important := false, false
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules() {
			if !declares(rule, key) || !matches(rule.Selector()) {
				continue
			}
			imp := rule.IsImportant(key)
			if important && !imp {
				continue
			}
			value, found, important = rule.Value(key), true, imp
		}
	}
	if found {
		tracer().P("key", key).Debugf("cssom: computed %s = %s", key, value)
	}
	return value, found
}

func declares(rule Rule, key string) bool {
	for _, k := range rule.Properties() {
		if k == key {
			return true
		}
	}
	return false
}
