// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// inherited are the properties that children take from their
// nearest ancestor group that declares them.
var inherited = []string{
	"fill", "fill-opacity", "stroke", "stroke-width", "stroke-opacity",
	"stroke-linecap", "stroke-linejoin", "font-family", "font-size",
	"font-weight", "font-style", "text-anchor", "visibility",
}

// parseStyle parses an inline style attribute into a property map.
func parseStyle(style string) (map[string]string, error) {
	// the parser drops the value of a last declaration without a semicolon
	style = strings.TrimSpace(style)
	if style != "" && !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil, err
	}
	props := make(map[string]string, len(decls))
	for _, de := range decls {
		props[strings.ToLower(de.Property)] = strings.TrimSpace(de.Value)
	}
	return props, nil
}

// selector is a simple compound selector: an optional tag,
// id and class list, e.g. "rect.accent" or "#title".
type selector struct {
	tag     string
	id      string
	classes []string
}

func parseSelector(s string) (selector, bool) {
	var sel selector
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " >+~[:*") {
		return sel, false
	}
	part := func(s string) (string, string) {
		i := strings.IndexAny(s, ".#")
		if i < 0 {
			return s, ""
		}
		return s[:i], s[i:]
	}
	sel.tag, s = part(s)
	for s != "" {
		kind := s[0]
		var name string
		name, s = part(s[1:])
		if name == "" {
			return sel, false
		}
		if kind == '#' {
			sel.id = name
		} else {
			sel.classes = append(sel.classes, name)
		}
	}
	return sel, true
}

// specificity orders selectors as ids, then classes, then tags.
func (sel selector) specificity() int {
	sp := 10 * len(sel.classes)
	if sel.id != "" {
		sp += 100
	}
	if sel.tag != "" {
		sp++
	}
	return sp
}

func (sel selector) matches(n *node) bool {
	if sel.tag != "" && !strings.EqualFold(sel.tag, n.tag) {
		return false
	}
	if sel.id != "" && sel.id != n.id() {
		return false
	}
	if len(sel.classes) == 0 {
		return true
	}
	have := strings.Fields(n.attrs["class"])
	for _, c := range sel.classes {
		found := false
		for _, h := range have {
			if h == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type styleRule struct {
	sel   selector
	order int
	props map[string]string
}

// styleSheet holds the rules of all <style> elements in the document,
// restricted to simple selectors.
type styleSheet struct {
	rules []styleRule
}

// add parses the given CSS text and appends its rules.
func (ss *styleSheet) add(text string) error {
	sheet, err := parser.Parse(text)
	if err != nil {
		return fmt.Errorf("svg: stylesheet: %w", err)
	}
	for _, r := range sheet.Rules {
		if r.Kind == css.AtRule || len(r.Declarations) == 0 {
			continue
		}
		props := make(map[string]string, len(r.Declarations))
		for _, de := range r.Declarations {
			props[strings.ToLower(de.Property)] = strings.TrimSpace(de.Value)
		}
		for _, s := range r.Selectors {
			sel, ok := parseSelector(s)
			if !ok {
				continue
			}
			ss.rules = append(ss.rules, styleRule{sel: sel, order: len(ss.rules), props: props})
		}
	}
	return nil
}

// apply sets the properties of all matching rules into props,
// lowest specificity first so that stronger rules win.
func (ss *styleSheet) apply(n *node, props map[string]string) {
	var matched []styleRule
	for _, r := range ss.rules {
		if r.sel.matches(n) {
			matched = append(matched, r)
		}
	}
	for sp := 0; len(matched) > 0; sp++ {
		rest := matched[:0]
		for _, r := range matched {
			if r.sel.specificity() == sp {
				for k, v := range r.props {
					props[k] = v
				}
			} else {
				rest = append(rest, r)
			}
		}
		matched = rest
	}
}

// cascade computes the node's own property map: presentation attributes,
// overridden by stylesheet rules, overridden by the inline style.
// Inherited properties missing from the node are taken from parent.
func (w *walker) cascade(n *node, parent map[string]string) error {
	props := make(map[string]string, len(n.attrs)+len(inherited))
	for _, name := range inherited {
		if v, ok := parent[name]; ok {
			props[name] = v
		}
	}
	for k, v := range n.attrs {
		props[k] = v
	}
	w.sheet.apply(n, props)
	var err error
	if st, ok := n.attrs["style"]; ok && strings.TrimSpace(st) != "" {
		n.style, err = parseStyle(st)
		for k, v := range n.style {
			props[k] = v
		}
	}
	for k, v := range props {
		if v == "inherit" {
			if pv, ok := parent[k]; ok {
				props[k] = pv
			} else {
				delete(props, k)
			}
		}
	}
	n.props = props
	return err
}
