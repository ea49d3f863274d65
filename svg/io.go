// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// nodeKind is the kind of a parsed markup node.
type nodeKind int32

const (
	kindUnknown nodeKind = iota
	kindChars
	kindGroup
	kindRect
	kindCircle
	kindEllipse
	kindLine
	kindText
	kindPath
	kindPolygon
	kindPolyline
	kindImage
	kindDefs
	kindStyle
	kindLinearGradient
	kindRadialGradient
	kindStop
	kindFilter
	kindDropShadow
)

// tagKinds maps lowercase element names to node kinds.
// Elements not listed are skipped along with their children.
var tagKinds = map[string]nodeKind{
	"svg":            kindGroup,
	"g":              kindGroup,
	"a":              kindGroup,
	"switch":         kindGroup,
	"rect":           kindRect,
	"circle":         kindCircle,
	"ellipse":        kindEllipse,
	"line":           kindLine,
	"text":           kindText,
	"path":           kindPath,
	"polygon":        kindPolygon,
	"polyline":       kindPolyline,
	"image":          kindImage,
	"defs":           kindDefs,
	"style":          kindStyle,
	"lineargradient": kindLinearGradient,
	"radialgradient": kindRadialGradient,
	"stop":           kindStop,
	"filter":         kindFilter,
	"fedropshadow":   kindDropShadow,
}

// node is one parsed markup element, or a run of character data.
type node struct {
	kind nodeKind
	tag  string

	// attrs are the attributes by local name, so that
	// xlink:href and href are both found as "href".
	attrs map[string]string

	// style holds the declarations of the inline style attribute.
	style map[string]string

	// text is the character data of a kindChars node.
	text string

	children []*node

	// props is the cascaded property map, computed once during the walk.
	props map[string]string
}

func newNode(se xml.StartElement) *node {
	n := &node{tag: se.Name.Local, attrs: make(map[string]string, len(se.Attr))}
	n.kind = tagKinds[strings.ToLower(se.Name.Local)]
	for _, attr := range se.Attr {
		if attr.Name.Local == "href" && attr.Name.Space == "" {
			n.attrs["href"] = attr.Value
			continue
		}
		if _, has := n.attrs[attr.Name.Local]; !has {
			n.attrs[attr.Name.Local] = attr.Value
		}
	}
	return n
}

// id returns the id attribute of the node.
func (n *node) id() string {
	return n.attrs["id"]
}

// textContent returns all character data in the subtree, in document order.
func (n *node) textContent() string {
	if n.kind == kindChars {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(c.textContent())
	}
	return sb.String()
}

// walkAll calls fun on the node and all of its descendants, depth first.
func (n *node) walkAll(fun func(n *node)) {
	fun(n)
	for _, c := range n.children {
		c.walkAll(fun)
	}
}

// readTree decodes markup from the reader into a node tree rooted at
// the first <svg> element. Anything before the root is ignored,
// and decoding stops at the end of the root. Decoding is strict:
// mismatched or unclosed tags make the whole markup malformed.
func readTree(reader io.Reader) (*node, error) {
	decoder := xml.NewDecoder(reader)
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	var root *node
	var stack []*node
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			if root == nil {
				if !strings.EqualFold(se.Name.Local, "svg") {
					continue
				}
				root = newNode(se)
				stack = append(stack, root)
				continue
			}
			n := newNode(se)
			par := stack[len(stack)-1]
			par.children = append(par.children, n)
			stack = append(stack, n)
		case xml.EndElement:
			if root == nil {
				continue
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return root, nil
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			par := stack[len(stack)-1]
			par.children = append(par.children, &node{kind: kindChars, text: string(se)})
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no <svg> root element", ErrMalformedInput)
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unclosed <%s> element", ErrMalformedInput, stack[len(stack)-1].tag)
	}
	return root, nil
}
