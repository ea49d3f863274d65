// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"cogentcore.org/artflow/base/ordmap"
	"cogentcore.org/artflow/colors"
	"cogentcore.org/artflow/math32"
	"cogentcore.org/artflow/scene"
)

// gradientDef is a linearGradient definition. Start and End are
// fractions of the element box for objectBoundingBox units,
// and user units for userSpaceOnUse.
type gradientDef struct {
	id        string
	start     math32.Vector2
	end       math32.Vector2
	userSpace bool
	stops     []scene.GradientStop
	href      string

	// radial gradients are recorded only to report them as unsupported.
	radial bool
}

// denormalize returns the gradient in element-local pixels for an element
// of the given final size, whose box origin is at origin in the user space
// of the referencing node, with scale the user-to-final scale factors.
func (gd *gradientDef) denormalize(size, origin, scale math32.Vector2) *scene.LinearGradient {
	lg := &scene.LinearGradient{Stops: append([]scene.GradientStop(nil), gd.stops...)}
	if gd.userSpace {
		lg.Start = gd.start.Sub(origin).Mul(scale)
		lg.End = gd.end.Sub(origin).Mul(scale)
	} else {
		lg.Start = gd.start.Mul(size)
		lg.End = gd.end.Mul(size)
	}
	return lg
}

// shadowDef is a filter holding a single feDropShadow.
// Blur and offsets are in document user units.
type shadowDef struct {
	color   string
	blur    float32
	dx, dy  float32
	opacity float32
}

// scale returns the shadow with blur and offsets scaled to final pixels.
func (sd *shadowDef) scale(s float32) *scene.Shadow {
	return &scene.Shadow{
		Color:   sd.color,
		Blur:    sd.blur * s,
		OffsetX: sd.dx * s,
		OffsetY: sd.dy * s,
		Opacity: sd.opacity,
	}
}

// defs are the definition tables pre-scanned from the document.
type defs struct {
	gradients *ordmap.Map[string, *gradientDef]
	shadows   *ordmap.Map[string, *shadowDef]
}

// scanDefs collects every gradient and filter definition in the document,
// wherever it appears. frame is the native document size, used for
// percentage lengths in user space.
func (w *walker) scanDefs(root *node, frame math32.Vector2) {
	w.defs = defs{
		gradients: ordmap.New[string, *gradientDef](),
		shadows:   ordmap.New[string, *shadowDef](),
	}
	root.walkAll(func(n *node) {
		switch n.kind {
		case kindLinearGradient, kindRadialGradient:
			gd, err := w.readGradient(n, frame)
			if err != nil {
				w.nodeError(n, true, err)
				return
			}
			if gd.id != "" {
				w.defs.gradients.Add(gd.id, gd)
			}
		case kindFilter:
			sd, err := w.readShadow(n)
			if err != nil {
				w.nodeError(n, true, err)
				return
			}
			if sd != nil && n.id() != "" {
				w.defs.shadows.Add(n.id(), sd)
			}
		}
	})
	w.resolveGradientHrefs()
}

func (w *walker) readGradient(n *node, frame math32.Vector2) (*gradientDef, error) {
	w.cascade(n, nil)
	gd := &gradientDef{id: n.id(), radial: n.kind == kindRadialGradient}
	gd.href = refID(n.props["href"])
	gd.userSpace = strings.TrimSpace(n.props["gradientUnits"]) == "userSpaceOnUse"
	coord := func(name, def string, ref float32) (float32, error) {
		v, ok := n.props[name]
		if !ok {
			v = def
		}
		if gd.userSpace {
			return parseLength(v, ref)
		}
		return parseFraction(v)
	}
	var err error
	if gd.start.X, err = coord("x1", "0%", frame.X); err != nil {
		return nil, fmt.Errorf("%w: x1: %v", ErrInvalidAttribute, err)
	}
	if gd.start.Y, err = coord("y1", "0%", frame.Y); err != nil {
		return nil, fmt.Errorf("%w: y1: %v", ErrInvalidAttribute, err)
	}
	if gd.end.X, err = coord("x2", "100%", frame.X); err != nil {
		return nil, fmt.Errorf("%w: x2: %v", ErrInvalidAttribute, err)
	}
	if gd.end.Y, err = coord("y2", "0%", frame.Y); err != nil {
		return nil, fmt.Errorf("%w: y2: %v", ErrInvalidAttribute, err)
	}
	prev := float32(0)
	for _, c := range n.children {
		if c.kind != kindStop {
			continue
		}
		w.cascade(c, nil)
		st := scene.GradientStop{Color: colors.Black}
		if v, ok := c.props["offset"]; ok {
			off, err := parseFraction(v)
			if err != nil {
				w.nodeError(c, true, fmt.Errorf("%w: offset: %v", ErrInvalidAttribute, err))
				continue
			}
			st.Offset = off
		}
		st.Offset = max(math32.Clamp(st.Offset, 0, 1), prev)
		prev = st.Offset
		if v, ok := c.props["stop-color"]; ok && strings.TrimSpace(v) != "" {
			st.Color = strings.TrimSpace(v)
		}
		if v, ok := c.props["stop-opacity"]; ok {
			op, err := parseOpacity(v)
			if err != nil {
				w.nodeError(c, false, fmt.Errorf("%w: stop-opacity: %v", ErrInvalidAttribute, err))
			} else if col, err := colors.WithOpacity(st.Color, op); err == nil {
				st.Color = col
			} else {
				w.nodeError(c, false, fmt.Errorf("%w: stop-color: %v", ErrInvalidAttribute, err))
			}
		}
		gd.stops = append(gd.stops, st)
	}
	return gd, nil
}

// resolveGradientHrefs gives gradients without stops the stops of the
// gradient they reference, following chains of references.
func (w *walker) resolveGradientHrefs() {
	for _, gd := range w.defs.gradients.All() {
		seen := map[string]bool{gd.id: true}
		cur := gd
		for len(gd.stops) == 0 && cur.href != "" && !seen[cur.href] {
			seen[cur.href] = true
			next, ok := w.defs.gradients.Get(cur.href)
			if !ok {
				w.logger.Warn("gradient href not found", "id", gd.id, "href", cur.href)
				break
			}
			gd.stops = next.stops
			cur = next
		}
	}
}

// readShadow returns the drop shadow of a filter,
// or nil if the filter has no feDropShadow.
func (w *walker) readShadow(n *node) (*shadowDef, error) {
	var ds *node
	n.walkAll(func(c *node) {
		if ds == nil && c.kind == kindDropShadow {
			ds = c
		}
	})
	if ds == nil {
		return nil, nil
	}
	w.cascade(ds, nil)
	sd := &shadowDef{color: colors.Black, opacity: 1}
	if v := strings.TrimSpace(ds.props["flood-color"]); v != "" {
		sd.color = v
	}
	var err error
	if v, ok := ds.props["stdDeviation"]; ok {
		pts, perr := math32.ReadPoints(v)
		if perr != nil || len(pts) == 0 {
			return nil, fmt.Errorf("%w: stdDeviation %q", ErrInvalidAttribute, v)
		}
		sd.blur = pts[0]
	}
	if v, ok := ds.props["dx"]; ok {
		if sd.dx, err = math32.ParseFloat32(v); err != nil {
			return nil, fmt.Errorf("%w: dx: %v", ErrInvalidAttribute, err)
		}
	}
	if v, ok := ds.props["dy"]; ok {
		if sd.dy, err = math32.ParseFloat32(v); err != nil {
			return nil, fmt.Errorf("%w: dy: %v", ErrInvalidAttribute, err)
		}
	}
	if v, ok := ds.props["flood-opacity"]; ok {
		if sd.opacity, err = parseOpacity(v); err != nil {
			return nil, fmt.Errorf("%w: flood-opacity: %v", ErrInvalidAttribute, err)
		}
	}
	return sd, nil
}
