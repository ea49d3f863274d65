// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/artflow/colors"
	"cogentcore.org/artflow/math32"
	"cogentcore.org/artflow/scene"
)

// Importer imports SVG markup into scene elements.
// The zero value is not usable; use [NewImporter].
type Importer struct {

	// Estimator places text boxes relative to SVG text anchors.
	Estimator TextBoxEstimator

	// DefaultSize is the native document size used when the root
	// has neither a viewBox nor width and height attributes.
	DefaultSize math32.Vector2

	// MalformedViewBoxSize is the native size used when the
	// root viewBox attribute cannot be read.
	MalformedViewBoxSize math32.Vector2

	// DefaultFontSize is the font size of text without a font-size.
	DefaultFontSize float32

	// DefaultFontFamily is the font family of text without a font-family.
	DefaultFontFamily string

	// Logger receives debug messages for skipped nodes
	// and warnings for unresolved references.
	Logger *slog.Logger
}

// NewImporter returns an [Importer] with the default settings.
func NewImporter() *Importer {
	return &Importer{
		Estimator:            DefaultTextBox,
		DefaultSize:          math32.Vec2(1080, 1080),
		MalformedViewBoxSize: math32.Vec2(100, 100),
		DefaultFontSize:      16,
		DefaultFontFamily:    "Inter",
		Logger:               slog.Default(),
	}
}

// Import parses the markup and returns its elements fitted inside a
// target canvas of the given size, in back-to-front order.
// If the markup cannot be parsed it returns no elements and an error
// wrapping [ErrMalformedInput]. Otherwise any per-node problems are
// returned as an [*ImportError] alongside the imported elements.
func Import(markup string, targetWidth, targetHeight float32) ([]*scene.Element, error) {
	return NewImporter().Import(markup, targetWidth, targetHeight)
}

// ReadXML is [Import] reading from the given reader.
func ReadXML(reader io.Reader, targetWidth, targetHeight float32) ([]*scene.Element, error) {
	return NewImporter().ReadXML(reader, targetWidth, targetHeight)
}

// OpenXML is [Import] reading from the given file.
func OpenXML(filename string, targetWidth, targetHeight float32) ([]*scene.Element, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadXML(bufio.NewReader(fp), targetWidth, targetHeight)
}

// Import parses the markup; see the package-level [Import].
func (im *Importer) Import(markup string, targetWidth, targetHeight float32) ([]*scene.Element, error) {
	return im.ReadXML(strings.NewReader(markup), targetWidth, targetHeight)
}

// ReadXML parses markup from the reader; see the package-level [Import].
func (im *Importer) ReadXML(reader io.Reader, targetWidth, targetHeight float32) ([]*scene.Element, error) {
	if !(targetWidth > 0 && targetHeight > 0) {
		return nil, fmt.Errorf("svg.Import: %w: %gx%g", ErrInvalidTarget, targetWidth, targetHeight)
	}
	root, err := readTree(reader)
	if err != nil {
		im.logger().Error("svg.Import: cannot parse markup", "err", err)
		return nil, fmt.Errorf("svg.Import: %w", err)
	}
	w := &walker{im: im, logger: im.logger(), estimator: im.Estimator}
	if w.estimator == nil {
		w.estimator = DefaultTextBox
	}
	origin, size := w.nativeFrame(root)
	w.frame = size
	w.fit = newFit(origin, size, math32.Vec2(targetWidth, targetHeight))
	w.collectStyles(root)
	w.scanDefs(root, size)
	if err := w.cascade(root, nil); err != nil {
		w.nodeError(root, false, fmt.Errorf("%w: style: %v", ErrInvalidAttribute, err))
	}
	w.walkChildren(root, rootState())
	w.logger.Debug("svg.Import: done", "elements", len(w.elements), "problems", len(w.problems), "fit", w.fit.Scale)
	return w.elements, w.err()
}

func (im *Importer) logger() *slog.Logger {
	if im.Logger == nil {
		return slog.Default()
	}
	return im.Logger
}

// walker holds the state of one import.
type walker struct {
	im        *Importer
	logger    *slog.Logger
	estimator TextBoxEstimator

	// frame is the native document size.
	frame math32.Vector2
	fit   fit
	sheet styleSheet
	defs  defs

	elements []*scene.Element
	problems []*NodeError
}

func (w *walker) nodeError(n *node, skipped bool, err error) {
	ne := &NodeError{Tag: n.tag, ID: n.id(), Skipped: skipped, Err: err}
	w.problems = append(w.problems, ne)
	if errors.Is(err, ErrUnresolvedReference) {
		w.logger.Warn("svg.Import: unresolved reference", "tag", ne.Tag, "id", ne.ID, "err", err)
		return
	}
	w.logger.Debug("svg.Import: node problem", "tag", ne.Tag, "id", ne.ID, "skipped", skipped, "err", err)
}

func (w *walker) err() error {
	if len(w.problems) == 0 {
		return nil
	}
	return &ImportError{Nodes: w.problems}
}

// nativeFrame returns the origin and size of the document coordinate frame:
// the viewBox, else the width and height attributes, else the default size.
func (w *walker) nativeFrame(root *node) (origin, size math32.Vector2) {
	if vb, ok := root.attrs["viewBox"]; ok {
		pts, err := math32.ReadPoints(vb)
		if err == nil && len(pts) == 4 && pts[2] > 0 && pts[3] > 0 {
			return math32.Vec2(pts[0], pts[1]), math32.Vec2(pts[2], pts[3])
		}
		w.nodeError(root, false, fmt.Errorf("%w: viewBox %q", ErrInvalidAttribute, vb))
		return math32.Vector2{}, w.im.MalformedViewBoxSize
	}
	size = w.im.DefaultSize
	dim := func(name string, def float32) float32 {
		v, ok := root.attrs[name]
		if !ok {
			return def
		}
		f, err := parseLength(v, def)
		if err != nil || !(f > 0) {
			w.nodeError(root, false, fmt.Errorf("%w: %s %q", ErrInvalidAttribute, name, v))
			return def
		}
		return f
	}
	return math32.Vector2{}, math32.Vec2(dim("width", size.X), dim("height", size.Y))
}

func (w *walker) collectStyles(root *node) {
	root.walkAll(func(n *node) {
		if n.kind != kindStyle {
			return
		}
		if err := w.sheet.add(n.textContent()); err != nil {
			w.nodeError(n, true, err)
		}
	})
}

func (w *walker) walkChildren(n *node, ts transformState) {
	for _, c := range n.children {
		w.walk(c, ts, n.props)
	}
}

// walk imports the node and its subtree with the given parent state.
func (w *walker) walk(n *node, parent transformState, inherit map[string]string) {
	switch n.kind {
	case kindChars, kindDefs, kindStyle, kindLinearGradient, kindRadialGradient, kindStop, kindFilter, kindDropShadow:
		return
	case kindUnknown:
		w.logger.Debug("svg.Import: skipping unsupported element", "tag", n.tag)
		return
	}
	if err := w.cascade(n, inherit); err != nil {
		w.nodeError(n, false, fmt.Errorf("%w: style: %v", ErrInvalidAttribute, err))
	}
	if strings.TrimSpace(n.props["display"]) == "none" {
		return
	}
	ts, err := w.state(n, parent)
	if err != nil {
		w.nodeError(n, true, err)
		return
	}
	if n.kind == kindGroup {
		w.walkChildren(n, ts)
		return
	}
	el, err := w.emit(n, ts)
	if err != nil {
		w.nodeError(n, true, err)
		return
	}
	el.Sanitize()
	w.elements = append(w.elements, el)
}

// state returns the absolute state of the node from its transform and opacity.
func (w *walker) state(n *node, parent transformState) (transformState, error) {
	local := localTransform{Scale: math32.Vec2(1, 1)}
	if tf, ok := n.props["transform"]; ok {
		var err error
		local, err = parseTransform(tf)
		if err != nil {
			return parent, fmt.Errorf("%w: transform: %v", ErrInvalidAttribute, err)
		}
	}
	if n.kind == kindGroup && strings.EqualFold(n.tag, "svg") {
		// nested svg viewport position
		a := attrReader{n: n}
		pos := math32.Vec2(a.length("x", 0, w.frame.X), a.length("y", 0, w.frame.Y))
		if a.err != nil {
			return parent, a.err
		}
		local.Translate = local.Translate.Add(pos.Mul(local.Scale))
	}
	opacity := float32(1)
	if v, ok := n.props["opacity"]; ok {
		var err error
		if opacity, err = parseOpacity(v); err != nil {
			return parent, fmt.Errorf("%w: opacity: %v", ErrInvalidAttribute, err)
		}
	}
	return parent.compose(local, opacity), nil
}

// attrReader reads numeric properties of a node, keeping the first error.
type attrReader struct {
	n   *node
	err error
}

func (a *attrReader) fail(name, v string, err error) {
	if a.err == nil {
		a.err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidAttribute, name, v, err)
	}
}

// length returns the named length, or def if it is not set.
func (a *attrReader) length(name string, def, ref float32) float32 {
	v, ok := a.n.props[name]
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	f, err := parseLength(v, ref)
	if err != nil {
		a.fail(name, v, err)
		return def
	}
	return f
}

// first returns the first length in a list valued property such as text x.
func (a *attrReader) first(name string, def, ref float32) float32 {
	v, ok := a.n.props[name]
	if !ok {
		return def
	}
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	if len(fields) == 0 {
		return def
	}
	f, err := parseLength(fields[0], ref)
	if err != nil {
		a.fail(name, v, err)
		return def
	}
	return f
}

// size returns a non-negative length.
func (a *attrReader) size(name string, def, ref float32) float32 {
	f := a.length(name, def, ref)
	if f < 0 {
		a.fail(name, a.n.props[name], errors.New("negative size"))
		return 0
	}
	return f
}

// emit returns the element for a leaf node.
func (w *walker) emit(n *node, ts transformState) (*scene.Element, error) {
	a := attrReader{n: n}
	s := w.fit.Scale
	fw, fh := w.frame.X, w.frame.Y
	var el *scene.Element
	// gradient placement for userSpaceOnUse: box origin in node units,
	// and the scale from node units to element-local pixels
	var gorigin math32.Vector2
	gscale := ts.Scale.MulScalar(s)

	switch n.kind {
	case kindRect, kindImage:
		kind, def := scene.Rect, float32(0)
		if n.kind == kindImage {
			kind, def = scene.Image, 100
		}
		x, y := a.length("x", 0, fw), a.length("y", 0, fh)
		width, height := a.size("width", def, fw), a.size("height", def, fh)
		rx := a.size("rx", 0, fw)
		if _, ok := n.props["rx"]; !ok {
			rx = a.size("ry", 0, fh)
		}
		if a.err != nil {
			return nil, a.err
		}
		el = scene.NewElement(kind)
		w.place(el, ts, math32.Vec2(x, y))
		el.Width = width * math32.Abs(ts.Scale.X) * s
		el.Height = height * math32.Abs(ts.Scale.Y) * s
		el.ScaleX, el.ScaleY = flip(ts.Scale.X), flip(ts.Scale.Y)
		if kind == scene.Rect {
			el.CornerRadius = rx * math32.Abs(ts.Scale.X) * s
		} else {
			el.Src = strings.TrimSpace(n.props["href"])
		}
		gorigin = math32.Vec2(x, y)

	case kindCircle, kindEllipse:
		cx, cy := a.length("cx", 0, fw), a.length("cy", 0, fh)
		var r, ry float32
		if n.kind == kindCircle {
			r = a.size("r", 0, min(fw, fh))
			ry = r
		} else {
			r, ry = a.size("rx", 0, fw), a.size("ry", 0, fh)
		}
		if a.err != nil {
			return nil, a.err
		}
		el = scene.NewElement(scene.Circle)
		c := w.fit.apply(ts.point(math32.Vec2(cx, cy)))
		sx := math32.Abs(ts.Scale.X)
		el.Width = 2 * r * sx * s
		el.Height = el.Width
		if r > 0 && sx > 0 {
			// ellipses and non-uniform scales keep the circle aspect-locked
			// and carry the vertical ratio in ScaleY
			el.ScaleY = (ry / r) * (ts.Scale.Y / sx)
		}
		el.X = c.X - el.Width/2
		el.Y = c.Y - el.Width/2*el.ScaleY
		el.Rotation = ts.Rotate
		el.Opacity = ts.Opacity
		gorigin = math32.Vec2(cx-r, cy-ry)

	case kindText:
		var err error
		if el, err = w.textElement(n, ts); err != nil {
			return nil, err
		}

	case kindPath, kindPolygon, kindPolyline, kindLine:
		var data string
		switch n.kind {
		case kindPath:
			data = strings.TrimSpace(n.props["d"])
		case kindLine:
			x1, y1 := a.length("x1", 0, fw), a.length("y1", 0, fh)
			x2, y2 := a.length("x2", 0, fw), a.length("y2", 0, fh)
			if a.err != nil {
				return nil, a.err
			}
			data = fmt.Sprintf("M%g %g L%g %g", x1, y1, x2, y2)
		default:
			d, err := polyPath(n.props["points"], n.kind == kindPolygon)
			if err != nil {
				return nil, err
			}
			data = d
		}
		el = scene.NewElement(scene.Path)
		el.Data = data
		p := w.fit.apply(ts.Translate)
		el.X, el.Y = p.X, p.Y
		el.ScaleX = ts.Scale.X * s
		el.ScaleY = ts.Scale.Y * s
		el.Width, el.Height = 100, 100
		el.Rotation = ts.Rotate
		el.Opacity = ts.Opacity
		gscale = math32.Vec2(1, 1)

	default:
		return nil, fmt.Errorf("unsupported element <%s>", n.tag)
	}
	if err := finite(el); err != nil {
		return nil, err
	}
	w.paint(n, el, ts, gorigin, gscale)
	switch {
	case n.kind == kindLine, n.kind == kindImage:
		el.SetFill("")
	case n.kind == kindText && el.Fill == "" && el.Gradient == nil:
		el.SetFill(colors.Black)
	}
	return el, nil
}

// flip returns -1 for a negative scale and 1 otherwise.
func flip(scale float32) float32 {
	if scale < 0 {
		return -1
	}
	return 1
}

// place sets the position of the element box from a point in node units,
// along with the absolute rotation and opacity.
func (w *walker) place(el *scene.Element, ts transformState, p math32.Vector2) {
	fp := w.fit.apply(ts.point(p))
	el.X, el.Y = fp.X, fp.Y
	el.Rotation = ts.Rotate
	el.Opacity = ts.Opacity
}

// polyPath converts a polygon or polyline point list to path data.
func polyPath(points string, closed bool) (string, error) {
	pts, err := math32.ReadPoints(points)
	if err != nil {
		return "", fmt.Errorf("%w: points: %v", ErrInvalidAttribute, err)
	}
	if len(pts)%2 != 0 {
		return "", fmt.Errorf("%w: points: odd number of coordinates (%d)", ErrInvalidAttribute, len(pts))
	}
	var sb strings.Builder
	for i := 0; i < len(pts); i += 2 {
		if i == 0 {
			fmt.Fprintf(&sb, "M%g %g", pts[i], pts[i+1])
		} else {
			fmt.Fprintf(&sb, " L%g %g", pts[i], pts[i+1])
		}
	}
	if closed && len(pts) > 0 {
		sb.WriteString(" Z")
	}
	return sb.String(), nil
}

func finite(el *scene.Element) error {
	for _, v := range []float32{el.X, el.Y, el.Width, el.Height, el.ScaleX, el.ScaleY, el.Rotation} {
		if !math32.IsFinite(v) {
			return fmt.Errorf("%w: non-finite geometry", ErrInvalidAttribute)
		}
	}
	return nil
}

// paint sets fill, stroke, shadow and visibility from the node properties.
func (w *walker) paint(n *node, el *scene.Element, ts transformState, gorigin, gscale math32.Vector2) {
	fill, ok := n.props["fill"]
	if !ok {
		fill = colors.Black
	}
	fill = strings.TrimSpace(fill)
	switch {
	case isURL(fill):
		id := refID(fill)
		gd, ok := w.defs.gradients.Get(id)
		switch {
		case !ok:
			w.nodeError(n, false, fmt.Errorf("%w: fill %s", ErrUnresolvedReference, fill))
			el.SetFill(colors.Black)
		case gd.radial:
			w.nodeError(n, false, fmt.Errorf("%w: fill %s is a radialGradient", ErrUnresolvedReference, fill))
			el.SetFill(colors.Black)
		default:
			el.SetGradient(gd.denormalize(math32.Vec2(el.Width, el.Height), gorigin, gscale))
		}
	case colors.IsNone(fill):
		el.SetFill("")
	default:
		el.SetFill(w.withOpacity(n, "fill", fill))
	}

	stroke := strings.TrimSpace(n.props["stroke"])
	if isURL(stroke) {
		gd, ok := w.defs.gradients.Get(refID(stroke))
		if ok && len(gd.stops) > 0 {
			stroke = gd.stops[0].Color
		} else {
			w.nodeError(n, false, fmt.Errorf("%w: stroke %s", ErrUnresolvedReference, stroke))
			stroke = ""
		}
	}
	if !colors.IsNone(stroke) {
		a := attrReader{n: n}
		sw := a.size("stroke-width", 1, w.frame.X)
		if a.err != nil {
			w.nodeError(n, false, a.err)
		}
		el.Stroke.Color = w.withOpacity(n, "stroke", stroke)
		el.Stroke.Width = sw * w.fit.Scale * math32.Abs(ts.Scale.X)
		if v, ok := n.props["stroke-linecap"]; ok {
			if err := el.Stroke.Cap.SetString(v); err != nil {
				w.logger.Debug("svg.Import: ignoring stroke-linecap", "err", err)
			}
		}
		if v, ok := n.props["stroke-linejoin"]; ok {
			if v == "miter-clip" || v == "arcs" {
				v = "miter"
			}
			if err := el.Stroke.Join.SetString(v); err != nil {
				w.logger.Debug("svg.Import: ignoring stroke-linejoin", "err", err)
			}
		}
	}

	if filter := strings.TrimSpace(n.props["filter"]); isURL(filter) {
		if sd, ok := w.defs.shadows.Get(refID(filter)); ok {
			el.Shadow = sd.scale(w.fit.Scale)
		} else {
			w.nodeError(n, false, fmt.Errorf("%w: filter %s", ErrUnresolvedReference, filter))
		}
	}

	switch strings.TrimSpace(n.props["visibility"]) {
	case "hidden", "collapse":
		el.Visible = false
	}
}

// withOpacity folds a fill-opacity or stroke-opacity into the paint color.
func (w *walker) withOpacity(n *node, prop, paint string) string {
	v, ok := n.props[prop+"-opacity"]
	if !ok {
		return paint
	}
	op, err := parseOpacity(v)
	if err != nil {
		w.nodeError(n, false, fmt.Errorf("%w: %s-opacity: %v", ErrInvalidAttribute, prop, err))
		return paint
	}
	c, err := colors.WithOpacity(paint, op)
	if err != nil {
		w.nodeError(n, false, fmt.Errorf("%w: %s: %v", ErrInvalidAttribute, prop, err))
		return paint
	}
	return c
}
