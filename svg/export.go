// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/artflow/base/errors"
	"cogentcore.org/artflow/scene"
)

// Exporter writes scene elements as SVG markup.
type Exporter struct {

	// Estimator places the SVG text baseline within text boxes.
	// It should match the estimator of the [Importer] that reads
	// the markup back.
	Estimator TextBoxEstimator
}

// NewExporter returns an [Exporter] with the default settings.
func NewExporter() *Exporter {
	return &Exporter{Estimator: DefaultTextBox}
}

// Export returns indented markup for the visible elements on the given canvas.
func Export(elements []*scene.Element, canvas scene.Canvas) string {
	return NewExporter().Export(elements, canvas)
}

// SaveXML writes the markup for the elements to the given file.
func SaveXML(filename string, elements []*scene.Element, canvas scene.Canvas, indent bool) error {
	return NewExporter().SaveXML(filename, elements, canvas, indent)
}

// WriteXML writes the markup for the visible elements on the given canvas.
// See [Exporter.WriteXML].
func WriteXML(wr io.Writer, elements []*scene.Element, canvas scene.Canvas, indent bool) error {
	return NewExporter().WriteXML(wr, elements, canvas, indent)
}

// Export returns indented markup for the visible elements on the given canvas.
func (ex *Exporter) Export(elements []*scene.Element, canvas scene.Canvas) string {
	var sb strings.Builder
	errors.Log(ex.WriteXML(&sb, elements, canvas, true))
	return sb.String()
}

// SaveXML writes the markup for the elements to the given file.
func (ex *Exporter) SaveXML(filename string, elements []*scene.Element, canvas scene.Canvas, indent bool) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := ex.WriteXML(bw, elements, canvas, indent); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteXML writes the markup for the visible elements on the given canvas:
// a root sized to the canvas, an opaque background rect, gradient
// definitions, and one node per element in stacking order.
func (ex *Exporter) WriteXML(wr io.Writer, elements []*scene.Element, canvas scene.Canvas, indent bool) error {
	enc := xml.NewEncoder(wr)
	if indent {
		enc.Indent("", "  ")
	}
	xw := &xmlWriter{enc: enc, estimator: ex.Estimator}
	if xw.estimator == nil {
		xw.estimator = DefaultTextBox
	}

	me := xml.StartElement{Name: xml.Name{Local: "svg"}}
	XMLAddAttr(&me.Attr, "xmlns", "http://www.w3.org/2000/svg")
	XMLAddAttr(&me.Attr, "viewBox", fmt.Sprintf("0 0 %g %g", canvas.Width, canvas.Height))
	XMLAddAttr(&me.Attr, "width", fmt.Sprintf("%g", canvas.Width))
	XMLAddAttr(&me.Attr, "height", fmt.Sprintf("%g", canvas.Height))
	xw.start(me)

	bg := xml.StartElement{Name: xml.Name{Local: "rect"}}
	XMLAddAttr(&bg.Attr, "width", "100%")
	XMLAddAttr(&bg.Attr, "height", "100%")
	XMLAddAttr(&bg.Attr, "fill", canvas.BackgroundColor())
	xw.empty(bg)

	hasGrad := false
	for _, el := range elements {
		if el.Visible && el.Gradient != nil && exported(el) {
			if !hasGrad {
				xw.start(xml.StartElement{Name: xml.Name{Local: "defs"}})
				hasGrad = true
			}
			writeGradient(xw, el)
		}
	}
	if hasGrad {
		xw.end("defs")
	}

	for _, el := range elements {
		if el.Visible && exported(el) {
			writeElement(xw, el)
		}
	}
	xw.end("svg")
	if xw.err != nil {
		return xw.err
	}
	return enc.Flush()
}

// XMLAddAttr appends an attribute with the given name and value.
func XMLAddAttr(attr *[]xml.Attr, name, val string) {
	*attr = append(*attr, xml.Attr{Name: xml.Name{Local: name}, Value: val})
}

// xmlWriter encodes tokens, keeping the first error.
type xmlWriter struct {
	enc       *xml.Encoder
	estimator TextBoxEstimator
	err       error
}

func (xw *xmlWriter) token(t xml.Token) {
	if xw.err == nil {
		xw.err = xw.enc.EncodeToken(t)
	}
}

func (xw *xmlWriter) start(se xml.StartElement) { xw.token(se) }

func (xw *xmlWriter) end(name string) {
	xw.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (xw *xmlWriter) empty(se xml.StartElement) {
	xw.token(se)
	xw.token(se.End())
}

// exported returns whether the element has anything to write.
func exported(el *scene.Element) bool {
	switch el.Kind {
	case scene.Image:
		return !el.IsPlaceholder()
	case scene.Path:
		return el.Data != ""
	}
	return el.Kind.IsValid()
}

func gradientID(el *scene.Element) string {
	return "grad-" + el.ID
}

// writeGradient writes the element gradient in element-local user space.
func writeGradient(xw *xmlWriter, el *scene.Element) {
	g := el.Gradient
	se := xml.StartElement{Name: xml.Name{Local: "linearGradient"}}
	XMLAddAttr(&se.Attr, "id", gradientID(el))
	XMLAddAttr(&se.Attr, "gradientUnits", "userSpaceOnUse")
	XMLAddAttr(&se.Attr, "x1", fmt.Sprintf("%g", g.Start.X))
	XMLAddAttr(&se.Attr, "y1", fmt.Sprintf("%g", g.Start.Y))
	XMLAddAttr(&se.Attr, "x2", fmt.Sprintf("%g", g.End.X))
	XMLAddAttr(&se.Attr, "y2", fmt.Sprintf("%g", g.End.Y))
	xw.start(se)
	for _, st := range g.Stops {
		ss := xml.StartElement{Name: xml.Name{Local: "stop"}}
		XMLAddAttr(&ss.Attr, "offset", fmt.Sprintf("%g", st.Offset))
		XMLAddAttr(&ss.Attr, "stop-color", st.Color)
		xw.empty(ss)
	}
	xw.end("linearGradient")
}

// writeElement writes one element node with its combined transform.
func writeElement(xw *xmlWriter, el *scene.Element) {
	se := xml.StartElement{}
	text := ""
	switch el.Kind {
	case scene.Rect:
		se.Name.Local = "rect"
		XMLAddAttr(&se.Attr, "width", fmt.Sprintf("%g", el.Width))
		XMLAddAttr(&se.Attr, "height", fmt.Sprintf("%g", el.Height))
		if el.CornerRadius > 0 {
			XMLAddAttr(&se.Attr, "rx", fmt.Sprintf("%g", el.CornerRadius))
		}
	case scene.Circle:
		se.Name.Local = "circle"
		r := el.Radius()
		XMLAddAttr(&se.Attr, "cx", fmt.Sprintf("%g", r))
		XMLAddAttr(&se.Attr, "cy", fmt.Sprintf("%g", r))
		XMLAddAttr(&se.Attr, "r", fmt.Sprintf("%g", r))
	case scene.Text:
		se.Name.Local = "text"
		anchor, xoff := "start", float32(0)
		switch el.Align {
		case scene.AlignCenter:
			anchor, xoff = "middle", el.Width/2
		case scene.AlignRight:
			anchor, xoff = "end", el.Width
		}
		XMLAddAttr(&se.Attr, "x", fmt.Sprintf("%g", xoff))
		XMLAddAttr(&se.Attr, "y", fmt.Sprintf("%g", xw.estimator.Baseline(el.FontSize)))
		XMLAddAttr(&se.Attr, "text-anchor", anchor)
		if el.FontFamily != "" {
			XMLAddAttr(&se.Attr, "font-family", el.FontFamily)
		}
		XMLAddAttr(&se.Attr, "font-size", fmt.Sprintf("%g", el.FontSize))
		weight, style := "normal", "normal"
		if el.FontStyle.HasFlag(scene.Bold) {
			weight = "bold"
		}
		if el.FontStyle.HasFlag(scene.Italic) {
			style = "italic"
		}
		XMLAddAttr(&se.Attr, "font-weight", weight)
		XMLAddAttr(&se.Attr, "font-style", style)
		if el.Decoration != scene.DecoNone {
			XMLAddAttr(&se.Attr, "text-decoration", el.Decoration.String())
		}
		XMLAddAttr(&se.Attr, "data-width", fmt.Sprintf("%g", el.Width))
		if el.Align == scene.AlignJustify {
			XMLAddAttr(&se.Attr, "data-align", "justify")
		}
		text = el.Text
	case scene.Image:
		se.Name.Local = "image"
		XMLAddAttr(&se.Attr, "href", el.Src)
		XMLAddAttr(&se.Attr, "width", fmt.Sprintf("%g", el.Width))
		XMLAddAttr(&se.Attr, "height", fmt.Sprintf("%g", el.Height))
		XMLAddAttr(&se.Attr, "preserveAspectRatio", "none")
	case scene.Path:
		se.Name.Local = "path"
		XMLAddAttr(&se.Attr, "d", el.Data)
	}

	XMLAddAttr(&se.Attr, "transform", fmt.Sprintf("translate(%g %g) rotate(%g) scale(%g %g)", el.X, el.Y, el.Rotation, el.ScaleX, el.ScaleY))
	XMLAddAttr(&se.Attr, "opacity", fmt.Sprintf("%g", el.Opacity))
	if el.Kind != scene.Image {
		switch {
		case el.Gradient != nil:
			XMLAddAttr(&se.Attr, "fill", "url(#"+gradientID(el)+")")
		case el.Fill != "":
			XMLAddAttr(&se.Attr, "fill", el.Fill)
		default:
			XMLAddAttr(&se.Attr, "fill", "none")
		}
	}
	if el.Stroke.Color != "" {
		XMLAddAttr(&se.Attr, "stroke", el.Stroke.Color)
		XMLAddAttr(&se.Attr, "stroke-width", fmt.Sprintf("%g", el.Stroke.Width))
		if el.Stroke.Cap != scene.LineCapButt {
			XMLAddAttr(&se.Attr, "stroke-linecap", el.Stroke.Cap.String())
		}
		if el.Stroke.Join != scene.LineJoinMiter {
			XMLAddAttr(&se.Attr, "stroke-linejoin", el.Stroke.Join.String())
		}
	}
	xw.start(se)
	if text != "" {
		xw.token(xml.CharData(text))
	}
	xw.end(se.Name.Local)
}
