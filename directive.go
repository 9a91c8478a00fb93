package tuix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/tuix/internal/layout"
)

// Reserved property keys read by the layout engine. Components never see
// them as content.
const (
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyMargin       = "margin"
	KeyMarginTop    = "margin_top"
	KeyMarginRight  = "margin_right"
	KeyMarginBottom = "margin_bottom"
	KeyMarginLeft   = "margin_left"
	KeyPadding      = "padding"
	KeyPaddingTop   = "padding_top"
	KeyPaddingRight = "padding_right"
	KeyPaddingBot   = "padding_bottom"
	KeyPaddingLeft  = "padding_left"
	KeyAlign        = "align"
	KeyAlignX       = "align_x"
	KeyAlignY       = "align_y"
	KeyFlow         = "flow"
)

var layoutKeys = map[string]bool{
	KeyWidth: true, KeyHeight: true,
	KeyMargin: true, KeyMarginTop: true, KeyMarginRight: true, KeyMarginBottom: true, KeyMarginLeft: true,
	KeyPadding: true, KeyPaddingTop: true, KeyPaddingRight: true, KeyPaddingBot: true, KeyPaddingLeft: true,
	KeyAlign: true, KeyAlignX: true, KeyAlignY: true, KeyFlow: true,
}

// maxCells bounds every cell count and percentage a directive may carry.
const maxCells = math.MaxInt32

// inRange reports whether f is finite and no larger than maxCells.
func inRange(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f <= maxCells
}

// IsLayoutKey reports whether key is read by the layout engine.
func IsLayoutKey(key string) bool {
	return layoutKeys[key]
}

// ParseDirective derives the layout directive of a node from its
// properties. Unusable values fall back to the default for that field and
// are reported as *DirectiveWarning; parsing never fails.
func ParseDirective(nodeID string, props Props) (Directive, []error) {
	p := directiveParser{id: nodeID, props: props}
	d := layout.DefaultDirective()

	d.Width = p.size(KeyWidth)
	d.Height = p.size(KeyHeight)

	all := p.margin(KeyMargin, layout.Margin{})
	d.Margin.Top = p.margin(KeyMarginTop, all)
	d.Margin.Right = p.margin(KeyMarginRight, all)
	d.Margin.Bottom = p.margin(KeyMarginBottom, all)
	d.Margin.Left = p.margin(KeyMarginLeft, all)

	pad := p.cells(KeyPadding, 0)
	d.Padding = layout.Edges{
		Top:    p.cells(KeyPaddingTop, pad),
		Right:  p.cells(KeyPaddingRight, pad),
		Bottom: p.cells(KeyPaddingBot, pad),
		Left:   p.cells(KeyPaddingLeft, pad),
	}

	align := p.align(KeyAlign, layout.AlignStart)
	d.AlignX = p.align(KeyAlignX, align)
	d.AlignY = p.align(KeyAlignY, align)

	d.Flow = p.flow()

	return d, p.warnings
}

type directiveParser struct {
	id       string
	props    Props
	warnings []error
}

func (p *directiveParser) warn(key string, v Prop, format string, args ...any) {
	p.warnings = append(p.warnings, &DirectiveWarning{
		NodeID: p.id,
		Key:    key,
		Value:  v.String(),
		Err:    fmt.Errorf("%w: %s", ErrBadDirective, fmt.Sprintf(format, args...)),
	})
}

// size parses "auto", a cell count, "n%", or a fraction in (0, 1].
func (p *directiveParser) size(key string) layout.Value {
	v, ok := p.props[key]
	if !ok {
		return layout.Auto()
	}

	switch v.Kind() {
	case PropInt:
		if v.num > maxCells {
			p.warn(key, v, "size out of range")
			return layout.Auto()
		}
		return layout.Fixed(v.num)
	case PropFloat:
		if !inRange(v.flt) {
			p.warn(key, v, "size out of range")
			return layout.Auto()
		}
		if v.flt > 0 && v.flt <= 1 {
			return layout.Percent(v.flt * 100)
		}
		if v.flt >= 0 && v.flt == math.Trunc(v.flt) {
			return layout.Fixed(int(v.flt))
		}
		p.warn(key, v, "fractional size must be in (0, 1]")
		return layout.Auto()
	case PropString:
		s := strings.TrimSpace(strings.ToLower(v.str))
		switch {
		case s == "auto" || s == "":
			return layout.Auto()
		case strings.HasSuffix(s, "%"):
			pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
			if err != nil || pct < 0 || !inRange(pct) {
				p.warn(key, v, "bad percentage")
				return layout.Auto()
			}
			return layout.Percent(pct)
		}
		if n, err := strconv.Atoi(s); err == nil && n <= maxCells {
			return layout.Fixed(n)
		}
	}
	p.warn(key, v, "want auto, a cell count, n%% or a fraction")
	return layout.Auto()
}

// margin parses a cell count, "centered", "custom", or a fraction in [0, 1].
func (p *directiveParser) margin(key string, def layout.Margin) layout.Margin {
	v, ok := p.props[key]
	if !ok {
		return def
	}

	switch v.Kind() {
	case PropInt:
		if v.num < 0 || v.num > maxCells {
			p.warn(key, v, "margin out of range")
			return layout.Margin{}
		}
		return layout.MarginCells(v.num)
	case PropFloat:
		if v.flt >= 0 && v.flt <= 1 {
			return layout.MarginOf(v.flt)
		}
		if v.flt > 1 && inRange(v.flt) && v.flt == math.Trunc(v.flt) {
			return layout.MarginCells(int(v.flt))
		}
		p.warn(key, v, "fractional margin must be in [0, 1]")
		return layout.Margin{}
	case PropString:
		s := strings.TrimSpace(strings.ToLower(v.str))
		switch s {
		case "centered", "center":
			return layout.Centered()
		case "custom", "":
			return layout.Margin{}
		}
		if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= maxCells {
			return layout.MarginCells(n)
		}
	}
	p.warn(key, v, "want a cell count, centered, or a fraction")
	return layout.Margin{}
}

// cells parses a non-negative cell count.
func (p *directiveParser) cells(key string, def int) int {
	v, ok := p.props[key]
	if !ok {
		return def
	}
	if f, isNum := v.Float(); isNum && !inRange(f) {
		p.warn(key, v, "cell count out of range")
		return 0
	}
	n, ok := v.Int()
	if !ok || n < 0 || v.Kind() == PropBool {
		p.warn(key, v, "want a non-negative cell count")
		return 0
	}
	return n
}

func (p *directiveParser) align(key string, def layout.Align) layout.Align {
	v, ok := p.props[key]
	if !ok {
		return def
	}
	switch strings.TrimSpace(strings.ToLower(v.Str())) {
	case "start", "left", "top":
		return layout.AlignStart
	case "center", "centre", "middle":
		return layout.AlignCenter
	case "end", "right", "bottom":
		return layout.AlignEnd
	}
	p.warn(key, v, "want start, center or end")
	return layout.AlignStart
}

func (p *directiveParser) flow() layout.Flow {
	v, ok := p.props[KeyFlow]
	if !ok {
		return layout.FlowOverlay
	}
	switch strings.TrimSpace(strings.ToLower(v.Str())) {
	case "overlay", "":
		return layout.FlowOverlay
	case "column", "vertical":
		return layout.FlowColumn
	case "row", "horizontal":
		return layout.FlowRow
	}
	p.warn(KeyFlow, v, "want overlay, column or row")
	return layout.FlowOverlay
}
