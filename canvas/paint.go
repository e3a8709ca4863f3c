package canvas

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint represents the styling information for drawing.
type Paint struct {
	// Brush is the fill or stroke brush.
	Brush Brush

	// LineWidth is the width of strokes.
	LineWidth float64

	// LineCap is the shape of line endpoints.
	LineCap LineCap

	// FillRule is the fill rule for paths.
	FillRule FillRule
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Brush:     Solid(Black),
		LineWidth: 1.0,
		LineCap:   LineCapButt,
		FillRule:  FillRuleNonZero,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	clone := *p
	return &clone
}
