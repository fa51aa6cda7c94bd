package chart

// Label and value placement relative to the drawn shape.
const (
	PositionNone    = "none"
	PositionAxis    = "axis"
	PositionInside  = "inside"
	PositionOutside = "outside"
	PositionFit     = "fit"
)

// Text alignment within the placement slot.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Positions lists the legal values for position options.
var Positions = []string{PositionNone, PositionAxis, PositionInside, PositionOutside, PositionFit}

// Alignments lists the legal values for alignment options.
var Alignments = []string{AlignLeft, AlignCenter, AlignRight}
