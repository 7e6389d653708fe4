package gamma

import "fmt"

// CurveSegmentKind is the kind of shape held by a [CurveSegment].
type CurveSegmentKind int

const (
	// LineKind is a [Line], which is infinite in at least one direction.
	LineKind CurveSegmentKind = iota + 1
	// LineSegmentKind is a finite [LineSegment].
	LineSegmentKind
	// HyperbolicKind is a [HyperbolicSegment].
	HyperbolicKind
)

func (k CurveSegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case LineSegmentKind:
		return "line segment"
	case HyperbolicKind:
		return "hyperbolic segment"
	default:
		return fmt.Sprintf("CurveSegmentKind(%d)", int(k))
	}
}

// CurveSegment is a drawable piece of a worldline or event line. Kind says
// which of the accessors is valid.
type CurveSegment struct {
	Kind CurveSegmentKind

	line Line
	seg  LineSegment
	hyp  HyperbolicSegment
}

func (l Line) Seg() CurveSegment {
	return CurveSegment{Kind: LineKind, line: l}
}

func (l LineSegment) Seg() CurveSegment {
	return CurveSegment{Kind: LineSegmentKind, seg: l}
}

func (h HyperbolicSegment) Seg() CurveSegment {
	return CurveSegment{Kind: HyperbolicKind, hyp: h}
}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (cs CurveSegment) Line() Line { return cs.line }

// LineSegment returns the line segment represented by this segment. This is
// only valid when Kind == LineSegmentKind.
func (cs CurveSegment) LineSegment() LineSegment { return cs.seg }

// Hyperbolic returns the hyperbolic segment represented by this segment. This
// is only valid when Kind == HyperbolicKind.
func (cs CurveSegment) Hyperbolic() HyperbolicSegment { return cs.hyp }

func (cs CurveSegment) String() string {
	switch cs.Kind {
	case LineKind:
		return cs.line.String()
	case LineSegmentKind:
		return cs.seg.String()
	case HyperbolicKind:
		return cs.hyp.String()
	default:
		return fmt.Sprintf("CurveSegment{Kind: %v}", cs.Kind)
	}
}

// linear returns the straight shape of a line or line segment.
func (cs CurveSegment) linear() Linear {
	switch cs.Kind {
	case LineKind:
		return cs.line
	case LineSegmentKind:
		return cs.seg
	default:
		panic(fmt.Sprintf("invalid straight CurveSegment kind %v", cs.Kind))
	}
}

// IsStraight reports whether the segment is a line or a line segment.
func (cs CurveSegment) IsStraight() bool {
	return cs.Kind == LineKind || cs.Kind == LineSegmentKind
}

func (cs CurveSegment) BoundingBox() Bounds {
	switch cs.Kind {
	case LineKind:
		return cs.line.BoundingBox()
	case LineSegmentKind:
		return cs.seg.BoundingBox()
	case HyperbolicKind:
		return cs.hyp.BoundingBox()
	default:
		panic(fmt.Sprintf("invalid CurveSegment kind %v", cs.Kind))
	}
}

// IntersectLine returns the earliest point where the segment meets l.
func (cs CurveSegment) IntersectLine(l Linear) (Coordinate, bool) {
	switch cs.Kind {
	case LineKind:
		return cs.line.Intersect(l)
	case LineSegmentKind:
		return cs.seg.Intersect(l)
	case HyperbolicKind:
		return cs.hyp.IntersectLine(l)
	default:
		panic(fmt.Sprintf("invalid CurveSegment kind %v", cs.Kind))
	}
}

// Clip returns the parts of the segment that lie in b.
func (cs CurveSegment) Clip(b Bounds) []CurveSegment {
	switch cs.Kind {
	case LineKind:
		if clipped, ok := cs.line.InfiniteClip(b); ok {
			return []CurveSegment{clipped}
		}
		return nil
	case LineSegmentKind:
		if clipped, ok := b.ClipSegment(cs.seg); ok {
			return []CurveSegment{clipped.Seg()}
		}
		return nil
	case HyperbolicKind:
		parts := cs.hyp.Clip(b)
		out := make([]CurveSegment, len(parts))
		for i, p := range parts {
			out[i] = p.Seg()
		}
		return out
	default:
		panic(fmt.Sprintf("invalid CurveSegment kind %v", cs.Kind))
	}
}
