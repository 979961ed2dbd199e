package stroker

import "github.com/gogpu/strokefill/internal/geom"

// Orient buffers a regular contour and ensures it has a canonical
// (counter-clockwise, positive-area) orientation, reversing it in
// place if necessary. This mirrors the pipeline's orient stage, which
// buffers one contour and distributes a consistent orientation
// decision before replaying it downstream; reversal matters because
// thickening's winding-consistent fill output assumes a fixed
// traversal sense.
func Orient(c RegularContour) RegularContour {
	if signedArea(c) >= 0 {
		return c
	}
	return reverseContour(c)
}

func signedArea(c RegularContour) float64 {
	var area float64
	prev := c.P0
	walk := func(p geom.Vec2) {
		area += prev.Cross(p)
		prev = p
	}
	for _, item := range c.Items {
		switch item.Kind {
		case ItemPiece:
			walk(segmentEndpoint(item.Piece.Seg, item.Piece.Tf))
		case ItemDegenerate:
			walk(item.DegenPf)
		case ItemCusp:
			walk(item.CuspP)
		}
	}
	return area
}

func reverseContour(c RegularContour) RegularContour {
	n := len(c.Items)
	rev := make([]RegularItem, n)
	for i, item := range c.Items {
		rev[n-1-i] = reverseItem(item)
	}
	return RegularContour{
		Closed: c.Closed,
		P0:     c.PN,
		D0:     negateOrZero(c.DN),
		Items:  rev,
		DN:     negateOrZero(c.D0),
		PN:     c.P0,
	}
}

func negateOrZero(d geom.Vec2) geom.Vec2 {
	if d == (geom.Vec2{}) {
		return d
	}
	return d.Neg()
}

func reverseItem(item RegularItem) RegularItem {
	switch item.Kind {
	case ItemPiece:
		return RegularItem{
			Kind: ItemPiece,
			Piece: RegularPiece{
				Seg:    reverseSegment(item.Piece.Seg),
				Ti:     1 - item.Piece.Tf,
				Tf:     1 - item.Piece.Ti,
				DStart: negateOrZero(item.Piece.DEnd),
				DEnd:   negateOrZero(item.Piece.DStart),
			},
		}
	case ItemDegenerate:
		return RegularItem{
			Kind:    ItemDegenerate,
			DegenPi: item.DegenPf,
			DegenD:  negateOrZero(item.DegenD),
			DegenPf: item.DegenPi,
		}
	default:
		return RegularItem{
			Kind:   ItemCusp,
			CuspD0: negateOrZero(item.CuspD1),
			CuspD1: negateOrZero(item.CuspD0),
			CuspP:  item.CuspP,
			CuspW:  item.CuspW,
		}
	}
}
