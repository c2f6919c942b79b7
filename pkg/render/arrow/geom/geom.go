// Package geom computes the chevron glyph geometry shared by the arrow
// generators. All coordinates are integer canvas units and every division
// truncates, so identical inputs always yield identical points.
package geom

import (
	"github.com/helgeesch/captain-arro/pkg/arrow"
	"github.com/helgeesch/captain-arro/pkg/errors"
)

// ChevronPoints returns the three points of an open chevron centered in a
// w-by-h canvas, pointing in the given direction. The glyph spans half the
// canvas across the travel axis (offsets w/4, h/4) and half of that along it.
func ChevronPoints(dir arrow.Direction, w, h int) ([3]arrow.Point, error) {
	cx, cy := w/2, h/2
	ox, oy := w/4, h/4

	switch dir {
	case arrow.DirectionDown:
		return [3]arrow.Point{
			{X: cx - ox, Y: cy - oy/2},
			{X: cx, Y: cy + oy/2},
			{X: cx + ox, Y: cy - oy/2},
		}, nil
	case arrow.DirectionUp:
		return [3]arrow.Point{
			{X: cx - ox, Y: cy + oy/2},
			{X: cx, Y: cy - oy/2},
			{X: cx + ox, Y: cy + oy/2},
		}, nil
	case arrow.DirectionRight:
		return [3]arrow.Point{
			{X: cx - ox/2, Y: cy - oy},
			{X: cx + ox/2, Y: cy},
			{X: cx - ox/2, Y: cy + oy},
		}, nil
	case arrow.DirectionLeft:
		return [3]arrow.Point{
			{X: cx + ox/2, Y: cy - oy},
			{X: cx - ox/2, Y: cy},
			{X: cx + ox/2, Y: cy + oy},
		}, nil
	default:
		return [3]arrow.Point{}, errors.New(errors.ErrCodeInvalidDirection,
			"invalid direction: %q (valid: up, down, left, right)", string(dir))
	}
}

// SpreadChevronPoints returns the three points of the compact chevron used
// by spread patterns, relative to the glyph's local origin. Offsets are w/20
// and h/20, sized for many glyphs sharing one canvas.
func SpreadChevronPoints(dir arrow.Direction, w, h int) ([3]arrow.Point, error) {
	ox, oy := w/20, h/20

	switch dir {
	case arrow.DirectionLeft:
		return [3]arrow.Point{{X: ox, Y: -oy}, {X: -ox, Y: 0}, {X: ox, Y: oy}}, nil
	case arrow.DirectionRight:
		return [3]arrow.Point{{X: -ox, Y: -oy}, {X: ox, Y: 0}, {X: -ox, Y: oy}}, nil
	case arrow.DirectionUp:
		return [3]arrow.Point{{X: -ox, Y: oy}, {X: 0, Y: -oy}, {X: ox, Y: oy}}, nil
	case arrow.DirectionDown:
		return [3]arrow.Point{{X: -ox, Y: -oy}, {X: 0, Y: oy}, {X: ox, Y: -oy}}, nil
	default:
		return [3]arrow.Point{}, errors.New(errors.ErrCodeInvalidDirection,
			"invalid direction: %q (valid: up, down, left, right)", string(dir))
	}
}

// Offset shifts all points by dx, dy.
func Offset(pts [3]arrow.Point, dx, dy int) [3]arrow.Point {
	for i := range pts {
		pts[i].X += dx
		pts[i].Y += dy
	}
	return pts
}
