package viz

import (
	"fmt"

	"github.com/san-kum/dampsim/internal/dynamo"
	"github.com/san-kum/dampsim/internal/physics"
	"github.com/san-kum/dampsim/internal/regime"
)

// PhasePortrait draws the (displacement, velocity) path of one regime on a
// width x height cell canvas, with the axes where they cross the view.
func PhasePortrait(res regime.Result, width, height int) string {
	if res.Trajectory == nil || res.Trajectory.Len() == 0 {
		return ""
	}

	n := drawable(res.Trajectory)
	if n == 0 {
		return ""
	}
	xs := physics.Position(res.Trajectory)[:n]
	vs := physics.Velocity(res.Trajectory)[:n]

	c := NewCanvas(width, height)
	b := boundsOf(xs, vs)

	px, py := b.project(c, xs[0], vs[0])
	c.Set(px, py)
	for i := 1; i < n; i++ {
		qx, qy := b.project(c, xs[i], vs[i])
		c.DrawLine(px, py, qx, qy)
		px, py = qx, qy
	}

	if b.MinX <= 0 && b.MaxX >= 0 {
		col, _ := b.project(c, 0, b.MinY)
		for row := 0; row < c.Height; row++ {
			c.Mark(col/2, row, '│')
		}
	}
	if b.MinY <= 0 && b.MaxY >= 0 {
		_, row := b.project(c, b.MinX, 0)
		for col := 0; col < c.Width; col++ {
			c.Mark(col, row/4, '─')
		}
	}

	title := fmt.Sprintf("%s (c = %g)", res.Label, res.Damping)
	return HeaderStyle.Render(title) + "\n" + c.String()
}

// drawable is the number of leading samples free of NaN and Inf.
func drawable(tr *dynamo.Trajectory) int {
	if i := tr.FirstNonFinite(); i >= 0 {
		return i
	}
	return tr.Len()
}
