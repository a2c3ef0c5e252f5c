// Package viz draws two dimensional planning runs.
package viz

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kh11kim/rrt/collision"
	"github.com/kh11kim/rrt/motionplan"
)

var (
	startTreeColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	goalTreeColor  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	pathColor      = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	obstacleColor  = color.RGBA{R: 127, G: 127, B: 127, A: 128}
)

// number of segments used to draw a circle
const circleSegments = 48

// Plot renders the trees and path of a two dimensional solution together with its obstacles.
func Plot(sol *motionplan.Solution, obstacles []collision.Geometry) (*plot.Plot, error) {
	if sol == nil || sol.StartTree == nil || sol.GoalTree == nil {
		return nil, errors.New("nothing to plot")
	}
	if sol.StartTree.Dim() != 2 {
		return nil, errors.Errorf("can only plot two dimensional runs, got %d dimensions", sol.StartTree.Dim())
	}

	p := plot.New()
	p.Title.Text = "BiRRT"
	p.X.Label.Text = "q0"
	p.Y.Label.Text = "q1"

	for i, g := range obstacles {
		poly, err := obstaclePolygon(g)
		if err != nil {
			return nil, errors.Wrapf(err, "obstacle %d", i)
		}
		if poly != nil {
			p.Add(poly)
		}
	}

	for _, tree := range []struct {
		t     *motionplan.Tree
		color color.Color
		name  string
	}{
		{sol.StartTree, startTreeColor, "start tree"},
		{sol.GoalTree, goalTreeColor, "goal tree"},
	} {
		edges, err := treeEdges(tree.t, tree.color)
		if err != nil {
			return nil, err
		}
		for _, edge := range edges {
			p.Add(edge)
		}
		if len(edges) > 0 {
			p.Legend.Add(tree.name, edges[0])
		}
	}

	if len(sol.Path) > 0 {
		line, err := plotter.NewLine(toXYs(sol.Path))
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = pathColor
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add("path", line)
	}
	return p, nil
}

// Save renders the solution to a file. The format follows the file extension.
func Save(sol *motionplan.Solution, obstacles []collision.Geometry, file string) error {
	p, err := Plot(sol, obstacles)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, file)
}

func treeEdges(tree *motionplan.Tree, c color.Color) ([]*plotter.Line, error) {
	edges := make([]*plotter.Line, 0, tree.Size())
	for i := 1; i < tree.Size(); i++ {
		id := motionplan.NodeID(i)
		edge, err := plotter.NewLine(toXYs([]motionplan.Config{tree.Config(tree.Parent(id)), tree.Config(id)}))
		if err != nil {
			return nil, err
		}
		edge.LineStyle.Color = c
		edge.LineStyle.Width = vg.Points(0.5)
		edges = append(edges, edge)
	}
	return edges, nil
}

func obstaclePolygon(g collision.Geometry) (*plotter.Polygon, error) {
	var outline plotter.XYs
	switch o := g.(type) {
	case *collision.Box:
		x, y, hx, hy := o.Center[0], o.Center[1], o.HalfSize[0], o.HalfSize[1]
		outline = plotter.XYs{{X: x - hx, Y: y - hy}, {X: x + hx, Y: y - hy}, {X: x + hx, Y: y + hy}, {X: x - hx, Y: y + hy}}
	case *collision.Sphere:
		outline = make(plotter.XYs, circleSegments)
		for i := range outline {
			theta := 2 * math.Pi * float64(i) / circleSegments
			outline[i].X = o.Center[0] + o.Radius*math.Cos(theta)
			outline[i].Y = o.Center[1] + o.Radius*math.Sin(theta)
		}
	default:
		// unknown geometries are not drawn
		return nil, nil
	}
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	poly.Color = obstacleColor
	poly.LineStyle.Width = 0
	return poly, nil
}

func toXYs(path []motionplan.Config) plotter.XYs {
	xys := make(plotter.XYs, len(path))
	for i, c := range path {
		xys[i].X = c.Q[0]
		xys[i].Y = c.Q[1]
	}
	return xys
}
