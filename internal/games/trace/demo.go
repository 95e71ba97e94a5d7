package trace

import (
	"github.com/vovakirdan/tui-trace/internal/core"
	"github.com/vovakirdan/tui-trace/internal/tracing"
)

// demoStep is the spacing of simulated samples along a display path.
const demoStep = 2.0

// demoPointer is a simulated finger. For each stroke it first follows the
// display path, then visits every valid cell centre of the zone, which
// always reaches full coverage.
type demoPointer struct {
	stroke int
	route  []core.Point
	pos    int
}

func newDemoPointer() *demoPointer {
	return &demoPointer{stroke: -1}
}

// next returns the next sample for the controller's live stroke.
func (d *demoPointer) next(ctrl *tracing.Controller) (core.Point, bool) {
	stroke, ok := ctrl.CurrentZone()
	if !ok {
		return core.Point{}, false
	}

	if cur := ctrl.CurrentStroke(); cur != d.stroke {
		d.stroke = cur
		d.route = demoRoute(stroke, ctrl.Params())
		d.pos = 0
	}
	if len(d.route) == 0 {
		return core.Point{}, false
	}
	if d.pos >= len(d.route) {
		d.pos = 0
	}

	p := d.route[d.pos]
	d.pos++
	return p, true
}

func demoRoute(s tracing.Stroke, params tracing.Params) []core.Point {
	var route []core.Point
	if s.DisplayPath != "" {
		if p, err := core.ParsePath(s.DisplayPath); err == nil {
			route = p.Flatten(demoStep)
		}
	}
	grid := tracing.NewCoverageGrid(s.Zone, params.GridSize)
	return append(route, grid.ValidCellCenters()...)
}
