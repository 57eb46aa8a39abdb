package edge

import "github.com/anthonynsimon/bild/parallel"

// minParallelRows is the interior height below which splitting rows across
// goroutines costs more than it saves.
const minParallelRows = 64

// ParallelAccelerator runs the Sobel kernel with its row loop split across
// GOMAXPROCS goroutines. Each goroutine owns a disjoint band of destination
// rows, so no synchronisation is needed beyond the final join.
//
// Images with fewer than MinRows interior rows are returned to the software
// path with ErrFallbackToSoftware.
type ParallelAccelerator struct {
	MinRows int
}

// NewParallelAccelerator returns a ParallelAccelerator with the default
// minimum band height.
func NewParallelAccelerator() *ParallelAccelerator {
	return &ParallelAccelerator{MinRows: minParallelRows}
}

func (p *ParallelAccelerator) Name() string { return "parallel" }
func (p *ParallelAccelerator) Init() error  { return nil }
func (p *ParallelAccelerator) Close()       {}

func (p *ParallelAccelerator) Sobel(src, dst Buffer) error {
	in, out := planeOf(src), planeOf(dst)
	y0, y1 := interiorRows(in)
	rows := y1 - y0
	if rows < p.MinRows || rows <= 0 {
		return ErrFallbackToSoftware
	}

	parallel.Line(rows, func(start, end int) {
		applyRows(in, out, y0+start, y0+end, sobel)
	})
	return nil
}
