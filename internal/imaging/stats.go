package imaging

import "github.com/ironsheep/edge-tools-mcp/internal/edge"

// ResponseStats summarises the interior of an operator response. Border
// pixels are excluded because the operators never write them.
type ResponseStats struct {
	Max       uint8   `json:"max"`
	Mean      float64 `json:"mean"`
	Nonzero   int     `json:"nonzero"`
	Saturated int     `json:"saturated"`
	Interior  int     `json:"interior"`
}

// Stats computes ResponseStats for resp.
func Stats(resp *edge.Image) ResponseStats {
	var s ResponseStats
	w, h := resp.Width(), resp.Height()
	if w < 3 || h < 3 {
		return s
	}

	var sum int
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			v := resp.At(x, y)
			sum += int(v)
			if v > s.Max {
				s.Max = v
			}
			if v > 0 {
				s.Nonzero++
			}
			if v == 255 {
				s.Saturated++
			}
		}
	}
	s.Interior = (w - 2) * (h - 2)
	s.Mean = float64(sum) / float64(s.Interior)
	return s
}
