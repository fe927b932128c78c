package sinspline

// Series is a pair of equal-length coordinate sequences.
type Series struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.X) }

// Clone returns a deep copy.
func (s Series) Clone() Series {
	return Series{X: cloneFloats(s.X), Y: cloneFloats(s.Y)}
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
