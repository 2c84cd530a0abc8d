package runner

// scriptedRandom returns the given values in order, cycling when exhausted.
type scriptedRandom struct {
	vals  []float64
	i     int
	calls int
}

func newScripted(vals ...float64) *scriptedRandom {
	return &scriptedRandom{vals: vals}
}

func (r *scriptedRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	r.calls++
	return v
}

func approxEqual(a, b, eps float64) bool {
	d := a - b
	return d <= eps && d >= -eps
}
