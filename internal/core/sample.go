package core

// Weighted pairs a value with its relative sampling weight. Weights must be
// positive.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Pick draws one value with probability proportional to its weight.
//
// When rounding leaves the cumulative walk short of the draw, the last value
// is returned. An empty slice yields the zero value.
func Pick[T any](r Random, items []Weighted[T]) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	total := 0.0
	for _, it := range items {
		total += it.Weight
	}
	draw := r.Float64() * total
	cumulative := 0.0
	for _, it := range items {
		cumulative += it.Weight
		if cumulative >= draw {
			return it.Value
		}
	}
	return items[len(items)-1].Value
}
