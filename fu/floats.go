package fu

import (
	"gonum.org/v1/gonum/floats"
)

func Mean(a []float64) float64 {
	return floats.Sum(a) / float64(len(a))
}

func Mse(a, b []float64) float64 {
	var c float64
	for i, x := range a {
		q := x - b[i]
		c += q * q
	}
	return c / float64(len(a))
}

func Seq(start float64, n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = start + float64(i)
	}
	return r
}
