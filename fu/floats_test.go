package fu

import (
	"testing"

	"gotest.tools/assert"
)

func Test_Mean(t *testing.T) {
	assert.Equal(t, Mean([]float64{1, 2, 3}), 2.0)
}

func Test_Mse(t *testing.T) {
	assert.Equal(t, Mse([]float64{1, 2}, []float64{1, 2}), 0.0)
	assert.Equal(t, Mse([]float64{0, 0}, []float64{2, 2}), 4.0)
}

func Test_Seq(t *testing.T) {
	q := Seq(3, 4)
	assert.Equal(t, len(q), 4)
	assert.Equal(t, q[0], 3.0)
	assert.Equal(t, q[3], 6.0)
}
