package mds

import (
	"testing"

	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
	"gotest.tools/assert"
)

func slices3() []*MultiDataSet {
	return []*MultiDataSet{
		New([]*mat.Dense{dense(1)}, nil),
		New([]*mat.Dense{dense(2)}, nil),
		New([]*mat.Dense{dense(3)}, nil),
	}
}

func Test_SliceIterator(t *testing.T) {
	it := NewSliceIterator(slices3()...)
	for i := 1; i <= 3; i++ {
		ok, err := it.HasNext()
		assert.NilError(t, err)
		assert.Assert(t, ok)
		d, err := it.Next()
		assert.NilError(t, err)
		assert.Equal(t, d.Features[0].At(0, 0), float64(i))
	}
	ok, err := it.HasNext()
	assert.NilError(t, err)
	assert.Assert(t, !ok)
	_, err = it.Next()
	assert.Assert(t, xerrors.Is(err, ErrExhausted))
}

func Test_SliceIteratorReset(t *testing.T) {
	it := NewSliceIterator(slices3()...)
	assert.Assert(t, it.ResetSupported())
	_, err := it.Next()
	assert.NilError(t, err)
	assert.NilError(t, it.Reset())
	d, err := it.Next()
	assert.NilError(t, err)
	assert.Equal(t, d.Features[0].At(0, 0), 1.0)
}

type addOne struct{}

func (addOne) PreProcess(d *MultiDataSet) {
	f := d.Features[0]
	f.Set(0, 0, f.At(0, 0)+1)
}

func Test_SliceIteratorPreProcessor(t *testing.T) {
	it := NewSliceIterator(slices3()...)
	it.SetPreProcessor(addOne{})
	assert.Assert(t, it.PreProcessor() != nil)
	d, err := it.Next()
	assert.NilError(t, err)
	assert.Equal(t, d.Features[0].At(0, 0), 2.0)
}

func Test_SliceIteratorUnsupported(t *testing.T) {
	it := NewSliceIterator(slices3()...)
	_, err := it.NextN(2)
	assert.Assert(t, xerrors.Is(err, ErrNotImplemented))
	assert.Assert(t, xerrors.Is(it.Remove(), ErrUnsupportedOp))
	assert.Assert(t, !it.AsyncSupported())
}
