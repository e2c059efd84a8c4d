package mds

import (
	"golang.org/x/xerrors"
)

/*
SliceIterator iterates an in-memory slice of MultiDataSets.
It supports reset and applies the installed pre-processor on every Next
*/
type SliceIterator struct {
	items []*MultiDataSet
	pos   int
	pre   PreProcessor
}

/*
NewSliceIterator creates a resettable iterator over the given datasets
*/
func NewSliceIterator(items ...*MultiDataSet) *SliceIterator {
	return &SliceIterator{items: items}
}

func (it *SliceIterator) HasNext() (bool, error) {
	return it.pos < len(it.items), nil
}

func (it *SliceIterator) Next() (*MultiDataSet, error) {
	if it.pos >= len(it.items) {
		return nil, xerrors.Errorf("slice iterator at %d of %d: %w", it.pos, len(it.items), ErrExhausted)
	}
	d := it.items[it.pos]
	it.pos++
	if it.pre != nil {
		it.pre.PreProcess(d)
	}
	return d, nil
}

func (it *SliceIterator) NextN(num int) (*MultiDataSet, error) {
	return nil, xerrors.Errorf("bounded fetch: %w", ErrNotImplemented)
}

func (it *SliceIterator) Reset() error {
	it.pos = 0
	return nil
}

func (it *SliceIterator) ResetSupported() bool { return true }

func (it *SliceIterator) AsyncSupported() bool { return false }

func (it *SliceIterator) SetPreProcessor(p PreProcessor) { it.pre = p }

func (it *SliceIterator) PreProcessor() PreProcessor { return it.pre }

func (it *SliceIterator) Remove() error {
	return xerrors.Errorf("slice iterator is immutable: %w", ErrUnsupportedOp)
}
