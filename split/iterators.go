package split

import (
	"go-ml.dev/pkg/dsplit/mds"
	"golang.org/x/xerrors"
)

/*
trainIterator covers the first numTrain examples of every pass.

Reset is lazy: it only arms the shared resetPending flag, the actual rewind
of the underlying iterator happens on the next HasNext call. A consumer may
therefore reset and walk away without paying for a restart
*/
type trainIterator struct {
	s *Splitter
}

func (it *trainIterator) HasNext() (bool, error) {
	s := it.s
	if s.cur.resetPending {
		if !s.base.ResetSupported() {
			return false, xerrors.Errorf("cannot rewind for a new pass: %w", mds.ErrResetUnsupported)
		}
		if err := s.base.Reset(); err != nil {
			return false, err
		}
		s.cur.position = 0
		s.cur.resetPending = false
	}
	ok, err := s.base.HasNext()
	if err != nil {
		return false, err
	}
	return ok && s.cur.position < s.numTrain, nil
}

func (it *trainIterator) Next() (*mds.MultiDataSet, error) {
	s := it.s
	s.cur.position++
	d, err := s.base.Next()
	if err != nil {
		return nil, err
	}
	if s.cur.position == 1 {
		if s.firstTrain == nil {
			// first pass ever, remember the first example to check later
			// passes against it
			s.firstTrain = d.Copy()
		} else if !d.FeaturesEqualApprox(s.firstTrain, eps) {
			// pass > 1, the first example must match the remembered one
			return nil, xerrors.Errorf("first examples do not match, was randomization used: %w", ErrNonDeterministic)
		}
	}
	return d, nil
}

func (it *trainIterator) NextN(num int) (*mds.MultiDataSet, error) {
	return nil, xerrors.Errorf("bounded fetch: %w", mds.ErrNotImplemented)
}

func (it *trainIterator) Reset() error {
	it.s.cur.resetPending = true
	return nil
}

func (it *trainIterator) ResetSupported() bool { return it.s.base.ResetSupported() }

func (it *trainIterator) AsyncSupported() bool { return it.s.base.AsyncSupported() }

func (it *trainIterator) SetPreProcessor(p mds.PreProcessor) { it.s.base.SetPreProcessor(p) }

func (it *trainIterator) PreProcessor() mds.PreProcessor { return it.s.base.PreProcessor() }

func (it *trainIterator) Remove() error {
	return xerrors.Errorf("train iterator is a read-only view: %w", mds.ErrUnsupportedOp)
}

/*
testIterator covers the examples from position numTrain through
numTrain+numTest. It does not handle the pending reset itself, the rewind
always happens on the train side; resetting here only arms the shared flag
*/
type testIterator struct {
	s *Splitter
}

func (it *testIterator) HasNext() (bool, error) {
	s := it.s
	ok, err := s.base.HasNext()
	if err != nil {
		return false, err
	}
	return ok && s.cur.position < s.numTrain+s.numTest, nil
}

func (it *testIterator) Next() (*mds.MultiDataSet, error) {
	// advances the shared position like the train side does, so the
	// numTrain+numTest bound stays live even when the underlying iterator
	// holds more examples than totalExamples
	it.s.cur.position++
	return it.s.base.Next()
}

func (it *testIterator) NextN(num int) (*mds.MultiDataSet, error) {
	return nil, xerrors.Errorf("bounded fetch: %w", mds.ErrNotImplemented)
}

func (it *testIterator) Reset() error {
	it.s.cur.resetPending = true
	return nil
}

func (it *testIterator) ResetSupported() bool { return it.s.base.ResetSupported() }

func (it *testIterator) AsyncSupported() bool { return it.s.base.AsyncSupported() }

func (it *testIterator) SetPreProcessor(p mds.PreProcessor) { it.s.base.SetPreProcessor(p) }

func (it *testIterator) PreProcessor() mds.PreProcessor { return it.s.base.PreProcessor() }

func (it *testIterator) Remove() error {
	return xerrors.Errorf("test iterator is a read-only view: %w", mds.ErrUnsupportedOp)
}
