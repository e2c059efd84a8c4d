/*
Package split virtually divides a sequential multi-dataset iterator into a
train part and a test part without copying the underlying data.

The two derived iterators share one read position over the same underlying
iterator, so only one of them can be consumed at a time. The underlying
iterator must produce the same sequence on every pass; shuffling between
passes breaks the split and is detected on the first element of a repeated
train pass.
*/
package split

import (
	"math"

	"go-ml.dev/pkg/dsplit/mds"
	"go-ml.dev/pkg/zorros"
	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"
)

var (
	// ErrInvalidConfig is returned by New on a bad ratio or total count
	ErrInvalidConfig = xerrors.New("invalid split configuration")
	// ErrNonDeterministic is returned when a repeated pass over the
	// underlying iterator yields different data
	ErrNonDeterministic = xerrors.New("underlying iterator is not deterministic")
)

// tolerance for comparing first examples between passes
const eps = 1e-5

// float64(10)*0.7 lands just below 7, so a bare floor would lose an example
const ratioSlack = 1e-9

// cursor is the single logical read position shared by the train and test
// iterators. Plain fields, iterating both parts at once is not supported
type cursor struct {
	position     int
	resetPending bool
}

/*
Splitter derives a train iterator and a test iterator from one underlying
iterator. The first numTrain examples of a pass belong to the train part,
the following numTest examples to the test part
*/
type Splitter struct {
	base     mds.Iterator
	total    int
	ratio    float64
	numTrain int
	numTest  int
	cur      *cursor

	// first example of the very first train pass, kept detached for the
	// lifetime of the splitter to verify later passes see the same data
	firstTrain *mds.MultiDataSet
}

/*
New creates a Splitter over base, where totalExamples is the number of
examples base produces per pass and ratio is the train share, strictly
between 0 and 1. I.e. with ratio 0.7 the train iterator covers 70% of the
examples and the test iterator the remaining 30%
*/
func New(base mds.Iterator, totalExamples int, ratio float64) (*Splitter, error) {
	if !(ratio > 0 && ratio < 1) {
		return nil, xerrors.Errorf("ratio `%v` is not in the open range (0,1): %w", ratio, ErrInvalidConfig)
	}
	if totalExamples < 0 {
		return nil, xerrors.Errorf("totalExamples `%d` is negative: %w", totalExamples, ErrInvalidConfig)
	}
	if !base.ResetSupported() {
		return nil, xerrors.Errorf("runtime split requires restartable input: %w", mds.ErrResetUnsupported)
	}
	numTrain := int(math.Floor(float64(totalExamples)*ratio + ratioSlack))
	s := &Splitter{
		base:     base,
		total:    totalExamples,
		ratio:    ratio,
		numTrain: numTrain,
		numTest:  totalExamples - numTrain,
		cur:      &cursor{},
	}
	zlog.Warning("runtime splitter is used: ensure the underlying iterator does not shuffle between passes")
	return s, nil
}

/*
LuckyNew creates a Splitter and throws any occurred error as a panic
*/
func LuckyNew(base mds.Iterator, totalExamples int, ratio float64) *Splitter {
	s, err := New(base, totalExamples, ratio)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return s
}

/*
NumTrain returns the count of examples covered by the train iterator
*/
func (s *Splitter) NumTrain() int { return s.numTrain }

/*
NumTest returns the count of examples covered by the test iterator
*/
func (s *Splitter) NumTest() int { return s.numTest }

/*
Train returns the train part of the underlying iterator
*/
func (s *Splitter) Train() mds.Iterator { return &trainIterator{s} }

/*
Test returns the test part of the underlying iterator.
It continues from wherever the train part stopped, so it's meant to be
consumed after the train part is drained
*/
func (s *Splitter) Test() mds.Iterator { return &testIterator{s} }
