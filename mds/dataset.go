package mds

import (
	"gonum.org/v1/gonum/mat"
)

/*
MultiDataSet is a single multi-input example/batch: an ordered set of feature
components and an ordered set of label components
*/
type MultiDataSet struct {
	Features []*mat.Dense
	Labels   []*mat.Dense
}

/*
New creates a MultiDataSet from feature and label components as is,
without copying
*/
func New(features, labels []*mat.Dense) *MultiDataSet {
	return &MultiDataSet{Features: features, Labels: labels}
}

/*
Copy returns a deep, detached duplicate of the dataset.
The copy does not alias any backing array of the original
*/
func (d *MultiDataSet) Copy() *MultiDataSet {
	c := &MultiDataSet{
		Features: make([]*mat.Dense, len(d.Features)),
		Labels:   make([]*mat.Dense, len(d.Labels)),
	}
	for i, f := range d.Features {
		c.Features[i] = mat.DenseCopyOf(f)
	}
	for i, l := range d.Labels {
		c.Labels[i] = mat.DenseCopyOf(l)
	}
	return c
}

/*
FeaturesEqualApprox compares every feature component of two datasets
element-wise within the given tolerance. Differing component counts or
shapes compare as not equal
*/
func (d *MultiDataSet) FeaturesEqualApprox(o *MultiDataSet, eps float64) bool {
	if len(d.Features) != len(o.Features) {
		return false
	}
	for i, f := range d.Features {
		if !mat.EqualApprox(f, o.Features[i], eps) {
			return false
		}
	}
	return true
}

/*
PreProcessor transforms a dataset in place before an iterator hands it out
*/
type PreProcessor interface {
	PreProcess(*MultiDataSet)
}
