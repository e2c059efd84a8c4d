package mds

import (
	"golang.org/x/xerrors"
)

var (
	// ErrNotImplemented is returned by operations reserved for future use
	ErrNotImplemented = xerrors.New("not implemented")
	// ErrUnsupportedOp is returned by operations an iterator does not support
	ErrUnsupportedOp = xerrors.New("unsupported operation")
	// ErrResetUnsupported is returned when a restart is required but the
	// iterator cannot rewind
	ErrResetUnsupported = xerrors.New("reset is not supported")
	// ErrExhausted is returned by Next after the last element
	ErrExhausted = xerrors.New("no more elements")
)

/*
Iterator is the iteration contract over a sequence of MultiDataSets.
A data source and any derived view of it expose the same shape
*/
type Iterator interface {
	// HasNext reports whether another dataset is available
	HasNext() (bool, error)
	// Next pulls the next dataset
	Next() (*MultiDataSet, error)
	// NextN pulls the next num datasets merged into one; reserved,
	// fails with ErrNotImplemented
	NextN(num int) (*MultiDataSet, error)
	// Reset rewinds the iterator to the beginning
	Reset() error
	// ResetSupported reports whether Reset can be used
	ResetSupported() bool
	// AsyncSupported reports whether the iterator can feed an async consumer
	AsyncSupported() bool
	// SetPreProcessor installs a transform applied to every pulled dataset
	SetPreProcessor(PreProcessor)
	// PreProcessor returns the installed transform, nil if none
	PreProcessor() PreProcessor
	// Remove discards the last pulled dataset; fails with ErrUnsupportedOp
	Remove() error
}
