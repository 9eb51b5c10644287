package heap

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~int32 | ~int64
}

// CheckNonNegative returns InvalidSizeError, annotated with the provided name, if number is below zero
func CheckNonNegative[T Number](number T, name string) error {
	if number < 0 {
		return cerrors.Wrapf(InvalidSizeError, "%s is %d", name, number)
	}
	return nil
}

func errBlockIndex(index, count int) error {
	return cerrors.Wrapf(InvalidBlockError, "index %d is outside of the %d blocks of the heap", index, count)
}
