package util

//*******************************************
// optional
//*******************************************

// Optional distinguishes "no value" from the zero value of T.
type Optional[T any] struct {
	Value T
	has   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{
		Value: value,
		has:   true,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (self Optional[T]) HasValue() bool {
	return self.has
}
