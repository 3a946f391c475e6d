package util

//*******************************************
// flags
//*******************************************

// Flags stores one flag-struct per id with cheap whole-set resets.
// Reset bumps a version counter instead of rewriting every entry.
type Flags[T any] struct {
	entries  []_FlagEntry[T]
	_default T
	version  int32
}

type _FlagEntry[T any] struct {
	data    T
	version int32
}

func NewFlags[T any](size int32, _default T) Flags[T] {
	return Flags[T]{
		entries:  make([]_FlagEntry[T], size),
		_default: _default,
		version:  1,
	}
}

func (self *Flags[T]) Get(id int32) *T {
	entry := &self.entries[id]
	if entry.version != self.version {
		entry.data = self._default
		entry.version = self.version
	}
	return &entry.data
}

func (self *Flags[T]) Reset() {
	self.version += 1
}
