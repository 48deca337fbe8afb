package alloc

import "github.com/sirkon/errors"

const (
	// ErrExhausted ошибка отдаваемая при исчерпании ресурса аллокатора.
	ErrExhausted errors.Const = "allocator resource exhausted"
)
