package dllist

import (
	"github.com/sirkon/dllist/alloc"
	"github.com/sirkon/dllist/logging"
)

// Option определение опции списка.
type Option func(c *config, _ optRestriction)

type optRestriction struct{}

type config struct {
	alloc  alloc.Allocator
	copier any
	log    logging.Logger
}

// WithAllocator задаёт аллокатор списка. По умолчанию используется alloc.Default().
func WithAllocator(a alloc.Allocator) Option {
	return func(c *config, _ optRestriction) {
		c.alloc = a
	}
}

// WithCopier задаёт копировщик элементов. Тип элемента копировщика должен совпадать
// с типом элемента списка, иначе конструктор списка вернёт ошибку.
func WithCopier[T any](copier func(src *T) (T, error)) Option {
	return func(c *config, _ optRestriction) {
		c.copier = copier
	}
}

// WithLogger задаёт логгер событий списка.
func WithLogger(l logging.Logger) Option {
	return func(c *config, _ optRestriction) {
		c.log = l
	}
}
