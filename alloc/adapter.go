package alloc

import (
	"unsafe"

	"github.com/sirkon/errors"
)

// Adapter аллокатор объектов типа N поверх аллокатора Allocator.
// Получается из аллокатора элементов перепривязкой на тип узла контейнера.
type Adapter[N any] struct {
	a Allocator
}

// Rebind перепривязка аллокатора a на объекты типа N.
func Rebind[N any](a Allocator) Adapter[N] {
	if a == nil {
		a = Default()
	}

	return Adapter[N]{
		a: a,
	}
}

// Allocator возврат аллокатора, к которому привязан адаптер.
func (a Adapter[N]) Allocator() Allocator {
	return a.a
}

// Allocate выделение несконструированного хранилища под n объектов.
// Ошибка аллокатора возвращается без изменений.
func (a Adapter[N]) Allocate(n int) (*N, error) {
	if n <= 0 {
		return nil, errors.New("allocation count must be positive").Int("invalid-count", n)
	}

	if err := a.a.Allocate(a.size(), n); err != nil {
		return nil, err
	}

	storage := make([]N, n)
	return &storage[0], nil
}

// Deallocate освобождение хранилища p под n объектов.
func (a Adapter[N]) Deallocate(p *N, n int) {
	var zero N
	storage := unsafe.Slice(p, n)
	for i := range storage {
		storage[i] = zero
	}

	a.a.Deallocate(a.size(), n)
}

// Construct конструирование объекта в хранилище p.
func (a Adapter[N]) Construct(p *N, init func(p *N) error) error {
	return a.a.Construct(func() error {
		return init(p)
	})
}

// Destroy разрушение объекта лежащего в p. Хранилище остаётся выделенным.
func (a Adapter[N]) Destroy(p *N, fini func(p *N)) {
	a.a.Destroy(func() {
		fini(p)
	})
}

// Equal сравнение аллокаторов, к которым привязаны адаптеры.
func (a Adapter[N]) Equal(other Adapter[N]) bool {
	return a.a.Equal(other.a)
}

func (a Adapter[N]) size() uintptr {
	var v N
	return unsafe.Sizeof(v)
}
