// Package dllist двусвязный список с подключаемым аллокатором узлов.
//
// Каждый узел проходит через аллокатор на всех этапах жизни: выделение,
// конструирование значения, разрушение значения, освобождение. Ошибка на любом
// этапе массового построения откатывает уже построенное, так что учтённый
// аллокатором ресурс не утекает и не освобождается дважды.
package dllist

import (
	"github.com/sirkon/dllist/alloc"
	"github.com/sirkon/dllist/logging"
	"github.com/sirkon/errors"
)

// List двусвязный список замкнутый в кольцо через узел-страж.
// Значение List нельзя копировать, работа ведётся только через указатель,
// копии делаются методом Clone.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	x    *node[T]
	size int

	alloc  alloc.Adapter[node[T]]
	copier func(src *T) (T, error)
	log    logging.Logger
}

// New конструктор пустого списка.
func New[T any](opts ...Option) (*List[T], error) {
	return build[T](opts)
}

// NewCount конструктор списка из count элементов сконструированных без аргументов:
// нулевое значение и Init, если *T реализует Initializer.
func NewCount[T any](count int, opts ...Option) (*List[T], error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	l, err := build[T](opts)
	if err != nil {
		return nil, err
	}

	if err := l.fill("count construction", count, initElement[T], false); err != nil {
		return nil, err
	}

	return l, nil
}

// NewFilled конструктор списка из count копий value.
func NewFilled[T any](count int, value T, opts ...Option) (*List[T], error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	l, err := build[T](opts)
	if err != nil {
		return nil, err
	}

	if err := l.fill("fill construction", count, func(v *T) error {
		val, err := l.copier(&value)
		if err != nil {
			return err
		}

		*v = val
		return nil
	}, false); err != nil {
		return nil, err
	}

	return l, nil
}

// NewWith конструктор списка из count элементов, i-й элемент строится вызовом ctor(i).
func NewWith[T any](count int, ctor func(i int) (T, error), opts ...Option) (*List[T], error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	l, err := build[T](opts)
	if err != nil {
		return nil, err
	}

	var i int
	if err := l.fill("piecewise construction", count, func(v *T) error {
		val, err := ctor(i)
		if err != nil {
			return err
		}

		*v = val
		i++
		return nil
	}, false); err != nil {
		return nil, err
	}

	return l, nil
}

// NewFrom конструктор списка из копий values в их порядке.
func NewFrom[T any](values []T, opts ...Option) (*List[T], error) {
	l, err := build[T](opts)
	if err != nil {
		return nil, err
	}

	var i int
	if err := l.fill("list construction", len(values), func(v *T) error {
		val, err := l.copier(&values[i])
		if err != nil {
			return err
		}

		*v = val
		i++
		return nil
	}, false); err != nil {
		return nil, err
	}

	return l, nil
}

// Destroy разрушение всех элементов начиная с хвоста и освобождение стража.
// Повторный вызов ничего не делает, иное использование списка после Destroy не допускается.
func (l *List[T]) Destroy() {
	if l.x == nil {
		return
	}

	l.clear(true)
	l.alloc.Deallocate(l.x, 1)
	l.x = nil
}

// Size число элементов.
func (l *List[T]) Size() int {
	return l.size
}

// Empty проверка на пустоту.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Allocator аллокатор списка.
func (l *List[T]) Allocator() alloc.Allocator {
	return l.alloc.Allocator()
}

// build создание пустого списка со стражем.
func build[T any](opts []Option) (*List[T], error) {
	c := config{
		alloc: alloc.Default(),
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(&c, optRestriction{})
	}

	copier := copyElement[T]
	if c.copier != nil {
		cp, ok := c.copier.(func(src *T) (T, error))
		if !ok {
			return nil, errors.Newf("copier of type %T cannot copy list elements", c.copier)
		}
		copier = cp
	}

	if c.log == nil {
		c.log = logging.Nop()
	}

	l := &List[T]{
		alloc:  alloc.Rebind[node[T]](c.alloc),
		copier: copier,
		log:    c.log,
	}

	x, err := l.alloc.Allocate(1)
	if err != nil {
		return nil, err
	}
	l.x = x

	return l, nil
}

// derive создание пустого списка с настройками l и аллокатором a.
func (l *List[T]) derive(a alloc.Allocator) (*List[T], error) {
	res := &List[T]{
		alloc:  alloc.Rebind[node[T]](a),
		copier: l.copier,
		log:    l.log,
	}

	x, err := res.alloc.Allocate(1)
	if err != nil {
		return nil, err
	}
	res.x = x

	return res, nil
}

func checkCount(count int) error {
	if count < 0 {
		return errors.New("elements count must not be negative").Int("invalid-count", count)
	}

	return nil
}
