package dllist

import (
	"github.com/mohae/deepcopy"
	"github.com/sirkon/errors"
)

// Initializer реализуется *T для типов, которым нужно конструирование без аргументов
// помимо нулевого значения. Используется в NewCount.
type Initializer interface {
	Init() error
}

// Cloner реализуется T или *T для типов с собственным копированием. Используется
// копировщиком по умолчанию.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer реализуется *T для типов, которым нужно действие при разрушении
// значения в узле.
type Destroyer interface {
	Destroy()
}

// DeepCopy копировщик делающий глубокую копию значения. Годится для элементов
// со ссылочными полями, если вложенные данные не должны разделяться копиями списка.
// Неэкспортируемые поля структур не копируются.
func DeepCopy[T any](src *T) (T, error) {
	var zero T

	res := deepcopy.Copy(*src)
	if res == nil {
		return zero, nil
	}

	v, ok := res.(T)
	if !ok {
		return zero, errors.Newf("deep copy of %T produced value of type %T", *src, res)
	}

	return v, nil
}

func copyElement[T any](src *T) (T, error) {
	if c, ok := any(src).(Cloner[T]); ok {
		return c.Clone()
	}

	return *src, nil
}

func initElement[T any](v *T) error {
	if i, ok := any(v).(Initializer); ok {
		return i.Init()
	}

	return nil
}

func destroyElement[T any](v *T) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
}
