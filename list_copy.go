package dllist

import "github.com/sirkon/dllist/alloc"

// Clone построение копии списка. Аллокатор копии выбирается политикой выбора
// аллокатора списка, элементы копируются копировщиком списка.
func (l *List[T]) Clone() (*List[T], error) {
	res, err := l.derive(alloc.SelectOnCopyConstruction(l.alloc.Allocator()))
	if err != nil {
		return nil, err
	}

	if err := res.fillCopy("copy construction", l); err != nil {
		return nil, err
	}

	return res, nil
}

// Move перенос содержимого src в новый список без копирования узлов. src остаётся
// пустым и пригодным к использованию со свежим стражем от своего аллокатора.
// Если выделить страж не удалось, src не меняется.
func Move[T any](src *List[T]) (*List[T], error) {
	x, err := src.alloc.Allocate(1)
	if err != nil {
		return nil, err
	}

	res := &List[T]{
		head:   src.head,
		tail:   src.tail,
		x:      src.x,
		size:   src.size,
		alloc:  src.alloc,
		copier: src.copier,
		log:    src.log,
	}

	src.head = nil
	src.tail = nil
	src.x = x
	src.size = 0

	return res, nil
}

// Assign копирующее присваивание. Копия src строится целиком до изменения l,
// поэтому при ошибке l остаётся как был. Аллокатор src переходит к l, если
// аллокатор l распространяется при копирующем присваивании и аллокаторы не равны.
func (l *List[T]) Assign(src *List[T]) error {
	if l == src {
		return nil
	}

	target := l.alloc.Allocator()
	var propagated bool
	if alloc.PropagatesOnCopyAssignment(target) && !l.alloc.Equal(src.alloc) {
		target = src.alloc.Allocator()
		propagated = true
	}

	tmp, err := l.derive(target)
	if err != nil {
		return err
	}

	if err := tmp.fillCopy("copy assignment", src); err != nil {
		return err
	}

	l.swapNodes(tmp)
	l.alloc, tmp.alloc = tmp.alloc, l.alloc
	tmp.Destroy()

	if propagated {
		l.log.AllocatorPropagated("copy assignment")
	}

	return nil
}

// MoveAssign перемещающее присваивание, src остаётся пустым.
//
// Если аллокатор l распространяется при перемещающем присваивании или аллокаторы
// равны, то узлы src забираются целиком, а аллокаторы меняются местами только при
// распространении неравных аллокаторов. Иначе значения переносятся в узлы,
// выделенные аллокатором l, и каждый список остаётся со своим аллокатором.
// При ошибке оба списка остаются как были.
func (l *List[T]) MoveAssign(src *List[T]) error {
	if l == src {
		return nil
	}

	propagate := alloc.PropagatesOnMoveAssignment(l.alloc.Allocator())
	equal := l.alloc.Equal(src.alloc)

	if !propagate && !equal {
		return l.moveElements(src)
	}

	tmp, err := Move(src)
	if err != nil {
		return err
	}

	l.swapNodes(tmp)
	if propagate && !equal {
		l.alloc, tmp.alloc = tmp.alloc, l.alloc
		l.log.AllocatorPropagated("move assignment")
	}
	tmp.Destroy()

	return nil
}

// moveElements перенос значений src в узлы от аллокатора l.
func (l *List[T]) moveElements(src *List[T]) error {
	tmp, err := l.derive(l.alloc.Allocator())
	if err != nil {
		return err
	}

	s := src.head
	if err := tmp.fill("move assignment", src.size, func(v *T) error {
		*v = s.value
		s = s.next
		return nil
	}, true); err != nil {
		return err
	}

	l.swapNodes(tmp)
	tmp.Destroy()
	src.clear(false)

	return nil
}
