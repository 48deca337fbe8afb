package dllist

// node узел списка. Ссылки next и prev не владеющие, узлами владеет только список.
type node[T any] struct {
	next *node[T]
	prev *node[T]

	value T
}

// makeNode выделение и конструирование узла. Если конструирование не удалось,
// освобождается только хранилище: разрушать в нём нечего.
func (l *List[T]) makeNode(init func(v *T) error) (*node[T], error) {
	n, err := l.alloc.Allocate(1)
	if err != nil {
		return nil, err
	}

	if err := l.alloc.Construct(n, func(n *node[T]) error {
		return init(&n.value)
	}); err != nil {
		l.alloc.Deallocate(n, 1)
		return nil, err
	}

	return n, nil
}

// freeNode разрушение и освобождение узла. Значения, перемещённые в другой список,
// не разрушаются, но аллокатор всё равно получает событие разрушения узла.
func (l *List[T]) freeNode(n *node[T], destroyValue bool) {
	l.alloc.Destroy(n, func(n *node[T]) {
		if destroyValue {
			destroyElement(&n.value)
		}
	})
	l.alloc.Deallocate(n, 1)
}

// fill построение цепочки из count узлов после стража. При ошибке построенные узлы
// освобождаются начиная с последнего, затем освобождается страж и ошибка
// возвращается как есть. borrowed означает, что значения заимствованы у другого
// списка и при откате не разрушаются.
func (l *List[T]) fill(op string, count int, init func(v *T) error, borrowed bool) error {
	cur := l.x
	for i := 0; i < count; i++ {
		n, err := l.makeNode(init)
		if err != nil {
			l.unwind(cur, !borrowed)
			l.alloc.Deallocate(l.x, 1)
			l.x = nil
			l.log.BulkConstructionRolledBack(op, i, err)
			return err
		}

		cur.next = n
		n.prev = cur
		cur = n
	}

	l.size = count
	if count > 0 {
		l.head = l.x.next
		l.tail = cur
		l.setEnds()
	}

	return nil
}

// fillCopy построение копий элементов src в их порядке.
func (l *List[T]) fillCopy(op string, src *List[T]) error {
	s := src.head
	return l.fill(op, src.size, func(v *T) error {
		val, err := l.copier(&s.value)
		if err != nil {
			return err
		}

		*v = val
		s = s.next
		return nil
	}, false)
}

// unwind освобождение узлов от from назад до стража.
func (l *List[T]) unwind(from *node[T], destroyValues bool) {
	for n := from; n != l.x; {
		prev := n.prev
		l.freeNode(n, destroyValues)
		n = prev
	}
}

// clear освобождение всех узлов с хвоста, страж остаётся.
func (l *List[T]) clear(destroyValues bool) {
	if l.size == 0 {
		return
	}

	l.unwind(l.tail, destroyValues)
	l.head = nil
	l.tail = nil
	l.size = 0
	l.x.next = nil
	l.x.prev = nil
}

// setEnds замыкание цепочки в кольцо через страж.
func (l *List[T]) setEnds() {
	l.head.prev = l.x
	l.tail.next = l.x
	l.x.next = l.head
	l.x.prev = l.tail
}

// swapNodes обмен цепочками с other, аллокаторы остаются на месте.
func (l *List[T]) swapNodes(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.x, other.x = other.x, l.x
	l.size, other.size = other.size, l.size
}

func (l *List[T]) linkBack(n *node[T]) {
	l.size++
	if l.head == nil {
		l.head = n
		l.tail = n
		l.setEnds()
		return
	}

	n.prev = l.tail
	n.next = l.x
	l.tail.next = n
	l.x.prev = n
	l.tail = n
}

func (l *List[T]) linkFront(n *node[T]) {
	l.size++
	if l.head == nil {
		l.head = n
		l.tail = n
		l.setEnds()
		return
	}

	n.next = l.head
	n.prev = l.x
	l.head.prev = n
	l.x.next = n
	l.head = n
}
