package dllist

// Begin итератор на первый элемент, для пустого списка совпадает с End.
func (l *List[T]) Begin() Iterator[T] {
	if l.head == nil {
		return Iterator[T]{n: l.x}
	}

	return Iterator[T]{n: l.head}
}

// End итератор на позицию за последним элементом.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{n: l.x}
}

// CBegin итератор только для чтения на первый элемент.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd итератор только для чтения на позицию за последним элементом.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// Iterator двунаправленный итератор с доступом к значению на запись.
// Разыменование End, выход за End или перед Begin не проверяются.
// Итератор удалённого узла становится недействительным, остальные нет.
type Iterator[T any] struct {
	n *node[T]
}

// Value значение в текущей позиции.
func (it Iterator[T]) Value() T {
	return it.n.value
}

// Ptr ссылка на значение в текущей позиции.
func (it Iterator[T]) Ptr() *T {
	return &it.n.value
}

// Set замена значения в текущей позиции.
func (it Iterator[T]) Set(v T) {
	it.n.value = v
}

// Next переход к следующей позиции.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.n = it.n.next
	return it
}

// Prev переход к предыдущей позиции.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.n = it.n.prev
	return it
}

// PostNext переход к следующей позиции с возвратом итератора на исходную.
func (it *Iterator[T]) PostNext() Iterator[T] {
	res := *it
	it.n = it.n.next
	return res
}

// PostPrev переход к предыдущей позиции с возвратом итератора на исходную.
func (it *Iterator[T]) PostPrev() Iterator[T] {
	res := *it
	it.n = it.n.prev
	return res
}

// Equal итераторы указывают на один и тот же узел.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}

// Const итератор только для чтения на ту же позицию.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator двунаправленный итератор только для чтения.
type ConstIterator[T any] struct {
	n *node[T]
}

// Value копия значения в текущей позиции.
func (it ConstIterator[T]) Value() T {
	return it.n.value
}

// Next переход к следующей позиции.
func (it *ConstIterator[T]) Next() *ConstIterator[T] {
	it.n = it.n.next
	return it
}

// Prev переход к предыдущей позиции.
func (it *ConstIterator[T]) Prev() *ConstIterator[T] {
	it.n = it.n.prev
	return it
}

// PostNext переход к следующей позиции с возвратом итератора на исходную.
func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	res := *it
	it.n = it.n.next
	return res
}

// PostPrev переход к предыдущей позиции с возвратом итератора на исходную.
func (it *ConstIterator[T]) PostPrev() ConstIterator[T] {
	res := *it
	it.n = it.n.prev
	return res
}

// Equal итераторы указывают на один и тот же узел.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.n == other.n
}
