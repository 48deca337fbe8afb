package dllist

// Reverse разворот значений в диапазоне [first, last).
func Reverse[T any](first, last Iterator[T]) {
	for !first.Equal(last) {
		last.Prev()
		if first.Equal(last) {
			return
		}

		a, b := first.Ptr(), last.Ptr()
		*a, *b = *b, *a
		first.Next()
	}
}

// Distance число шагов вперёд от first до last. last должен достигаться из first.
func Distance[T any](first, last ConstIterator[T]) int {
	var res int
	for !first.Equal(last) {
		first.Next()
		res++
	}

	return res
}

// Values копии значений списка в их порядке.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.size)
	for it := l.CBegin(); !it.Equal(l.CEnd()); it.Next() {
		res = append(res, it.Value())
	}

	return res
}
