package dllist

// EmplaceBack добавление в конец элемента построенного ctor.
// При ошибке список не меняется, ошибка возвращается как есть.
func (l *List[T]) EmplaceBack(ctor func() (T, error)) error {
	n, err := l.makeNode(construct(ctor))
	if err != nil {
		return err
	}

	l.linkBack(n)
	return nil
}

// EmplaceFront добавление в начало элемента построенного ctor.
// При ошибке список не меняется, ошибка возвращается как есть.
func (l *List[T]) EmplaceFront(ctor func() (T, error)) error {
	n, err := l.makeNode(construct(ctor))
	if err != nil {
		return err
	}

	l.linkFront(n)
	return nil
}

// PushBack перенос v в конец списка.
func (l *List[T]) PushBack(v T) error {
	return l.EmplaceBack(func() (T, error) {
		return v, nil
	})
}

// PushFront перенос v в начало списка.
func (l *List[T]) PushFront(v T) error {
	return l.EmplaceFront(func() (T, error) {
		return v, nil
	})
}

// PushBackCopy добавление в конец копии v.
func (l *List[T]) PushBackCopy(v T) error {
	return l.EmplaceBack(func() (T, error) {
		return l.copier(&v)
	})
}

// PushFrontCopy добавление в начало копии v.
func (l *List[T]) PushFrontCopy(v T) error {
	return l.EmplaceFront(func() (T, error) {
		return l.copier(&v)
	})
}

// PopBack удаление последнего элемента. Для пустого списка ничего не делает.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		return
	}

	old := l.tail
	l.tail = old.prev
	l.tail.next = l.x
	l.x.prev = l.tail
	l.freeNode(old, true)

	l.size--
	if l.size == 0 {
		l.head = nil
		l.tail = nil
	}
}

// PopFront удаление первого элемента. Для пустого списка ничего не делает.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		return
	}

	old := l.head
	l.head = old.next
	l.head.prev = l.x
	l.x.next = l.head
	l.freeNode(old, true)

	l.size--
	if l.size == 0 {
		l.head = nil
		l.tail = nil
	}
}

// Front ссылка на первый элемент. Список не должен быть пустым.
func (l *List[T]) Front() *T {
	return &l.head.value
}

// Back ссылка на последний элемент. Список не должен быть пустым.
func (l *List[T]) Back() *T {
	return &l.tail.value
}

func construct[T any](ctor func() (T, error)) func(v *T) error {
	return func(v *T) error {
		val, err := ctor()
		if err != nil {
			return err
		}

		*v = val
		return nil
	}
}
