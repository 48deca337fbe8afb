package dllist_test

import (
	"fmt"

	"github.com/sirkon/dllist"
	"github.com/sirkon/dllist/alloc"
	"github.com/sirkon/errors"
)

func ExampleList() {
	a := alloc.NewCounting()
	l, err := dllist.New[string](dllist.WithAllocator(a))
	if err != nil {
		panic(errors.Wrap(err, "create list"))
	}

	for _, v := range []string{"world", "hello"} {
		if err := l.PushFront(v); err != nil {
			panic(errors.Wrap(err, "push front"))
		}
	}
	if err := l.PushBack("!"); err != nil {
		panic(errors.Wrap(err, "push back"))
	}

	for it := l.CBegin(); !it.Equal(l.CEnd()); it.Next() {
		fmt.Println(it.Value())
	}

	l.Destroy()
	fmt.Println(a.Stats().Leaked())

	// Output:
	// hello
	// world
	// !
	// 0
}

func ExampleReverse() {
	l, err := dllist.NewFrom([]int{1, 2, 3})
	if err != nil {
		panic(errors.Wrap(err, "create list"))
	}
	defer l.Destroy()

	dllist.Reverse(l.Begin(), l.End())
	fmt.Println(l.Values())

	// Output:
	// [3 2 1]
}
