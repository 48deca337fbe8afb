package dllist

import (
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/dllist/internal/tlog"
	"github.com/sirkon/errors"
)

func TestIterator(t *testing.T) {
	l, err := NewFrom([]int{1, 2, 3})
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create list"))
		return
	}
	defer l.Destroy()

	t.Run("backward-from-end", func(t *testing.T) {
		it := l.End()
		if v := it.Prev().Value(); v != 3 {
			t.Errorf("expected 3 before end, got %d", v)
		}

		old := it.PostPrev()
		if old.Value() != 3 || it.Value() != 2 {
			t.Errorf("unexpected post decrement result %d and position %d", old.Value(), it.Value())
		}
	})

	t.Run("forward", func(t *testing.T) {
		it := l.Begin()
		old := it.PostNext()
		if old.Value() != 1 || it.Value() != 2 {
			t.Errorf("unexpected post increment result %d and position %d", old.Value(), it.Value())
		}

		if !it.Next().Next().Equal(l.End()) {
			t.Error("end expected after the last element")
		}
	})

	t.Run("ring", func(t *testing.T) {
		it := l.Begin()
		if !it.Prev().Equal(l.End()) {
			t.Error("position before begin must be end")
		}
	})

	t.Run("mutate", func(t *testing.T) {
		it := l.Begin()
		it.Next()
		it.Set(20)
		*it.Next().Ptr() = 30
		deepequal.SideBySide(t, "values", []int{1, 20, 30}, l.Values())
	})

	t.Run("const", func(t *testing.T) {
		var got []int
		for it := l.CEnd(); !it.Equal(l.CBegin()); {
			got = append(got, it.Prev().Value())
		}
		deepequal.SideBySide(t, "reversed", []int{30, 20, 1}, got)

		it := l.CBegin()
		old := it.PostNext()
		if !old.Equal(l.CBegin()) {
			t.Error("post increment must return the original position")
		}
		if it.PostPrev().Value() != 20 || !it.Equal(l.CBegin()) {
			t.Error("unexpected post decrement behaviour")
		}
		if !l.Begin().Const().Equal(l.CBegin()) {
			t.Error("const view must point to the same node")
		}
	})
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{
			name:  "empty",
			input: nil,
			want:  []int{},
		},
		{
			name:  "single",
			input: []int{1},
			want:  []int{1},
		},
		{
			name:  "even",
			input: []int{1, 2, 3, 4},
			want:  []int{4, 3, 2, 1},
		},
		{
			name:  "odd",
			input: []int{1, 2, 3, 4, 5},
			want:  []int{5, 4, 3, 2, 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewFrom(tt.input)
			if err != nil {
				tlog.Error(t, errors.Wrap(err, "create list"))
				return
			}
			defer l.Destroy()

			Reverse(l.Begin(), l.End())
			deepequal.SideBySide(t, "reversed", tt.want, l.Values())
		})
	}
}
