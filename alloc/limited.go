package alloc

import "github.com/sirkon/errors"

// NewLimited конструктор аллокатора, который разрешает держать не больше limit
// живых объектов, остальное делегируется base.
func NewLimited(base Allocator, limit int) Limited {
	if base == nil {
		base = Default()
	}

	return Limited{
		base: base,
		st: &limitState{
			limit: limit,
		},
	}
}

// Limited аллокатор с ограниченным бюджетом объектов. При исчерпании бюджета
// Allocate возвращает ошибку ErrExhausted. Настройки распространения берутся у base.
type Limited struct {
	base Allocator
	st   *limitState
}

type limitState struct {
	limit int
	live  int
}

// Allocate для реализации Allocator.
func (a Limited) Allocate(size uintptr, n int) error {
	if a.st.live+n > a.st.limit {
		return errors.Wrap(ErrExhausted, "reserve objects").
			Int("requested", n).
			Int("live", a.st.live).
			Int("limit", a.st.limit)
	}

	if err := a.base.Allocate(size, n); err != nil {
		return err
	}

	a.st.live += n
	return nil
}

// Deallocate для реализации Allocator.
func (a Limited) Deallocate(size uintptr, n int) {
	a.st.live -= n
	a.base.Deallocate(size, n)
}

// Construct для реализации Allocator.
func (a Limited) Construct(init func() error) error {
	return a.base.Construct(init)
}

// Destroy для реализации Allocator.
func (a Limited) Destroy(fini func()) {
	a.base.Destroy(fini)
}

// Equal для реализации Allocator. Аллокаторы Limited равны, если разделяют
// общий бюджет, то есть получены копированием одного значения NewLimited.
func (a Limited) Equal(other Allocator) bool {
	o, ok := other.(Limited)
	if !ok {
		return false
	}

	return o.st == a.st
}

// SelectOnCopyConstruction для реализации CopyConstructionSelector.
// Копия контейнера получает тот же бюджет, если base не выбирает для копии иной аллокатор.
func (a Limited) SelectOnCopyConstruction() Allocator {
	sel := SelectOnCopyConstruction(a.base)
	if sel.Equal(a.base) {
		return a
	}

	return NewLimited(sel, a.st.limit)
}

// PropagateOnCopyAssignment для реализации CopyAssignmentPropagator.
func (a Limited) PropagateOnCopyAssignment() bool {
	return PropagatesOnCopyAssignment(a.base)
}

// PropagateOnMoveAssignment для реализации MoveAssignmentPropagator.
func (a Limited) PropagateOnMoveAssignment() bool {
	return PropagatesOnMoveAssignment(a.base)
}

// Live число живых объектов.
func (a Limited) Live() int {
	return a.st.live
}

// SetLimit изменение бюджета. Уже выделенные объекты не затрагиваются.
func (a Limited) SetLimit(limit int) {
	a.st.limit = limit
}

var (
	_ Allocator                = Limited{}
	_ CopyConstructionSelector = Limited{}
	_ CopyAssignmentPropagator = Limited{}
	_ MoveAssignmentPropagator = Limited{}
)
