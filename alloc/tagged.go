package alloc

import "github.com/google/uuid"

// NewTagged конструктор аллокатора с уникальной меткой.
func NewTagged(opts ...TaggedOpt) Tagged {
	t := Tagged{
		id: uuid.New(),
	}
	for _, opt := range opts {
		opt(&t, taggedOptRestriction{})
	}

	return t
}

// Tagged аллокатор кучи, равенство которого определяется меткой UUID.
// Используется для контроля того, какой экземпляр аллокатора достаётся
// контейнеру после копирования и присваиваний.
type Tagged struct {
	id        uuid.UUID
	renew     bool
	propagate bool
}

// TaggedOpt опция аллокатора Tagged.
type TaggedOpt func(t *Tagged, _ taggedOptRestriction)

type taggedOptRestriction struct{}

// WithRenewOnCopy копия контейнера получает аллокатор с новой меткой.
func WithRenewOnCopy() TaggedOpt {
	return func(t *Tagged, _ taggedOptRestriction) {
		t.renew = true
	}
}

// WithPropagateOnAssignment аллокатор переходит к получателю при присваиваниях.
func WithPropagateOnAssignment() TaggedOpt {
	return func(t *Tagged, _ taggedOptRestriction) {
		t.propagate = true
	}
}

// ID метка аллокатора.
func (t Tagged) ID() uuid.UUID {
	return t.id
}

// Allocate для реализации Allocator.
func (t Tagged) Allocate(size uintptr, n int) error {
	return nil
}

// Deallocate для реализации Allocator.
func (t Tagged) Deallocate(size uintptr, n int) {}

// Construct для реализации Allocator.
func (t Tagged) Construct(init func() error) error {
	return init()
}

// Destroy для реализации Allocator.
func (t Tagged) Destroy(fini func()) {
	fini()
}

// Equal для реализации Allocator.
func (t Tagged) Equal(other Allocator) bool {
	o, ok := other.(Tagged)
	if !ok {
		return false
	}

	return o.id == t.id
}

// SelectOnCopyConstruction для реализации CopyConstructionSelector.
func (t Tagged) SelectOnCopyConstruction() Allocator {
	if !t.renew {
		return t
	}

	res := t
	res.id = uuid.New()
	return res
}

// PropagateOnCopyAssignment для реализации CopyAssignmentPropagator.
func (t Tagged) PropagateOnCopyAssignment() bool {
	return t.propagate
}

// PropagateOnMoveAssignment для реализации MoveAssignmentPropagator.
func (t Tagged) PropagateOnMoveAssignment() bool {
	return t.propagate
}

func (t Tagged) String() string {
	return "tagged allocator " + t.id.String()
}

var (
	_ Allocator                = Tagged{}
	_ CopyConstructionSelector = Tagged{}
	_ CopyAssignmentPropagator = Tagged{}
	_ MoveAssignmentPropagator = Tagged{}
)
