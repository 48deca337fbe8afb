package alloc

// Heap аллокатор работающий напрямую с кучей рантайма. Не имеет состояния,
// все его экземпляры равны между собой, не распространяется при присваиваниях.
type Heap struct{}

// Allocate для реализации Allocator.
func (Heap) Allocate(size uintptr, n int) error {
	return nil
}

// Deallocate для реализации Allocator.
func (Heap) Deallocate(size uintptr, n int) {}

// Construct для реализации Allocator.
func (Heap) Construct(init func() error) error {
	return init()
}

// Destroy для реализации Allocator.
func (Heap) Destroy(fini func()) {
	fini()
}

// Equal для реализации Allocator.
func (Heap) Equal(other Allocator) bool {
	_, ok := other.(Heap)
	return ok
}

var _ Allocator = Heap{}
