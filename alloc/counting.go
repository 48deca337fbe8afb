package alloc

// NewCounting конструктор считающего аллокатора.
func NewCounting() Counting {
	return Counting{
		c: &counters{
			live: map[uintptr]int{},
		},
	}
}

// Counting аллокатор ведущий учёт всех этапов жизни объектов.
// Копии значения разделяют общие счётчики и равны между собой.
type Counting struct {
	c *counters
}

type counters struct {
	allocated   int
	deallocated int
	constructed int
	destroyed   int

	// Число живых объектов для каждого размера объекта.
	live map[uintptr]int
}

// Allocate для реализации Allocator.
func (a Counting) Allocate(size uintptr, n int) error {
	a.c.allocated += n
	a.c.live[size] += n
	return nil
}

// Deallocate для реализации Allocator.
func (a Counting) Deallocate(size uintptr, n int) {
	a.c.deallocated += n
	a.c.live[size] -= n
	if a.c.live[size] == 0 {
		delete(a.c.live, size)
	}
}

// Construct для реализации Allocator. Учитываются только успешные конструирования.
func (a Counting) Construct(init func() error) error {
	if err := init(); err != nil {
		return err
	}

	a.c.constructed++
	return nil
}

// Destroy для реализации Allocator.
func (a Counting) Destroy(fini func()) {
	fini()
	a.c.destroyed++
}

// Equal для реализации Allocator.
func (a Counting) Equal(other Allocator) bool {
	o, ok := other.(Counting)
	if !ok {
		return false
	}

	return o.c == a.c
}

// Stats снимок текущих счётчиков.
func (a Counting) Stats() Stats {
	live := make(map[uintptr]int, len(a.c.live))
	for size, count := range a.c.live {
		live[size] = count
	}

	return Stats{
		Allocated:   a.c.allocated,
		Deallocated: a.c.deallocated,
		Constructed: a.c.constructed,
		Destroyed:   a.c.destroyed,
		Live:        live,
	}
}

// Reset обнуление счётчиков.
func (a Counting) Reset() {
	*a.c = counters{
		live: map[uintptr]int{},
	}
}

var _ Allocator = Counting{}
