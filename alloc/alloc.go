// Package alloc определяет контракт аллокатора для контейнеров и набор готовых аллокаторов.
//
// Память под объекты выделяет рантайм Go, аллокатор же отвечает за учёт ресурса
// и получает управление на каждом этапе жизни объекта: выделение, конструирование,
// разрушение и освобождение. Отказ на этапе выделения или конструирования
// контейнер обязан отработать без утечек учтённого ресурса.
package alloc

// Allocator абстракция стратегии работы с памятью.
type Allocator interface {
	// Allocate резервирует ресурс под n объектов размером size байт.
	Allocate(size uintptr, n int) error
	// Deallocate возвращает ресурс ранее зарезервированный Allocate с теми же параметрами.
	Deallocate(size uintptr, n int)
	// Construct конструирует объект в выделенной памяти, вызывая init.
	// Ошибка init должна возвращаться как есть.
	Construct(init func() error) error
	// Destroy разрушает сконструированный объект вызовом fini.
	Destroy(fini func())
	// Equal сообщает, может ли other освобождать ресурс выделенный данным аллокатором.
	Equal(other Allocator) bool
}

// CopyConstructionSelector реализуется аллокаторами, которые сами выбирают
// аллокатор для копии контейнера.
type CopyConstructionSelector interface {
	SelectOnCopyConstruction() Allocator
}

// CopyAssignmentPropagator реализуется аллокаторами, которые переходят к
// контейнеру-получателю при копирующем присваивании.
type CopyAssignmentPropagator interface {
	PropagateOnCopyAssignment() bool
}

// MoveAssignmentPropagator реализуется аллокаторами, которые переходят к
// контейнеру-получателю при перемещающем присваивании.
type MoveAssignmentPropagator interface {
	PropagateOnMoveAssignment() bool
}

// SelectOnCopyConstruction выбор аллокатора для копии контейнера использующего a.
// Если a не задаёт политику выбора, то используется сам a.
func SelectOnCopyConstruction(a Allocator) Allocator {
	if s, ok := a.(CopyConstructionSelector); ok {
		return s.SelectOnCopyConstruction()
	}

	return a
}

// PropagatesOnCopyAssignment нужно ли заменять аллокатор получателя при копирующем присваивании.
func PropagatesOnCopyAssignment(a Allocator) bool {
	if p, ok := a.(CopyAssignmentPropagator); ok {
		return p.PropagateOnCopyAssignment()
	}

	return false
}

// PropagatesOnMoveAssignment нужно ли заменять аллокатор получателя при перемещающем присваивании.
func PropagatesOnMoveAssignment(a Allocator) bool {
	if p, ok := a.(MoveAssignmentPropagator); ok {
		return p.PropagateOnMoveAssignment()
	}

	return false
}

// Default аллокатор по умолчанию.
func Default() Allocator {
	return Heap{}
}
