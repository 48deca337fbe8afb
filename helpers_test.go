package dllist

import "github.com/sirkon/errors"

const (
	errAccountantFailure errors.Const = "accountant construction failure"
	errElementFailure    errors.Const = "element construction failure"
)

// accountantCalls общие счётчики конструирований и разрушений accountant и throwingAccountant.
var accountantCalls struct {
	ctor int
	dtor int

	needThrow bool
}

func resetAccountant() {
	accountantCalls.ctor = 0
	accountantCalls.dtor = 0
}

type accountant struct {
	value int
}

func (a *accountant) Init() error {
	accountantCalls.ctor++
	return nil
}

func (a *accountant) Clone() (accountant, error) {
	accountantCalls.ctor++
	return *a, nil
}

func (a *accountant) Destroy() {
	accountantCalls.dtor++
}

// throwingAccountant отказывает в конструировании пятого объекта после сброса
// счётчиков, если выставлен needThrow.
type throwingAccountant struct {
	value int
}

func (a *throwingAccountant) Init() error {
	if accountantCalls.needThrow && accountantCalls.ctor == 4 {
		return errAccountantFailure
	}

	accountantCalls.ctor++
	return nil
}

func (a *throwingAccountant) Clone() (throwingAccountant, error) {
	if accountantCalls.needThrow && accountantCalls.ctor == 4 {
		return throwingAccountant{}, errAccountantFailure
	}

	accountantCalls.ctor++
	return *a, nil
}

func (a *throwingAccountant) Destroy() {
	accountantCalls.dtor++
}

type tracked struct {
	value     int
	destroyed *int
}

func (t *tracked) Destroy() {
	*t.destroyed++
}

type rollback struct {
	op    string
	built int
}

type recordingLogger struct {
	rollbacks    []rollback
	propagations []string
}

func (l *recordingLogger) BulkConstructionRolledBack(op string, built int, err error) {
	l.rollbacks = append(l.rollbacks, rollback{
		op:    op,
		built: built,
	})
}

func (l *recordingLogger) AllocatorPropagated(op string) {
	l.propagations = append(l.propagations, op)
}

// checkRing проверка связей кольца через страж.
func checkRing[T any](l *List[T]) error {
	if l.size == 0 {
		if l.head != nil || l.tail != nil {
			return errors.New("empty list must have no head and tail")
		}
		return nil
	}

	if l.x.next != l.head || l.x.prev != l.tail || l.head.prev != l.x || l.tail.next != l.x {
		return errors.New("sentinel does not close the ring")
	}

	var count int
	for n := l.head; n != l.x; n = n.next {
		if n.next.prev != n {
			return errors.New("broken back link").Int("position", count)
		}
		count++
	}

	if count != l.size {
		return errors.New("size mismatch").Int("size", l.size).Int("reachable", count)
	}

	return nil
}
