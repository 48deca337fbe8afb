// Package logging абстракция логирования событий контейнера, которые
// не отражаются в возвращаемых ошибках.
package logging

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// BulkConstructionRolledBack построение цепочки узлов в операции op прервалось ошибкой err,
	// built успешно построенных к этому моменту узлов были разрушены.
	BulkConstructionRolledBack(op string, built int, err error)
	// AllocatorPropagated контейнер сменил свой аллокатор в операции op.
	AllocatorPropagated(op string)
}

// Nop логгер ничего не делающий.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) BulkConstructionRolledBack(string, int, error) {}

func (nopLogger) AllocatorPropagated(string) {}
