package mocks

//go:generate mockgen -destination allocator_mock.go -package mocks -mock_names Allocator=AllocatorMock github.com/sirkon/dllist/alloc Allocator
