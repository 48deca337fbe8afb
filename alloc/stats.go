package alloc

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Stats снимок счётчиков считающего аллокатора.
type Stats struct {
	Allocated   int
	Deallocated int
	Constructed int
	Destroyed   int

	// Live число живых объектов по их размерам.
	Live map[uintptr]int
}

// Leaked число выделенных, но не освобождённых объектов.
func (s Stats) Leaked() int {
	return s.Allocated - s.Deallocated
}

// Alive число сконструированных, но не разрушенных объектов.
func (s Stats) Alive() int {
	return s.Constructed - s.Destroyed
}

// InUse объём удерживаемой памяти в байтах.
func (s Stats) InUse() uint64 {
	var res uint64
	for size, count := range s.Live {
		res += uint64(size) * uint64(count)
	}

	return res
}

func (s Stats) String() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(
		&b,
		"allocated %d, deallocated %d, constructed %d, destroyed %d, in use %s",
		s.Allocated,
		s.Deallocated,
		s.Constructed,
		s.Destroyed,
		humanize.Bytes(s.InUse()),
	)

	sizes := maps.Keys(s.Live)
	if len(sizes) == 0 {
		return b.String()
	}

	slices.Sort(sizes)
	b.WriteString(" [")
	for i, size := range sizes {
		if i > 0 {
			b.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&b, "%s×%d", humanize.Bytes(uint64(size)), s.Live[size])
	}
	b.WriteByte(']')

	return b.String()
}
