package tlog_test

import (
	stderrs "errors"
	"strings"
	"testing"

	"github.com/sirkon/dllist/alloc"
	"github.com/sirkon/dllist/internal/tlog"
	"github.com/sirkon/errors"
)

type recorder struct {
	testing.TB
	logged []string
}

func (r *recorder) Helper() {}

func (r *recorder) Log(a ...any) {
	for _, v := range a {
		r.logged = append(r.logged, v.(string))
	}
}

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-exhausted-allocator", func(t *testing.T) {
		l := alloc.NewLimited(nil, 1)
		err := l.Allocate(16, 2)
		if err == nil {
			t.Error("exhausted allocator error expected")
			return
		}

		tlog.Log(t, err)
	})

	t.Run("context-rendering", func(t *testing.T) {
		r := &recorder{TB: t}
		tlog.Log(r, errors.New("ctx error").Int("requested", 2).Str("allocator", "limited"))
		if len(r.logged) != 1 {
			t.Errorf("expected single log record, got %d", len(r.logged))
			return
		}

		for _, part := range []string{"ctx error", "requested\033[0m: 2", "allocator\033[0m: limited"} {
			if !strings.Contains(r.logged[0], part) {
				t.Errorf("%q expected in rendering %q", part, r.logged[0])
			}
		}
	})

	t.Run("check-nil", func(t *testing.T) {
		if tlog.Check(t, nil) {
			t.Error("nil error must not be reported")
		}
	})
}
