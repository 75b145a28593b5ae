package stream

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ib-77/ropfx/pkg/rop/functor"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOf_ToSlice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := ToSlice(ctx, Of(ctx, 1, 2, 3))
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}

	assert.Empty(t, ToSlice(ctx, FromSlice[int](ctx, nil)))
}

func TestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ch := make(chan int, 1)
	ch <- 8
	close(ch)
	assert.Equal(t, 8, First(ctx, ch, -1))

	empty := make(chan int)
	close(empty)
	assert.Equal(t, -1, First(ctx, empty, -1))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Equal(t, -1, First(cancelled, make(chan int), -1))
}

func TestMap_PreservesOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make([]int, 100)
	want := make([]string, 100)
	for i := range in {
		in[i] = i
		want[i] = strconv.Itoa(i * i)
	}

	got := ToSlice(ctx, Map(ctx, FromSlice(ctx, in), func(n int) string { return strconv.Itoa(n * n) }))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestMap_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan int)
	out := Map(ctx, in, func(n int) int { return n })

	cancel()

	select {
	case _, ok := <-out:
		assert.False(t, ok, "output must be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
	close(in)
}

func TestFmap_Laws(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	values := []int{3, 1, 2}

	ident := ToSlice(ctx, Fmap[int, int](ctx)(FromSlice(ctx, values), functor.Id[int]))
	assert.Equal(t, values, ident)

	inc := func(n int) int { return n + 1 }
	left := ToSlice(ctx, Fmap[int, string](ctx)(Fmap[int, int](ctx)(FromSlice(ctx, values), inc), strconv.Itoa))
	right := ToSlice(ctx, Fmap[int, string](ctx)(FromSlice(ctx, values),
		func(n int) string { return strconv.Itoa(inc(n)) }))
	assert.Equal(t, right, left)
}

func TestBufferSize(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 4, BufferSize(ctx, 4))
	assert.Equal(t, 16, BufferSize(WithBuffer(ctx, 16), 4))
	assert.Equal(t, 4, BufferSize(WithBuffer(ctx, -1), 4))

	buffered := WithBuffer(ctx, 3)
	out := Map(buffered, Of(buffered, 1, 2, 3), func(n int) int { return n })
	assert.Equal(t, 3, cap(out))
	assert.Equal(t, []int{1, 2, 3}, ToSlice(buffered, out))
}
