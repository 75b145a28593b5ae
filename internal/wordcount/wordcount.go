// Package wordcount counts the words of files with the infix combinators:
// reading a file gives a rop.Result of its lines, and the pure word count is
// mapped over it.
package wordcount

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ib-77/ropfx/pkg/rop"
	"github.com/ib-77/ropfx/pkg/rop/infix"
	"github.com/ib-77/ropfx/pkg/rop/solo"
	"github.com/ib-77/ropfx/pkg/rop/stream"
)

type Count struct {
	Path   string
	Result rop.Result[int]
}

func ReadLines(path string) rop.Result[[]string] {
	data, err := os.ReadFile(path)
	if err != nil {
		return rop.Fail[[]string](fmt.Errorf("read %s: %w", path, err))
	}

	lines := make([]string, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return rop.Fail[[]string](fmt.Errorf("scan %s: %w", path, err))
	}

	return rop.Success(lines)
}

func CountWords(lines []string) int {
	n := 0
	for _, line := range lines {
		n += len(strings.Fields(line))
	}
	return n
}

// Counter returns ReadLines >=$> CountWords.
func Counter(ctx context.Context) func(path string) rop.Result[int] {
	return infix.KleisliMap(solo.Fmap[[]string, int](ctx), ReadLines, CountWords)
}

// CountAll counts every path on a stream and returns the counts in the order
// of paths. Paths not reached before ctx is done are missing from the result.
func CountAll(ctx context.Context, paths []string) []Count {
	count := Counter(ctx)

	return stream.ToSlice(ctx,
		infix.MapThen(stream.Fmap[string, Count](ctx),
			stream.FromSlice(ctx, paths),
			func(path string) Count {
				return Count{Path: path, Result: count(path)}
			}))
}
