package cache

import (
	"bufio"
	"fmt"
	"io"
)

// dumpWriter buffers output and keeps the first write error.
type dumpWriter struct {
	w *bufio.Writer
}

func newDumpWriter(w io.Writer) *dumpWriter { return &dumpWriter{w: bufio.NewWriter(w)} }

func (d *dumpWriter) printf(format string, args ...any) {
	// bufio.Writer errors are sticky and surface from flush.
	_, _ = fmt.Fprintf(d.w, format, args...)
}

func (d *dumpWriter) flush() error { return d.w.Flush() }

// dumpBucket writes one bucket in arrival/recency order, oldest first.
func dumpBucket[K comparable, V any](dw *dumpWriter, label string, idx int, b *bucket[K, V]) {
	dw.printf("  %s %d [%s %d/%d] {\n", label, idx, b.kind, b.size(), b.cap)
	for _, e := range b.entries {
		dw.printf("    key=%v value=%v hits=%d touched=%d\n", e.key, e.val, e.meta.Hits, e.meta.Touched)
	}
	dw.printf("  }\n")
}
