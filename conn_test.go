package journal

import (
	"path/filepath"
	"sync"
	"testing"
)

// Any number of goroutines racing through first use must converge on
// exactly one published Conn.
func TestAcquire_SingleWinner(t *testing.T) {
	newTestSocket(t)

	const n = 32
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		conns [n]*Conn
	)

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			c, err := acquire()
			if err != nil {
				t.Errorf("acquire failed: %v", err)
				return
			}
			conns[i] = c
		}(i)
	}
	close(start)
	wg.Wait()

	if conns[0] == nil {
		t.Fatal("no Conn acquired")
	}
	for i := 1; i < n; i++ {
		if conns[i] != conns[0] {
			t.Fatalf("goroutine %d observed a different Conn", i)
		}
	}
	if got := shared.Load(); got != conns[0] {
		t.Fatal("published Conn differs from the one returned to callers")
	}
}

func TestAcquire_FastPathReturnsPublished(t *testing.T) {
	newTestSocket(t)

	first, err := acquire()
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	second, err := acquire()
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if first != second {
		t.Fatal("second acquire did not return the published Conn")
	}
}

func TestEnabled(t *testing.T) {
	newTestSocket(t)

	if !Enabled() {
		t.Fatal("expected Enabled with a live daemon socket")
	}

	socketPath = filepath.Join(t.TempDir(), "missing.sock")
	if Enabled() {
		t.Fatal("expected !Enabled with no socket at the endpoint")
	}
}
