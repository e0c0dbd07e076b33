package signal

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

// ============================================================================
// 并发测试
// ============================================================================

// TestConcurrent_EmitAndSubscribe 测试同一信号上的并发订阅与发射
func TestConcurrent_EmitAndSubscribe(t *testing.T) {
	sig := New("concurrent.mixed")

	var calls atomic.Int64
	numWorkers := 8
	iterations := 100

	var wg sync.WaitGroup
	wg.Add(numWorkers * 2)

	// 一半 goroutine 订阅
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				unsub := sig.Connect(func(args ...any) {
					calls.Add(1)
				})
				unsub()
			}
		}()
	}

	// 一半 goroutine 发射
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sig.Emit(j)
			}
		}()
	}

	wg.Wait()

	// 所有瞬态订阅均已退订
	if sig.Len() != 0 {
		t.Errorf("Len() after churn = %d, want 0", sig.Len())
	}
}

// TestConcurrent_UnsubscribeDuringEmit 测试发射期间的并发退订不丢失派发
func TestConcurrent_UnsubscribeDuringEmit(t *testing.T) {
	sig := New("concurrent.unsub")

	var calls atomic.Int64
	sig.Connect(func(args ...any) {
		calls.Add(1)
	})

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			sig.Emit()
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			unsub := sig.Connect(func(args ...any) {})
			unsub()
		}
	}()

	wg.Wait()

	// 常驻订阅者收到每一次发射
	if got := calls.Load(); got != 1000 {
		t.Errorf("resident subscriber called %d times, want 1000", got)
	}
}

// TestConcurrent_HubGetOrCreate 测试并发获取同名信号得到同一实例
func TestConcurrent_HubGetOrCreate(t *testing.T) {
	hub := NewHub()

	numWorkers := 16
	results := make([]*Signal, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(idx int) {
			defer wg.Done()
			results[idx] = hub.getOrCreate("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < numWorkers; i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent getOrCreate returned distinct instances")
		}
	}
	if hub.Stats().SignalCount != 1 {
		t.Errorf("SignalCount = %d, want 1", hub.Stats().SignalCount)
	}
}

// TestConcurrent_DistinctSignals 测试不同信号互不串行且互不干扰
func TestConcurrent_DistinctSignals(t *testing.T) {
	hub := NewHub()

	numSignals := 8
	emitsPerSignal := 200
	counters := make([]atomic.Int64, numSignals)

	for i := 0; i < numSignals; i++ {
		idx := i
		hub.Subscribe(signalName(idx), func(args ...any) {
			counters[idx].Add(1)
		})
	}

	var wg sync.WaitGroup
	wg.Add(numSignals)
	for i := 0; i < numSignals; i++ {
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < emitsPerSignal; j++ {
				hub.Emit(signalName(idx), j)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < numSignals; i++ {
		if got := counters[i].Load(); got != int64(emitsPerSignal) {
			t.Errorf("signal %d received %d emits, want %d", i, got, emitsPerSignal)
		}
	}
}

func signalName(i int) string {
	return fmt.Sprintf("bench.signal.%d", i)
}
