package fishhash

import (
	"sync"
	"testing"
)

// PrebuildDataset(ctx, k) must yield the same full-dataset bytes for
// every k >= 1.
func TestPrebuildDatasetParallelInvariance(t *testing.T) {
	const lightItems, fullItems = 2048, 97 // prime size: exercises the "last chunk absorbs the remainder" path

	ref, err := newContextWithSizes(lightItems, fullItems, true)
	if err != nil {
		t.Fatalf("newContextWithSizes: %v", err)
	}
	if err := PrebuildDataset(ref, 1); err != nil {
		t.Fatalf("PrebuildDataset(1): %v", err)
	}

	for _, threads := range []uint32{2, 8, 16} {
		ctx, err := newContextWithSizes(lightItems, fullItems, true)
		if err != nil {
			t.Fatalf("newContextWithSizes: %v", err)
		}
		if err := PrebuildDataset(ctx, threads); err != nil {
			t.Fatalf("PrebuildDataset(%d): %v", threads, err)
		}
		for i := range ref.fullDataset {
			if ref.fullDataset[i] != ctx.fullDataset[i] {
				t.Fatalf("threads=%d: item %d differs from the single-threaded build", threads, i)
			}
		}
	}
}

// num_threads == 0 must behave like num_threads == 1.
func TestPrebuildDatasetZeroThreadsNormalizes(t *testing.T) {
	const lightItems, fullItems = 512, 16

	ctx, err := newContextWithSizes(lightItems, fullItems, true)
	if err != nil {
		t.Fatalf("newContextWithSizes: %v", err)
	}
	if err := PrebuildDataset(ctx, 0); err != nil {
		t.Fatalf("PrebuildDataset(0): %v", err)
	}
	var zero Hash1024
	for i, item := range ctx.fullDataset {
		if item == zero {
			t.Fatalf("item %d left unpopulated after PrebuildDataset(0)", i)
		}
	}
}

// PrebuildDataset on a light-only context must be a no-op, not a panic.
func TestPrebuildDatasetNoopOnLightOnly(t *testing.T) {
	ctx, err := newContextWithSizes(256, 16, false)
	if err != nil {
		t.Fatalf("newContextWithSizes: %v", err)
	}
	if err := PrebuildDataset(ctx, 4); err != nil {
		t.Fatalf("PrebuildDataset on light-only context returned an error: %v", err)
	}
}

// Upgrade rule: requesting a light-only context after a full context
// already exists in the shared slot must return that full *Context by
// identity, exposing the same light cache.
//
// This drives the same singleton logic GetContext uses, but through
// sharedContextWithSizes at reduced item counts, so the rule is
// exercised without forcing the real ~4.6 GiB full-dataset allocation.
func TestGetContextUpgradeRule(t *testing.T) {
	resetSharedContextForTest()
	defer resetSharedContextForTest()

	const lightItems, fullItems = 2048, 64

	full, err := sharedContextWithSizes(lightItems, fullItems, true)
	if err != nil {
		t.Fatalf("sharedContextWithSizes(full): %v", err)
	}
	light, err := sharedContextWithSizes(lightItems, fullItems, false)
	if err != nil {
		t.Fatalf("sharedContextWithSizes(light): %v", err)
	}
	if full != light {
		t.Fatalf("requesting light-only after full returned a different context")
	}
}

// A second GetContext(false) call must return the very same context,
// not rebuild it.
func TestGetContextSingleton(t *testing.T) {
	resetSharedContextForTest()
	defer resetSharedContextForTest()

	a, err := GetContext(false)
	if err != nil {
		t.Fatalf("GetContext: %v", err)
	}
	b, err := GetContext(false)
	if err != nil {
		t.Fatalf("GetContext: %v", err)
	}
	if a != b {
		t.Fatalf("GetContext(false) called twice returned different contexts")
	}
}

// Concurrent hashers sharing a prebuilt full context must agree with a
// single-threaded baseline and must not race (run with -race in CI).
func TestConcurrentHashersAgreeWithBaseline(t *testing.T) {
	const lightItems, fullItems = 2048, 64

	ctx, err := newContextWithSizes(lightItems, fullItems, true)
	if err != nil {
		t.Fatalf("newContextWithSizes: %v", err)
	}
	if err := PrebuildDataset(ctx, 4); err != nil {
		t.Fatalf("PrebuildDataset: %v", err)
	}

	const workers = 16
	headers := make([][]byte, workers)
	want := make([]Hash256, workers)
	for i := range headers {
		h := make([]byte, 80)
		for j := range h {
			h[j] = byte(i*31 + j)
		}
		headers[i] = h
		want[i] = Hash(ctx, h)
	}

	var wg sync.WaitGroup
	got := make([]Hash256, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Hash(ctx, headers[i])
		}(i)
	}
	wg.Wait()

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("worker %d: concurrent hash disagrees with baseline", i)
		}
	}
}

func resetSharedContextForTest() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedCtx = nil
}
