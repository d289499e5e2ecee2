package fishhash

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
	"golang.org/x/sync/errgroup"
)

// ErrOutOfMemory is returned by GetContext when the backing allocation
// for the light cache or full dataset cannot be made.
var ErrOutOfMemory = errors.New("fishhash: out of memory")

// Context owns a light cache and, optionally, a full dataset. It is
// safe for concurrent use: the light cache is immutable after
// construction, and full-dataset slots are filled idempotently (see
// Lookup).
type Context struct {
	lightCache []Hash512

	fullDatasetNumItems int
	fullDataset         []Hash1024 // nil when this is a light-only context

	buildMeter metrics.Meter
}

// Full reports whether this context owns a materialised full dataset.
func (c *Context) Full() bool { return c.fullDataset != nil }

// LightCache exposes the underlying light-cache items, primarily for
// tests and for callers recomputing items outside of Hash.
func (c *Context) LightCache() []Hash512 { return c.lightCache }

var (
	sharedMu  sync.Mutex
	sharedCtx *Context
)

// GetContext returns the process-wide shared context, building it on
// first call. A request for full supersedes a prior light-only
// context; a request for light-only when a full context already
// exists is satisfied by that full context. The shared slot is guarded
// by a single lock covering the check-and-allocate.
func GetContext(full bool) (*Context, error) {
	return sharedContextWithSizes(LightCacheNumItems, FullDatasetNumItems, full)
}

// sharedContextWithSizes implements the upgrade rule against the
// process-wide singleton for the given item counts. GetContext always
// calls it with the full-size constants; tests call it directly with
// reduced sizes so the upgrade rule can be exercised without a
// multi-GiB allocation.
func sharedContextWithSizes(lightItems, fullItems int, full bool) (*Context, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedCtx != nil && (!full || sharedCtx.Full()) {
		return sharedCtx, nil
	}

	ctx, err := newContextWithSizes(lightItems, fullItems, full)
	if err != nil {
		return nil, err
	}
	sharedCtx = ctx
	return sharedCtx, nil
}

// newContextWithSizes builds a context with the given item counts. It
// underlies GetContext (always called with the full-size constants)
// and the package's own tests, which use reduced sizes so the
// dataset-construction algorithm can be exercised without a multi-GiB
// allocation.
func newContextWithSizes(lightItems, fullItems int, full bool) (ctx *Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			ctx, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()

	start := time.Now()
	lightCache := make([]Hash512, lightItems)
	BuildLightCache(lightCache, Seed)
	log.Info("Built fishhash light cache",
		"items", lightItems,
		"size", common.StorageSize(lightItems*64),
		"elapsed", common.PrettyDuration(time.Since(start)))

	c := &Context{
		lightCache:          lightCache,
		fullDatasetNumItems: fullItems,
		buildMeter:          metrics.NewMeter(),
	}
	if full {
		c.fullDataset = make([]Hash1024, fullItems)
	}
	return c, nil
}

// Lookup resolves the dataset item at index, serving it from the full
// dataset when present (recomputing and caching it on first touch) or
// recomputing it from the light cache on every call for a light-only
// context.
//
// The full-dataset slot is zero-initialised; a slot is treated as
// unpopulated when its first u64 word is zero. A lazily filled slot
// whose genuinely computed first word happens to be zero will simply
// be recomputed on the next read; this is observationally equivalent.
// Concurrent writers computing the same
// slot write identical bytes (the value is a pure function of index),
// so last-writer-wins is safe; callers wanting race-detector-clean
// concurrent hashing should call PrebuildDataset first.
func (c *Context) Lookup(index uint32) Hash1024 {
	if c.fullDataset == nil {
		return DatasetItem1024(c.lightCache, index)
	}
	item := &c.fullDataset[index]
	if item.Word64(0) == 0 {
		*item = DatasetItem1024(c.lightCache, index)
	}
	return *item
}

// PrebuildDataset eagerly fills every full-dataset slot, partitioning
// the index range into numThreads contiguous chunks (the last chunk
// absorbs any remainder) and filling them concurrently via an
// errgroup. It is a no-op for a light-only context. numThreads == 0 is
// normalized to 1. When the dataset has fewer items than numThreads, a
// single worker fills the whole range.
func PrebuildDataset(ctx *Context, numThreads uint32) error {
	if ctx.fullDataset == nil {
		return nil
	}
	if numThreads == 0 {
		numThreads = 1
	}

	n := len(ctx.fullDataset)
	batch := n / int(numThreads)
	if batch == 0 {
		batch = n
		numThreads = 1
	}

	var built atomic.Int64
	start := time.Now()

	g := new(errgroup.Group)
	for w := uint32(0); w < numThreads; w++ {
		from := int(w) * batch
		to := from + batch
		if w == numThreads-1 {
			to = n
		}
		g.Go(func() error {
			for i := from; i < to; i++ {
				ctx.fullDataset[i] = DatasetItem1024(ctx.lightCache, uint32(i))
			}
			built.Add(int64(to - from))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	ctx.buildMeter.Mark(built.Load())
	log.Info("Prebuilt fishhash dataset",
		"items", n,
		"threads", numThreads,
		"size", common.StorageSize(n*128),
		"elapsed", common.PrettyDuration(elapsed),
		"rate", ctx.buildMeter.RateMean())
	return nil
}

// DefaultPrebuildThreads mirrors a common CPU-count default for
// worker pools (runtime.NumCPU), for callers that want a sane default
// instead of hand-picking numThreads for PrebuildDataset.
func DefaultPrebuildThreads() uint32 {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return uint32(n)
}
