package spectral

import (
	"container/list"

	"gonum.org/v1/gonum/dsp/fourier"
)

// planCacheCapacity bounds the number of cached plans. Twiddle tables for
// large transforms are not small, and real workloads cycle through a handful
// of shapes.
const planCacheCapacity = 16

type transformKind int

const (
	kindReal transformKind = iota
	kindComplex
)

type direction int

const (
	directionForward direction = iota
	directionInverse
)

// planKey identifies one cached plan shape.
type planKey struct {
	n        int
	kind     transformKind
	dir      direction
	planning Planning
}

// plan holds the backend objects for one transform shape. Exactly one of
// real/cmplx is set, matching the kind in its key.
//
// Plans are shared through the cache: two transforms of the same shape reuse
// one plan, so callers that transform concurrently must serialize per shape.
type plan struct {
	key   planKey
	real  *fourier.FFT
	cmplx *fourier.CmplxFFT
}

// planCache is a keyed LRU: a map for lookup and an intrusive list for
// recency, evicting the coldest plan once capacity is reached.
type planCache struct {
	entries map[planKey]*list.Element
	order   *list.List // front = most recently used; values are *plan
}

var cache = planCache{
	entries: make(map[planKey]*list.Element),
	order:   list.New(),
}

// acquirePlan returns the cached plan for the shape, building and inserting
// it on a miss. The process-wide planning preference is folded into the key,
// so changing the preference never resurrects plans built under the old one.
func acquirePlan(n int, kind transformKind, dir direction) (*plan, error) {
	configMu.Lock()
	defer configMu.Unlock()

	if !backend.Available() {
		return nil, ErrUnknownBackend
	}

	key := planKey{n: n, kind: kind, dir: dir, planning: planning}
	if el, ok := cache.entries[key]; ok {
		cache.order.MoveToFront(el)
		return el.Value.(*plan), nil
	}

	p := &plan{key: key}
	switch kind {
	case kindComplex:
		p.cmplx = fourier.NewCmplxFFT(n)
	default:
		p.real = fourier.NewFFT(n)
	}

	cache.entries[key] = cache.order.PushFront(p)
	if cache.order.Len() > planCacheCapacity {
		oldest := cache.order.Back()
		cache.order.Remove(oldest)
		delete(cache.entries, oldest.Value.(*plan).key)
	}
	return p, nil
}

// PlanCacheLen returns the number of cached plans. Intended for tests and
// diagnostics.
func PlanCacheLen() int {
	configMu.Lock()
	defer configMu.Unlock()
	return cache.order.Len()
}

// ResetPlanCache drops every cached plan.
func ResetPlanCache() {
	configMu.Lock()
	defer configMu.Unlock()
	cache.entries = make(map[planKey]*list.Element)
	cache.order.Init()
}
