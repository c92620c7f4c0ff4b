package spectral

import "sync"

// Backend identifies the FFT implementation behind the plans. Backends are
// tagged variants rather than function-pointer tables; the set is fixed at
// build time.
type Backend int

const (
	// BackendAuto selects the best available backend.
	BackendAuto Backend = iota

	// BackendGonum is the pure-Go gonum/dsp/fourier implementation. Always
	// available.
	BackendGonum
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendGonum:
		return "gonum"
	default:
		return "unknown"
	}
}

// Available reports whether the backend can be used in this build.
func (b Backend) Available() bool {
	switch b {
	case BackendAuto, BackendGonum:
		return true
	default:
		return false
	}
}

// Planning expresses the process-wide plan construction preference. The
// gonum backend builds its twiddle tables the same way for both values; the
// preference is still recorded, kept in the plan-cache key, and honored by
// backends that distinguish the two.
type Planning int

const (
	// PlanningEstimate favors cheap plan construction.
	PlanningEstimate Planning = iota

	// PlanningMeasure favors thorough plan construction for workloads that
	// reuse one shape many times.
	PlanningMeasure
)

// Process-wide configuration, guarded by one exclusive lock together with
// the plan cache so preference changes and plan lookups never interleave.
var (
	configMu sync.Mutex
	backend  = BackendAuto
	planning = PlanningEstimate
)

// SetBackend selects the process-wide backend preference.
func SetBackend(b Backend) error {
	if !b.Available() {
		return ErrUnknownBackend
	}
	configMu.Lock()
	defer configMu.Unlock()
	backend = b
	return nil
}

// CurrentBackend returns the process-wide backend preference.
func CurrentBackend() Backend {
	configMu.Lock()
	defer configMu.Unlock()
	return backend
}

// SetPlanning selects the process-wide planning preference. Plans created
// under a different preference stay in the cache under their own key and are
// not reused.
func SetPlanning(p Planning) {
	configMu.Lock()
	defer configMu.Unlock()
	planning = p
}

// CurrentPlanning returns the process-wide planning preference.
func CurrentPlanning() Planning {
	configMu.Lock()
	defer configMu.Unlock()
	return planning
}
