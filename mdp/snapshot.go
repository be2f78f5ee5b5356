package mdp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Snapshot is an independent copy of the state space taken after an episode.
type Snapshot struct {
	Episode  int
	Duration time.Duration
	Space    *StateSpace
}

func TakeSnapshot(space *StateSpace, episode int, d time.Duration) Snapshot {
	return Snapshot{Episode: episode, Duration: d, Space: space.Clone()}
}

// Schedule decides which episode indices (1-based) are snapshotted.
type Schedule interface {
	Includes(episode, total int) bool
	Validate() error
	String() string
}

type everyEpisode struct{}

func EveryEpisode() Schedule { return everyEpisode{} }

func (everyEpisode) Includes(int, int) bool { return true }
func (everyEpisode) Validate() error        { return nil }
func (everyEpisode) String() string         { return "every" }

type firstN struct{ n int }

func FirstN(n int) Schedule { return firstN{n: n} }

func (f firstN) Includes(episode, _ int) bool { return episode <= f.n }

func (f firstN) Validate() error {
	if f.n <= 0 {
		return fmt.Errorf("%w: first:%d", ErrInvalidSchedule, f.n)
	}
	return nil
}

func (f firstN) String() string { return "first:" + strconv.Itoa(f.n) }

// exponential selects episodes 1, ceil(b), ceil(b^2), ... and the last one.
type exponential struct{ base float64 }

func Exponential(base float64) Schedule { return exponential{base: base} }

func (e exponential) Includes(episode, total int) bool {
	if episode == 1 || episode == total {
		return true
	}
	// b^k lands on episode when it falls in (episode-1, episode]. The
	// largest such k is near log(episode)/log(b); check its neighbours for
	// rounding.
	k := math.Floor(math.Log(float64(episode)) / math.Log(e.base))
	for _, j := range [...]float64{k - 1, k, k + 1} {
		if j >= 0 && int(math.Ceil(math.Pow(e.base, j))) == episode {
			return true
		}
	}
	return false
}

func (e exponential) Validate() error {
	if !(e.base > 1) || math.IsInf(e.base, 0) {
		return fmt.Errorf("%w: exponential base must be > 1, got %v", ErrInvalidSchedule, e.base)
	}
	return nil
}

func (e exponential) String() string {
	return "exp:" + strconv.FormatFloat(e.base, 'g', -1, 64)
}

// ParseSchedule accepts "every", "first:N" and "exp:B".
func ParseSchedule(s string) (Schedule, error) {
	kind, arg, _ := strings.Cut(s, ":")
	var sched Schedule
	switch kind {
	case "every":
		sched = EveryEpisode()
	case "first":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, s, err)
		}
		sched = FirstN(n)
	case "exp":
		b, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, s, err)
		}
		sched = Exponential(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSchedule, s)
	}
	if err := sched.Validate(); err != nil {
		return nil, err
	}
	return sched, nil
}

// SnapshotHistory retains at most max snapshots. When full it drops every
// other snapshot and from then on keeps only every stride-th offered one.
// The most recent offer is always reported, so a run's final state is never
// lost to thinning.
type SnapshotHistory struct {
	max     int
	stride  int
	offered int
	items   []Snapshot
	latest  *Snapshot // last offer, when the stride rejected it
}

func NewSnapshotHistory(max int) *SnapshotHistory {
	return &SnapshotHistory{max: max, stride: 1}
}

func (h *SnapshotHistory) Add(s Snapshot) {
	h.offered++
	if h.max == 1 {
		h.items = append(h.items[:0], s)
		return
	}
	if (h.offered-1)%h.stride != 0 {
		h.latest = &s
		return
	}
	if len(h.items) == h.max {
		kept := h.items[:0]
		for i := 0; i < len(h.items); i += 2 {
			kept = append(kept, h.items[i])
		}
		h.items = kept
		h.stride *= 2
		if (h.offered-1)%h.stride != 0 {
			h.latest = &s
			return
		}
	}
	h.items = append(h.items, s)
	h.latest = nil
}

func (h *SnapshotHistory) Snapshots() []Snapshot {
	out := append([]Snapshot(nil), h.items...)
	if h.latest == nil {
		return out
	}
	if len(out) == h.max {
		out = out[:len(out)-1]
	}
	return append(out, *h.latest)
}
