// Package lruk implements the LRU-K page replacement policy for a buffer pool.
//
// The replacer tracks the last K access timestamps of every frame and evicts the
// frame with the largest backward K-distance, i.e. the frame whose K-th most
// recent access lies furthest in the past. Frames with fewer than K recorded
// accesses have an infinite backward K-distance and are evicted first, the one
// with the earliest recorded access going first.
//
// Timestamps come from a logical clock that ticks once per recorded access.
package lruk

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/aglyzov/go-pds/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "lruk"))

// FrameID identifies a buffer pool frame.
type FrameID int

// frame is the access history of one frame.
type frame struct {
	id        FrameID
	history   []uint64 // last k timestamps, oldest first
	evictable bool
	elem      *list.Element // position in young or mature
}

// rank is the sort key within the frame's list: the earliest recorded access
// while the frame is young, the k-th most recent access once it is mature.
func (f *frame) rank() uint64 {
	return f.history[0]
}

// Replacer is an LRU-K replacer. It is safe for concurrent use.
type Replacer struct {
	mutex sync.Mutex

	numFrames int
	k         int
	now       uint64

	frames map[FrameID]*frame
	young  *list.List // fewer than k accesses, ordered by rank
	mature *list.List // k accesses, ordered by rank

	evictable int
	metrics   Metrics
}

// Option configures a Replacer.
type Option func(r *Replacer)

// WithMetrics sets the metrics sink; the default discards everything.
func WithMetrics(m Metrics) Option {
	return func(r *Replacer) {
		r.metrics = m
	}
}

// New creates a replacer for frame ids in [0, numFrames) keeping k accesses
// per frame.
func New(numFrames, k int, opts ...Option) (*Replacer, error) {
	if numFrames <= 0 {
		return nil, fmt.Errorf("%w: number of frames %d", ErrInvalidArgument, numFrames)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k %d", ErrInvalidArgument, k)
	}

	r := &Replacer{
		numFrames: numFrames,
		k:         k,
		frames:    make(map[FrameID]*frame),
		young:     list.New(),
		mature:    list.New(),
		metrics:   noopMetrics{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Replacer) checkFrame(id FrameID) error {
	if id < 0 || int(id) >= r.numFrames {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidFrame, id, r.numFrames)
	}
	return nil
}

// RecordAccess records an access to a frame at the current time.
// A frame seen for the first time starts out non-evictable.
func (r *Replacer) RecordAccess(id FrameID) error {
	if err := r.checkFrame(id); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.now++
	r.metrics.AccessRecorded()

	f, ok := r.frames[id]
	if !ok {
		f = &frame{
			id:      id,
			history: make([]uint64, 0, r.k),
		}
		r.frames[id] = f
	}

	wasYoung := len(f.history) < r.k

	if !wasYoung {
		// drop the oldest timestamp
		copy(f.history, f.history[1:])
		f.history = f.history[:r.k-1]
	}
	f.history = append(f.history, r.now)

	if len(f.history) < r.k {
		if f.elem == nil {
			f.elem = r.young.PushBack(f) // the newest first access ranks last
		}
		return nil
	}

	if f.elem != nil {
		if wasYoung {
			r.young.Remove(f.elem) // graduated
		} else {
			r.mature.Remove(f.elem)
		}
	}
	f.elem = insertByRank(r.mature, f)

	return nil
}

func (r *Replacer) listOf(f *frame) *list.List {
	if len(f.history) < r.k {
		return r.young
	}
	return r.mature
}

// insertByRank inserts f keeping l ordered by rank. Recently touched frames
// rank near the back, so the search starts there.
func insertByRank(l *list.List, f *frame) *list.Element {
	for e := l.Back(); e != nil; e = e.Prev() {
		if e.Value.(*frame).rank() <= f.rank() {
			return l.InsertAfter(f, e)
		}
	}
	return l.PushFront(f)
}

// SetEvictable marks whether a frame may be chosen as a victim.
func (r *Replacer) SetEvictable(id FrameID, evictable bool) error {
	if err := r.checkFrame(id); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	f, ok := r.frames[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFrame, id)
	}

	if f.evictable == evictable {
		return nil
	}

	f.evictable = evictable
	if evictable {
		r.evictable++
	} else {
		r.evictable--
	}
	r.metrics.EvictableFrames(r.evictable)

	return nil
}

// Evict picks a victim among the evictable frames, forgets its history and
// returns its id. It reports false if no frame is evictable.
func (r *Replacer) Evict() (FrameID, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, l := range []*list.List{r.young, r.mature} {
		for e := l.Front(); e != nil; e = e.Next() {
			f := e.Value.(*frame)
			if !f.evictable {
				continue
			}

			r.drop(f, l)
			r.metrics.Evicted()
			logger.Debugf("evicted frame %d (accesses: %d, rank: %d)", f.id, len(f.history), f.rank())

			return f.id, true
		}
	}

	return 0, false
}

// Remove forgets the history of an evictable frame. Removing a frame that is
// not tracked does nothing.
func (r *Replacer) Remove(id FrameID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	f, ok := r.frames[id]
	if !ok {
		return nil
	}

	if !f.evictable {
		return fmt.Errorf("%w: %d", ErrNotEvictable, id)
	}

	r.drop(f, r.listOf(f))

	return nil
}

// drop must be called with the mutex held, for an evictable frame.
func (r *Replacer) drop(f *frame, l *list.List) {
	l.Remove(f.elem)
	delete(r.frames, f.id)
	r.evictable--
	r.metrics.EvictableFrames(r.evictable)
}

// Size returns the number of evictable frames.
func (r *Replacer) Size() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.evictable
}
