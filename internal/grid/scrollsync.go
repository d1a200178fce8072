package grid

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Surface names one of the two horizontally scrollable regions kept in
// sync: the sticky header strip and the table body.
type Surface int

const (
	SurfaceHeader Surface = iota
	SurfaceBody
)

func (s Surface) String() string {
	if s == SurfaceBody {
		return "body"
	}
	return "header"
}

// DefaultScrollRelease is how long after the last scroll event the
// driving surface keeps the synchronization lock.
const DefaultScrollRelease = 50 * time.Millisecond

// ScrollReleaseMsg is produced by the command returned from
// HeaderScrolled/BodyScrolled once the debounce window elapses. Hosts
// feed it back into Release.
type ScrollReleaseMsg struct {
	Surface Surface
	Seq     int
}

// ScrollSync mirrors one horizontal offset across the header strip and
// the body region without echo loops. Whichever surface scrolls first
// becomes the driving surface and holds a lock; scroll events arriving
// from the other surface while the lock is held are echoes of our own
// mirroring and are dropped. The lock releases after a debounce window
// with no further motion, so either side may drive the next gesture.
//
// The two flags are all the locking this needs: every transition happens
// on the hosting event loop, never concurrently.
type ScrollSync struct {
	offset int

	headerDriving bool
	bodyDriving   bool
	headerSeq     int
	bodySeq       int

	release time.Duration
}

// NewScrollSync builds a controller with the given release window;
// release <= 0 falls back to DefaultScrollRelease.
func NewScrollSync(release time.Duration) *ScrollSync {
	if release <= 0 {
		release = DefaultScrollRelease
	}
	return &ScrollSync{release: release}
}

// HeaderScrolled records a header-originated scroll to offset. ok is
// false when the event is an echo of body-driven mirroring and must be
// ignored. When ok, the host applies offset to the body immediately (no
// animation) and schedules cmd; the resulting ScrollReleaseMsg goes back
// into Release. Each further event of a held gesture bumps the sequence,
// so earlier ticks expire harmlessly and the lock follows the motion.
func (s *ScrollSync) HeaderScrolled(offset int) (ok bool, cmd tea.Cmd) {
	if s.bodyDriving {
		return false, nil
	}
	s.headerDriving = true
	s.headerSeq++
	s.offset = offset
	return true, s.releaseCmd(SurfaceHeader, s.headerSeq)
}

// BodyScrolled is the body-originated counterpart of HeaderScrolled; the
// host mirrors offset onto the header strip when ok.
func (s *ScrollSync) BodyScrolled(offset int) (ok bool, cmd tea.Cmd) {
	if s.headerDriving {
		return false, nil
	}
	s.bodyDriving = true
	s.bodySeq++
	s.offset = offset
	return true, s.releaseCmd(SurfaceBody, s.bodySeq)
}

func (s *ScrollSync) releaseCmd(surface Surface, seq int) tea.Cmd {
	return tea.Tick(s.release, func(time.Time) tea.Msg {
		return ScrollReleaseMsg{Surface: surface, Seq: seq}
	})
}

// Release clears the driving lock when msg carries the latest sequence
// of its surface. Stale sequences are ticks from earlier in the gesture
// and are ignored.
func (s *ScrollSync) Release(msg ScrollReleaseMsg) {
	switch msg.Surface {
	case SurfaceHeader:
		if msg.Seq == s.headerSeq {
			s.headerDriving = false
		}
	case SurfaceBody:
		if msg.Seq == s.bodySeq {
			s.bodyDriving = false
		}
	}
}

// Offset is the last agreed horizontal offset of both surfaces.
func (s *ScrollSync) Offset() int { return s.offset }

// Driving reports which surface currently holds the lock, if any.
func (s *ScrollSync) Driving() (Surface, bool) {
	switch {
	case s.headerDriving:
		return SurfaceHeader, true
	case s.bodyDriving:
		return SurfaceBody, true
	}
	return SurfaceHeader, false
}
