package timeline

import (
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

type DragMode int

const (
	DragMove DragMode = iota
	DragResizeStart
	DragResizeEnd
)

func (m DragMode) String() string {
	switch m {
	case DragMove:
		return "move"
	case DragResizeStart:
		return "resize-start"
	case DragResizeEnd:
		return "resize-end"
	default:
		return "unknown"
	}
}

// DragSession is the state captured at pointer-down.
type DragSession struct {
	ItemID        string
	PointerStartX float64
	OriginalDate  time.Time
	OriginalEnd   time.Time // effective end at pointer-down
	ExplicitEnd   bool
	DayWidthPx    float64
	Mode          DragMode
}

// mapper converts pointer deltas at the zoom captured at pointer-down. Only
// deltas are mapped, so the range is irrelevant.
func (s *DragSession) mapper() Mapper {
	return NewMapper(Range{}, ZoomConfig{DayWidthPx: s.DayWidthPx})
}

// RescheduleRequest is what a drag asks the store to apply.
// NewEnd is nil when the item's end should stay implied.
type RescheduleRequest struct {
	ItemID    string
	NewDate   time.Time
	NewEnd    *time.Time
	DeltaDays int
	Mode      DragMode
}

// RescheduleFunc receives reschedule requests. The store may ignore or clamp
// them; the controller never keeps the requested dates.
type RescheduleFunc func(req RescheduleRequest)

// PointerCapture is acquired for the lifetime of a session so that move and
// release events are delivered even when the pointer leaves the bar.
type PointerCapture interface {
	Capture()
	Release()
}

// DragController owns at most one DragSession. It is not safe for
// concurrent use; it is driven from a single event loop.
type DragController struct {
	session      *DragSession
	capture      PointerCapture
	onReschedule RescheduleFunc
}

// NewDragController returns an idle controller. capture may be nil.
func NewDragController(onReschedule RescheduleFunc, capture PointerCapture) *DragController {
	return &DragController{onReschedule: onReschedule, capture: capture}
}

// Active reports whether a session is in progress.
func (c *DragController) Active() bool {
	return c.session != nil
}

// Session returns a copy of the active session.
func (c *DragController) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// Begin starts a session for it at pointer position clientX. An already
// active session is ended first, releasing its capture.
func (c *DragController) Begin(it domain.ScheduleItem, mode DragMode, clientX, dayWidthPx float64) {
	c.End()
	c.session = &DragSession{
		ItemID:        it.ID,
		PointerStartX: clientX,
		OriginalDate:  it.TargetDate,
		OriginalEnd:   it.EffectiveEnd(),
		ExplicitEnd:   it.EndDate != nil,
		DayWidthPx:    dayWidthPx,
		Mode:          mode,
	}
	if c.capture != nil {
		c.capture.Capture()
	}
}

// Update handles a pointer move. The request is always derived from the
// original dates plus the total delta since Begin, so repeated moves do not
// accumulate rounding error. It returns false when no session is active.
func (c *DragController) Update(clientX float64) (RescheduleRequest, bool) {
	s := c.session
	if s == nil {
		return RescheduleRequest{}, false
	}
	dx := clientX - s.PointerStartX
	m := s.mapper()
	req := RescheduleRequest{ItemID: s.ItemID, DeltaDays: QuantizeDays(dx, s.DayWidthPx), Mode: s.Mode}

	switch s.Mode {
	case DragMove:
		req.NewDate = m.DateForPixelDelta(s.OriginalDate, dx)
		if s.ExplicitEnd {
			end := m.DateForPixelDelta(s.OriginalEnd, dx)
			req.NewEnd = &end
		}
	case DragResizeEnd:
		req.NewDate = s.OriginalDate
		end := m.DateForPixelDelta(s.OriginalEnd, dx)
		if earliest := domain.AddDays(s.OriginalDate, 1); end.Before(earliest) {
			end = earliest
		}
		req.NewEnd = &end
	case DragResizeStart:
		start := m.DateForPixelDelta(s.OriginalDate, dx)
		if latest := domain.AddDays(s.OriginalEnd, -1); start.After(latest) {
			start = latest
		}
		req.NewDate = start
		end := s.OriginalEnd
		req.NewEnd = &end
	}

	if c.onReschedule != nil {
		c.onReschedule(req)
	}
	return req, true
}

// End closes the session on pointer-up. It is a no-op when idle.
func (c *DragController) End() {
	if c.session == nil {
		return
	}
	c.session = nil
	if c.capture != nil {
		c.capture.Release()
	}
}

// Cancel closes the session on pointer-cancel or focus loss. Requests
// already sent are not reverted.
func (c *DragController) Cancel() {
	c.End()
}
