package panel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcosta-dev/portfolio/internal/detail"
)

// fakeScheduler records scheduled tasks; tests fire them by hand.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, f: f}
	s.tasks = append(s.tasks, t)
	return t
}

// fire runs every task that is still armed, ignoring Stop to mimic a timer
// that fired just before being cancelled when force is set.
func (s *fakeScheduler) fire(force bool) {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = nil
	s.mu.Unlock()
	for _, t := range tasks {
		if t.fired || (t.stopped && !force) {
			continue
		}
		t.fired = true
		t.f()
	}
}

func (s *fakeScheduler) armed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func rec(id string) detail.Record {
	return detail.Record{Kind: detail.KindProject, ID: id, Title: "T " + id, Body: detail.Body{Tech: []string{"Go"}}}
}

func newTestController() (*Controller, *fakeScheduler) {
	s := &fakeScheduler{}
	return NewController(WithScheduler(s), WithCloseDelay(300*time.Millisecond)), s
}

func TestInitialStateIsClosed(t *testing.T) {
	c, _ := newTestController()
	st := c.State()
	assert.False(t, st.IsOpen)
	assert.Nil(t, st.Current)
	assert.Equal(t, Closed, st.Phase)
	assert.False(t, st.ScrollLocked)
}

func TestOpenIsImmediate(t *testing.T) {
	c, _ := newTestController()
	c.Open(rec("a"))

	st := c.State()
	assert.True(t, st.IsOpen)
	require.NotNil(t, st.Current)
	assert.Equal(t, rec("a"), *st.Current)
	assert.Equal(t, Open, st.Phase)
	assert.True(t, st.ScrollLocked)
}

func TestCloseRetainsRecordUntilDelay(t *testing.T) {
	c, s := newTestController()
	c.Open(rec("a"))
	c.Close()

	st := c.State()
	assert.False(t, st.IsOpen)
	assert.Equal(t, Closing, st.Phase)
	require.NotNil(t, st.Current)
	assert.Equal(t, "a", st.Current.ID)
	assert.True(t, st.ScrollLocked)

	require.Len(t, s.tasks, 1)
	assert.Equal(t, 300*time.Millisecond, s.tasks[0].delay)

	s.fire(false)
	st = c.State()
	assert.False(t, st.IsOpen)
	assert.Nil(t, st.Current)
	assert.Equal(t, Closed, st.Phase)
	assert.False(t, st.ScrollLocked)
}

func TestCloseTwiceMatchesCloseOnce(t *testing.T) {
	once, s1 := newTestController()
	once.Open(rec("a"))
	once.Close()
	s1.fire(false)

	twice, s2 := newTestController()
	twice.Open(rec("a"))
	twice.Close()
	twice.Close()
	assert.Equal(t, 1, s2.armed())
	s2.fire(false)
	twice.Close()

	assert.Equal(t, once.State(), twice.State())
}

func TestCloseWhenClosedIsNoop(t *testing.T) {
	c, s := newTestController()
	c.Close()
	assert.Empty(t, s.tasks)
	assert.Equal(t, Closed, c.State().Phase)
}

func TestOpenWhileOpenReplacesRecord(t *testing.T) {
	c, s := newTestController()
	c.Open(rec("a"))
	c.Open(rec("b"))

	st := c.State()
	assert.True(t, st.IsOpen)
	assert.Equal(t, "b", st.Current.ID)
	assert.Empty(t, s.tasks)
}

func TestOpenDuringClosingCancelsDeferredClear(t *testing.T) {
	c, s := newTestController()
	c.Open(rec("a"))
	c.Close()
	c.Open(rec("b"))

	assert.Equal(t, 0, s.armed())
	s.fire(false)

	st := c.State()
	assert.True(t, st.IsOpen)
	require.NotNil(t, st.Current)
	assert.Equal(t, "b", st.Current.ID)
	assert.True(t, st.ScrollLocked)
}

func TestClearThatAlreadyFiredIsIgnoredAfterReopen(t *testing.T) {
	c, s := newTestController()
	c.Open(rec("a"))
	c.Close()
	c.Open(rec("b"))

	// the timer goroutine lost the race with Stop and runs anyway
	s.fire(true)

	st := c.State()
	assert.Equal(t, Open, st.Phase)
	assert.Equal(t, "b", st.Current.ID)
}

func TestReopenThenCloseUsesFreshTimer(t *testing.T) {
	c, s := newTestController()
	c.Open(rec("a"))
	c.Close()
	c.Open(rec("b"))
	c.Close()

	assert.Equal(t, 1, s.armed())
	s.fire(false)
	assert.Equal(t, Closed, c.State().Phase)
	assert.Nil(t, c.State().Current)
}

func TestStateIsASnapshot(t *testing.T) {
	c, _ := newTestController()
	c.Open(rec("a"))

	st := c.State()
	st.Current.Title = "changed"
	st.Current.Body.Tech[0] = "changed"

	again := c.State()
	assert.Equal(t, "T a", again.Current.Title)
	assert.Equal(t, []string{"Go"}, again.Current.Body.Tech)
}

func TestOpenCopiesCallerRecord(t *testing.T) {
	c, _ := newTestController()
	r := rec("a")
	c.Open(r)
	r.Body.Tech[0] = "changed"

	assert.Equal(t, []string{"Go"}, c.State().Current.Body.Tech)
}

func TestStopFinishesPendingClose(t *testing.T) {
	c, s := newTestController()
	c.Open(rec("a"))
	c.Close()
	c.Stop()

	assert.Equal(t, 0, s.armed())
	st := c.State()
	assert.Equal(t, Closed, st.Phase)
	assert.Nil(t, st.Current)
	assert.False(t, st.ScrollLocked)
}

func TestRealSchedulerClearsAfterDelay(t *testing.T) {
	c := NewController(WithCloseDelay(10 * time.Millisecond))
	c.Open(rec("a"))
	c.Close()

	assert.NotNil(t, c.State().Current)
	assert.Eventually(t, func() bool {
		return c.State().Current == nil
	}, time.Second, 5*time.Millisecond)
	assert.False(t, c.State().ScrollLocked)
}

func TestCustomScrollLock(t *testing.T) {
	lock := &PageScroll{}
	c := NewController(WithScrollLock(lock), WithScheduler(&fakeScheduler{}))
	c.Open(rec("a"))
	assert.True(t, lock.Locked())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "closing", Closing.String())
}

func TestCloseDelayOption(t *testing.T) {
	assert.Equal(t, DefaultCloseDelay, NewController().CloseDelay())
	assert.Equal(t, 50*time.Millisecond, NewController(WithCloseDelay(50*time.Millisecond)).CloseDelay())
	assert.Equal(t, DefaultCloseDelay, NewController(WithCloseDelay(0)).CloseDelay())
}
