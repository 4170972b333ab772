package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardalan-sia/signal-sync/pkg/signal"
)

func TestConsoleDecide(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.DisableColor()

	c.Decide(signal.Decision{Signal: 0, Round: 1, Congestion: 40, Green: true})
	c.Decide(signal.Decision{Signal: 2, Round: 3, Congestion: 55})

	want := "Signal 1 : congestion = 40 (round 1)\n" +
		"Signal 1 : GREEN (Congestion = 40)\n" +
		"Green signal allocated to Signal 1\n" +
		"Signal 3 : congestion = 55 (round 3)\n" +
		"Signal 3 : RED   (Congestion = 55)\n"
	assert.Equal(t, want, buf.String())
}

func TestConsoleBannerAndFinish(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.DisableColor()

	c.Banner()
	c.Finish()
	assert.Equal(t,
		"SMART CITY TRAFFIC SIGNAL SYNCHRONIZATION\n=======================================\n\nSimulation Finished Successfully.\n",
		buf.String())
}

func TestConsoleFinishWithSummary(t *testing.T) {
	var buf bytes.Buffer
	stats := NewStats(2, 1)
	stats.Decide(signal.Decision{Signal: 1, Congestion: 30, Green: true})

	c := NewConsole(&buf)
	c.DisableColor()
	c.Summary = stats
	c.Finish()

	out := buf.String()
	assert.Contains(t, out, "SIGNAL")
	assert.Contains(t, out, "Lock wait")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("Simulation Finished Successfully.\n")))
}

func TestStats(t *testing.T) {
	s := NewStats(3, 2)
	s.Decide(signal.Decision{Signal: 2, Congestion: 80, Green: true, Wait: time.Millisecond})
	s.Decide(signal.Decision{Signal: 0, Congestion: 10, Wait: 2 * time.Millisecond})
	s.Decide(signal.Decision{Signal: 2, Congestion: 20, Wait: 3 * time.Millisecond})

	got := s.Signals()
	require.Len(t, got, 2)
	assert.Equal(t, SignalStats{Signal: 0, Rounds: 1, Greens: 0, Last: 10, Peak: 10}, got[0])
	assert.Equal(t, SignalStats{Signal: 2, Rounds: 2, Greens: 1, Last: 20, Peak: 80}, got[1])
	assert.Equal(t, 3, s.Decisions())

	p50, p99 := s.Wait()
	assert.Greater(t, p50, time.Duration(0))
	assert.GreaterOrEqual(t, p99, p50)
}

func TestStatsRender(t *testing.T) {
	var buf bytes.Buffer
	s := NewStats(1, 1)
	s.Decide(signal.Decision{Signal: 0, Congestion: 64, Green: true})
	s.Render(&buf)

	out := buf.String()
	assert.Contains(t, out, "PEAK")
	assert.Contains(t, out, "64")
}

func TestMultiFansOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	var plain int
	m := Multi{a, signal.SinkFunc(func(signal.Decision) { plain++ }), b}

	m.Decide(signal.Decision{Signal: 1, Congestion: 5})
	m.Finish()

	assert.Len(t, a.Decisions(), 1)
	assert.Len(t, b.Decisions(), 1)
	assert.Equal(t, 1, plain)
	assert.True(t, a.Finished())
	assert.True(t, b.Finished())
}
