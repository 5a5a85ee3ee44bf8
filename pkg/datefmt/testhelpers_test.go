package datefmt_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/jlrickert/tjdate/pkg/datefmt"
	"github.com/jlrickert/tjdate/pkg/log"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	// eastern stands in for a machine zone west of UTC.
	eastern = time.FixedZone("EST5", -5*3600)
	// tokyo stands in for a machine zone east of UTC.
	tokyo = time.FixedZone("JST9", 9*3600)
)

// Fixture bundles a fresh engine with a fixed clock and a capturing logger so
// tests never share the process-wide cache.
type Fixture struct {
	t       *testing.T
	Engine  *datefmt.Engine
	Clock   *datefmt.FixedClock
	Handler *log.TestHandler
}

func NewFixture(t *testing.T, opts ...datefmt.Option) *Fixture {
	t.Helper()

	clock := datefmt.NewFixedClock(time.Date(2024, time.March, 9, 14, 5, 6, 7_000_000, time.UTC))
	lg, handler := log.NewTestLogger(t, slog.LevelDebug)

	base := []datefmt.Option{
		datefmt.WithClock(clock),
		datefmt.WithLocation(eastern),
		datefmt.WithZoneName("America/New_York"),
		datefmt.WithLogger(lg),
	}
	return &Fixture{
		t:       t,
		Engine:  datefmt.NewEngine(append(base, opts...)...),
		Clock:   clock,
		Handler: handler,
	}
}

// Timestamp renders instant with format and fails the test on error.
func (f *Fixture) Timestamp(instant, format string) string {
	f.t.Helper()
	out, err := f.Engine.GetTimestamp(instant, &datefmt.Options{Format: format})
	if err != nil {
		f.t.Fatalf("GetTimestamp(%q, %q): %v", instant, format, err)
	}
	return out
}
