package tour

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunAll_ExecutesEachOnceInOrder checks every action runs exactly once,
// in registration order.
func TestRunAll_ExecutesEachOnceInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 20} {
		t.Run(fmt.Sprintf("size_%d", n), func(t *testing.T) {
			var executed []string
			var names []string
			reg := NewRegistry()
			for i := 0; i < n; i++ {
				name := fmt.Sprintf("ex%02d", i)
				names = append(names, name)
				reg.Register(name, makeTrackingExample(name, &executed))
			}

			var buf bytes.Buffer
			report, err := RunAll(testCtx(&buf), reg)

			require.NoError(t, err)
			assert.Equal(t, names, executed)
			assert.Equal(t, len(names), len(report.Completed))
		})
	}
}

// TestRunAll_EmptyRegistry tests that an empty registry is a silent no-op.
func TestRunAll_EmptyRegistry(t *testing.T) {
	var buf bytes.Buffer

	report, err := RunAll(testCtx(&buf), NewRegistry())
	require.NoError(t, err)
	assert.Empty(t, report.Completed)
	assert.Zero(t, buf.Len())

	report, err = RunAll(testCtx(&buf), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Completed)
	assert.Zero(t, buf.Len())
}

// TestRunAll_NilContext tests the nil context guard.
func TestRunAll_NilContext(t *testing.T) {
	report, err := RunAll(nil, NewRegistry())

	assert.ErrorIs(t, err, ErrNilContext)
	require.NotNil(t, report)
}

// TestRunAll_FaultStopsRun tests that the k-th fault leaves 1..k-1 run and
// k+1..N untouched.
func TestRunAll_FaultStopsRun(t *testing.T) {
	var executed []string
	boom := errors.New("boom")

	reg := NewRegistry().
		Register("first", makeTrackingExample("first", &executed)).
		Register("second", makeTrackingExample("second", &executed)).
		Register("faulty", func(ctx Context) error {
			executed = append(executed, "faulty")
			return boom
		}).
		Register("fourth", makeTrackingExample("fourth", &executed)).
		Register("fifth", makeTrackingExample("fifth", &executed))

	var buf bytes.Buffer
	report, err := RunAll(testCtx(&buf), reg)

	require.Error(t, err)
	assert.Equal(t, []string{"first", "second", "faulty"}, executed)
	assert.Equal(t, []string{"first", "second"}, report.Completed)

	// The action's error comes back unmodified behind the wrapper
	assert.True(t, errors.Is(err, boom))

	var exErr *ExampleError
	require.True(t, errors.As(err, &exErr))
	assert.Equal(t, "faulty", exErr.Name)
	assert.Equal(t, 2, exErr.Index)
	assert.Same(t, boom, exErr.Err)
	assert.Equal(t, "example 2 (faulty): boom", exErr.Error())
}

// TestRunAll_FaultAtFirst tests a fault in the very first example.
func TestRunAll_FaultAtFirst(t *testing.T) {
	var executed []string

	reg := NewRegistry().
		Register("bad", makeFailingExample(errors.New("nope"))).
		Register("never", makeTrackingExample("never", &executed))

	var buf bytes.Buffer
	report, err := RunAll(testCtx(&buf), reg)

	require.Error(t, err)
	assert.Empty(t, executed)
	assert.Empty(t, report.Completed)
}

// TestRunAll_PanicStopsRun tests panic conversion to PanicError.
func TestRunAll_PanicStopsRun(t *testing.T) {
	var executed []string

	reg := NewRegistry().
		Register("ok", makeTrackingExample("ok", &executed)).
		Register("panics", makePanicExample("assertion failed")).
		Register("never", makeTrackingExample("never", &executed))

	var buf bytes.Buffer
	_, err := RunAll(testCtx(&buf), reg)

	require.Error(t, err)
	assert.Equal(t, []string{"ok"}, executed)

	var panicErr *PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "panics", panicErr.Name)
	assert.Equal(t, 1, panicErr.Index)
	assert.Equal(t, "assertion failed", panicErr.Value)
	assert.Contains(t, panicErr.Stack, "goroutine")
	assert.Nil(t, panicErr.Unwrap())
}

// TestRunAll_IndexOutOfRangePanic tests that a runtime fault unwraps to runtime.Error.
func TestRunAll_IndexOutOfRangePanic(t *testing.T) {
	reg := NewRegistry().Register("index", func(ctx Context) error {
		a := []int{10, 20, 30, 40, 50}
		i := len(a)
		fmt.Fprintln(ctx.Output(), a[i])
		return nil
	})

	var buf bytes.Buffer
	_, err := RunAll(testCtx(&buf), reg)

	var rtErr runtime.Error
	require.True(t, errors.As(err, &rtErr))
	assert.Contains(t, rtErr.Error(), "index out of range")
}

// TestRunAll_LoopThenWhile is the two-example ordering scenario.
func TestRunAll_LoopThenWhile(t *testing.T) {
	loopDemo := func(ctx Context) error {
		counter := 0
		var result int
		for {
			counter++
			if counter == 10 {
				result = counter * 2
				break
			}
		}
		fmt.Fprintf(ctx.Output(), "test loop result is %d\n", result)
		return nil
	}
	whileDemo := func(ctx Context) error {
		for number := 3; number != 0; number-- {
			fmt.Fprintf(ctx.Output(), "%d!\n", number)
		}
		return nil
	}

	reg := NewRegistry().
		Register("loop_demo", loopDemo).
		Register("while_demo", whileDemo)

	var buf bytes.Buffer
	report, err := RunAll(testCtx(&buf), reg)

	require.NoError(t, err)
	assert.Equal(t, "test loop result is 20\n3!\n2!\n1!\n", buf.String())
	assert.Equal(t, []string{"loop_demo", "while_demo"}, report.Completed)
}

// TestRunAll_Deterministic tests that two runs produce identical output.
func TestRunAll_Deterministic(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 10; i++ {
		reg.Register(fmt.Sprintf("ex%d", i), makePrintingExample(fmt.Sprintf("ex%d", i)))
	}

	var first, second bytes.Buffer
	_, err := RunAll(testCtx(&first), reg)
	require.NoError(t, err)
	_, err = RunAll(testCtx(&second), reg)
	require.NoError(t, err)

	assert.NotZero(t, first.Len())
	assert.Equal(t, first.Bytes(), second.Bytes())
}

// TestRunAll_ContextPerExample tests the identity each example sees.
func TestRunAll_ContextPerExample(t *testing.T) {
	type seen struct {
		name  string
		index int
		runID string
	}
	var got []seen
	capture := func(ctx Context) error {
		got = append(got, seen{ctx.Example(), ctx.Index(), ctx.RunID()})
		assert.NotNil(t, ctx.Logger())
		return nil
	}

	reg := NewRegistry().Register("a", capture).Register("b", capture)

	var buf bytes.Buffer
	ctx := NewContext(context.Background(), WithOutput(&buf), WithContextRunID("ctx-run"))
	report, err := RunAll(ctx, reg)
	require.NoError(t, err)

	assert.Equal(t, "ctx-run", report.RunID)
	assert.Equal(t, []seen{{"a", 0, "ctx-run"}, {"b", 1, "ctx-run"}}, got)

	// WithRunID overrides the context's run ID
	got = nil
	report, err = RunAll(ctx, reg, WithRunID("opt-run"))
	require.NoError(t, err)
	assert.Equal(t, "opt-run", report.RunID)
	assert.Equal(t, "opt-run", got[0].runID)
}

// TestRunAll_Cancellation tests the cancellation check between examples.
func TestRunAll_Cancellation(t *testing.T) {
	var executed []string
	parent, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := NewRegistry().
		Register("cancels", func(ctx Context) error {
			executed = append(executed, "cancels")
			cancel()
			return nil
		}).
		Register("never", makeTrackingExample("never", &executed))

	var buf bytes.Buffer
	report, err := RunAll(NewContext(parent, WithOutput(&buf)), reg)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"cancels"}, executed)
	assert.Equal(t, []string{"cancels"}, report.Completed)

	var cancelErr *CancellationError
	require.True(t, errors.As(err, &cancelErr))
	assert.Equal(t, "never", cancelErr.Name)
	assert.Equal(t, 1, cancelErr.Index)
}

// TestRunAll_JournalRequiresRunID tests the run ID guard.
func TestRunAll_JournalRequiresRunID(t *testing.T) {
	var buf bytes.Buffer
	store := newFailingStore(nil)

	_, err := RunAll(testCtx(&buf), NewRegistry(), WithJournal(store))

	assert.ErrorIs(t, err, ErrRunIDRequired)
}
