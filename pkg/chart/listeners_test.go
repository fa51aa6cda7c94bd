package chart_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kartoteket/d3by5-bar-graph/pkg/chart"
)

// Named handlers so function identity is distinct and stable.
func onClickA(_ chart.Datum, _ int) {}

func onClickB(_ chart.Datum, _ int) {}

func onHover(_ chart.Datum, _ int) {}

func actions(listeners []chart.Listener) []string {
	out := make([]string, len(listeners))
	for i, l := range listeners {
		out[i] = l.Action
	}

	return out
}

func TestOnRegistersInOrder(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()

	require.Same(t, b, b.On("click", onClickA))
	b.On("click", onClickB)
	b.On("mouseover", onHover)

	got := b.Listeners()
	require.Len(t, got, 3)
	require.Equal(t, []string{"click", "click", "mouseover"}, actions(got))
}

func TestOnLowercasesAction(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	b.On("Click", onClickA)

	got := b.Listeners()
	require.Len(t, got, 1)
	require.Equal(t, "click", got[0].Action)
}

func TestOnDeduplicatesSamePair(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	b.On("click", onClickA)
	b.On("click", onClickA)

	require.Len(t, b.Listeners(), 1, "re-registration must not double-fire")
}

func TestOnDedupeKeepsOtherMethods(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	b.On("click", onClickA)
	b.On("click", onClickB)
	b.On("click", onClickA) // Re-register A: old A entry goes, B stays first.

	got := b.Listeners()
	require.Len(t, got, 2)
	require.Equal(t, []string{"click", "click"}, actions(got))
}

func TestOffWithMethodRemovesOnlyThatMethod(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	b.On("click", onClickA)
	b.On("click", onClickB)

	require.Same(t, b, b.Off("click", onClickA))

	got := b.Listeners()
	require.Len(t, got, 1)
	require.Equal(t, "click", got[0].Action)
}

func TestOffWithoutMethodClearsAction(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	b.On("click", onClickA)
	b.On("click", onClickB)
	b.On("mouseover", onHover)

	b.Off("click")

	got := b.Listeners()
	require.Len(t, got, 1)
	require.Equal(t, "mouseover", got[0].Action)
}

func TestOffMultiMatchRemoval(t *testing.T) {
	t.Parallel()

	// Interleave actions so removal has to delete non-adjacent indices;
	// this is the case naive ascending removal corrupts.
	b := chart.NewBase()
	b.On("click", onClickA)
	b.On("mouseover", onHover)
	b.On("click", onClickB)

	b.Off("click")

	got := b.Listeners()
	require.Len(t, got, 1)
	require.Equal(t, "mouseover", got[0].Action)
}

func TestOffUppercaseActionMatches(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	b.On("click", onClickA)
	b.Off("CLICK")

	require.Empty(t, b.Listeners())
}

func TestOffUnknownActionIsNoop(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	b.On("click", onClickA)
	b.Off("dblclick")

	require.Len(t, b.Listeners(), 1)
}

func TestRegistrationIdempotence(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()

	// Repeating the same register/remove sequence converges to the same
	// registry regardless of repetition count.
	for i := 0; i < 5; i++ {
		b.On("click", onClickA)
		b.On("click", onClickB)
		b.Off("click", onClickA)
	}

	got := b.Listeners()
	require.Len(t, got, 1)
	require.Equal(t, "click", got[0].Action)
}

func TestListenersSnapshotIsDetached(t *testing.T) {
	t.Parallel()

	b := chart.NewBase()
	b.On("click", onClickA)

	snapshot := b.Listeners()
	snapshot[0].Action = "mutated"

	require.Equal(t, "click", b.Listeners()[0].Action)
}
