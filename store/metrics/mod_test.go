package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stratakv/strata/internal/testing/fake"
	"github.com/stretchr/testify/require"
)

func TestStore_Get(t *testing.T) {
	inner := fake.NewStore()
	inner.Values["A"] = "value"

	s := NewStore[string](inner)

	before := testutil.ToFloat64(promOps.WithLabelValues("get"))

	value, found := s.Get("A")
	require.True(t, found)
	require.Equal(t, "value", value)

	_, found = s.Get("B")
	require.False(t, found)

	require.Equal(t, before+2, testutil.ToFloat64(promOps.WithLabelValues("get")))
	require.Equal(t, 2, inner.Call.Len())
}

func TestStore_Set(t *testing.T) {
	inner := fake.NewStore()
	s := NewStore[string](inner)

	before := testutil.ToFloat64(promOps.WithLabelValues("set"))

	s.Set("A", "value")

	require.Equal(t, "value", inner.Values["A"])
	require.Equal(t, before+1, testutil.ToFloat64(promOps.WithLabelValues("set")))
}

func TestStore_Delete(t *testing.T) {
	inner := fake.NewStore()
	inner.Values["A"] = "value"

	s := NewStore[string](inner)

	before := testutil.ToFloat64(promOps.WithLabelValues("delete"))

	s.Delete("A")

	require.NotContains(t, inner.Values, "A")
	require.Equal(t, before+1, testutil.ToFloat64(promOps.WithLabelValues("delete")))
}

func TestStore_Begin(t *testing.T) {
	inner := fake.NewStore()
	s := NewStore[string](inner)

	require.True(t, s.Begin())
	require.Equal(t, 1, s.Depth())
	require.Equal(t, float64(1), testutil.ToFloat64(promDepth))
}

func TestStore_Commit(t *testing.T) {
	inner := fake.NewStore()
	s := NewStore[string](inner)

	rejected := testutil.ToFloat64(promRejected)

	require.False(t, s.Commit())
	require.Equal(t, rejected+1, testutil.ToFloat64(promRejected))

	s.Begin()
	require.True(t, s.Commit())
	require.Equal(t, rejected+1, testutil.ToFloat64(promRejected))
	require.Equal(t, float64(0), testutil.ToFloat64(promDepth))
}

func TestStore_Rollback(t *testing.T) {
	inner := fake.NewStore()
	s := NewStore[string](inner)

	rejected := testutil.ToFloat64(promRejected)

	require.False(t, s.Rollback())
	require.Equal(t, rejected+1, testutil.ToFloat64(promRejected))

	s.Begin()
	require.True(t, s.Rollback())
	require.Equal(t, rejected+1, testutil.ToFloat64(promRejected))
}
