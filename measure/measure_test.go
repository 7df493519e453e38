package measure_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/syncdist/distgraph"
	"github.com/katalvlaran/syncdist/matrix"
	"github.com/katalvlaran/syncdist/measure"
	"github.com/katalvlaran/syncdist/progress"
	"github.com/katalvlaran/syncdist/trajectory"
)

func sample(ts int64, x, y float64) trajectory.Sample {
	return trajectory.Sample{T: ts, Pos: trajectory.Position{X: x, Y: y}}
}

func mustTrajectory(t testing.TB, id string, samples ...trajectory.Sample) *trajectory.Trajectory {
	tr, err := trajectory.NewWithSamples(id, samples...)
	if err != nil {
		t.Fatalf("NewWithSamples(%s): %v", id, err)
	}

	return tr
}

func mustDataset(t testing.TB, trs ...*trajectory.Trajectory) *trajectory.Dataset {
	d, err := trajectory.NewDataset(trs...)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}

	return d
}

// chain returns A–B–C where A and C never overlap but both overlap B,
// plus E, isolated in time.
func chain(t testing.TB) *trajectory.Dataset {
	return mustDataset(t,
		mustTrajectory(t, "A", sample(0, 0, 0), sample(10, 10, 0)),
		mustTrajectory(t, "B", sample(5, 5, 1), sample(20, 20, 1)),
		mustTrajectory(t, "C", sample(15, 15, 3), sample(25, 25, 2)),
		mustTrajectory(t, "E", sample(100, 0, 0), sample(110, 5, 5)),
	)
}

func at(t testing.TB, m *matrix.Dense, i, j int) float64 {
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// randomFleet builds n random-walk trajectories with staggered windows so
// some pairs overlap and some do not.
func randomFleet(t testing.TB, n int, seed int64) *trajectory.Dataset {
	rng := rand.New(rand.NewSource(seed))
	trs := make([]*trajectory.Trajectory, n)
	for i := range trs {
		start := int64(rng.Intn(200))
		steps := 2 + rng.Intn(6)
		x, y := rng.Float64()*100, rng.Float64()*100
		ts := start
		samples := make([]trajectory.Sample, 0, steps)
		for s := 0; s < steps; s++ {
			samples = append(samples, sample(ts, x, y))
			ts += int64(1 + rng.Intn(15))
			x += rng.NormFloat64() * 3
			y += rng.NormFloat64() * 3
		}
		trs[i] = mustTrajectory(t, fmt.Sprintf("t%03d", i), samples...)
	}

	return mustDataset(t, trs...)
}

func TestNotPrepared(t *testing.T) {
	sd := measure.New()
	a := mustTrajectory(t, "a", sample(0, 0, 0), sample(1, 0, 0))

	_, err := sd.ComputeDistance(a, a)
	assert.ErrorIs(t, err, measure.ErrNotPrepared)
	_, err = sd.RemoveImpossibleTrajectories(mustDataset(t, a))
	assert.ErrorIs(t, err, measure.ErrNotPrepared)
	assert.Nil(t, sd.DistanceGraph())
	assert.Nil(t, sd.ShortestDistances())
	assert.Nil(t, sd.Index())
	assert.Zero(t, sd.Len())
}

func TestScenarioB_ConstantOffset(t *testing.T) {
	a := mustTrajectory(t, "a", sample(0, 0, 0), sample(10, 0, 0))
	b := mustTrajectory(t, "b", sample(0, 3, 4), sample(10, 3, 4))

	sd := measure.New()
	require.NoError(t, sd.CreateSupportData(context.Background(), mustDataset(t, a, b)))

	d, err := sd.ComputeDistance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.035355, d, 1e-6)

	d, err = sd.ComputeDistance(a, a)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestScenarioC_PathThroughIntermediate(t *testing.T) {
	sd := measure.New(measure.WithWorkers(2))
	require.NoError(t, sd.CreateSupportData(context.Background(), chain(t)))

	g, sp := sd.DistanceGraph(), sd.ShortestDistances()
	const A, B, C = 0, 1, 2
	assert.True(t, math.IsInf(at(t, g, A, C), 1))
	assert.False(t, math.IsInf(at(t, g, A, B), 1))
	assert.False(t, math.IsInf(at(t, g, B, C), 1))
	assert.Equal(t, at(t, g, A, B)+at(t, g, B, C), at(t, sp, A, C))

	d, err := sd.DistanceByID("A", "C")
	require.NoError(t, err)
	assert.Equal(t, at(t, sp, A, C), d)
}

func TestScenarioD_PruneIsolated(t *testing.T) {
	ds := chain(t)
	sd := measure.New()
	require.NoError(t, sd.CreateSupportData(context.Background(), ds))
	before := sd.ShortestDistances()

	// Disconnected before pruning.
	d, err := sd.DistanceByID("A", "E")
	assert.ErrorIs(t, err, measure.ErrDisconnectedPair)
	assert.True(t, math.IsInf(d, 1))

	removed, err := sd.RemoveImpossibleTrajectories(ds)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	require.Equal(t, 3, ds.Size())

	// Pruning completeness: every remaining pair is finite.
	for _, a := range ds.Trajectories() {
		for _, b := range ds.Trajectories() {
			d, err := sd.ComputeDistance(a, b)
			require.NoError(t, err, "%s-%s", a.ID(), b.ID())
			assert.False(t, math.IsInf(d, 0))
		}
	}

	// Retired rows reject queries, retained values are unchanged.
	_, err = sd.DistanceByID("A", "E")
	assert.ErrorIs(t, err, measure.ErrUnknownTrajectory)
	d, err = sd.DistanceByID("A", "C")
	require.NoError(t, err)
	assert.Equal(t, at(t, before, 0, 2), d)

	if diff := cmp.Diff([]string{"A", "B", "C", "E"}, sd.Index()); diff != "" {
		t.Errorf("Index() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, sd.Live()); diff != "" {
		t.Errorf("Live() mismatch (-want +got):\n%s", diff)
	}

	// Second prune is a no-op.
	removed, err = sd.RemoveImpossibleTrajectories(ds)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestScenarioE_SingleSample(t *testing.T) {
	ds := mustDataset(t,
		mustTrajectory(t, "ok", sample(0, 0, 0), sample(5, 1, 1)),
		mustTrajectory(t, "lonely", sample(3, 2, 2)),
	)

	err := measure.New().CreateSupportData(context.Background(), ds)
	assert.ErrorIs(t, err, trajectory.ErrDegenerateTrajectory)
	assert.ErrorContains(t, err, "lonely")
}

func TestCreateSupportData_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("nil dataset", func(t *testing.T) {
		err := measure.New().CreateSupportData(ctx, chain(t), nil)
		assert.ErrorIs(t, err, measure.ErrNilDataset)
	})
	t.Run("duplicate ids across datasets", func(t *testing.T) {
		err := measure.New().CreateSupportData(ctx, chain(t), chain(t))
		assert.ErrorIs(t, err, measure.ErrDuplicateTrajectory)
	})
	t.Run("no trajectories", func(t *testing.T) {
		err := measure.New().CreateSupportData(ctx, mustDataset(t))
		assert.ErrorIs(t, err, distgraph.ErrNoTrajectories)
	})
	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := measure.New().CreateSupportData(cctx, chain(t))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCreateSupportData_FailureKeepsState(t *testing.T) {
	ctx := context.Background()
	sd := measure.New()
	require.NoError(t, sd.CreateSupportData(ctx, chain(t)))
	want := sd.ShortestDistances()

	bad := mustDataset(t, mustTrajectory(t, "x", sample(1, 1, 1)))
	require.Error(t, sd.CreateSupportData(ctx, bad))

	assert.True(t, want.Equal(sd.ShortestDistances()))
	assert.Equal(t, 4, sd.Len())
	_, err := sd.DistanceByID("A", "B")
	assert.NoError(t, err)
}

func TestCreateSupportData_DoesNotMutateInput(t *testing.T) {
	ds := chain(t)
	lens := make(map[string]int)
	for _, tr := range ds.Trajectories() {
		lens[tr.ID()] = tr.Len()
	}

	require.NoError(t, measure.New().CreateSupportData(context.Background(), ds))

	for _, tr := range ds.Trajectories() {
		assert.Equal(t, lens[tr.ID()], tr.Len(), tr.ID())
	}
}

func TestCreateSupportData_Idempotent(t *testing.T) {
	ctx := context.Background()
	ds := randomFleet(t, 30, 7)

	sd := measure.New(measure.WithWorkers(4))
	require.NoError(t, sd.CreateSupportData(ctx, ds))
	g1, s1 := sd.DistanceGraph(), sd.ShortestDistances()
	require.NoError(t, sd.CreateSupportData(ctx, ds))

	assert.True(t, g1.Equal(sd.DistanceGraph()))
	assert.True(t, s1.Equal(sd.ShortestDistances()))

	seq := measure.New(measure.WithWorkers(1))
	require.NoError(t, seq.CreateSupportData(ctx, ds))
	assert.True(t, s1.Equal(seq.ShortestDistances()), "worker count must not change results")
}

func TestMatrixProperties(t *testing.T) {
	ds := randomFleet(t, 40, 42)
	sd := measure.New()
	require.NoError(t, sd.CreateSupportData(context.Background(), ds))
	g, sp := sd.DistanceGraph(), sd.ShortestDistances()
	n := sd.Len()

	for _, m := range []*matrix.Dense{g, sp} {
		require.NoError(t, matrix.ValidateSymmetric(m, 0))
		require.NoError(t, matrix.ValidateZeroDiagonal(m))
	}

	const eps = 1e-12
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sij := at(t, sp, i, j)
			// Monotone closure.
			assert.LessOrEqual(t, sij, at(t, g, i, j))
			// Triangle inequality.
			for k := 0; k < n; k++ {
				via := at(t, sp, i, k) + at(t, sp, k, j)
				if math.IsInf(via, 1) {
					continue
				}
				assert.LessOrEqual(t, sij, via+eps, "(%d,%d) via %d", i, j, k)
			}
		}
	}
}

func TestPruningCompleteness_RandomFleet(t *testing.T) {
	ds := randomFleet(t, 40, 3)
	sd := measure.New()
	require.NoError(t, sd.CreateSupportData(context.Background(), ds))

	removed, err := sd.RemoveImpossibleTrajectories(ds)
	require.NoError(t, err)
	assert.Equal(t, 40-ds.Size(), removed)

	trs := ds.Trajectories()
	for i := range trs {
		for j := range trs {
			d, err := sd.ComputeDistance(trs[i], trs[j])
			require.NoError(t, err)
			assert.False(t, math.IsInf(d, 0))
		}
	}
}

func TestRemoveImpossibleTrajectories_UnknownLeavesDataset(t *testing.T) {
	sd := measure.New()
	require.NoError(t, sd.CreateSupportData(context.Background(), chain(t)))

	other := chain(t)
	require.NoError(t, other.Add(mustTrajectory(t, "stranger", sample(0, 0, 0), sample(1, 1, 1))))

	_, err := sd.RemoveImpossibleTrajectories(other)
	assert.ErrorIs(t, err, measure.ErrUnknownTrajectory)
	assert.Equal(t, 5, other.Size())
	assert.Equal(t, []string{"A", "B", "C", "E"}, sd.Live())

	_, err = sd.RemoveImpossibleTrajectories(nil)
	assert.ErrorIs(t, err, measure.ErrNilDataset)
}

func TestComputeDistance_Unknown(t *testing.T) {
	sd := measure.New()
	require.NoError(t, sd.CreateSupportData(context.Background(), chain(t)))

	stranger := mustTrajectory(t, "stranger", sample(0, 0, 0), sample(1, 1, 1))
	_, err := sd.ComputeDistance(stranger, stranger)
	assert.ErrorIs(t, err, measure.ErrUnknownTrajectory)
	_, err = sd.ComputeDistance(nil, stranger)
	assert.ErrorIs(t, err, trajectory.ErrNilTrajectory)
}

func TestProgressAndLogging(t *testing.T) {
	var (
		mu     sync.Mutex
		stages = map[progress.Stage]int{}
		buf    bytes.Buffer
	)
	rep := progress.Func(func(s progress.Stage, done, total int) {
		mu.Lock()
		defer mu.Unlock()
		if done == total {
			stages[s]++
		}
	})
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ds := chain(t)
	sd := measure.New(measure.WithReporter(rep), measure.WithLogger(logger))
	require.NoError(t, sd.CreateSupportData(context.Background(), ds))
	_, err := sd.RemoveImpossibleTrajectories(ds)
	require.NoError(t, err)

	for _, s := range []progress.Stage{
		progress.StageCopy, progress.StageSynchronise, progress.StageDistanceGraph,
		progress.StageShortestPaths, progress.StagePrune,
	} {
		assert.Equal(t, 1, stages[s], "stage %s completed once", s)
	}

	var msgs []string
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec struct {
			Msg     string `json:"msg"`
			Removed *int   `json:"removed"`
		}
		require.NoError(t, dec.Decode(&rec))
		msgs = append(msgs, rec.Msg)
		if rec.Removed != nil {
			assert.Equal(t, 1, *rec.Removed)
		}
	}
	assert.Contains(t, msgs, "support data created")
	assert.Contains(t, msgs, "impossible trajectories removed")
}

func TestConcurrentQueries(t *testing.T) {
	ctx := context.Background()
	ds := randomFleet(t, 20, 11)
	sd := measure.New()
	require.NoError(t, sd.CreateSupportData(ctx, ds))
	ids := sd.Index()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, a := range ids {
				for _, b := range ids {
					_, _ = sd.DistanceByID(a, b)
				}
			}
		}()
	}
	// Rebuild while readers run.
	require.NoError(t, sd.CreateSupportData(ctx, ds))
	wg.Wait()
	assert.Equal(t, len(ids), sd.Len())
}
