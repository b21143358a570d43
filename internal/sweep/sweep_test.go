package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacuum-dfs/internal/sims/vacuum"
)

func randomBase() vacuum.Config {
	cfg := vacuum.DefaultConfig()
	cfg.Layout = "random"
	cfg.Rows, cfg.Cols = 10, 12
	return cfg
}

func TestRunOrdersBySeed(t *testing.T) {
	recs, err := Run(context.Background(), Options{Base: randomBase(), FirstSeed: 100, Count: 12, Workers: 3})
	require.NoError(t, err)
	require.Len(t, recs, 12)

	ids := map[string]bool{}
	for i, r := range recs {
		assert.Equal(t, int64(100+i), r.Seed)
		assert.Equal(t, 10, r.Rows)
		assert.Equal(t, 12, r.Cols)
		assert.NotEmpty(t, r.ID)
		assert.False(t, ids[r.ID], "record IDs must be unique")
		ids[r.ID] = true
		assert.LessOrEqual(t, r.Visited, r.Free())
		assert.Equal(t, r.DirtTotal, r.DirtCleaned+r.DirtRemaining)
		assert.False(t, r.Blocked, "random layouts keep the start free")
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := Options{Base: randomBase(), FirstSeed: 7, Count: 6}
	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)

	for i := range a {
		a[i].ID, b[i].ID = "", ""
	}
	assert.Equal(t, a, b)
}

func TestRunUnknownLayout(t *testing.T) {
	base := randomBase()
	base.Layout = "garage"
	_, err := Run(context.Background(), Options{Base: base, Count: 3})
	assert.ErrorIs(t, err, vacuum.ErrUnknownLayout)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Base: randomBase(), Count: 4})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunEmpty(t *testing.T) {
	recs, err := Run(context.Background(), Options{Base: randomBase()})
	assert.NoError(t, err)
	assert.Nil(t, recs)
}

func TestSummarize(t *testing.T) {
	recs := []Record{
		{Seed: 1, Rows: 2, Cols: 2, Visited: 4, DirtTotal: 1, DirtCleaned: 1},
		{Seed: 2, Rows: 2, Cols: 2, Obstacles: 1, Visited: 1, DirtTotal: 2, DirtCleaned: 1, DirtRemaining: 1},
		{Seed: 3, Rows: 2, Cols: 2, Obstacles: 4, Blocked: true},
	}
	s := Summarize(recs)
	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, 1, s.Blocked)
	assert.Equal(t, 2, s.FullyCleaned)
	assert.InDelta(t, (1.0+1.0/3.0+0)/3.0, s.MeanCoverage, 1e-9)
	assert.Equal(t, int64(3), s.Worst.Seed)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestRecordCoverage(t *testing.T) {
	r := Record{Rows: 3, Cols: 3, Obstacles: 1, Visited: 4}
	assert.Equal(t, 8, r.Free())
	assert.InDelta(t, 0.5, r.Coverage(), 1e-9)
	assert.Contains(t, r.String(), "visited=4/8")
}
