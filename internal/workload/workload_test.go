package workload

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/softfloat"
)

func TestOps(t *testing.T) {
	a := assert.New(t)
	ops := Ops()
	a.Len(ops, int(numOps))
	for _, op := range ops {
		parsed, ok := ParseOp(op.String())
		a.True(ok, op.String())
		a.Equal(op, parsed)
	}
	op, ok := ParseOp(" SQRT ")
	a.True(ok)
	a.Equal(OpSqrt, op)
	_, ok = ParseOp("pow")
	a.False(ok)
	a.Equal("Op(200)", Op(200).String())
	a.Equal(2, OpAdd.Arity())
	a.Equal(2, OpMax.Arity())
	a.Equal(1, OpSqrt.Arity())
	a.Equal(1, OpFromInt32.Arity())
}

func TestStepEval(t *testing.T) {
	a := assert.New(t)
	two := softfloat.Two
	tests := []struct {
		step Step
		res  softfloat.Float
	}{
		{Step{OpAdd, softfloat.One, softfloat.One}, two},
		{Step{OpSub, softfloat.One, softfloat.One}, softfloat.Zero},
		{Step{OpMul, two, two}, softfloat.FromInt32(4)},
		{Step{OpDiv, softfloat.One, two}, softfloat.Half},
		{Step{OpMod, softfloat.FromInt32(5), two}, softfloat.One},
		{Step{OpMin, softfloat.NaN, two}, two},
		{Step{OpMax, softfloat.One, two}, two},
		{Step{OpSqrt, softfloat.FromInt32(4), softfloat.NaN}, two},
		{Step{OpRsqrt, softfloat.FromInt32(4), 0}, softfloat.Half},
		{Step{OpRcp, two, 0}, softfloat.Half},
		{Step{OpSin, softfloat.Zero, 0}, softfloat.Zero},
		{Step{OpCos, softfloat.Zero, 0}, softfloat.One},
		{Step{OpAsin, softfloat.One, 0}, softfloat.HalfPi},
		{Step{OpAcos, softfloat.One, 0}, softfloat.Zero},
		{Step{OpExp, softfloat.Zero, 0}, softfloat.One},
		{Step{OpLog, softfloat.One, 0}, softfloat.Zero},
		{Step{OpFloor, softfloat.FromFloat32(-1.5), 0}, softfloat.FromInt32(-2)},
		{Step{OpRoundToEven, softfloat.FromFloat32(2.5), 0}, two},
		{Step{OpToInt32, softfloat.FromFloat32(-7.9), 0}, softfloat.FromRawInt32(-7)},
		{Step{OpFromInt32, softfloat.FromRawInt32(16777217), 0}, softfloat.FromRaw(0x4B800000)},
		{Step{numOps, softfloat.One, softfloat.One}, softfloat.NaN},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.step.Eval(), "%v", test.step.Op)
		})
	}
}

func TestGenerate(t *testing.T) {
	a := assert.New(t)
	s1 := Generate(42, 1000)
	s2 := Generate(42, 1000)
	a.Equal(s1, s2)
	a.NotEqual(s1, Generate(43, 1000))
	seen := make(map[Op]bool)
	for _, s := range s1 {
		a.Less(s.Op, numOps)
		seen[s.Op] = true
	}
	a.Len(seen, int(numOps))

	g := NewGenerator(42)
	for i := 0; i < 10; i++ {
		a.Equal(s1[i], g.Next())
	}
	a.Empty(Generate(1, 0))
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	steps := Generate(7, 10000)
	want := make([]softfloat.Float, len(steps))
	for i, s := range steps {
		want[i] = s.Eval()
	}
	for _, workers := range []int{-1, 0, 1, 2, 3, 8, 64, 20000} {
		res, err := Run(context.Background(), steps, workers)
		if a.NoError(err) {
			a.Equal(want, res, "workers %d", workers)
		}
	}
	res, err := Run(context.Background(), nil, 4)
	a.NoError(err)
	a.Empty(res)
}

func TestRunCancelled(t *testing.T) {
	a := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Generate(1, 5000), 2)
	a.Error(err)
	a.True(errors.Is(err, context.Canceled))
	_, err = Digest(ctx, 1, 5000, 2)
	a.ErrorIs(err, context.Canceled)
}

func TestDigest(t *testing.T) {
	ctx := context.Background()
	want, err := Digest(ctx, 1, 50000, 1)
	require.NoError(t, err)
	for _, workers := range []int{2, 4, 7, 16} {
		got, err := Digest(ctx, 1, 50000, workers)
		require.NoError(t, err)
		require.Equal(t, want, got, "workers %d", workers)
	}
	other, err := Digest(ctx, 2, 50000, 4)
	require.NoError(t, err)
	require.NotEqual(t, want, other)
}

// TestDigestFixed pins digests, which every host must reproduce.
func TestDigestFixed(t *testing.T) {
	tests := []struct {
		seed   int64
		count  int
		digest uint64
	}{
		{1, 1000, 0x19a65b234e3a063b},
		{42, 1000, 0x2b781082d3148962},
		{5, 20000, 0xdc261049f9f55813},
		{1, 100000, 0x6d9b30ec82e0dc1b},
	}
	for _, test := range tests {
		for _, workers := range []int{1, 8} {
			got, err := Digest(context.Background(), test.seed, test.count, workers)
			require.NoError(t, err)
			require.Equal(t, test.digest, got, "seed %d, count %d, workers %d: %016x", test.seed, test.count, workers, got)
		}
	}
}

func TestHash(t *testing.T) {
	a := assert.New(t)
	empty := Hash(nil)
	a.Equal(empty, Hash([]softfloat.Float{}))
	a.NotEqual(empty, Hash([]softfloat.Float{softfloat.Zero}))
	// the sign of zero is a different pattern.
	a.NotEqual(Hash([]softfloat.Float{softfloat.Zero}), Hash([]softfloat.Float{softfloat.NegZero}))
	// the order matters.
	a.NotEqual(
		Hash([]softfloat.Float{softfloat.One, softfloat.Two}),
		Hash([]softfloat.Float{softfloat.Two, softfloat.One}),
	)
}

func BenchmarkDigest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Digest(context.Background(), int64(i), 10000, 4)
	}
}
