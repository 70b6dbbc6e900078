// Package workload generates deterministic streams of Float operations and
// folds their results into a digest.
// Two hosts running the same seed must print the same digest. A mismatch means
// that some operation is not bit-for-bit reproducible.
package workload

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/avdva/softfloat"
)

// Op is an operation on one or two values.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpMin
	OpMax
	OpSqrt
	OpRsqrt
	OpRcp
	OpSin
	OpCos
	OpAsin
	OpAcos
	OpExp
	OpLog
	OpFloor
	OpRoundToEven
	OpToInt32
	OpFromInt32
	numOps
)

var opNames = [...]string{
	OpAdd:         "add",
	OpSub:         "sub",
	OpMul:         "mul",
	OpDiv:         "div",
	OpMod:         "mod",
	OpMin:         "min",
	OpMax:         "max",
	OpSqrt:        "sqrt",
	OpRsqrt:       "rsqrt",
	OpRcp:         "rcp",
	OpSin:         "sin",
	OpCos:         "cos",
	OpAsin:        "asin",
	OpAcos:        "acos",
	OpExp:         "exp",
	OpLog:         "log",
	OpFloor:       "floor",
	OpRoundToEven: "roundeven",
	OpToInt32:     "toint32",
	OpFromInt32:   "fromint32",
}

// String returns the name of the operation.
func (o Op) String() string {
	if o >= numOps {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
	return opNames[o]
}

// ParseOp returns an operation by its name. The name is case-insensitive.
func ParseOp(s string) (Op, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range opNames {
		if name == s {
			return Op(i), true
		}
	}
	return 0, false
}

// Ops returns all the known operations.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// Arity returns the number of operands o takes.
func (o Op) Arity() int {
	if o <= OpMax {
		return 2
	}
	return 1
}

// Step is a single operation with its operands. Y is ignored by unary operations.
type Step struct {
	Op   Op
	X, Y softfloat.Float
}

// Eval performs the operation.
// OpToInt32 returns the integer as a raw bit pattern, and OpFromInt32 takes it from X the same way.
func (s Step) Eval() softfloat.Float {
	x, y := s.X, s.Y
	switch s.Op {
	case OpAdd:
		return x.Add(y)
	case OpSub:
		return x.Sub(y)
	case OpMul:
		return x.Mul(y)
	case OpDiv:
		return x.Div(y)
	case OpMod:
		return x.Mod(y)
	case OpMin:
		return softfloat.Min(x, y)
	case OpMax:
		return softfloat.Max(x, y)
	case OpSqrt:
		return x.Sqrt()
	case OpRsqrt:
		return x.Rsqrt()
	case OpRcp:
		return x.Rcp()
	case OpSin:
		return x.Sin()
	case OpCos:
		return x.Cos()
	case OpAsin:
		return x.Asin()
	case OpAcos:
		return x.Acos()
	case OpExp:
		return x.Exp()
	case OpLog:
		return x.Log()
	case OpFloor:
		return x.Floor()
	case OpRoundToEven:
		return x.RoundToEven()
	case OpToInt32:
		return softfloat.FromRawInt32(x.ToInt32())
	case OpFromInt32:
		return softfloat.FromInt32(x.RawInt32())
	default:
		return softfloat.NaN
	}
}

// special holds the patterns, where most of the edge cases live.
var special = [...]softfloat.Float{
	softfloat.Zero,
	softfloat.NegZero,
	softfloat.One,
	softfloat.NegOne,
	softfloat.Half,
	softfloat.Two,
	softfloat.Inf,
	softfloat.NegInf,
	softfloat.NaN,
	softfloat.MaxValue,
	softfloat.MinValue,
	softfloat.SmallestNonzero,
	softfloat.MinNormal,
	softfloat.MinNormal - 1,
	softfloat.Epsilon,
	softfloat.Pi,
	softfloat.HalfPi,
	softfloat.TwoPi,
}

// Generator produces a deterministic stream of steps for a seed.
// It is not thread-safe.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator returns a generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

// Next returns the next step.
func (g *Generator) Next() Step {
	return Step{
		Op: Op(g.rand.Intn(int(numOps))),
		X:  g.operand(),
		Y:  g.operand(),
	}
}

// operand returns a special pattern with probability 1/8, a value of a moderate
// magnitude with probability 1/2, and any pattern otherwise.
func (g *Generator) operand() softfloat.Float {
	switch n := g.rand.Intn(8); {
	case n == 0:
		return special[g.rand.Intn(len(special))]
	case n <= 4:
		// exponents in [2^-20, 2^20), where the most of real inputs are.
		bits := uint32(g.rand.Int31n(40)+127-20)<<23 | uint32(g.rand.Int31n(1<<23))
		if g.rand.Intn(2) == 0 {
			bits |= 1 << 31
		}
		return softfloat.FromRaw(bits)
	default:
		return softfloat.FromRaw(g.rand.Uint32())
	}
}

// Generate returns count steps for the seed.
func Generate(seed int64, count int) []Step {
	g := NewGenerator(seed)
	steps := make([]Step, count)
	for i := range steps {
		steps[i] = g.Next()
	}
	return steps
}

// Run evaluates all the steps on the given number of workers and returns the results in the order of steps.
func Run(ctx context.Context, steps []Step, workers int) ([]softfloat.Float, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]softfloat.Float, len(steps))
	chunk := (len(steps) + workers - 1) / workers
	if chunk == 0 {
		return results, nil
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(steps); start += chunk {
		start := start
		end := min(start+chunk, len(steps))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				results[i] = steps[i].Eval()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}
	return results, nil
}

// Hash folds the raw patterns of values into a 64-bit xxhash digest.
func Hash(values []softfloat.Float) uint64 {
	d := xxhash.New()
	var buf [4]byte
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf[:], v.Raw())
		d.Write(buf[:])
	}
	return d.Sum64()
}

// Digest generates count steps for seed, evaluates them on workers goroutines, and
// returns the digest of the results. The digest does not depend on the number of workers.
func Digest(ctx context.Context, seed int64, count, workers int) (uint64, error) {
	results, err := Run(ctx, Generate(seed, count), workers)
	if err != nil {
		return 0, err
	}
	return Hash(results), nil
}
