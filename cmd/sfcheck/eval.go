package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avdva/softfloat"
	"github.com/avdva/softfloat/internal/workload"
)

func newEvalCmd(global *globalOptions) *cobra.Command {
	var names []string
	for _, op := range workload.Ops() {
		names = append(names, op.String())
	}
	return &cobra.Command{
		Use:   "eval <op> <x> [y]",
		Short: "Evaluate a single operation",
		Long: "Evaluate a single operation. Operands are decimal numbers, inf, nan, or raw patterns like 0x3f800000.\n" +
			"Put -- before negative operands, like `sfcheck eval sub -- -1 0.5`.\n" +
			"Operations: " + strings.Join(names, ", "),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(global)
			if err != nil {
				return err
			}
			step, err := parseStep(args)
			if err != nil {
				return err
			}
			res := step.Eval()
			logger.Debug("evaluated", "op", step.Op, "x", step.X, "y", step.Y, "result", res)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v (%x)\n", res, res)
			return err
		},
	}
}

func parseStep(args []string) (workload.Step, error) {
	var step workload.Step
	op, ok := workload.ParseOp(args[0])
	if !ok {
		return step, fmt.Errorf("unknown operation %q", args[0])
	}
	if got := len(args) - 1; got != op.Arity() {
		return step, fmt.Errorf("%s takes %d operand(s), got %d", op, op.Arity(), got)
	}
	step.Op = op
	operands := []*softfloat.Float{&step.X, &step.Y}
	for i, arg := range args[1:] {
		f, err := softfloat.FromString(arg)
		if err != nil {
			return step, fmt.Errorf("bad operand %d: %w", i+1, err)
		}
		*operands[i] = f
	}
	return step, nil
}
