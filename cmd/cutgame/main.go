// Command cutgame builds one of the library's graph topologies, solves it
// for its net score under optimal play, and reports the winning move
// sequence.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/builder"
	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
	"github.com/0xCUB3/Modified-Dots-and-Boxes/solve"
)

// Args is the command-line surface, parsed with alexflint/go-arg.
type Args struct {
	Type string `arg:"--type" default:"complete" help:"topology: complete, wheel, hanging-tree, extended-hanging-tree, friendship, balloon-path, balloon-cycle, balloon-family, hypercube, double-ngon, loopy-star, petersen, grid, cycle-with-loops, file"`

	Nodes  int `arg:"--nodes" default:"4" help:"primary vertex-count parameter"`
	Spokes int `arg:"--spokes" default:"3" help:"spoke count, for wheel and loopy-star"`
	Loops  int `arg:"--loops" default:"1" help:"loops per rim vertex, for loopy-star"`

	Params []int `arg:"--params" help:"extra integer parameters for multi-parameter topologies: extended-hanging-tree (extraSpokes, extraVertices), friendship (nCycles, cycleLen), balloon-family (k; n comes from --nodes), grid (rows, cols)"`

	File string `arg:"--file" help:"edge-list path, used when --type=file"`

	SaveMemo bool   `arg:"--save-memo" help:"persist the transposition table to --memo-file after solving"`
	MemoFile string `arg:"--memo-file" default:"net_scores.txt" help:"path to load and optionally save the persisted memo"`
}

// buildGraph dispatches Args.Type to the matching builder constructor.
func buildGraph(args Args) (*core.Multigraph, error) {
	switch args.Type {
	case "complete":
		return builder.Complete(args.Nodes)
	case "wheel":
		return builder.Wheel(args.Spokes)
	case "hanging-tree":
		return builder.HangingTree(args.Nodes)
	case "extended-hanging-tree":
		extraSpokes, extraVertices, err := two(args.Params)
		if err != nil {
			return nil, fmt.Errorf("extended-hanging-tree: %w", err)
		}
		return builder.ExtendedHangingTree(args.Nodes, extraSpokes, extraVertices)
	case "friendship":
		nCycles, cycleLen, err := two(args.Params)
		if err != nil {
			return nil, fmt.Errorf("friendship: %w", err)
		}
		return builder.Friendship(nCycles, cycleLen)
	case "balloon-path":
		return builder.BalloonPath(args.Nodes)
	case "balloon-cycle":
		return builder.BalloonCycle(args.Nodes)
	case "balloon-family":
		k, err := one(args.Params)
		if err != nil {
			return nil, fmt.Errorf("balloon-family: %w", err)
		}
		return builder.BalloonFamily(args.Nodes, k)
	case "hypercube":
		return builder.Hypercube(args.Nodes)
	case "double-ngon":
		return builder.DoubleNGon(args.Nodes)
	case "loopy-star":
		return builder.LoopyStar(args.Spokes, args.Loops)
	case "petersen":
		return builder.Petersen()
	case "grid":
		rows, cols, err := two(args.Params)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		return builder.Grid(rows, cols)
	case "cycle-with-loops":
		return builder.CycleWithLoops(args.Nodes)
	case "file":
		return builder.FromFile(args.File)
	default:
		return nil, fmt.Errorf("unrecognized --type: %q", args.Type)
	}
}

func one(params []int) (int, error) {
	if len(params) != 1 {
		return 0, fmt.Errorf("expected exactly one --params value, got %d", len(params))
	}
	return params[0], nil
}

func two(params []int) (int, int, error) {
	if len(params) != 2 {
		return 0, 0, fmt.Errorf("expected exactly two --params values, got %d", len(params))
	}
	return params[0], params[1], nil
}

// Main runs the driver and returns an error rather than exiting directly,
// so main can control the process exit code in one place.
func Main() error {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{}, &args)
	if err != nil {
		return err
	}
	if err := parser.Parse(os.Args[1:]); err != nil {
		if err == arg.ErrHelp {
			parser.WriteHelp(os.Stdout)
			return nil
		}
		return err
	}

	g, err := buildGraph(args)
	if err != nil {
		return err
	}

	memo, err := solve.LoadMemo(args.MemoFile)
	if err != nil {
		return err
	}

	solver := solve.NewSolver(solve.WithMemo(memo), solve.WithProgress(reportProgress))

	start := time.Now()
	res, err := solver.NetScore(g)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("solved %s in %s\n", args.Type, elapsed)
	fmt.Printf("vertices=%d edges=%d\n", g.VertexCount(), g.EdgeCount())
	fmt.Printf("net score: %d (first=%d, second=%d)\n", res.NetScore, res.FirstScore, res.SecondScore)
	fmt.Printf("winning sequence (%d moves):\n", len(res.Sequence))
	for i, mv := range res.Sequence {
		fmt.Printf("  %d: cut %d-%d\n", i+1, mv.U, mv.V)
	}

	if args.SaveMemo {
		if err := solve.SaveMemo(args.MemoFile, solver.Memo()); err != nil {
			return err
		}
		fmt.Printf("saved %d memo entries to %s\n", solver.Memo().Len(), args.MemoFile)
	}

	return nil
}

func reportProgress(depth, count int, elapsed time.Duration) {
	if count%1000 != 0 {
		return
	}
	fmt.Printf("progress: depth=%d count=%d elapsed=%s\n", depth, count, elapsed)
}

func main() {
	if err := Main(); err != nil {
		fmt.Fprintf(os.Stderr, "cutgame: %v\n", err)
		os.Exit(1)
	}
}
