package assign

// Hooks exposing private pieces to white-box tests in assign_test.
// Compiled only under `go test`.
var (
	PadSquare      = padSquare
	FillSequential = fillSequential
	FillParallel   = fillParallel
	SolveHungarian = solveHungarian
)
