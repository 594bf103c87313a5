package engine

import "fmt"

// invariant panics when cond is false. It guards states that validated user
// input can never produce.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("engine invariant violated: "+format, args...))
	}
}
