package vectors

import (
	"fmt"
	"time"
)

// Vector is one known-answer test case.
type Vector struct {
	Seed      []byte // 32-byte secret seed
	PublicKey []byte // Expected public key
	Message   []byte // Message that was signed
	Signature []byte // Expected 64-byte signature
	Line      int    // Position in the source (line for sign.input, index for JSON), 1-based
}

// Failure records why a vector did not pass.
type Failure struct {
	Line int
	Err  error
}

func (f Failure) String() string {
	return fmt.Sprintf("vector %d: %v", f.Line, f.Err)
}

// Report summarizes a run.
type Report struct {
	Total    int
	Passed   int
	Failed   int
	Failures []Failure
	Elapsed  time.Duration
}

// OK reports whether every vector that ran passed.
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Passed == r.Total
}
