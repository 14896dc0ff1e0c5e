//go:build !debug

package texatlas

// verifier is a no-op stand-in for the debug-build invariant checker, kept
// the same shape so planner.go never needs a build tag of its own.
type verifier struct{}

func newVerifier(binSize Size, border Thickness) verifier {
	return verifier{}
}

func (v verifier) check(placements []Placement) error {
	return nil
}
