//go:build !ed25519ref_noselfcheck

package ed25519ref

// selfCheck makes every encoder decode its own output and compare. Build with
// -tags ed25519ref_noselfcheck to drop the extra decode.
const selfCheck = true
