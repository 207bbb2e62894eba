// Package vectors runs Ed25519 known-answer vectors against ed25519ref.
//
// Two fixture formats are understood: the colon-separated sign.input format
// used by the SUPERCOP and djb Ed25519 test suites, one vector per line,
//
//	seed||pk : pk : message : signature||message :
//
// and a JSON array of {"seed", "public_key", "message", "signature"} objects.
// All fields are hex.
//
// Basic Usage:
//
//	h := vectors.NewHarness()
//	report, err := h.Run(ctx, "fixtures/sign.input")
//
// Checking vectors in parallel with the reference library cross-check:
//
//	h := vectors.NewHarness().
//		WithParser(&vectors.JSONParser{}).
//		WithConfig(vectors.DefaultConfig().WithWorkers(8).WithCrossCheck(true))
package vectors
