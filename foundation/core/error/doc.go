// Package error provides the structured error type shared by every pcbuild
// package.
//
// An Error carries a Code from codes.go, a Severity derived from that code, the
// name of the failing operation and arbitrary details:
//
//	err := mdwerror.New("unknown preset").
//		WithCode(mdwerror.CodeUnknownPreset).
//		WithOperation("kits.Preset").
//		WithDetail("preset", id)
//
// Two errors with the same specific code match under errors.Is, which lets
// packages export sentinel values and still attach per-call details.
//
// Only usage errors are represented this way. A configuration that fails
// validation is an expected outcome and is reported as plain messages.
package error
