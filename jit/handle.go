package jit

import (
	"log/slog"

	"github.com/coregx/miniregex/automaton"
)

// Handle is the JIT-compiled, loaded form of a DFA: a callable entry point
// backed by a shared library and its generated source, both scoped to the
// Handle's lifetime (spec §3, "Lifecycle": "The emitter's artifact ... is
// scoped to the lifetime of the emitter handle; on drop it unloads the
// library and deletes both files").
type Handle struct {
	native   *nativeHandle
	artifact artifact
	closed   bool
}

// Build emits C source for dfa, compiles it to a shared library, and
// dynamically loads it, returning a Handle ready to Match. Any failure
// along the way — write, compile, dlopen, dlsym — is a *ToolchainError
// (spec §7: "Toolchain failure ... fatal; print loader diagnostic").
func Build(dfa *automaton.DFA) (*Handle, error) {
	source := Emit(dfa)

	a, err := build(source)
	if err != nil {
		return nil, err
	}

	native, err := loadNative(a.libFile)
	if err != nil {
		a.cleanup()
		return nil, err
	}

	return &Handle{native: native, artifact: a}, nil
}

// Match invokes the jitted function over input and reports whether it
// returned nonzero (spec §4.5, "Invocation").
func (h *Handle) Match(input []byte) bool {
	return h.native.call(input)
}

// Close unloads the shared library and deletes the generated source and
// library files. Unload failures are logged and otherwise ignored (spec
// §7: "Unload failure ... non-fatal; log and continue"); file deletion
// always proceeds so repeated Build/Close cycles leave no residue (spec §8,
// "Repeated construction/teardown of emitters produces no filesystem
// residue").
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	if err := h.native.unload(); err != nil {
		slog.Warn("jit: failed to unload shared library", "file", h.artifact.libFile, "error", err)
	}
	h.artifact.cleanup()
	return nil
}
