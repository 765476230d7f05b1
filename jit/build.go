package jit

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync/atomic"
)

// artifactCounter names successive build artifacts. The reference derives
// the basename from the DFA's heap address, which is not collision-proof
// across a process's lifetime (spec §9, "Uniqueness of artifact names");
// a monotonic counter has no such risk.
var artifactCounter uint64

// sharedLibExt returns the host's dynamic-library extension (spec §6,
// "Filesystem").
func sharedLibExt() string {
	switch runtime.GOOS {
	case "darwin":
		return ".dylib"
	case "windows":
		return ".dll"
	default:
		return ".so"
	}
}

// compilerArgs returns the host C compiler invocation that produces a
// dynamic shared object from cFile at libFile, with undefined symbols
// permitted — conservative, since the emitted code references none (spec
// §6, "Process interaction").
func compilerArgs(goos, cFile, libFile string) (string, []string) {
	switch goos {
	case "darwin":
		return "cc", []string{"-O3", "-dynamiclib", "-undefined", "suppress", "-flat_namespace", cFile, "-o", libFile}
	case "windows":
		return "cc", []string{"-O3", "-shared", cFile, "-o", libFile}
	default:
		return "cc", []string{"-O3", "-shared", "-fPIC", cFile, "-o", libFile}
	}
}

// artifact is the pair of on-disk paths an emitter instance owns.
type artifact struct {
	cFile   string
	libFile string
}

// build writes source to a freshly named .c file, invokes the host C
// compiler to produce a colocated shared library, and returns the paths of
// both. Unlike the reference, it checks the compiler's exit status and
// fails fast on nonzero (spec §9 Open Questions: "a strict reimplementation
// should").
func build(source string) (artifact, error) {
	n := atomic.AddUint64(&artifactCounter, 1)
	base := fmt.Sprintf("miniregex_jit_%d", n)
	a := artifact{cFile: base + ".c", libFile: base + sharedLibExt()}

	if err := os.WriteFile(a.cFile, []byte(source), 0o644); err != nil {
		return artifact{}, &ToolchainError{Stage: "compile", Message: "writing generated source", Err: err}
	}

	name, args := compilerArgs(runtime.GOOS, a.cFile, a.libFile)
	cmd := exec.Command(name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(a.cFile)
		return artifact{}, &ToolchainError{
			Stage:   "compile",
			Message: fmt.Sprintf("%s %v failed: %s", name, args, out),
			Err:     err,
		}
	}

	return a, nil
}

// cleanup deletes both artifact files. Errors are not returned: cleanup
// runs from Handle.Close, which itself only logs failures (spec §4.5,
// "Shutdown").
func (a artifact) cleanup() {
	os.Remove(a.cFile)
	os.Remove(a.libFile)
}
