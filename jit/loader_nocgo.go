//go:build !cgo

package jit

// nativeHandle is a stub used when miniregex is built without cgo, in
// which case dynamic loading of the generated shared library is
// unavailable: there is no supported way to dlopen a library from pure Go.
type nativeHandle struct{}

func loadNative(libFile string) (*nativeHandle, error) {
	return nil, &ToolchainError{
		Stage:   "load",
		Message: "miniregex was built without cgo; the native loader requires cgo",
	}
}

func (h *nativeHandle) call(data []byte) bool { return false }

func (h *nativeHandle) unload() error { return nil }
