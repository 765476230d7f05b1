//go:build cgo

package jit

// #cgo LDFLAGS: -ldl
// #include <dlfcn.h>
// #include <stdlib.h>
//
// typedef int (*jitted_fn)(char*, int);
//
// static int call_jitted(jitted_fn fn, char* c, int len) {
//     return fn(c, len);
// }
import "C"

import (
	"errors"
	"path/filepath"
	"unsafe"
)

// nativeHandle owns the dlopen'd library handle and the resolved jitted
// symbol. Grounded on the cgo/FFI idiom in the teacher ecosystem's leveldb
// bridge (CString/unsafe.Pointer/defer C.free) and on original_source/
// nfa.cc's JitFunction, which calls the POSIX dlfcn.h family directly.
type nativeHandle struct {
	lib unsafe.Pointer
	fn  C.jitted_fn
}

// loadNative dlopens libFile with local visibility and lazy binding (spec
// §4.5, "lazy symbol binding, local visibility is sufficient") and resolves
// the jitted symbol. libFile is made absolute first: dlopen treats a name
// without a slash as a library to look up on the loader's search path, not
// as a file in the working directory.
func loadNative(libFile string) (*nativeHandle, error) {
	if abs, err := filepath.Abs(libFile); err == nil {
		libFile = abs
	}
	cPath := C.CString(libFile)
	defer C.free(unsafe.Pointer(cPath))

	lib := C.dlopen(cPath, C.RTLD_LOCAL|C.RTLD_LAZY)
	if lib == nil {
		return nil, &ToolchainError{Stage: "load", Message: "dlopen failed", Err: errors.New(C.GoString(C.dlerror()))}
	}

	cSym := C.CString("jitted")
	defer C.free(unsafe.Pointer(cSym))

	sym := C.dlsym(lib, cSym)
	if sym == nil {
		C.dlclose(lib)
		return nil, &ToolchainError{Stage: "symbol", Message: "dlsym(jitted) failed", Err: errors.New(C.GoString(C.dlerror()))}
	}

	return &nativeHandle{lib: lib, fn: C.jitted_fn(sym)}, nil
}

// call invokes the resolved jitted(char*, int) with data's backing array
// and length. An empty slice is passed as a nil pointer with length 0;
// generated code never dereferences the pointer before checking length.
func (h *nativeHandle) call(data []byte) bool {
	var ptr *C.char
	if len(data) > 0 {
		ptr = (*C.char)(unsafe.Pointer(&data[0]))
	}
	return C.call_jitted(h.fn, ptr, C.int(len(data))) != 0
}

// unload releases the dlopen'd handle.
func (h *nativeHandle) unload() error {
	if C.dlclose(h.lib) != 0 {
		return errors.New(C.GoString(C.dlerror()))
	}
	return nil
}
