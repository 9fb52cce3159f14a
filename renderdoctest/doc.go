// Package renderdoctest provides a simulated RenderDoc in-application
// library for tests.
//
// [Library] implements native.Library and offers a Bind method with the
// native.Binder signature. Its RENDERDOC_GetAPI hands back a Go-allocated
// native.APITable whose slots resolve, through Bind, to Go closures that
// keep option values, the capture path template and a capture list in
// memory. native.Handshake therefore runs its real sequence, including the
// pointer reinterpretation and version gate, without the native library.
//
//	lib := renderdoctest.New()
//	lib.SetVersion(1, 5, 0)
//	_, _, err := native.Handshake(lib, lib.Bind, nil)
//	// errors.Is(err, native.ErrIncompatibleVersion) == true
package renderdoctest
