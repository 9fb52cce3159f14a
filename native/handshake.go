package native

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/sirupsen/logrus"
)

// Handshake negotiates the RENDERDOC_API_1_6_0 table with the library
// behind syms and binds every call-through with bind.
//
// The sequence is fixed by the native ABI: resolve RENDERDOC_GetAPI, call
// it with APIVersion1_6_0 and the address of a pointer-sized out
// parameter, require a return of 1, reinterpret the out parameter as an
// APITable, then call the table's GetAPIVersion and require exactly
// 1.6.0 before touching any other slot. The table layout is only valid
// for that version.
//
// Handshake acquires nothing; the caller owns syms and must release it
// when an error is returned.
func Handshake(syms Symbols, bind Binder, log logrus.FieldLogger) (*EntryPoints, Version, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithFields(logrus.Fields{
		"function": "Handshake",
		"package":  "native",
	})

	log.Debug("Retrieving RENDERDOC_GetAPI symbol")
	getAPIAddr, err := syms.Lookup(GetAPISymbol)
	if err != nil {
		if !errors.Is(err, ErrEntryPointNotFound) {
			err = fmt.Errorf("%w: %s: %w", ErrEntryPointNotFound, GetAPISymbol, err)
		}
		return nil, Version{}, err
	}
	log.WithField("address", fmt.Sprintf("0x%x", getAPIAddr)).Debug("Resolved RENDERDOC_GetAPI")

	var getAPI func(version APIVersion, outAPIPointers *unsafe.Pointer) int32
	bind(&getAPI, getAPIAddr)

	var tablePtr unsafe.Pointer
	log.Debug("Invoking RENDERDOC_GetAPI")
	if rc := getAPI(APIVersion1_6_0, &tablePtr); rc != getAPISuccess {
		return nil, Version{}, fmt.Errorf("%w: RENDERDOC_GetAPI returned error code %d", ErrHandshakeRejected, rc)
	}
	if tablePtr == nil {
		return nil, Version{}, fmt.Errorf("%w: RENDERDOC_GetAPI returned a null table", ErrHandshakeRejected)
	}

	table := (*APITable)(tablePtr)
	log.WithFields(logrus.Fields{
		"address": fmt.Sprintf("%p", tablePtr),
		"size":    unsafe.Sizeof(*table),
	}).Debug("Resolved RENDERDOC_API_1_6_0")

	if table.GetAPIVersion == 0 {
		return nil, Version{}, fmt.Errorf("%w: GetAPIVersion", ErrEntryPointNotFound)
	}

	entry := &EntryPoints{}
	bind(&entry.GetAPIVersion, table.GetAPIVersion)

	var major, minor, patch int32
	entry.GetAPIVersion(&major, &minor, &patch)
	version := Version{Major: int(major), Minor: int(minor), Patch: int(patch)}
	log.WithField("version", version.String()).Debug("Queried API version")

	if version != RequiredVersion {
		return nil, version, fmt.Errorf("%w: expected %s, received %s",
			ErrIncompatibleVersion, RequiredVersion, version)
	}

	for _, b := range entry.bindings(table) {
		if b.addr == 0 {
			return nil, version, fmt.Errorf("%w: %s", ErrEntryPointNotFound, b.name)
		}
		log.WithFields(logrus.Fields{
			"entry_point": b.name,
			"address":     fmt.Sprintf("0x%x", b.addr),
		}).Debug("Binding entry point")
		bind(b.fptr, b.addr)
	}

	return entry, version, nil
}
