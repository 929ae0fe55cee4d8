package helpers

import "reflect"

// StrPanic panics with panicMessage if p is empty; otherwise returns p. Only p == "" is checked, whitespace is kept as is.
//
// Parameters: p — required string (node name, URL, user id); panicMessage — value passed to panic.
//
// Returns: p unchanged when non-empty.
//
// Called from constructors that take mandatory identifiers (service.NewSession, adapters.NewRESTClient, cmd.LoadConfig).
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan or func); otherwise returns v typed as T.
//
// Parameters: v — dependency to check; panicMessage — panic value.
//
// Returns: v unchanged when non-nil.
//
// Called from every service/adapters/handlers constructor when validating injected dependencies.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// Ptr returns a pointer to a copy of v. Used to fill optional wire fields (domain.Play.Start, domain.Update.Volume).
func Ptr[T any](v T) *T {
	return &v
}

// isNil reports whether v is nil or a typed nil pointer/slice/map/chan/func/interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
