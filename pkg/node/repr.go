package node

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// repr describes a value for error messages.
func repr(x Node) string {
	switch v := x.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.GoStringer:
		return v.GoString()
	case []byte:
		return fmt.Sprintf("[]byte(%q)", v)
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Func, reflect.Chan:
		return fmt.Sprintf("%T", x)
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Sprintf("%T(%q)", x, x)
		}
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", x)
	}
	return fmt.Sprintf("%#v", x)
}

// funcName returns the short name of a function value, e.g. "userBadge" or
// "TestConsumer.func1".
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return fmt.Sprintf("%T", fn)
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return fmt.Sprintf("%T", fn)
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
