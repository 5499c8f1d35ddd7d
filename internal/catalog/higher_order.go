package catalog

import "github.com/gridmind/gridil/internal/typesystem"

// callableReturns fixes the environment type of primitives whose declared
// return tag is a bare Callable. Without the override every composed
// function would type as Any and stop being callable in later steps.
var callableReturns = map[string]typesystem.Type{
	"compose": typesystem.NewFunc(typesystem.Any, typesystem.Any),
	"chain":   typesystem.NewFunc(typesystem.Any, typesystem.Any),
	"fork":    typesystem.NewFunc(typesystem.Any, typesystem.Any),
	"lbind":   typesystem.NewFunc(typesystem.Any, typesystem.Any),
	"rbind":   typesystem.NewFunc(typesystem.Any, typesystem.Any),
	"matcher": typesystem.NewFunc(typesystem.Boolean, typesystem.Any),
	"power":   typesystem.NewFunc(typesystem.Any, typesystem.Any),
}

// CallableReturn reports the overridden return type for callable-returning
// primitives such as compose and matcher.
func CallableReturn(name string) (typesystem.Type, bool) {
	typ, ok := callableReturns[name]
	return typ, ok
}

// functionTaking names the primitives that accept functions as arguments;
// their callable parameters admit primitive names as candidates.
var functionTaking = map[string]bool{
	"compose": true, "chain": true, "fork": true, "lbind": true,
	"rbind": true, "matcher": true, "power": true,
	"apply": true, "mapply": true, "sfilter": true, "mfilter": true,
	"argmax": true, "argmin": true, "order": true, "extract": true,
	"valmax": true, "valmin": true, "rapply": true, "papply": true,
	"mpapply": true, "prapply": true,
}

// TakesFunctions reports whether the named primitive is known to consume
// function arguments.
func TakesFunctions(name string) bool { return functionTaking[name] }
