package typesystem

// Union families of the ground vocabulary. A parameter typed as a family
// representative accepts any member; members never accept the family back.
var (
	patchTypes   = map[Base]bool{Object: true, Indices: true}
	elementTypes = map[Base]bool{Object: true, Grid: true}
	pieceTypes   = map[Base]bool{Grid: true, Object: true, Indices: true}

	containerTypes = map[Base]bool{
		Objects: true, Indices: true, IntSet: true,
		Tuple: true, Grid: true, Object: true, Container: true,
	}
	nestedContainerTypes = map[Base]bool{
		Objects: true, IndicesSet: true, TupleTuple: true, ContainerContainer: true,
	}
	setTypes = map[Base]bool{
		Object: true, Objects: true, Indices: true,
		IndicesSet: true, IntSet: true, AnySet: true,
	}
	tupleTypes = map[Base]bool{
		Tuple: true, Grid: true, IntPair: true, TupleTuple: true,
	}
)

// Compatible reports whether a value of type arg may be supplied where a
// parameter of type param is expected. Checks run in a fixed order and the
// first hit decides. The patch, element and piece checks fall through on a
// miss so a later, wider family can still admit the pair: Object accepts
// Grid through the element family, Indices accepts Grid through the piece
// family. Function types match on arity alone.
func Compatible(arg, param Type) bool {
	pb, paramIsBase := param.(Base)
	ab, argIsBase := arg.(Base)

	if paramIsBase && pb == Any || argIsBase && ab == Any {
		return true
	}
	if Equal(arg, param) {
		return true
	}

	if paramIsBase {
		switch pb {
		case Container:
			return argIsBase && containerTypes[ab]
		case ContainerContainer:
			return argIsBase && nestedContainerTypes[ab]
		case AnySet:
			return argIsBase && setTypes[ab]
		}
		if argIsBase {
			if patchTypes[pb] && patchTypes[ab] {
				return true
			}
			if elementTypes[pb] && elementTypes[ab] {
				return true
			}
			if pieceTypes[pb] && pieceTypes[ab] {
				return true
			}
		}
		if pb == Tuple {
			return argIsBase && tupleTypes[ab]
		}
		return false
	}

	if pf, ok := param.(Func); ok {
		af, ok := arg.(Func)
		return ok && len(pf.Params) == len(af.Params)
	}
	return false
}
