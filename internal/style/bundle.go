package style

// Bundle maps each semantic identifier role to a casing style. One bundle
// exists per backend family; defaults below can be overridden per run.
type Bundle struct {
	Type       Style
	EnumType   Style
	TypeParam  Style
	Method     Style
	Field      Style
	Local      Style
	EnumMember Style
	Const      Style

	// Property and File are only meaningful for the Objective-C family.
	Property Style
	File     Style
}

// CppDefault is the conventional C++ casing bundle.
func CppDefault() Bundle {
	return Bundle{
		Type:       CamelUpper,
		EnumType:   CamelUpper,
		TypeParam:  CamelUpper,
		Method:     Identity,
		Field:      Identity,
		Local:      Identity,
		EnumMember: AllCaps,
		Const:      AllCaps,
	}
}

// JavaDefault is the conventional Java casing bundle.
func JavaDefault() Bundle {
	return Bundle{
		Type:       CamelUpper,
		EnumType:   CamelUpper,
		TypeParam:  CamelUpper,
		Method:     CamelLower,
		Field:      CamelLower,
		Local:      CamelLower,
		EnumMember: AllCaps,
		Const:      AllCaps,
	}
}

// ObjcDefault is the conventional Objective-C casing bundle. Type names
// normally also carry a class prefix, applied via WithPrefix when the
// configuration names one.
func ObjcDefault() Bundle {
	return Bundle{
		Type:       CamelUpper,
		EnumType:   CamelUpper,
		TypeParam:  CamelUpper,
		Method:     CamelLower,
		Field:      CamelLower,
		Local:      CamelLower,
		EnumMember: CamelUpper,
		Const:      CamelUpper,
		Property:   CamelLower,
		File:       CamelUpper,
	}
}

// PythonDefault is the conventional Python casing bundle.
func PythonDefault() Bundle {
	return Bundle{
		Type:       CamelUpper,
		EnumType:   CamelUpper,
		TypeParam:  CamelUpper,
		Method:     Identity,
		Field:      Identity,
		Local:      Identity,
		EnumMember: AllCaps,
		Const:      AllCaps,
	}
}

// CDefault is the casing bundle for the plain-C wrapper.
func CDefault() Bundle {
	return Bundle{
		Type:       CamelUpper,
		EnumType:   CamelUpper,
		TypeParam:  CamelUpper,
		Method:     Identity,
		Field:      Identity,
		Local:      Identity,
		EnumMember: AllCaps,
		Const:      AllCaps,
	}
}
