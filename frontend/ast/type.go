package ast

// DataType is the closed set of declarable types.
type DataType int

const (
	TypeAuto DataType = iota
	TypeInt
	TypeFloat
	TypeDouble
	TypeTxt
	TypeBool
)

var dataTypeNames = [...]string{
	TypeAuto:   "auto",
	TypeInt:    "int",
	TypeFloat:  "float",
	TypeDouble: "double",
	TypeTxt:    "txt",
	TypeBool:   "bool",
}

// auto lowers to i32; there is no inference.
var rustTypeNames = [...]string{
	TypeAuto:   "i32",
	TypeInt:    "i32",
	TypeFloat:  "f32",
	TypeDouble: "f64",
	TypeTxt:    "String",
	TypeBool:   "bool",
}

// LookupDataType maps a type keyword to its DataType.
func LookupDataType(name string) (DataType, bool) {
	for ty, n := range dataTypeNames {
		if n == name {
			return DataType(ty), true
		}
	}
	return TypeAuto, false
}

func (t DataType) String() string {
	return dataTypeNames[t]
}

// Rust returns the target type name.
func (t DataType) Rust() string {
	return rustTypeNames[t]
}

func (t DataType) IsAuto() bool {
	return t == TypeAuto
}
