package definition

// FixedSizeAttrs holds the attributes shared by every fixed-size storage
// kind: byte_order, size, and units.
type FixedSizeAttrs struct {
	ByteOrder ByteOrder
	Size      Size
	Units     Units
}

// booleanSizes, characterSizes, integerSizes, and floatSizes are the
// supported byte widths per fixed-size kind.
var (
	booleanSizes   = map[int]bool{1: true, 2: true, 4: true}
	characterSizes = map[int]bool{1: true, 2: true, 4: true}
	integerSizes   = map[int]bool{1: true, 2: true, 4: true, 8: true}
	floatSizes     = map[int]bool{4: true, 8: true}
)

func validateFixedSize(kind Kind, size Size, allowed map[int]bool) {
	bytes, ok := size.Bytes()
	if !ok {
		// native is not checked against allowed, here or when a Map is
		// built: the mapper resolves it to the host word width unchecked.
		return
	}
	if !allowed[bytes] {
		panic("definition: " + kind.String() + " does not support size " + size.String())
	}
}

// Boolean is the `boolean` fixed-size kind.
type Boolean struct {
	common
	FixedSizeAttrs
	FalseValue   int64
	TrueValue    int64
	hasTrueValue bool
}

// NewBoolean constructs a Boolean. trueValue is nil when the attribute is
// unset (any non-false value decodes true). Definitions are returned by
// pointer so a Definition's identity is the Go pointer identity the factory
// cache and registry key on.
func NewBoolean(c Common, attrs FixedSizeAttrs, falseValue int64, trueValue *int64) *Boolean {
	validateFixedSize(KindBoolean, attrs.Size, booleanSizes)
	b := &Boolean{
		common:         newCommon(KindBoolean, c),
		FixedSizeAttrs: attrs,
		FalseValue:     falseValue,
	}
	if trueValue != nil {
		b.TrueValue = *trueValue
		b.hasTrueValue = true
	}
	return b
}

// HasTrueValue reports whether `true_value` was set explicitly.
func (b *Boolean) HasTrueValue() bool { return b.hasTrueValue }

// Character is the `character` fixed-size kind.
type Character struct {
	common
	FixedSizeAttrs
}

func NewCharacter(c Common, attrs FixedSizeAttrs) *Character {
	validateFixedSize(KindCharacter, attrs.Size, characterSizes)
	return &Character{common: newCommon(KindCharacter, c), FixedSizeAttrs: attrs}
}

// IntegerFormat is the `format` attribute of an integer definition.
type IntegerFormat int

const (
	IntegerFormatSigned IntegerFormat = iota
	IntegerFormatUnsigned
)

func (f IntegerFormat) String() string {
	if f == IntegerFormatUnsigned {
		return "unsigned"
	}
	return "signed"
}

// Integer is the `integer` fixed-size kind.
type Integer struct {
	common
	FixedSizeAttrs
	Format IntegerFormat
}

func NewInteger(c Common, attrs FixedSizeAttrs, format IntegerFormat) *Integer {
	validateFixedSize(KindInteger, attrs.Size, integerSizes)
	return &Integer{common: newCommon(KindInteger, c), FixedSizeAttrs: attrs, Format: format}
}

// FloatingPoint is the `floating-point` fixed-size kind.
type FloatingPoint struct {
	common
	FixedSizeAttrs
}

func NewFloatingPoint(c Common, attrs FixedSizeAttrs) *FloatingPoint {
	validateFixedSize(KindFloatingPoint, attrs.Size, floatSizes)
	return &FloatingPoint{common: newCommon(KindFloatingPoint, c), FixedSizeAttrs: attrs}
}

// UUID is the `uuid` fixed-size kind. byte_order governs the layout of the
// first three fields only, per the standard GUID convention; size is always
// 16 bytes.
type UUID struct {
	common
	FixedSizeAttrs
}

func NewUUID(c Common, byteOrder ByteOrder, units Units) *UUID {
	return &UUID{
		common: newCommon(KindUUID, c),
		FixedSizeAttrs: FixedSizeAttrs{
			ByteOrder: byteOrder,
			Size:      FixedSize(16),
			Units:     units,
		},
	}
}
