package definition

// Compile-time assertions that every kind implements Definition. Every
// concrete kind is constructed and referenced by pointer so Definition
// identity (the factory cache key, the registry's stored value) is ordinary
// Go pointer identity.
var (
	_ Definition = (*Boolean)(nil)
	_ Definition = (*Character)(nil)
	_ Definition = (*Integer)(nil)
	_ Definition = (*FloatingPoint)(nil)
	_ Definition = (*UUID)(nil)
	_ Definition = (*Sequence)(nil)
	_ Definition = (*Stream)(nil)
	_ Definition = (*String)(nil)
	_ Definition = (*Padding)(nil)
	_ Definition = (*Structure)(nil)
	_ Definition = (*Union)(nil)
	_ Definition = (*Constant)(nil)
	_ Definition = (*Enumeration)(nil)
	_ Definition = (*Format)(nil)
	_ Definition = (*StructureFamily)(nil)
	_ Definition = (*StructureGroup)(nil)
)
