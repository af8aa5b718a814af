// Package keygate provides:
//
// - A validated key-value registry: accept/reject decisions for configuration writes
// - A closed set of pure validator predicates built via the dsl subpackage
// - A stable error model via Issues (key, code, message)
// - Catalog construction with duplicate-registration warnings
//
// Design policy:
// - Keep only public APIs in the root package; put parse helpers under internal/.
// - Place validator constructors under dsl/, manifest loading under manifest/,
//   catalog export under schema/, and shipped catalogs under preset/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	b := keygate.NewCatalogBuilder()
//	b.Register("font_scale", dsl.FloatRange(0.80, 1.3))
//	reg := keygate.NewRegistry(b.Build())
//
//	switch reg.Accept("font_scale", keygate.StringValue("1.0")) {
//	case keygate.Allowed:
//	...
//	}
package keygate
