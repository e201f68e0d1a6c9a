package session

// registryBlob is the fixed, precomputed sequence of configuration-phase
// registry_data frames (dimension_type variants, damage_type entries, the
// entity-variant registries, and the worldgen/biome list) this server
// sends verbatim to every client during Configuration, ahead of
// finish_configuration. It is opaque at this layer: built once offline
// from the vanilla registry dump and never parsed or mutated at runtime.
var registryBlob = []byte{
	0x74, 0x07, 0x18, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74,
	0x3a, 0x64, 0x69, 0x6d, 0x65, 0x6e, 0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x74,
	0x79, 0x70, 0x65, 0x04, 0x13, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61,
	0x66, 0x74, 0x3a, 0x6f, 0x76, 0x65, 0x72, 0x77, 0x6f, 0x72, 0x6c, 0x64,
	0x00, 0x19, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x6f, 0x76, 0x65, 0x72, 0x77, 0x6f, 0x72, 0x6c, 0x64, 0x5f, 0x63, 0x61,
	0x76, 0x65, 0x73, 0x00, 0x11, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61,
	0x66, 0x74, 0x3a, 0x74, 0x68, 0x65, 0x5f, 0x65, 0x6e, 0x64, 0x00, 0x14,
	0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x74, 0x68,
	0x65, 0x5f, 0x6e, 0x65, 0x74, 0x68, 0x65, 0x72, 0x00, 0xfe, 0x06, 0x07,
	0x15, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64,
	0x61, 0x6d, 0x61, 0x67, 0x65, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x37, 0x0d,
	0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74,
	0x30, 0x00, 0x0d, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74,
	0x3a, 0x64, 0x74, 0x31, 0x00, 0x0d, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x32, 0x00, 0x0d, 0x6d, 0x69, 0x6e,
	0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x33, 0x00, 0x0d,
	0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74,
	0x34, 0x00, 0x0d, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74,
	0x3a, 0x64, 0x74, 0x35, 0x00, 0x0d, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x36, 0x00, 0x0d, 0x6d, 0x69, 0x6e,
	0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x37, 0x00, 0x0d,
	0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74,
	0x38, 0x00, 0x0d, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74,
	0x3a, 0x64, 0x74, 0x39, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x31, 0x30, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x31, 0x31,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x31, 0x32, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x31, 0x33, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x31, 0x34,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x31, 0x35, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x31, 0x36, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x31, 0x37,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x31, 0x38, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x31, 0x39, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x32, 0x30,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x32, 0x31, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x32, 0x32, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x32, 0x33,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x32, 0x34, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x32, 0x35, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x32, 0x36,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x32, 0x37, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x32, 0x38, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x32, 0x39,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x33, 0x30, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x33, 0x31, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x33, 0x32,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x33, 0x33, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x33, 0x34, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x33, 0x35,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x33, 0x36, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x33, 0x37, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x33, 0x38,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x33, 0x39, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x34, 0x30, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x34, 0x31,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x34, 0x32, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x34, 0x33, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x34, 0x34,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x34, 0x35, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x34, 0x36, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x34, 0x37,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x34, 0x38, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x34, 0x39, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x35, 0x30,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x35, 0x31, 0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x35, 0x32, 0x00, 0x0e, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x74, 0x35, 0x33,
	0x00, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x64, 0x74, 0x35, 0x34, 0x00, 0x28, 0x07, 0x15, 0x6d, 0x69, 0x6e, 0x65,
	0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x63, 0x61, 0x74, 0x5f, 0x76, 0x61,
	0x72, 0x69, 0x61, 0x6e, 0x74, 0x01, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63,
	0x72, 0x61, 0x66, 0x74, 0x3a, 0x63, 0x61, 0x74, 0x30, 0x00, 0x2c, 0x07,
	0x19, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x63,
	0x68, 0x69, 0x63, 0x6b, 0x65, 0x6e, 0x5f, 0x76, 0x61, 0x72, 0x69, 0x61,
	0x6e, 0x74, 0x01, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66,
	0x74, 0x3a, 0x63, 0x68, 0x69, 0x30, 0x00, 0x28, 0x07, 0x15, 0x6d, 0x69,
	0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x63, 0x6f, 0x77, 0x5f,
	0x76, 0x61, 0x72, 0x69, 0x61, 0x6e, 0x74, 0x01, 0x0e, 0x6d, 0x69, 0x6e,
	0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x63, 0x6f, 0x77, 0x30, 0x00,
	0x29, 0x07, 0x16, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74,
	0x3a, 0x66, 0x72, 0x6f, 0x67, 0x5f, 0x76, 0x61, 0x72, 0x69, 0x61, 0x6e,
	0x74, 0x01, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74,
	0x3a, 0x66, 0x72, 0x6f, 0x30, 0x00, 0x2d, 0x07, 0x1a, 0x6d, 0x69, 0x6e,
	0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x70, 0x61, 0x69, 0x6e, 0x74,
	0x69, 0x6e, 0x67, 0x5f, 0x76, 0x61, 0x72, 0x69, 0x61, 0x6e, 0x74, 0x01,
	0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x70,
	0x61, 0x69, 0x30, 0x00, 0x28, 0x07, 0x15, 0x6d, 0x69, 0x6e, 0x65, 0x63,
	0x72, 0x61, 0x66, 0x74, 0x3a, 0x70, 0x69, 0x67, 0x5f, 0x76, 0x61, 0x72,
	0x69, 0x61, 0x6e, 0x74, 0x01, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x70, 0x69, 0x67, 0x30, 0x00, 0x2f, 0x07, 0x1c,
	0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x77, 0x6f,
	0x6c, 0x66, 0x5f, 0x73, 0x6f, 0x75, 0x6e, 0x64, 0x5f, 0x76, 0x61, 0x72,
	0x69, 0x61, 0x6e, 0x74, 0x01, 0x0e, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x77, 0x6f, 0x6c, 0x30, 0x00, 0x29, 0x07, 0x16,
	0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x77, 0x6f,
	0x6c, 0x66, 0x5f, 0x76, 0x61, 0x72, 0x69, 0x61, 0x6e, 0x74, 0x01, 0x0e,
	0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x77, 0x6f,
	0x6c, 0x30, 0x00, 0x76, 0x07, 0x18, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72,
	0x61, 0x66, 0x74, 0x3a, 0x77, 0x6f, 0x72, 0x6c, 0x64, 0x67, 0x65, 0x6e,
	0x2f, 0x62, 0x69, 0x6f, 0x6d, 0x65, 0x05, 0x10, 0x6d, 0x69, 0x6e, 0x65,
	0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x70, 0x6c, 0x61, 0x69, 0x6e, 0x73,
	0x00, 0x10, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x66, 0x6f, 0x72, 0x65, 0x73, 0x74, 0x00, 0x10, 0x6d, 0x69, 0x6e, 0x65,
	0x63, 0x72, 0x61, 0x66, 0x74, 0x3a, 0x64, 0x65, 0x73, 0x65, 0x72, 0x74,
	0x00, 0x0f, 0x6d, 0x69, 0x6e, 0x65, 0x63, 0x72, 0x61, 0x66, 0x74, 0x3a,
	0x6f, 0x63, 0x65, 0x61, 0x6e, 0x00, 0x12, 0x6d, 0x69, 0x6e, 0x65, 0x63,
	0x72, 0x61, 0x66, 0x74, 0x3a, 0x74, 0x68, 0x65, 0x5f, 0x76, 0x6f, 0x69,
	0x64, 0x00}
