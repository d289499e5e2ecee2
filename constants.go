package fishhash

// Fixed algorithm constants: the seed is a hard-coded constant and the
// dataset sizes never vary at runtime.
const (
	LightCacheNumItems      = 1_179_641
	FullDatasetNumItems     = 37_748_717
	LightCacheRounds        = 3
	FullDatasetItemParents  = 512
	NumDatasetAccesses      = 32
)

// Seed is the fixed 256-bit constant the light cache and, transitively,
// the full dataset are derived from.
var Seed = Hash256{
	0xeb, 0x01, 0x63, 0xae, 0xf2, 0xab, 0x1c, 0x5a,
	0x66, 0x31, 0x0c, 0x1c, 0x14, 0xd6, 0x0f, 0x42,
	0x55, 0xa9, 0xb3, 0x9b, 0x0e, 0xdf, 0x26, 0x53,
	0x98, 0x44, 0xf1, 0x17, 0xad, 0x67, 0x21, 0x19,
}
