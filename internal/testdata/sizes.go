package testdata

type Size struct {
	Name string
	N    int
}

// Sizes straddle the XSalsa20 block boundaries, including the first block
// whose leading 32 bytes key Poly1305.
var Sizes = []Size{
	{"0B", 0},
	{"1B", 1},
	{"31B", 31},
	{"32B", 32},
	{"33B", 33},
	{"63B", 63},
	{"64B", 64},
	{"65B", 65},
	{"1KiB", 1024},
	{"64KiB", 64 * 1024},
}
