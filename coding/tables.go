package coding

// Static lookup data for the QR Model-2 standard: per-version codeword
// capacity, block/ECC-byte counts per level, alignment-pattern center
// coordinates, and the version- and format-information bitstrings.
//
// capacityWords, eccTotalBytes and blockGroups are ported from
// github.com/unixdj/qr/coding's generated vtab (coding/gen.go), which
// in turn transcribes qrencode's qrspec.c tables; versionInfoTable is
// the same source's raw BCH-encoded 18-bit strings. alignCenters is the
// standard's Annex E alignment-pattern center table, independently
// confirmed against original_source/myqro's LevelingPatterns array
// (myqro ships the table, not its derivation). Format information
// strings are computed at init time with the same BCH division
// (generator 0x537, XOR mask 0x5412) gen.go's calcFormat performs,
// rather than transcribed as 32 more magic numbers.

// capacityWords[v] is the total number of data+ECC codewords (bytes)
// in a symbol of version v, for v in [1,40]. Index 0 is unused.
var capacityWords = [41]int{
	0,
	26, 44, 70, 100, 134, 172, 196, 242, 292, 346,
	404, 466, 532, 581, 655, 733, 815, 901, 991, 1085,
	1156, 1258, 1364, 1474, 1588, 1706, 1828, 1921, 2051, 2185,
	2323, 2465, 2611, 2761, 2876, 3034, 3196, 3362, 3532, 3706,
}

// eccTotalBytes[l][v] is the total number of ECC bytes across all
// blocks in a symbol of version v at ECC level l, for v in [1,40].
var eccTotalBytes = [4][41]int{
	L: {0,
		7, 10, 15, 20, 26, 36, 40, 48, 60, 72,
		80, 96, 104, 120, 132, 144, 168, 180, 196, 224,
		224, 252, 270, 300, 312, 336, 360, 390, 420, 450,
		480, 510, 540, 570, 570, 600, 630, 660, 720, 750,
	},
	M: {0,
		10, 16, 26, 36, 48, 64, 72, 88, 110, 130,
		150, 176, 198, 216, 240, 280, 308, 338, 364, 416,
		442, 476, 504, 560, 588, 644, 700, 728, 784, 812,
		868, 924, 980, 1036, 1064, 1120, 1204, 1260, 1316, 1372,
	},
	Q: {0,
		13, 22, 36, 52, 72, 96, 108, 132, 160, 192,
		224, 260, 288, 320, 360, 408, 448, 504, 546, 600,
		644, 690, 750, 810, 870, 952, 1020, 1050, 1140, 1200,
		1290, 1350, 1440, 1530, 1590, 1680, 1770, 1860, 1950, 2040,
	},
	H: {0,
		17, 28, 44, 64, 88, 112, 130, 156, 192, 224,
		264, 308, 352, 384, 432, 480, 532, 588, 650, 700,
		750, 816, 900, 960, 1050, 1110, 1200, 1260, 1350, 1440,
		1530, 1620, 1710, 1800, 1890, 1980, 2100, 2220, 2310, 2430,
	},
}

// blockGroups[l][v] holds {group1Blocks, group2Blocks}: the number of
// blocks in each of the standard's two block-size groups for version v
// at ECC level l. Group 2 blocks carry one more data byte than group 1;
// BitStream.SplitIntoBlocks reproduces that split from the total block
// count alone, so only the counts are needed here, not the group sizes.
var blockGroups = [4][41][2]int{
	L: {{0, 0},
		{1, 0}, {1, 0}, {1, 0}, {1, 0}, {1, 0}, {2, 0}, {2, 0}, {2, 0}, {2, 0}, {2, 2},
		{4, 0}, {2, 2}, {4, 0}, {3, 1}, {5, 1}, {5, 1}, {1, 5}, {5, 1}, {3, 4}, {3, 5},
		{4, 4}, {2, 7}, {4, 5}, {6, 4}, {8, 4}, {10, 2}, {8, 4}, {3, 10}, {7, 7}, {5, 10},
		{13, 3}, {17, 0}, {17, 1}, {13, 6}, {12, 7}, {6, 14}, {17, 4}, {4, 18}, {20, 4}, {19, 6},
	},
	M: {{0, 0},
		{1, 0}, {1, 0}, {1, 0}, {2, 0}, {2, 0}, {4, 0}, {4, 0}, {2, 2}, {3, 2}, {4, 1},
		{1, 4}, {6, 2}, {8, 1}, {4, 5}, {5, 5}, {7, 3}, {10, 1}, {9, 4}, {3, 11}, {3, 13},
		{17, 0}, {17, 0}, {4, 14}, {6, 14}, {8, 13}, {19, 4}, {22, 3}, {3, 23}, {21, 7}, {19, 10},
		{2, 29}, {10, 23}, {14, 21}, {14, 23}, {12, 26}, {6, 34}, {29, 14}, {13, 32}, {40, 7}, {18, 31},
	},
	Q: {{0, 0},
		{1, 0}, {1, 0}, {2, 0}, {2, 0}, {2, 2}, {4, 0}, {2, 4}, {4, 2}, {4, 4}, {6, 2},
		{4, 4}, {4, 6}, {8, 4}, {11, 5}, {5, 7}, {15, 2}, {1, 15}, {17, 1}, {17, 4}, {15, 5},
		{17, 6}, {7, 16}, {11, 14}, {11, 16}, {7, 22}, {28, 6}, {8, 26}, {4, 31}, {1, 37}, {15, 25},
		{42, 1}, {10, 35}, {29, 19}, {44, 7}, {39, 14}, {46, 10}, {49, 10}, {48, 14}, {43, 22}, {34, 34},
	},
	H: {{0, 0},
		{1, 0}, {1, 0}, {2, 0}, {4, 0}, {2, 2}, {4, 0}, {4, 1}, {4, 2}, {4, 4}, {6, 2},
		{3, 8}, {7, 4}, {12, 4}, {11, 5}, {11, 7}, {3, 13}, {2, 17}, {2, 19}, {9, 16}, {15, 10},
		{19, 6}, {34, 0}, {16, 14}, {30, 2}, {22, 13}, {33, 4}, {12, 28}, {11, 31}, {19, 26}, {23, 25},
		{23, 28}, {19, 35}, {11, 46}, {59, 1}, {22, 41}, {2, 64}, {24, 46}, {42, 32}, {10, 67}, {20, 61},
	},
}

// versionLevel describes the block layout of a symbol at a given
// version and ECC level.
type versionLevel struct {
	nblock       int // total number of blocks across both groups
	eccPerBlock  int // ECC bytes in every block (uniform per the standard)
	dataBytes    int // total data bytes (excludes ECC) for this version+level
}

// vtab[l][v] is populated at init from capacityWords/eccTotalBytes/
// blockGroups, following the same arithmetic
// github.com/unixdj/qr/coding/gen.go uses to build its vtab.
var vtab [4][41]versionLevel

func init() {
	for l := 0; l < 4; l++ {
		for v := 1; v <= 40; v++ {
			nblock := blockGroups[l][v][0] + blockGroups[l][v][1]
			if nblock == 0 {
				continue
			}
			eccTotal := eccTotalBytes[l][v]
			vtab[l][v] = versionLevel{
				nblock:      nblock,
				eccPerBlock: eccTotal / nblock,
				dataBytes:   capacityWords[v] - eccTotal,
			}
		}
	}
}

// dataCapacityBits returns the number of bits available for mode
// indicator + character count + payload at version v, ECC level l.
func dataCapacityBits(v Version, l EccLevel) int {
	return vtab[l][v].dataBytes * 8
}

// alignCenters lists the alignment-pattern center coordinates for
// version v along one axis; the full set of centers is every pair
// drawn from this list. Index 0 and 1 are unused/empty (version 1 has
// no alignment patterns).
var alignCenters = [41][]int{
	1:  nil,
	2:  {6, 18},
	3:  {6, 22},
	4:  {6, 26},
	5:  {6, 30},
	6:  {6, 34},
	7:  {6, 22, 38},
	8:  {6, 24, 42},
	9:  {6, 26, 46},
	10: {6, 28, 50},
	11: {6, 30, 54},
	12: {6, 32, 58},
	13: {6, 34, 62},
	14: {6, 26, 46, 66},
	15: {6, 26, 48, 70},
	16: {6, 26, 50, 74},
	17: {6, 30, 54, 78},
	18: {6, 30, 56, 82},
	19: {6, 30, 58, 86},
	20: {6, 34, 62, 90},
	21: {6, 28, 50, 72, 94},
	22: {6, 26, 50, 74, 98},
	23: {6, 30, 54, 78, 102},
	24: {6, 28, 54, 80, 106},
	25: {6, 32, 58, 84, 110},
	26: {6, 30, 58, 86, 114},
	27: {6, 34, 62, 90, 118},
	28: {6, 26, 50, 74, 98, 122},
	29: {6, 30, 54, 78, 102, 126},
	30: {6, 26, 52, 78, 104, 130},
	31: {6, 30, 56, 82, 108, 134},
	32: {6, 34, 60, 86, 112, 138},
	33: {6, 30, 58, 86, 114, 142},
	34: {6, 34, 62, 90, 118, 146},
	35: {6, 30, 54, 78, 102, 126, 150},
	36: {6, 24, 50, 76, 102, 128, 154},
	37: {6, 28, 54, 80, 106, 132, 158},
	38: {6, 32, 58, 84, 110, 136, 162},
	39: {6, 26, 54, 82, 110, 138, 166},
	40: {6, 30, 58, 86, 114, 142, 170},
}

// versionInfoTable holds the 18-bit BCH-encoded version-information
// string for every version v >= 7, transcribed from
// github.com/unixdj/qr/coding/gen.go's versionPattern table (itself
// qrencode's qrspec.c table). Versions below 7 carry no version
// information and are zero.
var versionInfoTable = [41]uint32{
	7: 0x07c94, 8: 0x085bc, 9: 0x09a99, 10: 0x0a4d3,
	11: 0x0bbf6, 12: 0x0c762, 13: 0x0d847, 14: 0x0e60d,
	15: 0x0f928, 16: 0x10b78, 17: 0x1145d, 18: 0x12a17,
	19: 0x13532, 20: 0x149a6, 21: 0x15683, 22: 0x168c9,
	23: 0x177ec, 24: 0x18ec4, 25: 0x191e1, 26: 0x1afab,
	27: 0x1b08e, 28: 0x1cc1a, 29: 0x1d33f, 30: 0x1ed75,
	31: 0x1f250, 32: 0x209d5, 33: 0x216f0, 34: 0x228ba,
	35: 0x2379f, 36: 0x24b0b, 37: 0x2542e, 38: 0x26a64,
	39: 0x27541, 40: 0x28c69,
}

// eccIndicator encodes each EccLevel's 2-bit field in the format
// information string. The standard assigns these out of alphabetical
// order: L=01, M=00, Q=11, H=10.
var eccIndicator = [4]uint32{L: 0b01, M: 0b00, Q: 0b11, H: 0b10}

// formatInfoTable[l][mask] is the 15-bit BCH(15,5)-encoded format
// information string for ECC level l and mask index mask, computed at
// init with the same division github.com/unixdj/qr/coding/gen.go's
// calcFormat performs, against generator polynomial 0x537 and XOR mask
// 0x5412 (the standard's format-information mask pattern).
var formatInfoTable [4][8]uint16

func init() {
	const formatPoly = 0x537
	for l := 0; l < 4; l++ {
		for m := 0; m < 8; m++ {
			fb := eccIndicator[l]<<13 | uint32(m)<<10
			rem := fb
			for i := 4; i >= 0; i-- {
				if rem&(uint32(1)<<uint(10+i)) != 0 {
					rem ^= formatPoly << uint(i)
				}
			}
			formatInfoTable[l][m] = uint16((fb | rem) ^ 0x5412)
		}
	}
}
