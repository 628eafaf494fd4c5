package ascii

// byteRank orders bytes by how often they show up in mixed prose and source
// text. Lower rank means rarer, which makes a better filter byte for the
// Searcher. Bytes 0xC0-0xFF are pinned at 255.
var byteRank = [256]byte{
	55, 52, 51, 50, 49, 48, 47, 46, 45, 103, 242, 66, 67, 229, 44, 43, // 0x00
	42, 41, 40, 39, 38, 37, 36, 35, 34, 33, 56, 32, 31, 30, 29, 28, // 0x10
	255, 148, 164, 149, 136, 160, 155, 173, 221, 222, 134, 122, 232, 202, 215, 224, // 0x20
	208, 220, 204, 187, 183, 179, 177, 168, 178, 200, 226, 195, 154, 184, 174, 126, // 0x30
	120, 191, 157, 194, 170, 189, 162, 161, 150, 193, 142, 137, 171, 176, 185, 167, // 0x40
	186, 112, 175, 192, 188, 156, 140, 143, 123, 133, 128, 147, 138, 146, 114, 223, // 0x50
	151, 249, 216, 238, 236, 253, 227, 218, 230, 247, 135, 180, 241, 233, 246, 244, // 0x60
	231, 139, 245, 243, 251, 235, 201, 196, 240, 214, 152, 182, 205, 181, 127, 27, // 0x70
	212, 211, 210, 213, 228, 197, 169, 159, 131, 172, 105, 80, 98, 96, 97, 81, // 0x80
	207, 145, 116, 115, 144, 130, 153, 121, 107, 132, 109, 110, 124, 111, 82, 108, // 0x90
	118, 141, 113, 129, 119, 125, 165, 117, 92, 106, 83, 72, 99, 93, 65, 79, // 0xA0
	166, 237, 163, 199, 190, 225, 209, 203, 198, 217, 219, 206, 234, 248, 158, 239, // 0xB0
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, // 0xC0
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, // 0xD0
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, // 0xE0
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, // 0xF0
}

// caseFoldRank is byteRank with both cases of a letter sharing the sum of
// their ranks, so a folded filter byte is costed as "either case".
var caseFoldRank [256]uint16

func init() {
	for b := 0; b < 256; b++ {
		caseFoldRank[b] = uint16(byteRank[b])
	}
	for b := byte('A'); b <= 'Z'; b++ {
		sum := uint16(byteRank[b]) + uint16(byteRank[b+0x20])
		caseFoldRank[b] = sum
		caseFoldRank[b+0x20] = sum
	}
}

// toLower converts ASCII uppercase to lowercase.
func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 0x20
	}
	return b
}

// toUpper converts ASCII lowercase to uppercase.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 0x20
	}
	return b
}

// Lower maps b through the ASCII tolower table. Bytes outside 'A'-'Z' are
// returned unchanged.
func Lower(b byte) byte { return toLower(b) }

// Upper maps b through the ASCII toupper table. Bytes outside 'a'-'z' are
// returned unchanged.
func Upper(b byte) byte { return toUpper(b) }

// BuildRankTable derives a frequency table from a corpus sample for
// NewSearcherWithRanks. Letters are counted under their uppercase byte, and
// the most frequent byte ranks 255.
func BuildRankTable(corpus string) [256]byte {
	var counts [256]int
	for i := 0; i < len(corpus); i++ {
		counts[toUpper(corpus[i])]++
	}

	maxCount := 1
	for _, c := range counts {
		maxCount = max(maxCount, c)
	}

	var ranks [256]byte
	for i, c := range counts {
		ranks[i] = byte(c * 255 / maxCount)
	}
	return ranks
}

// foldRanks widens ranks into a caseFoldRank-style table.
func foldRanks(ranks []byte) *[256]uint16 {
	var folded [256]uint16
	for i, r := range ranks[:256] {
		folded[i] = uint16(r)
	}
	for b := byte('A'); b <= 'Z'; b++ {
		sum := uint16(ranks[b]) + uint16(ranks[b+0x20])
		folded[b] = sum
		folded[b+0x20] = sum
	}
	return &folded
}
