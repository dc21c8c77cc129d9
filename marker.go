package packstream

// Marker byte constants. These are the single source of truth for both the
// encoder (which emits them) and the decoder (which dispatches on them via
// markerTable below); every width-selection rule in the encoder and every
// dispatch branch in the decoder is expressed in terms of these names so the
// two halves of the codec cannot drift apart.
const (
	markerTinyIntMin = 0x00
	markerTinyIntMax = 0x7F

	markerTinyStringMin = 0x80
	markerTinyStringMax = 0x8F
	markerTinyListMin   = 0x90
	markerTinyListMax   = 0x9F
	markerTinyMapMin    = 0xA0
	markerTinyMapMax    = 0xAF
	markerTinyStructMin = 0xB0
	markerTinyStructMax = 0xBF

	markerNull    byte = 0xC0
	markerFloat64 byte = 0xC1
	markerFalse   byte = 0xC2
	markerTrue    byte = 0xC3

	markerInt8  byte = 0xC8
	markerInt16 byte = 0xC9
	markerInt32 byte = 0xCA
	markerInt64 byte = 0xCB

	markerString8  byte = 0xD0
	markerString16 byte = 0xD1
	markerString32 byte = 0xD2

	markerList8  byte = 0xD4
	markerList16 byte = 0xD5
	markerList32 byte = 0xD6

	markerMap8  byte = 0xD8
	markerMap16 byte = 0xD9
	markerMap32 byte = 0xDA

	markerStruct8  byte = 0xDC
	markerStruct16 byte = 0xDD

	markerTinyNegMin = 0xF0
	markerTinyNegMax = 0xFF
)

// markerKind is the dispatch tag a marker byte resolves to.
type markerKind uint8

const (
	kindReserved markerKind = iota
	kindInt
	kindString
	kindList
	kindMap
	kindStructure
	kindNull
	kindBool
	kindFloat
)

// markerEntry describes everything the decoder needs to know about a marker
// byte without re-deriving it from raw range comparisons every time.
type markerEntry struct {
	kind markerKind

	// For kindInt: intWidth==0 means the value is `tinyValue` itself (no further
	// bytes to read). Otherwise intWidth is in {1, 2, 4, 8}, the number of
	// trailing signed big-endian bytes holding the value.
	tinyValue int8
	intWidth  uint8

	// For kindString/kindList/kindMap/kindStructure: lenPrefixWidth==0 means the
	// element/byte count is `tinyValue` (0..15) itself. Otherwise
	// lenPrefixWidth is in {1, 2, 4} (string/list/map) or {1, 2} (structure),
	// the number of trailing unsigned big-endian bytes holding the count.
	lenPrefixWidth uint8

	boolValue bool // valid only when kind == kindBool
}

// markerTable maps every possible marker byte (0x00-0xFF) to its dispatch
// entry. Bytes not explicitly assigned below default to kindReserved, which is
// exactly the reserved/illegal-on-decode set from the wire format (0xC4-0xC7,
// 0xCC-0xCF, 0xD3, 0xD7, 0xDB, 0xDE, 0xDF, 0xE0-0xEF).
var markerTable [256]markerEntry

func init() {
	for i := markerTinyIntMin; i <= markerTinyIntMax; i++ {
		markerTable[i] = markerEntry{kind: kindInt, tinyValue: int8(i)}
	}
	for i := markerTinyStringMin; i <= markerTinyStringMax; i++ {
		markerTable[i] = markerEntry{kind: kindString, tinyValue: int8(i - markerTinyStringMin)}
	}
	for i := markerTinyListMin; i <= markerTinyListMax; i++ {
		markerTable[i] = markerEntry{kind: kindList, tinyValue: int8(i - markerTinyListMin)}
	}
	for i := markerTinyMapMin; i <= markerTinyMapMax; i++ {
		markerTable[i] = markerEntry{kind: kindMap, tinyValue: int8(i - markerTinyMapMin)}
	}
	for i := markerTinyStructMin; i <= markerTinyStructMax; i++ {
		markerTable[i] = markerEntry{kind: kindStructure, tinyValue: int8(i - markerTinyStructMin)}
	}
	for i := markerTinyNegMin; i <= markerTinyNegMax; i++ {
		markerTable[i] = markerEntry{kind: kindInt, tinyValue: int8(i - 0x100)}
	}

	markerTable[markerNull] = markerEntry{kind: kindNull}
	markerTable[markerFloat64] = markerEntry{kind: kindFloat}
	markerTable[markerFalse] = markerEntry{kind: kindBool, boolValue: false}
	markerTable[markerTrue] = markerEntry{kind: kindBool, boolValue: true}

	markerTable[markerInt8] = markerEntry{kind: kindInt, intWidth: 1}
	markerTable[markerInt16] = markerEntry{kind: kindInt, intWidth: 2}
	markerTable[markerInt32] = markerEntry{kind: kindInt, intWidth: 4}
	markerTable[markerInt64] = markerEntry{kind: kindInt, intWidth: 8}

	markerTable[markerString8] = markerEntry{kind: kindString, lenPrefixWidth: 1}
	markerTable[markerString16] = markerEntry{kind: kindString, lenPrefixWidth: 2}
	markerTable[markerString32] = markerEntry{kind: kindString, lenPrefixWidth: 4}

	markerTable[markerList8] = markerEntry{kind: kindList, lenPrefixWidth: 1}
	markerTable[markerList16] = markerEntry{kind: kindList, lenPrefixWidth: 2}
	markerTable[markerList32] = markerEntry{kind: kindList, lenPrefixWidth: 4}

	markerTable[markerMap8] = markerEntry{kind: kindMap, lenPrefixWidth: 1}
	markerTable[markerMap16] = markerEntry{kind: kindMap, lenPrefixWidth: 2}
	markerTable[markerMap32] = markerEntry{kind: kindMap, lenPrefixWidth: 4}

	markerTable[markerStruct8] = markerEntry{kind: kindStructure, lenPrefixWidth: 1}
	markerTable[markerStruct16] = markerEntry{kind: kindStructure, lenPrefixWidth: 2}
}
