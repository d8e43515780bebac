package format

type (
	QueueType       uint8
	CompressionType uint8
	Representation  uint8
)

const (
	QueueHeap QueueType = 0x1 // QueueHeap builds trees with a binary min-heap.
	QueueList QueueType = 0x2 // QueueList builds trees with the ordered linked list.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	Packed Representation = 0x1 // Packed stores data bits eight per byte, MSB first.
	Text   Representation = 0x2 // Text stores one ASCII '0' or '1' per data bit.
)

func (q QueueType) String() string {
	switch q {
	case QueueHeap:
		return "Heap"
	case QueueList:
		return "List"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (r Representation) String() string {
	switch r {
	case Packed:
		return "Packed"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive name to a CompressionType.
// It reports false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none", "None", "NONE", "":
		return CompressionNone, true
	case "zstd", "Zstd", "ZSTD":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
