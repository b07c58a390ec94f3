package batch

const (
	// EntrySize is the size of a single flow entry, the unit storage nodes hash.
	EntrySize = 256
	// EntriesPerSegment is the number of entries in a full segment.
	EntriesPerSegment = 1024
	// SegmentSize is the capacity of a segment in bytes.
	SegmentSize = EntrySize * EntriesPerSegment
	// CoeffSize is the size of one serialized field element.
	CoeffSize = 32
	// CommitmentSize is the size of a compressed G1 commitment.
	CommitmentSize = 48
)

// BlobLocation holds where every row chunk of a blob lives. Row r is stored in
// segment SegmentIndexes[r] at byte offset Offsets[r].
type BlobLocation struct {
	SegmentIndexes []uint32
	Offsets        []uint32
}

// Rows reports the amount of rows the location covers.
func (bl BlobLocation) Rows() int {
	return len(bl.SegmentIndexes)
}

// ChunkSize returns the size of a single row chunk of a blob with the given
// amount of columns: the row's coefficients followed by the row commitment.
func ChunkSize(cols uint32) uint64 {
	return uint64(cols)*CoeffSize + CommitmentSize
}

// AllocateRows computes the location of every row of every blob in the batch.
//
// Segments are packed round-robin: each segment is filled by visiting blobs
// i, i+1, ..., n-1, i, i+1, ... where i is the lowest blob with rows left,
// placing the next row of each visited blob. The first chunk that does not fit
// closes the segment, even if a later blob's chunk would still fit. A chunk
// that can never fit into an empty segment is never placed, leaving its blob's
// location short.
func AllocateRows(infos []BlobDisperseInfo) []BlobLocation {
	n := len(infos)
	locations := make([]BlobLocation, n)
	for j, info := range infos {
		if ChunkSize(info.Cols) <= SegmentSize {
			locations[j] = BlobLocation{
				SegmentIndexes: make([]uint32, 0, info.Rows),
				Offsets:        make([]uint32, 0, info.Rows),
			}
		}
	}

	allocated := make([]uint32, n)
	for j, info := range infos {
		if ChunkSize(info.Cols) > SegmentSize {
			allocated[j] = info.Rows
		}
	}

	var segment uint32
	for i := 0; i < n; {
		var offset uint64
		for j := i; i < n; {
			if allocated[j] == infos[j].Rows {
				if j == i {
					i++
				}
			} else {
				l := ChunkSize(infos[j].Cols)
				if offset+l > SegmentSize {
					break
				}
				locations[j].SegmentIndexes = append(locations[j].SegmentIndexes, segment)
				locations[j].Offsets = append(locations[j].Offsets, uint32(offset))
				allocated[j]++
				offset += l
			}

			j++
			if j >= n {
				j = i
			}
		}

		if offset > 0 {
			segment++
		}
	}
	return locations
}
