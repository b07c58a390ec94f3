package batch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BatchHeader commits to a dispersed batch.
type BatchHeader struct {
	// BatchRoot is an opaque commitment to the batch.
	BatchRoot ByteList `json:"batch_root"`
	// DataRoot identifies the batch's segments on storage nodes.
	DataRoot common.Hash `json:"data_root"`
}

// BlobDisperseInfo declares the geometry of one blob within a batch.
type BlobDisperseInfo struct {
	BlobLength uint64 `json:"blob_length"`
	Rows       uint32 `json:"rows"`
	Cols       uint32 `json:"cols"`
}

// KVBatchInfo is the description of one batch as published to the KV layer.
// The order of BlobDisperseInfos is significant: it is the sole input of
// AllocateRows.
type KVBatchInfo struct {
	BatchHeader       BatchHeader        `json:"batch_header"`
	BlobDisperseInfos []BlobDisperseInfo `json:"blob_disperse_infos"`
}

// Decode parses a KVBatchInfo from its published JSON form.
func Decode(raw []byte) (*KVBatchInfo, error) {
	info := new(KVBatchInfo)
	if err := json.Unmarshal(raw, info); err != nil {
		return nil, fmt.Errorf("batch: decoding batch info: %w", err)
	}
	return info, nil
}

// Encode serializes the KVBatchInfo into its published JSON form.
func (b *KVBatchInfo) Encode() ([]byte, error) {
	return json.Marshal(b)
}

// Blob returns the geometry of the blob at the given index.
func (b *KVBatchInfo) Blob(idx uint32) (BlobDisperseInfo, bool) {
	if int(idx) >= len(b.BlobDisperseInfos) {
		return BlobDisperseInfo{}, false
	}
	return b.BlobDisperseInfos[idx], true
}

// ByteList is a byte slice encoded in JSON as an array of numbers, the way
// publishers of batch info serialize raw byte vectors. Hex strings are
// accepted on decode as well.
type ByteList []byte

func (bl ByteList) MarshalJSON() ([]byte, error) {
	ints := make([]uint16, len(bl))
	for i, b := range bl {
		ints[i] = uint16(b)
	}
	return json.Marshal(ints)
}

func (bl *ByteList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*bl = nil
		return nil
	case strings.HasPrefix(trimmed, `"`):
		var hex hexutil.Bytes
		if err := json.Unmarshal(data, &hex); err != nil {
			return err
		}
		*bl = ByteList(hex)
		return nil
	}

	var ints []uint16
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v > 0xff {
			return fmt.Errorf("batch: byte value %d out of range", v)
		}
		out[i] = byte(v)
	}
	*bl = out
	return nil
}
