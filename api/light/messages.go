package light

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// SampleRequest asks to sample times cells of one blob of a batch.
type SampleRequest struct {
	BatchHeaderHash []byte
	BlobIndex       uint32
	Times           uint32
}

// SampleReply carries the availability verdict.
type SampleReply struct {
	Success bool
}

// RetrieveRequest asks for the data of one blob of a batch.
type RetrieveRequest struct {
	BatchHeaderHash []byte
	BlobIndex       uint32
}

// RetrieveReply carries blob data.
type RetrieveReply struct {
	Data []byte
}

// message is implemented by every type exchanged by the Light service.
type message interface {
	marshal() []byte
	unmarshal([]byte) error
}

func (m *SampleRequest) marshal() []byte {
	var b []byte
	b = appendBytes(b, 1, m.BatchHeaderHash)
	b = appendVarint(b, 2, uint64(m.BlobIndex))
	b = appendVarint(b, 3, uint64(m.Times))
	return b
}

func (m *SampleRequest) unmarshal(b []byte) error {
	*m = SampleRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			m.BatchHeaderHash = append([]byte(nil), v...)
			return n, true
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.BlobIndex = uint32(v)
			return n, true
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Times = uint32(v)
			return n, true
		}
		return 0, false
	})
}

func (m *SampleReply) marshal() []byte {
	var b []byte
	if m.Success {
		b = appendVarint(b, 1, 1)
	}
	return b
}

func (m *SampleReply) unmarshal(b []byte) error {
	*m = SampleReply{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool) {
		if num == 1 && typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(b)
			m.Success = protowire.DecodeBool(v)
			return n, true
		}
		return 0, false
	})
}

func (m *RetrieveRequest) marshal() []byte {
	var b []byte
	b = appendBytes(b, 1, m.BatchHeaderHash)
	b = appendVarint(b, 2, uint64(m.BlobIndex))
	return b
}

func (m *RetrieveRequest) unmarshal(b []byte) error {
	*m = RetrieveRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			m.BatchHeaderHash = append([]byte(nil), v...)
			return n, true
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.BlobIndex = uint32(v)
			return n, true
		}
		return 0, false
	})
}

func (m *RetrieveReply) marshal() []byte {
	return appendBytes(nil, 1, m.Data)
}

func (m *RetrieveReply) unmarshal(b []byte) error {
	*m = RetrieveReply{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			m.Data = append([]byte(nil), v...)
			return n, true
		}
		return 0, false
	})
}

// zero values are omitted, as proto3 does
func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// consumeFields walks the fields of an encoded message. The field func
// returns the length it consumed and false for fields it does not know,
// which are skipped.
func consumeFields(
	b []byte,
	field func(protowire.Number, protowire.Type, []byte) (int, bool),
) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("light: decoding tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		n, ok := field(num, typ, b)
		if !ok {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("light: decoding field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}
