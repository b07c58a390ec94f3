package light

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

var _ encoding.Codec = codec{}

// codec encodes the Light service messages in the protobuf wire format.
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(message)
	if !ok {
		return nil, fmt.Errorf("light: unsupported message type %T", v)
	}
	return msg.marshal(), nil
}

func (codec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(message)
	if !ok {
		return fmt.Errorf("light: unsupported message type %T", v)
	}
	return msg.unmarshal(data)
}

func (codec) Name() string {
	return "proto"
}
