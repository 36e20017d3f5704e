package cadence

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v4"
	"go.uber.org/cadence/encoded"
)

// msgpackConverter carries workflow and activity payloads as a single
// msgpack stream, arguments encoded back to back in call order.
type msgpackConverter struct{}

// NewMsgPackDataConverter returns the DataConverter shared by the
// demand alert worker and the clients that signal it. Both sides must
// use it, otherwise the default JSON converter garbles the payloads.
func NewMsgPackDataConverter() encoded.DataConverter {
	return msgpackConverter{}
}

func (msgpackConverter) ToData(values ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for i, v := range values {
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode argument %d (%s): %v", i, reflect.TypeOf(v), err)
		}
	}
	return buf.Bytes(), nil
}

func (msgpackConverter) FromData(data []byte, targets ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	for i, t := range targets {
		if err := dec.Decode(t); err != nil {
			return fmt.Errorf("decode argument %d (%s): %v", i, reflect.TypeOf(t), err)
		}
	}
	return nil
}
