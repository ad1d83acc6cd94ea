package rmq

import (
	"fmt"
	"io"
	"strings"

	"github.com/ugorji/go/codec"
)

// Format is the encoding of an input array.
type Format int

const (
	// FormatJSON is a JSON array of numbers.
	FormatJSON Format = iota
	// FormatMsgpack is a msgpack array of numbers.
	FormatMsgpack
	// FormatCBOR is a CBOR array of numbers.
	FormatCBOR
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	case FormatCBOR:
		return "cbor"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) handle() (codec.Handle, error) {
	switch f {
	case FormatJSON:
		return &codec.JsonHandle{}, nil
	case FormatMsgpack:
		return &codec.MsgpackHandle{}, nil
	case FormatCBOR:
		return &codec.CborHandle{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// DecodeValues reads one encoded array of numbers from r.
// Only the input values are encoded; the index itself is always rebuilt.
func DecodeValues[T Number](r io.Reader, f Format) ([]T, error) {
	h, err := f.handle()
	if err != nil {
		return nil, err
	}
	var vals []T
	if err := codec.NewDecoder(r, h).Decode(&vals); err != nil {
		return nil, fmt.Errorf("decode %s values: %w", f, err)
	}
	return vals, nil
}

// EncodeValues writes vals to w as one array.
func EncodeValues[T Number](w io.Writer, f Format, vals []T) error {
	h, err := f.handle()
	if err != nil {
		return err
	}
	if err := codec.NewEncoder(w, h).Encode(vals); err != nil {
		return fmt.Errorf("encode %s values: %w", f, err)
	}
	return nil
}
