package fixedPoint

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	_ fmt.Stringer               = (*Fix256)(nil)
	_ sql.Scanner                = (*Fix256)(nil)
	_ driver.Valuer              = (*Fix256)(nil)
	_ encoding.TextMarshaler     = (*Fix256)(nil)
	_ encoding.TextUnmarshaler   = (*Fix256)(nil)
	_ encoding.BinaryMarshaler   = (*Fix256)(nil)
	_ encoding.BinaryUnmarshaler = (*Fix256)(nil)
	_ json.Marshaler             = (*Fix256)(nil)
	_ json.Unmarshaler           = (*Fix256)(nil)
)

// MarshalText implements the [encoding.TextMarshaler] interface.
func (a Fix256) MarshalText() ([]byte, error) {
	f := DefaultFormat()
	return a.Append(nil, &f), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (a *Fix256) UnmarshalText(data []byte) error {
	var err error
	*a, err = parseStrict(string(data))
	return err
}

// MarshalJSON implements the [json.Marshaler] interface. Values are
// encoded as quoted decimal strings: a 78-digit number is well outside
// what JSON readers preserve as a float.
func (a Fix256) MarshalJSON() ([]byte, error) {
	f := DefaultFormat()
	buf := make([]byte, 0, 48)
	buf = append(buf, '"')
	buf = a.Append(buf, &f)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface. Both quoted
// strings and bare JSON numbers are accepted.
func (a *Fix256) UnmarshalJSON(data []byte) error {
	// Remove quotes if they exist.
	if len(data) > 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}

	return a.UnmarshalText(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The format is the raw 256-bit two's-complement pattern as 32 big-endian
// bytes, most significant limb first.
func (a Fix256) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 32)
	binary.BigEndian.PutUint64(buf[0:], uint64(a.Hi.Hi))
	binary.BigEndian.PutUint64(buf[8:], uint64(a.Hi.Lo))
	binary.BigEndian.PutUint64(buf[16:], uint64(a.Lo.Hi))
	binary.BigEndian.PutUint64(buf[24:], uint64(a.Lo.Lo))
	return buf, nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
func (a *Fix256) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return ErrInvalidBinaryData
	}

	a.Hi.Hi = raw64(binary.BigEndian.Uint64(data[0:]))
	a.Hi.Lo = raw64(binary.BigEndian.Uint64(data[8:]))
	a.Lo.Hi = raw64(binary.BigEndian.Uint64(data[16:]))
	a.Lo.Lo = raw64(binary.BigEndian.Uint64(data[24:]))
	return nil
}

// Scan implements the [sql.Scanner] interface.
func (a *Fix256) Scan(src any) error {
	var err error
	switch v := src.(type) {
	case []byte:
		*a, err = parseStrict(string(v))
	case string:
		*a, err = parseStrict(v)
	case int64:
		*a = FromInt(v)
	case int:
		*a = FromInt(int64(v))
	case int32:
		*a = FromInt(int64(v))
	case float64:
		*a = FromFloat(v)
	case nil:
		err = fmt.Errorf("%w: can't scan nil to Fix256", ErrScanType)
	default:
		err = fmt.Errorf("%w: can't scan %T to Fix256", ErrScanType, src)
	}

	return err
}

// Value implements the [driver.Valuer] interface.
func (a Fix256) Value() (driver.Value, error) {
	return a.String(), nil
}

// NullFix256 is a nullable Fix256.
type NullFix256 struct {
	Fix256 Fix256
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
func (a *NullFix256) Scan(src any) error {
	if src == nil {
		a.Fix256, a.Valid = Fix256Zero, false
		return nil
	}

	err := a.Fix256.Scan(src)
	a.Valid = err == nil
	return err
}

// Value implements the [driver.Valuer] interface.
func (a NullFix256) Value() (driver.Value, error) {
	if !a.Valid {
		return nil, nil
	}

	return a.Fix256.String(), nil
}

// MarshalDynamoDBAttributeValue encodes the value as a DynamoDB number
// attribute. Note that DynamoDB numbers carry at most 38 digits of
// precision; values needing the full 39 fractional digits survive the
// attribute type itself but may be rounded by DynamoDB on storage. Use
// the string attribute from MarshalText when exactness matters end to
// end.
func (a Fix256) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: a.String()}, nil
}

// UnmarshalDynamoDBAttributeValue decodes a DynamoDB number, string, or
// binary attribute into the value.
func (a *Fix256) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		return a.UnmarshalText([]byte(v.Value))
	case *types.AttributeValueMemberS:
		return a.UnmarshalText([]byte(v.Value))
	case *types.AttributeValueMemberB:
		return a.UnmarshalBinary(v.Value)
	default:
		return fmt.Errorf("can't unmarshal %T to Fix256: %T is not supported", av, av)
	}
}
