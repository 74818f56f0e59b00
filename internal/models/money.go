package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Money is a non-negative monetary amount. Legacy documents store amounts
// as doubles, ints, decimals or numeric strings depending on which writer
// produced them, so decoding normalizes all of those here instead of at
// every consumption site. Invalid, NaN or negative inputs become 0.
type Money float64

func (m Money) Float64() float64 {
	return float64(m)
}

func normalizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func parseAmountString(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return normalizeAmount(v)
}

// UnmarshalBSONValue accepts double, int32, int64, decimal128, string and
// null values so that mixed legacy documents decode without failing the
// entire request.
func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*m = 0
		return nil
	case bsontype.Double:
		var v float64
		if err := bson.UnmarshalValue(t, data, &v); err != nil {
			return err
		}
		*m = Money(normalizeAmount(v))
		return nil
	case bsontype.Int32:
		var v int32
		if err := bson.UnmarshalValue(t, data, &v); err != nil {
			return err
		}
		*m = Money(normalizeAmount(float64(v)))
		return nil
	case bsontype.Int64:
		var v int64
		if err := bson.UnmarshalValue(t, data, &v); err != nil {
			return err
		}
		*m = Money(normalizeAmount(float64(v)))
		return nil
	case bsontype.Decimal128:
		var v primitive.Decimal128
		if err := bson.UnmarshalValue(t, data, &v); err != nil {
			return err
		}
		*m = Money(parseAmountString(v.String()))
		return nil
	case bsontype.String:
		var v string
		if err := bson.UnmarshalValue(t, data, &v); err != nil {
			return err
		}
		*m = Money(parseAmountString(v))
		return nil
	default:
		*m = 0
		return nil
	}
}

// MarshalBSONValue always writes a double, keeping new writes consistent
// even when the decoded document carried a string amount.
func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(m))
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (m *Money) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*m = 0
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*m = 0
			return nil
		}
		*m = Money(parseAmountString(s))
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*m = 0
		return nil
	}
	*m = Money(normalizeAmount(v))
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}
