package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// AddonSelection is one addon chosen on an order item. Older writers only
// stored the addon id, newer ones embed a title under one of three keys.
type AddonSelection struct {
	AddonID    string `bson:"addonId,omitempty" json:"addonId,omitempty"`
	AddonTitle string `bson:"addonTitle,omitempty" json:"addonTitle,omitempty"`
	Title      string `bson:"title,omitempty" json:"title,omitempty"`
	Name       string `bson:"name,omitempty" json:"name,omitempty"`
	Price      Money  `bson:"price,omitempty" json:"price,omitempty"`
	Quantity   int    `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// AddonList decodes the three addon payload shapes found in stored orders:
// an array of selections, a single selection object, or a JSON-encoded
// string holding either. Everything normalizes to a plain slice.
type AddonList []AddonSelection

// ParseAddonPayload normalizes a raw JSON addon payload into a selection
// slice. Malformed payloads return an error; callers that need the legacy
// lenient behavior degrade to an empty list.
func ParseAddonPayload(data []byte) ([]AddonSelection, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return []AddonSelection{}, nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return nil, fmt.Errorf("addon payload: %w", err)
		}
		return ParseAddonPayload([]byte(inner))
	}

	if strings.HasPrefix(trimmed, "{") {
		var single AddonSelection
		if err := json.Unmarshal([]byte(trimmed), &single); err != nil {
			return nil, fmt.Errorf("addon payload: %w", err)
		}
		return []AddonSelection{single}, nil
	}

	var list []AddonSelection
	if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
		return nil, fmt.Errorf("addon payload: %w", err)
	}
	if list == nil {
		list = []AddonSelection{}
	}
	return list, nil
}

// UnmarshalJSON keeps the legacy contract: a payload that cannot be parsed
// yields an empty list instead of failing the surrounding decode.
func (a *AddonList) UnmarshalJSON(data []byte) error {
	list, err := ParseAddonPayload(data)
	if err != nil {
		*a = AddonList{}
		return nil
	}
	*a = AddonList(list)
	return nil
}

func (a AddonList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]AddonSelection(a))
}

// UnmarshalBSONValue accepts array, embedded document, string and null
// values, mirroring the JSON shapes for documents written by the legacy
// data layer.
func (a *AddonList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*a = AddonList{}
		return nil
	case bsontype.Array:
		var list []AddonSelection
		if err := bson.UnmarshalValue(t, data, &list); err != nil {
			*a = AddonList{}
			return nil
		}
		if list == nil {
			list = []AddonSelection{}
		}
		*a = AddonList(list)
		return nil
	case bsontype.EmbeddedDocument:
		var single AddonSelection
		if err := bson.UnmarshalValue(t, data, &single); err != nil {
			*a = AddonList{}
			return nil
		}
		*a = AddonList{single}
		return nil
	case bsontype.String:
		var raw string
		if err := bson.UnmarshalValue(t, data, &raw); err != nil {
			*a = AddonList{}
			return nil
		}
		list, err := ParseAddonPayload([]byte(raw))
		if err != nil {
			*a = AddonList{}
			return nil
		}
		*a = AddonList(list)
		return nil
	default:
		*a = AddonList{}
		return nil
	}
}

// MarshalBSONValue always stores the list as an array.
func (a AddonList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue([]AddonSelection(a))
}
