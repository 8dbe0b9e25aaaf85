package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa com indentação de dois espaços
func PrettyJSON(in any) ([]byte, error) {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, err
		}
		in = decoded
	}
	return json.MarshalIndent(in, "", "  ")
}
