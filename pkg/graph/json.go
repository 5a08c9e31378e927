package graph

import (
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"
)

// unmarshalJSON unmarshals data into v. If data is not valid JSON, it is
// passed through jsonrepair and decoded once more.
func unmarshalJSON(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*json.SyntaxError); ok {
		fixed, rerr := jsonrepair.JSONRepair(string(data))
		if rerr != nil {
			return err
		}
		return json.Unmarshal([]byte(fixed), v)
	}
	return err
}
