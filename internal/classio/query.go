package classio

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// functionLookup finds the array index of the function named name within a
// raw class document, along with its argument count, without a full decode
// through ClassDoc.
func functionLookup(doc []byte, name string) (index, argCount int, err error) {
	result := gjson.GetBytes(doc, "functions")
	if !result.IsArray() {
		return 0, 0, fmt.Errorf("document has no functions array")
	}

	found := -1
	var count int
	result.ForEach(func(key, value gjson.Result) bool {
		if value.Get("name").String() == name {
			found = int(key.Int())
			count = len(value.Get("args").Array())
			return false
		}
		return true
	})
	if found == -1 {
		return 0, 0, fmt.Errorf("no function named %q", name)
	}
	return found, count, nil
}

// Query runs a gjson path against a synthesized ClassProperties (or a raw
// class) document and returns the matched value as raw text. The CLI's
// `query` subcommand is a thin pass-through over this, letting a caller
// pull out paths like `properties.#.name` or
// `properties.#(name=="Radius").publicMethods` without a schema-typed
// client.
func Query(doc []byte, path string) (string, error) {
	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return "", fmt.Errorf("path %q matched nothing", path)
	}
	return result.Raw, nil
}
