package classio_test

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/cxxprops/cxxprops/internal/classio"
)

const hintFixture = `{
  "name": "Rectangle",
  "functions": [
    {
      "name": "GetPoint",
      "returnType": { "base": "double", "const": true },
      "args": [{ "type": { "base": "int" } }]
    },
    {
      "name": "GetName",
      "returnType": { "base": "char", "indirection": "constpointer" }
    }
  ]
}`

// TestPatchHintArgument exercises the argIndex >= 0 path, which must land
// hasHint/hintSize on the function itself (the only field DecodeClass
// actually reads), not on a per-arg sub-object no decoder looks at.
func TestPatchHintArgument(t *testing.T) {
	out, err := classio.PatchHint([]byte(hintFixture), "GetPoint", 0, 3)
	if err != nil {
		t.Fatalf("PatchHint: %v", err)
	}

	fn := gjson.GetBytes(out, `functions.#(name=="GetPoint")`)
	if !fn.Get("hasHint").Bool() {
		t.Errorf("expected hasHint=true on the function, got %s", fn.Raw)
	}
	if fn.Get("hintSize").Int() != 3 {
		t.Errorf("expected hintSize=3 on the function, got %s", fn.Raw)
	}

	class, errs := classio.DecodeClass(out, "hint_test.json")
	if len(errs) > 0 {
		t.Fatalf("decode errors after patch: %v", errs)
	}
	var found bool
	for _, f := range class.Functions {
		if f.Name == "GetPoint" {
			found = true
			if !f.HasHint || f.HintSize != 3 {
				t.Errorf("decoded GetPoint did not carry the patched hint: %+v", f)
			}
		}
	}
	if !found {
		t.Fatal("GetPoint missing from decoded class")
	}
}

// TestPatchHintReturnValue exercises the argIndex == -1 path.
func TestPatchHintReturnValue(t *testing.T) {
	out, err := classio.PatchHint([]byte(hintFixture), "GetName", -1, 64)
	if err != nil {
		t.Fatalf("PatchHint: %v", err)
	}

	class, errs := classio.DecodeClass(out, "hint_test.json")
	if len(errs) > 0 {
		t.Fatalf("decode errors after patch: %v", errs)
	}
	for _, f := range class.Functions {
		if f.Name == "GetName" && (!f.HasHint || f.HintSize != 64) {
			t.Errorf("decoded GetName did not carry the patched hint: %+v", f)
		}
	}
}

// TestPatchHintUnknownFunction errors rather than silently patching nothing.
func TestPatchHintUnknownFunction(t *testing.T) {
	if _, err := classio.PatchHint([]byte(hintFixture), "NoSuchMethod", -1, 1); err == nil {
		t.Fatal("expected an error for an unknown function name")
	}
}

// TestPatchHintArgumentOutOfRange errors when argIndex names a non-existent
// argument rather than silently patching the function anyway.
func TestPatchHintArgumentOutOfRange(t *testing.T) {
	if _, err := classio.PatchHint([]byte(hintFixture), "GetPoint", 5, 1); err == nil {
		t.Fatal("expected an error for an out-of-range argIndex")
	}
}
