package classio

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// PatchHint attaches an external element-count hint to one function in a
// raw class document, without decoding and re-encoding the whole document
// through ClassDoc. This mirrors how an out-of-process hinting pass would
// annotate a parser's output before it ever reaches buildProperties.
// hasHint/hintSize are function-level fields, so the hint always lands on
// the function itself regardless of which argument it describes;
// argIndex only needs to name a real argument of the function when it is
// not -1 (the function's return value).
func PatchHint(doc []byte, functionName string, argIndex, count int) ([]byte, error) {
	idx, argCount, err := functionLookup(doc, functionName)
	if err != nil {
		return nil, err
	}
	if argIndex != -1 && (argIndex < 0 || argIndex >= argCount) {
		return nil, fmt.Errorf("function %q has no argument %d (argCount=%d)", functionName, argIndex, argCount)
	}

	path := fmt.Sprintf("functions.%d", idx)
	out, err := sjson.SetBytes(doc, path+".hasHint", true)
	if err != nil {
		return nil, fmt.Errorf("setting hasHint: %w", err)
	}
	out, err = sjson.SetBytes(out, path+".hintSize", count)
	if err != nil {
		return nil, fmt.Errorf("setting hintSize: %w", err)
	}
	return out, nil
}
