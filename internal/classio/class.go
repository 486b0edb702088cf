// Package classio is the JSON wire-format boundary around the
// property-synthesis core: decoding a class description document into
// internal/properties.Class, and encoding a synthesized
// internal/properties.ClassProperties back out for the CLI and for the
// hint/query tooling built on top of it.
package classio

import (
	"bytes"
	"encoding/json"
	"fmt"

	cxerrors "github.com/cxxprops/cxxprops/internal/errors"
	"github.com/cxxprops/cxxprops/internal/properties"
	"github.com/cxxprops/cxxprops/internal/typetraits"
)

// TypeDoc is the wire representation of a typetraits.Code.
type TypeDoc struct {
	Base        string `json:"base"`
	Indirection string `json:"indirection,omitempty"`
	Const       bool   `json:"const,omitempty"`
	Static      bool   `json:"static,omitempty"`
}

// ArgDoc is the wire representation of one Function argument.
type ArgDoc struct {
	Type         TypeDoc `json:"type"`
	ClassName    string  `json:"className,omitempty"`
	ElementCount int     `json:"elementCount,omitempty"`
}

// FunctionDoc is the wire representation of one Function.
type FunctionDoc struct {
	Name            string  `json:"name"`
	ReturnType      TypeDoc `json:"returnType"`
	ReturnClassName string  `json:"returnClassName,omitempty"`
	Args            []ArgDoc `json:"args,omitempty"`
	HasHint         bool    `json:"hasHint,omitempty"`
	HintSize        int     `json:"hintSize,omitempty"`
	IsOperator      bool    `json:"isOperator,omitempty"`
	IsLegacy        bool    `json:"isLegacy,omitempty"`
	IsPublic        bool    `json:"isPublic,omitempty"`
	IsProtected     bool    `json:"isProtected,omitempty"`
	ArrayFailure    bool    `json:"arrayFailure,omitempty"`
	Comment         string  `json:"comment,omitempty"`
}

// ClassDoc is the wire representation of a Class: a name plus its member
// functions, exactly as an upstream C++ header parser would emit it.
type ClassDoc struct {
	Name      string        `json:"name"`
	Functions []FunctionDoc `json:"functions"`
}

var baseTypeNames = map[string]typetraits.BaseType{
	"void": typetraits.Void, "int": typetraits.Int, "idtype": typetraits.IdType,
	"float": typetraits.Float, "double": typetraits.Double, "char": typetraits.Char,
	"unsignedint": typetraits.UnsignedInt, "unsignedchar": typetraits.UnsignedChar,
	"bool": typetraits.Bool, "object": typetraits.Object,
}

var indirectionNames = map[string]typetraits.Indirection{
	"":                  typetraits.None,
	"none":              typetraits.None,
	"ref":               typetraits.Ref,
	"pointer":           typetraits.Pointer,
	"constpointer":      typetraits.ConstPointer,
	"pointerpointer":    typetraits.PointerPointer,
	"pointerref":        typetraits.PointerRef,
	"constpointerref":   typetraits.ConstPointerRef,
}

var indirectionStrings = map[typetraits.Indirection]string{
	typetraits.None:            "none",
	typetraits.Ref:              "ref",
	typetraits.Pointer:          "pointer",
	typetraits.ConstPointer:     "constpointer",
	typetraits.PointerPointer:   "pointerpointer",
	typetraits.PointerRef:       "pointerref",
	typetraits.ConstPointerRef:  "constpointerref",
}

func decodeType(doc TypeDoc) (typetraits.Code, error) {
	base, ok := baseTypeNames[doc.Base]
	if !ok {
		return typetraits.Code{}, fmt.Errorf("unknown base type %q", doc.Base)
	}
	indirection, ok := indirectionNames[doc.Indirection]
	if !ok {
		return typetraits.Code{}, fmt.Errorf("unknown indirection %q", doc.Indirection)
	}
	var q typetraits.Qualifier
	if doc.Const {
		q |= typetraits.QualifierConst
	}
	if doc.Static {
		q |= typetraits.QualifierStatic
	}
	return typetraits.Code{Base: base, Indirection: indirection, Qualifiers: q}, nil
}

func encodeType(code typetraits.Code) TypeDoc {
	return TypeDoc{
		Base:        code.Base.String(),
		Indirection: indirectionStrings[code.Indirection],
		Const:       typetraits.IsConst(code),
		Static:      typetraits.IsStatic(code),
	}
}

// DecodeClass parses a class description document. On malformed JSON it
// returns a single positioned ClassDescriptionError built from the
// json.SyntaxError's byte offset; on a structurally valid document with an
// unrecognized type/indirection name it returns one error per offending
// function.
func DecodeClass(data []byte, filename string) (*properties.Class, []*cxerrors.ClassDescriptionError) {
	var doc ClassDoc
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		pos := cxerrors.Position{Line: 1, Column: 1}
		if syn, ok := err.(*json.SyntaxError); ok {
			// Offset counts the bytes read, including the offending one.
			pos = cxerrors.PositionFromOffset(string(data), syn.Offset-1)
		}
		return nil, []*cxerrors.ClassDescriptionError{
			cxerrors.NewClassDescriptionError(pos, err.Error(), string(data), filename),
		}
	}

	class := &properties.Class{Name: doc.Name}
	var errs []*cxerrors.ClassDescriptionError

	for _, fd := range doc.Functions {
		fn, err := decodeFunction(fd)
		if err != nil {
			errs = append(errs, cxerrors.NewClassDescriptionError(
				cxerrors.Position{Line: 1, Column: 1},
				fmt.Sprintf("function %q: %s", fd.Name, err),
				string(data), filename))
			continue
		}
		class.Functions = append(class.Functions, fn)
	}

	if len(errs) > 0 {
		return class, errs
	}
	return class, nil
}

func decodeFunction(fd FunctionDoc) (properties.Function, error) {
	returnType, err := decodeType(fd.ReturnType)
	if err != nil {
		return properties.Function{}, fmt.Errorf("return type: %w", err)
	}

	args := make([]properties.Arg, len(fd.Args))
	for i, ad := range fd.Args {
		argType, err := decodeType(ad.Type)
		if err != nil {
			return properties.Function{}, fmt.Errorf("arg %d: %w", i, err)
		}
		args[i] = properties.Arg{
			Type:         argType,
			ClassName:    ad.ClassName,
			ElementCount: ad.ElementCount,
		}
	}

	return properties.Function{
		Name:            fd.Name,
		ReturnType:      returnType,
		ReturnClassName: fd.ReturnClassName,
		Args:            args,
		HasHint:         fd.HasHint,
		HintSize:        fd.HintSize,
		IsOperator:      fd.IsOperator,
		IsLegacy:        fd.IsLegacy,
		IsPublic:        fd.IsPublic,
		IsProtected:     fd.IsProtected,
		ArrayFailure:    fd.ArrayFailure,
		Comment:         fd.Comment,
	}, nil
}

// EncodeClass serializes class back to its wire form, round-tripping
// exactly what DecodeClass would accept.
func EncodeClass(class *properties.Class) ClassDoc {
	doc := ClassDoc{Name: class.Name}
	for _, fn := range class.Functions {
		fd := FunctionDoc{
			Name:            fn.Name,
			ReturnType:      encodeType(fn.ReturnType),
			ReturnClassName: fn.ReturnClassName,
			HasHint:         fn.HasHint,
			HintSize:        fn.HintSize,
			IsOperator:      fn.IsOperator,
			IsLegacy:        fn.IsLegacy,
			IsPublic:        fn.IsPublic,
			IsProtected:     fn.IsProtected,
			ArrayFailure:    fn.ArrayFailure,
			Comment:         fn.Comment,
		}
		for _, a := range fn.Args {
			fd.Args = append(fd.Args, ArgDoc{
				Type:         encodeType(a.Type),
				ClassName:    a.ClassName,
				ElementCount: a.ElementCount,
			})
		}
		doc.Functions = append(doc.Functions, fd)
	}
	return doc
}

// PropertyDoc is the wire representation of a synthesized Property.
type PropertyDoc struct {
	Name              string   `json:"name"`
	Type              TypeDoc  `json:"type"`
	Count             int      `json:"count,omitempty"`
	ClassName         string   `json:"className,omitempty"`
	IsStatic          bool     `json:"isStatic,omitempty"`
	PublicMethods     []string `json:"publicMethods,omitempty"`
	ProtectedMethods  []string `json:"protectedMethods,omitempty"`
	PrivateMethods    []string `json:"privateMethods,omitempty"`
	LegacyMethods     []string `json:"legacyMethods,omitempty"`
	EnumConstantNames []string `json:"enumConstantNames,omitempty"`
	Comment           string   `json:"comment,omitempty"`
}

// ClassPropertiesDoc is the wire representation of a synthesis result.
type ClassPropertiesDoc struct {
	ClassName      string        `json:"className"`
	Properties     []PropertyDoc `json:"properties"`
	MethodRole     []string      `json:"methodRole"`
	MethodProperty []int         `json:"methodProperty"`
}

func roleNamesFromBitfield(bits uint32) []string {
	var names []string
	for r := properties.Role(1); properties.RoleName(r) != ""; r++ {
		if bits&r.Bit() != 0 {
			names = append(names, properties.RoleName(r))
		}
	}
	return names
}

// EncodeClassProperties serializes a synthesis result to its wire form.
func EncodeClassProperties(className string, cp *properties.ClassProperties) ClassPropertiesDoc {
	doc := ClassPropertiesDoc{
		ClassName:      className,
		MethodProperty: cp.MethodProperty,
	}
	for _, r := range cp.MethodRole {
		doc.MethodRole = append(doc.MethodRole, properties.RoleName(r))
	}
	for _, p := range cp.Properties {
		doc.Properties = append(doc.Properties, PropertyDoc{
			Name:              p.Name,
			Type:              encodeType(p.Type),
			Count:             p.Count,
			ClassName:         p.ClassName,
			IsStatic:          p.IsStatic,
			PublicMethods:     roleNamesFromBitfield(p.PublicMethods),
			ProtectedMethods:  roleNamesFromBitfield(p.ProtectedMethods),
			PrivateMethods:    roleNamesFromBitfield(p.PrivateMethods),
			LegacyMethods:     roleNamesFromBitfield(p.LegacyMethods),
			EnumConstantNames: p.EnumConstantNames,
			Comment:           p.Comment,
		})
	}
	return doc
}

// MarshalIndent is a small convenience wrapper kept next to the doc types
// it serializes, keeping wire-format concerns self-contained within the
// owning file.
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
