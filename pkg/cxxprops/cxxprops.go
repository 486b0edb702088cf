// Package cxxprops is the public, embeddable surface over the property
// synthesis engine: given a parsed class description, it infers the
// logical properties implied by that class's method signatures.
//
// The cxxprops command line tool is a thin wrapper over this package.
package cxxprops

import (
	"github.com/cxxprops/cxxprops/internal/classio"
	cxerrors "github.com/cxxprops/cxxprops/internal/errors"
	"github.com/cxxprops/cxxprops/internal/properties"
)

// Engine synthesizes property models from class descriptions. The zero
// value is ready to use.
type Engine struct{}

// New returns a ready-to-use Engine.
func New() *Engine {
	return &Engine{}
}

// ParseError reports one structured decoding failure, positioned by
// line/column in the source document.
type ParseError = cxerrors.ClassDescriptionError

// Class is a parsed C++ class description: a name plus the signatures of
// its member functions.
type Class = properties.Class

// Property is one synthesized logical property of a class.
type Property = properties.Property

// ClassProperties is the full synthesis result for one class: its
// properties plus a role/property lookup per source method.
type ClassProperties = properties.ClassProperties

// ParseClass decodes a class description document. filename is used only
// to annotate error positions.
func (e *Engine) ParseClass(data []byte, filename string) (*Class, []*ParseError) {
	return classio.DecodeClass(data, filename)
}

// Synthesize infers the property model of class.
func (e *Engine) Synthesize(class *Class) *ClassProperties {
	return properties.BuildProperties(class)
}

// Hint patches an externally attached element-count hint into a raw class
// document, before it is parsed. argIndex of -1 hints the return value.
func (e *Engine) Hint(doc []byte, function string, argIndex, count int) ([]byte, error) {
	return classio.PatchHint(doc, function, argIndex, count)
}

// MarshalClassProperties renders a synthesis result as indented JSON.
func (e *Engine) MarshalClassProperties(className string, result *ClassProperties) ([]byte, error) {
	doc := classio.EncodeClassProperties(className, result)
	return classio.MarshalIndent(doc)
}

// RoleNames returns every canonical role token a method can be classified
// into, in role-enum order.
func RoleNames() []string {
	return classio.AllRoleNames()
}
