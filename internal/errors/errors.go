// Package errors provides error formatting utilities for the cxxprops CLI.
// It formats class-description decoding errors with source context,
// line/column information, and a caret pointing to the offending byte.
package errors

import (
	"fmt"
	"strings"
)

// Position identifies a line/column within a class description document.
type Position struct {
	Line   int
	Column int
}

// ClassDescriptionError represents a single failure to decode a class
// description document. It is ambient-stack plumbing around the
// property-synthesis core: the core itself (internal/properties) never
// returns an error, since every unrecognized method is dropped silently
// per the synthesis contract.
type ClassDescriptionError struct {
	Message string
	Source  string
	File    string
	Pos     Position
}

// NewClassDescriptionError creates a new class-description error.
func NewClassDescriptionError(pos Position, message, source, file string) *ClassDescriptionError {
	return &ClassDescriptionError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (e *ClassDescriptionError) Error() string {
	return e.Format(false)
}

// Format formats the error message with source context.
// If color is true, ANSI color codes are used for terminal output.
func (e *ClassDescriptionError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *ClassDescriptionError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}

// FormatErrors formats multiple class-description errors.
func FormatErrors(errs []*ClassDescriptionError, color bool) string {
	if len(errs) == 0 {
		return ""
	}

	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("failed with %d error(s):\n\n", len(errs)))

	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}

// PositionFromOffset converts a byte offset within source into a 1-indexed
// line/column pair, the way encoding/json's *json.SyntaxError reports
// failures (as a byte Offset rather than line/column).
func PositionFromOffset(source string, offset int64) Position {
	if offset <= 0 || offset > int64(len(source)) {
		return Position{Line: 1, Column: 1}
	}

	line := 1
	col := 1
	for i := int64(0); i < offset; i++ {
		if source[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return Position{Line: line, Column: col}
}
