// SPDX-License-Identifier: Unlicense OR MIT

package preset

import "fmt"

// ParseError reports a preset file that is not valid YAML or does not
// match the preset schema.
type ParseError struct {
	Path string
	// Line is the 1-based line of the error, or 0 if unknown.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("preset: parse %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("preset: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a preset field with an invalid value.
type ValidationError struct {
	// Field is the path of the field, such as spinners[2].radius.
	Field string
	// Tag names the violated rule.
	Tag string
	Err error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("preset: %s: %s: %v", e.Field, e.Tag, e.Err)
	}
	return fmt.Sprintf("preset: %s: failed %q", e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
