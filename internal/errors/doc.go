// Package errors provides the structured error values raised by htgo.
//
// Every failure the builder or the renderer can report carries:
//   - a stable code (e.g., "H001") mapped to a message template
//   - a kind used for errors.Is matching (type, value, lookup, runtime,
//     attribute, mode)
//   - the representation of the offending value, when there is one
//
// # Usage
//
//	err := errors.Errorf("H001", "3.14")
//	fmt.Println(err)
//	// H001: 3.14 is not a valid child element
//
//	errors.Is(err, &errors.Error{Kind: errors.KindType}) // true
//
// Format renders a multi-line, colored description for terminals and is used
// by the htgo command line tool.
package errors
