// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package swiftdoc

import (
	"fmt"
	"strings"
)

// Comment returns the comment lines to put above a declaration of the given
// kind and name. For functions the comment describes the parameters and
// result, so it is built from line, the declaration line itself.
//
// Type kinds get one line, functions get three. Other kinds get nothing.
func Comment(kind Kind, name, line string) []string {
	switch kind {
	case KindClass:
		return []string{fmt.Sprintf("/// Class %s: Responsible for the lifecycle, state, and behavior related to %s.", name, name)}
	case KindStruct:
		return []string{fmt.Sprintf("/// Struct %s: Value type that models the %s data and related helpers.", name, name)}
	case KindEnum:
		return []string{fmt.Sprintf("/// Enum %s: Represents the possible values for %s.", name, name)}
	case KindExtension:
		return []string{fmt.Sprintf("/// Extension %s: Adds focused functionality to %s.", name, name)}
	case KindFunc:
		return funcComment(parseSignature(strings.TrimSpace(line)))
	}
	return nil
}

func funcComment(sig signature) []string {
	input := "None"
	if len(sig.params) > 0 {
		input = strings.Join(sig.params, "; ")
	}
	output := sig.result
	if output == "" {
		output = "Void"
	}
	return []string{
		"/// @Description: Performs the " + sig.name + " operation.",
		"/// @Input: " + input,
		"/// @Output: " + output,
	}
}
