package registry

import (
	"fmt"
	"slices"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// CheckArgs errors on any argument name outside the allowed set, listing
// the offenders in lexical order.
func CheckArgs(args map[string]cty.Value, allowed ...string) error {
	var unknown []string
	for name := range args {
		if !slices.Contains(allowed, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("unknown arguments %v", unknown)
}

// StringArg extracts an optional string argument. It errors when the
// argument is present but not a string.
func StringArg(args map[string]cty.Value, name string) (string, bool, error) {
	v, ok := args[name]
	if !ok {
		return "", false, nil
	}
	if v.Type() != cty.String {
		return "", false, fmt.Errorf("argument %q must be a string, got %s", name, v.Type().FriendlyName())
	}
	return v.AsString(), true, nil
}

// RequiredStringArg extracts a mandatory string argument.
func RequiredStringArg(args map[string]cty.Value, name string) (string, error) {
	v, ok, err := StringArg(args, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("argument %q is required", name)
	}
	return v, nil
}
