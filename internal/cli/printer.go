package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// printJSON renders v as indented JSON on stdout. When the command acted
// on a team, the output is annotated with it so piped consumers keep the
// context. fieldPath selects a single value with gjson path syntax.
func printJSON(v any, fieldPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	if team := effectiveTeam(); team != "" {
		if annotated, err := sjson.SetBytes(data, "team", team); err == nil {
			data = annotated
		}
	}

	if fieldPath != "" {
		result := gjson.GetBytes(data, fieldPath)
		if !result.Exists() {
			return fmt.Errorf("no value at path %q", fieldPath)
		}
		fmt.Println(result.String())
		return nil
	}

	os.Stdout.Write(data)
	fmt.Println()
	return nil
}
