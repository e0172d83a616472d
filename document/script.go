package document

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ValidateScript compiles src as a tengo script with the full stdlib
// module set available. A nil result means the script is well-formed.
func ValidateScript(src []byte) error {
	if len(src) == 0 {
		return fmt.Errorf("script is empty")
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if _, err := script.Compile(); err != nil {
		return fmt.Errorf("compile script: %w", err)
	}
	return nil
}

// ValidateScriptFile reads and validates the script at path.
func ValidateScriptFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return ValidateScript(src)
}
