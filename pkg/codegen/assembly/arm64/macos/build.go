package arm64_macos

import "rvcc/pkg/codegen/assembly"

// Build assembles and links the ARM64 assembly code into an executable for macOS
func (a *arm64Macos) Build() error {
	return assembly.Build(a.GetCode(), a.output,
		// Assemble to object file using as
		[]string{"as", "-arch", "arm64", "-o", assembly.ObjectFile, assembly.SourceFile},
		// Link to executable using clang (more reliable than ld)
		[]string{"clang", "-arch", "arm64", "-o", assembly.ExecFile, assembly.ObjectFile},
	)
}
