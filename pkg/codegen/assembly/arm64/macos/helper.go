package arm64_macos

import "fmt"

// addText adds an instruction to the text section
func (a *arm64Macos) addText(instruction string) {
	a.text.WriteString(instruction + "\n")
}

// loadImmediate materialises the low 32 bits of val in a w register with movz/movk
func (a *arm64Macos) loadImmediate(reg string, val int64) {
	u := uint32(val)
	lo, hi := u&0xffff, u>>16

	a.addText(fmt.Sprintf("\tmovz %s, #%d", reg, lo))
	if hi != 0 {
		a.addText(fmt.Sprintf("\tmovk %s, #%d, lsl #16", reg, hi))
	}
}

// fitsImm12 reports whether val can be encoded as an add/sub immediate
func fitsImm12(val int64) bool {
	return val >= 0 && val < 1<<12
}
