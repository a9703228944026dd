//go:build !nion_debug

package nion

func (*compiler) debugCodes([]*code) {}

func (*machine) debugState(int) {}
