package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	infoStyle    = color.New(color.FgBlue)
	successStyle = color.New(color.FgGreen)
	warnStyle    = color.New(color.FgYellow, color.Bold)
	errorStyle   = color.New(color.FgRed, color.Bold)
	headerStyle  = color.New(color.FgYellow, color.Bold)
	labelStyle   = color.New(color.FgHiWhite)
)

// UI helpers

func PrintInfo(format string, a ...interface{}) {
	infoStyle.Printf("ℹ "+format+"\n", a...)
}

func PrintSuccess(format string, a ...interface{}) {
	successStyle.Printf("✓ "+format+"\n", a...)
}

func PrintWarning(format string, a ...interface{}) {
	warnStyle.Printf("⚠ "+format+"\n", a...)
}

func PrintError(format string, a ...interface{}) {
	errorStyle.Fprintf(os.Stderr, "✗ "+format+"\n", a...)
}

func PrintHeader(title string) {
	headerStyle.Printf("\n=== %s ===\n", title)
}

// PrintField prints one aligned "label: value" row
func PrintField(label string, value interface{}) {
	labelStyle.Printf("  %-18s", label+":")
	fmt.Printf(" %v\n", value)
}
