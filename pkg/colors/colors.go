package colors

import (
	"fmt"
	"time"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
	BrightWhite   = "\033[97m"
)

// PrintInfo prints informational messages with cyan color
func PrintInfo(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %si%s  %s%s%s\n",
		Gray, timestamp, Reset,
		Cyan, Reset,
		BrightCyan, fmt.Sprintf(format, args...), Reset)
}

// PrintSuccess prints success messages with green color
func PrintSuccess(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s+%s %s%s%s\n",
		Gray, timestamp, Reset,
		Green, Reset,
		BrightGreen, fmt.Sprintf(format, args...), Reset)
}

// PrintWarning prints warning messages with yellow color
func PrintWarning(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s!%s %s%s%s\n",
		Gray, timestamp, Reset,
		Yellow, Reset,
		BrightYellow, fmt.Sprintf(format, args...), Reset)
}

// PrintError prints error messages with red color
func PrintError(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %sx%s %s%s%s\n",
		Gray, timestamp, Reset,
		Red, Reset,
		BrightRed, fmt.Sprintf(format, args...), Reset)
}

// PrintDebug prints debug messages with gray color
func PrintDebug(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s~%s %s%s%s\n",
		Gray, timestamp, Reset,
		Gray, Reset,
		Gray, fmt.Sprintf(format, args...), Reset)
}

// PrintHeader prints header messages with bold styling
func PrintHeader(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Printf("\n%s%s== %s ==%s\n\n", BrightBlue, Bold, message, Reset)
}

// PrintSubHeader prints sub-header messages
func PrintSubHeader(format string, args ...interface{}) {
	fmt.Printf("%s%s> %s%s\n", BrightMagenta, Bold, fmt.Sprintf(format, args...), Reset)
}

// PrintServer prints server-related messages
func PrintServer(icon, format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s %s%s%s\n",
		Gray, timestamp, Reset,
		BrightBlue, icon, Reset,
		White, fmt.Sprintf(format, args...), Reset)
}

// PrintConnection prints connection-related messages
func PrintConnection(icon, format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s %s%s%s\n",
		Gray, timestamp, Reset,
		BrightGreen, icon, Reset,
		White, fmt.Sprintf(format, args...), Reset)
}

// PrintEndpoint prints an API endpoint line for the startup listing
func PrintEndpoint(method, path, description string) {
	var methodColor string
	switch method {
	case "GET":
		methodColor = BrightGreen
	case "POST":
		methodColor = BrightYellow
	case "PUT":
		methodColor = BrightBlue
	case "DELETE":
		methodColor = BrightRed
	default:
		methodColor = White
	}
	fmt.Printf("  %s%-6s%s %s%-42s%s %s%s%s\n",
		methodColor, method, Reset,
		BrightWhite, path, Reset,
		Gray, description, Reset)
}

// PrintBanner prints the startup banner
func PrintBanner() {
	fmt.Printf("%s%s\n", BrightCyan, Bold)
	fmt.Println("  ___                    _                 _")
	fmt.Println(" / _ \\ _ __  ___        / \\   ___ ___  ___| |_ ___")
	fmt.Println("| | | | '_ \\/ __|_____ / _ \\ / __/ __|/ _ \\ __/ __|")
	fmt.Println("| |_| | |_) \\__ \\_____/ ___ \\\\__ \\__ \\  __/ |_\\__ \\")
	fmt.Println(" \\___/| .__/|___/    /_/   \\_\\___/___/\\___|\\__|___/")
	fmt.Println("      |_|")
	fmt.Printf("%s\n", Reset)
	fmt.Printf("%sOps Asset Server - IT Asset Tracking & Reconciliation%s\n\n", Gray, Reset)
}

// PrintShutdown prints the shutdown message
func PrintShutdown() {
	fmt.Printf("\n%s%sShutting down Ops Asset Server gracefully...%s\n", BrightYellow, Bold, Reset)
}
