// https://www.lihaoyi.com/post/BuildyourownCommandLinewithANSIescapecodes.html#colors
package common

const (
	Black   = "\u001b[30m"
	Red     = "\u001b[31m"
	Green   = "\u001b[32m"
	Yellow  = "\u001b[33m"
	Blue    = "\u001b[34m"
	Magenta = "\u001b[35m"
	Cyan    = "\u001b[36m"
	White   = "\u001b[37m"

	Grey         = "\u001b[90m"
	BrightRed    = "\u001b[91m"
	BrightGreen  = "\u001b[92m"
	BrightYellow = "\u001b[93m"
	BrightWhite  = "\u001b[97m"

	Bold  = "\u001b[1m"
	Reset = "\u001b[0m"
)
