package main

import (
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/cli"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/logging"
)

func main() {
	// Basic logger for Cobra's own execution path; PersistentPreRunE
	// reconfigures it from the loaded config.
	logging.Setup(logging.Config{Level: "info", Console: true, TimeFormat: "15:04:05"})

	cli.Execute()
}
