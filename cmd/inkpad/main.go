package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"inkpad/internal/infra/logx"
	"inkpad/internal/ui"
)

func main() {
	// Enable debug logging when DEBUG environment variable is set
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		logx.SetOutput(f)
		logx.SetMinLevel(logx.LevelDebug)
		fmt.Println("Debug logging enabled. Run 'tail -f debug.log' to view logs.")
	}

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if _, err := tea.NewProgram(
		ui.InitialModel(path),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
