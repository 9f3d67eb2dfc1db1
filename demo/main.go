package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"credcheck/demo/client"
	"credcheck/demo/tui"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	apiURL := flag.String("url", client.GetEnvOrDefault("API_URL", "http://localhost:5000"), "CredCheck API URL")
	token := flag.String("token", os.Getenv("API_TOKEN"), "Bearer token for history access (optional)")
	flag.Parse()

	c := client.NewClient(*apiURL, *token)
	m := tui.NewModel(c, *token != "")

	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
