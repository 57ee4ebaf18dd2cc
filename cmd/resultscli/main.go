// resultscli renders a live leaderboard of an event in the terminal.
// It polls the backend's results endpoint; press r to refresh, q to quit.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	apiBase := flag.String("api", "http://localhost:8080", "backend base URL")
	eventID := flag.String("event", "", "event id to watch")
	token := flag.String("token", os.Getenv("KULTOURA_TOKEN"), "bearer token (defaults to KULTOURA_TOKEN)")
	flag.Parse()

	if *eventID == "" {
		fmt.Fprintln(os.Stderr, "usage: resultscli -event <event-id> [-api <url>] [-token <jwt>]")
		os.Exit(2)
	}

	m := initialModel(*apiBase, *eventID, *token)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
