package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	firstStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	awardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("123"))
)

type participantResult struct {
	ParticipantName string  `json:"participant_name"`
	AverageScore    float64 `json:"average_score"`
	JudgeCount      int     `json:"judge_count"`
	Rank            int     `json:"rank"`
}

type awardWinner struct {
	ParticipantName string  `json:"participant_name"`
	AverageScore    float64 `json:"average_score"`
}

type awardResult struct {
	AwardName string       `json:"award_name"`
	Winner    *awardWinner `json:"winner"`
}

type eventResults struct {
	EventTitle string              `json:"event_title"`
	Results    []participantResult `json:"results"`
	Awards     []awardResult       `json:"awards"`
	JudgeCount int                 `json:"judge_count"`
}

type resultsMsg eventResults
type fetchErrMsg struct{ err error }

type model struct {
	apiBase string
	eventID string
	token   string

	spinner   spinner.Model
	loading   bool
	fetchedAt time.Time
	results   *eventResults
	err       error
}

func initialModel(apiBase, eventID, token string) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return model{
		apiBase: apiBase,
		eventID: eventID,
		token:   token,
		spinner: sp,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchResults())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.fetchResults())
		}
	case resultsMsg:
		res := eventResults(msg)
		m.results = &res
		m.loading = false
		m.fetchedAt = time.Now()
		return m, nil
	case fetchErrMsg:
		m.err = msg.err
		m.loading = false
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	if m.loading && m.results == nil {
		b.WriteString(fmt.Sprintf("%s fetching results...\n", m.spinner.View()))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n\n" + dimStyle.Render("press r to retry, q to quit") + "\n")
		return b.String()
	}
	if m.results == nil {
		return "no results\n"
	}

	b.WriteString(titleStyle.Render(m.results.EventTitle))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d judges)", m.results.JudgeCount)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-40s %-10s %s", "Rank", "Participant", "Average", "Judges")))
	b.WriteString("\n")
	for _, r := range m.results.Results {
		line := fmt.Sprintf("%-5d %-40s %-10.2f %d", r.Rank, r.ParticipantName, r.AverageScore, r.JudgeCount)
		if r.Rank == 1 {
			line = firstStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.results.Results) == 0 {
		b.WriteString(dimStyle.Render("no scores submitted yet") + "\n")
	}

	if len(m.results.Awards) > 0 {
		b.WriteString("\n" + headerStyle.Render("Special Awards") + "\n")
		for _, aw := range m.results.Awards {
			if aw.Winner != nil {
				b.WriteString(awardStyle.Render(fmt.Sprintf("%s: %s (%.2f)", aw.AwardName, aw.Winner.ParticipantName, aw.Winner.AverageScore)) + "\n")
			} else {
				b.WriteString(dimStyle.Render(fmt.Sprintf("%s: not yet determined", aw.AwardName)) + "\n")
			}
		}
	}

	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("updated %s  |  r refresh  q quit", m.fetchedAt.Format("15:04:05"))) + "\n")
	return b.String()
}

func (m model) fetchResults() tea.Cmd {
	return func() tea.Msg {
		url := fmt.Sprintf("%s/events/%s/results", m.apiBase, m.eventID)
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return fetchErrMsg{err}
		}
		if m.token != "" {
			req.Header.Set("Authorization", "Bearer "+m.token)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return fetchErrMsg{err}
		}
		defer resp.Body.Close()

		var envelope struct {
			Status string       `json:"status"`
			Data   eventResults `json:"data"`
			ErrMsg string       `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return fetchErrMsg{err}
		}
		if envelope.Status != "success" {
			return fetchErrMsg{fmt.Errorf("%s (http %d)", envelope.ErrMsg, resp.StatusCode)}
		}
		return resultsMsg(envelope.Data)
	}
}
