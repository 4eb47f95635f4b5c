package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_API_URL = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	tokenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepSigningUp
	stepLoggingIn
	stepComplete
)

type model struct {
	step         step
	apiURL       string
	email        string
	password     string
	accessToken  string
	currentInput string
	message      string
	quitting     bool
}

type signupDoneMsg struct{ alreadyExists bool }
type loginSuccessMsg struct{ token string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	apiURL := os.Getenv("BLOG_API_URL")
	if apiURL == "" {
		apiURL = DEFAULT_API_URL
	}
	return model{
		step:   stepEnteringEmail,
		apiURL: apiURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func signup(apiURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", apiURL+"/signup", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server unreachable at %s: %w", apiURL, err)}
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			return signupDoneMsg{}
		case http.StatusBadRequest:
			// Account may already exist; try logging in with the same credentials
			return signupDoneMsg{alreadyExists: true}
		default:
			return errMsg{fmt.Errorf("signup failed with status %d", resp.StatusCode)}
		}
	}
}

func login(apiURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		form := url.Values{}
		form.Set("username", email)
		form.Set("password", password)

		resp, err := client.PostForm(apiURL+"/login", form)
		if err != nil {
			return errMsg{fmt.Errorf("server unreachable at %s: %w", apiURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed: check your credentials")}
		}

		var result struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.AccessToken == "" {
			return errMsg{fmt.Errorf("login response did not contain a token")}
		}

		return loginSuccessMsg{token: result.AccessToken}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringEmail || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepSigningUp
					m.message = "Creating account..."
					return m, signup(m.apiURL, m.email, m.password)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case signupDoneMsg:
		if msg.alreadyExists {
			m.message = "Account already exists, logging in..."
		} else {
			m.message = successStyle.Render("✓ Account created") + "\nLogging in..."
		}
		m.step = stepLoggingIn
		return m, login(m.apiURL, m.email, m.password)

	case loginSuccessMsg:
		m.accessToken = msg.token
		m.step = stepComplete
		m.message = successStyle.Render("✓ Logged in as " + m.email)

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.currentInput = ""
		m.step = stepEnteringEmail
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("✏️  Blog Account Setup\n\n"))

	switch m.step {
	case stepEnteringEmail:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter (Ctrl+C to quit)\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepSigningUp, stepLoggingIn:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n\n")
		s.WriteString(promptStyle.Render("Access token:\n"))
		s.WriteString(tokenStyle.Render(m.accessToken))
		s.WriteString("\n\nUse it as: Authorization: Bearer <token>\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
