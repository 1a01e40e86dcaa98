package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/game"
	"github.com/osse101/QuestCraft_Go/internal/quest"
	"github.com/osse101/QuestCraft_Go/internal/ui"
)

// RefreshInterval is how often the timers are re-projected
const RefreshInterval = time.Second

const (
	barWidth    = 40
	tableHeight = 8
)

type watchModel struct {
	ctx context.Context
	svc game.Service

	bar    progress.Model
	quests table.Model

	summary  *domain.Summary
	progress []domain.QuestProgress
	daily    *game.DailyView

	width   int
	loaded  bool
	lastLog string
	err     error
}

type tickMsg time.Time

type loadedMsg struct {
	summary  *domain.Summary
	progress []domain.QuestProgress
	daily    *game.DailyView
	err      error
}

type actionMsg struct {
	text string
	err  error
}

func newWatchModel(ctx context.Context, svc game.Service) watchModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Quest", Width: 28},
			{Title: "Difficulty", Width: 10},
			{Title: "Duration", Width: 9},
			{Title: "Status", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return watchModel{
		ctx:     ctx,
		svc:     svc,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth)),
		quests:  t,
		lastLog: "Loading…",
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m watchModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.svc.Summary(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		prog, err := m.svc.Quests(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		daily, err := m.svc.DailyQuests(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{summary: summary, progress: prog, daily: daily}
	}
}

func (m watchModel) actionCmd(fn func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		text, err := fn()
		return actionMsg{text: text, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.loadCmd(), tick())

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.loaded = true
		m.summary = msg.summary
		m.progress = msg.progress
		m.daily = msg.daily
		m.quests.SetRows(questRows(m.progress))
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.lastLog = ui.Bad.Render(ui.IconError + " " + msg.err.Error())
		} else {
			m.lastLog = msg.text
		}
		return m, m.loadCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m watchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "s", "x", "c", "enter":
		idx, ok := m.selected()
		if !ok {
			m.lastLog = "No quest selected."
			return m, nil
		}
		return m, m.questAction(key, idx)
	case "1", "2", "3":
		n, _ := strconv.Atoi(key)
		if m.daily == nil || n > len(m.daily.Quests) {
			return m, nil
		}
		name := m.daily.Quests[n-1].Name
		return m, m.actionCmd(func() (string, error) {
			out, err := m.svc.CompleteDaily(m.ctx, name)
			if err != nil {
				return "", err
			}
			return completionText(out), nil
		})
	}

	var cmd tea.Cmd
	m.quests, cmd = m.quests.Update(msg)
	return m, cmd
}

func (m watchModel) questAction(key string, idx int) tea.Cmd {
	return m.actionCmd(func() (string, error) {
		switch key {
		case "s":
			q, err := m.svc.StartQuest(m.ctx, idx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s Started %q", ui.IconTimer, q.Name), nil
		case "x":
			q, err := m.svc.CancelQuest(m.ctx, idx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s Cancelled %q", ui.IconWarn, q.Name), nil
		default:
			out, err := m.svc.CompleteQuest(m.ctx, idx)
			if err != nil {
				return "", err
			}
			return completionText(out), nil
		}
	})
}

func (m watchModel) selected() (int, bool) {
	idx := m.quests.Cursor()
	if idx < 0 || idx >= len(m.progress) {
		return 0, false
	}
	return m.progress[idx].Index, true
}

func completionText(out *game.CompletionOutcome) string {
	text := fmt.Sprintf("%s %s %s (balance %d)", ui.IconDone, out.Name, ui.Points(out.Reward), out.Balance)
	for _, n := range out.Notices {
		text += "\n" + ui.Gold.Render(n.Message)
	}
	return text
}

func questRows(prog []domain.QuestProgress) []table.Row {
	rows := make([]table.Row, 0, len(prog))
	for _, p := range prog {
		status := "idle"
		switch {
		case p.Finished:
			status = quest.TextTimeUp
		case p.Eligible:
			status = "ready · " + p.RemainingText
		case p.Started:
			status = p.RemainingText
		}
		rows = append(rows, table.Row{
			strconv.Itoa(p.Index),
			p.Quest.Name,
			ui.Stars(p.Quest.Difficulty),
			quest.FormatMinutes(p.Quest.DurationMinutes),
			status,
		})
	}
	return rows
}

func (m watchModel) activeProgress() (domain.QuestProgress, bool) {
	if m.summary == nil || m.summary.ActiveQuest == nil {
		return domain.QuestProgress{}, false
	}
	for _, p := range m.progress {
		if p.Index == *m.summary.ActiveQuest {
			return p, true
		}
	}
	return domain.QuestProgress{}, false
}

func (m watchModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress r to retry, q to quit.\n"
	}
	if !m.loaded {
		return m.lastLog + "\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderActive())
	b.WriteString("\n\n")
	b.WriteString(ui.H2.Render(ui.IconQuest+" Quests") + "\n")
	if len(m.progress) == 0 {
		b.WriteString(ui.Muted.Render("(no quests yet)") + "\n")
	} else {
		b.WriteString(m.quests.View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderDaily())
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("↑/↓ move · s start · x cancel · c complete · 1-3 daily · r refresh · q quit"))
	b.WriteString("\n\n" + m.lastLog + "\n")
	return b.String()
}

func (m watchModel) renderHeader() string {
	s := m.summary
	header := fmt.Sprintf("%s  %s  %s",
		ui.Heading(ui.IconSparkle, "QuestCraft"),
		ui.LabelValue("Points", s.Points),
		ui.LabelValue("Completed", s.CompletedCount))
	if s.NextTierAt != nil {
		header += "  " + ui.Muted.Render(fmt.Sprintf("(next tier at %d)", *s.NextTierAt))
	}
	return header
}

func (m watchModel) renderActive() string {
	p, ok := m.activeProgress()
	if !ok {
		return ui.Muted.Render("No active quest. Select one and press s.")
	}

	label := p.RemainingText
	if p.Eligible && !p.Finished {
		label = ui.Good.Render("can be validated") + " · " + label
	}
	return ui.Panel.Render(fmt.Sprintf("%s %s\n%s %3.0f%%  %s",
		ui.PanelTitle.Render(ui.IconTimer), p.Quest.Name,
		m.bar.ViewAs(p.Percent/100), p.Percent, label))
}

func (m watchModel) renderDaily() string {
	if m.daily == nil {
		return ""
	}
	lines := []string{ui.H2.Render(fmt.Sprintf("%s Daily quests (%d left today)", ui.IconDaily, m.daily.Remaining))}
	for i, q := range m.daily.Quests {
		mark := " "
		if m.daily.IsCompleted(q.Name) {
			mark = ui.Good.Render("✓")
		}
		lines = append(lines, fmt.Sprintf(" %s %d. %s %s %s", mark, i+1, q.Icon, q.Name, ui.Points(q.Reward)))
	}
	return strings.Join(lines, "\n") + "\n"
}
