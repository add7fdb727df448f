package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/gabapcia/ledgerwatch/internal/notify"
	"github.com/gabapcia/ledgerwatch/internal/view"
)

// maxChainRows bounds the block list to the newest blocks.
const maxChainRows = 8

const helpText = "send <recipient> <amount> • mine • block <index> • unselect • attempts • refresh • quit"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61AFEF"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3E4451")).Padding(0, 1)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5C6370"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
	amountStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
)

func render(s state, width int) string {
	half := max(width/2-2, 20)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		box(half, renderBalance(s.balance, s.stats)),
		box(half, renderControls(s.submit, s.mine)),
	)

	sections := []string{
		titleStyle.Render("ledgerwatch"),
		renderToast(s.toast),
		top,
		box(width-2, renderTransactions(s.transactions)),
		box(width-2, renderChain(s.chain)),
		box(width-2, renderDetail(s.detail, s.attempts, s.selector)),
	}
	if s.stats != nil && len(s.stats.RewardHistory) > 1 {
		sections = append(sections, box(width-2, renderRewardGraph(s.stats.RewardHistory, width-8)))
	}
	if s.cue != "" {
		sections = append(sections, infoStyle.Render(s.cue))
	}
	sections = append(sections, subtleStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func box(width int, content string) string {
	return boxStyle.Width(width).Render(content)
}

func renderToast(t *notify.Toast) string {
	if t == nil {
		return ""
	}

	if t.Severity == notify.SeverityError {
		return errStyle.Render("✖ " + t.Text)
	}
	return infoStyle.Render("✔ " + t.Text)
}

func renderBalance(b view.BalanceView, stats *view.StatsView) string {
	lines := []string{titleStyle.Render("Balance"), amountStyle.Render(b.Amount)}
	if b.ZeroBalanceVisible {
		lines = append(lines, subtleStyle.Render(b.ZeroBalanceText))
	}

	if stats != nil {
		lines = append(lines,
			"",
			fmt.Sprintf("Blocks mined: %d", stats.BlocksMined),
			fmt.Sprintf("Pending: %d", stats.PendingCount),
			fmt.Sprintf("Participants: %d", stats.Participants),
		)
	}
	return strings.Join(lines, "\n")
}

func renderControl(name string, c view.ControlView) string {
	style := infoStyle
	if c.Disabled {
		style = warnStyle
	}

	line := fmt.Sprintf("%-5s %s", name, style.Render("["+c.Label+"]"))
	if c.Progress != "" {
		line += "\n      " + subtleStyle.Render(c.Progress)
	}
	return line
}

func renderControls(submit, mine view.ControlView) string {
	return strings.Join([]string{
		titleStyle.Render("Actions"),
		renderControl("send", submit),
		renderControl("mine", mine),
	}, "\n")
}

func renderEmpty(e *view.EmptyState) string {
	if e.Hint == "" {
		return subtleStyle.Render(e.Title)
	}
	return subtleStyle.Render(e.Title + "\n" + e.Hint)
}

func renderTransactions(v view.TransactionsView) string {
	lines := []string{titleStyle.Render("Pending transactions")}
	switch {
	case v.Error != "":
		lines = append(lines, errStyle.Render(v.Error))
	case v.Empty != nil:
		lines = append(lines, renderEmpty(v.Empty))
	default:
		for _, r := range v.Rows {
			style := infoStyle
			if r.Direction == view.DirectionOutgoing {
				style = errStyle
			}
			lines = append(lines, fmt.Sprintf("%s → %s  %s  %s",
				r.Sender, r.Recipient, style.Render(r.Amount), subtleStyle.Render(r.Status)))
		}
	}
	return strings.Join(lines, "\n")
}

func renderChain(v view.ChainView) string {
	lines := []string{titleStyle.Render("Blockchain")}
	if v.Empty != nil {
		return strings.Join(append(lines, renderEmpty(v.Empty)), "\n")
	}

	blocks := v.Blocks
	if len(blocks) > maxChainRows {
		lines = append(lines, subtleStyle.Render(fmt.Sprintf("… %d older blocks", len(blocks)-maxChainRows)))
		blocks = blocks[len(blocks)-maxChainRows:]
	}

	for _, b := range blocks {
		lines = append(lines, fmt.Sprintf("%s  hash %s  prev %s  proof %d",
			titleStyle.Render(b.Title), b.Hash, b.PreviousHash, b.Proof))
		for _, tx := range b.Transactions {
			line := fmt.Sprintf("    %s → %s  %s", tx.Sender, tx.Recipient, tx.Amount)
			if tx.Reward {
				line = warnStyle.Render(line)
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func renderAttemptRow(r view.AttemptRow) string {
	mark, style := "✖", subtleStyle
	if r.Valid {
		mark, style = "✔", infoStyle
	}
	return style.Render(fmt.Sprintf("%3d  nonce %-8d %s %s", r.Position, r.Proof, r.Hash, mark))
}

func renderDetail(d view.BlockDetailView, a view.AttemptsView, selector view.SelectorView) string {
	lines := []string{titleStyle.Render("Block details")}
	if d.Cleared {
		hint := selector.Placeholder
		if hint == "" {
			hint = view.TextSelectorPlaceholder
		}
		if n := len(selector.Options); n > 0 {
			hint = fmt.Sprintf("%s (%s … %s)", hint, selector.Options[0].Label, selector.Options[n-1].Label)
		}
		return strings.Join(append(lines, subtleStyle.Render(hint)), "\n")
	}

	lines = append(lines,
		fmt.Sprintf("Block #%d  proof %s", d.Index, d.Proof),
		subtleStyle.Render(d.Input),
		"Hash "+d.Hash,
		"",
		titleStyle.Render("Proof-of-work attempts"),
	)
	if d.Empty != nil {
		lines = append(lines, renderEmpty(d.Empty))
	}
	for _, r := range d.Attempts {
		lines = append(lines, renderAttemptRow(r))
	}

	lines = append(lines, "", subtleStyle.Render("["+a.ToggleLabel+"]"))
	if !a.Expanded {
		return strings.Join(lines, "\n")
	}

	switch {
	case a.Loading:
		lines = append(lines, subtleStyle.Render(view.TextLoadingAttempts))
	case a.Error != "":
		lines = append(lines, errStyle.Render(a.Error))
	case a.Empty != nil:
		lines = append(lines, renderEmpty(a.Empty))
	default:
		for _, r := range a.Rows {
			lines = append(lines, renderAttemptRow(r))
		}
	}
	return strings.Join(lines, "\n")
}

func renderRewardGraph(history []float64, width int) string {
	return asciigraph.Plot(history,
		asciigraph.Height(6),
		asciigraph.Width(max(width, 10)),
		asciigraph.Caption("Cumulative mining rewards"),
	)
}
