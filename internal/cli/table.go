package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matzehuels/pkgpulse/pkg/inspect"
	"github.com/matzehuels/pkgpulse/pkg/integrations/github"
)

var numbers = message.NewPrinter(language.English)

var tableHeaders = []string{
	"Package", "Latest Version", "Release Time", "Downloads",
	"Deprecated", "Stars", "Open Issues", "Last Updated",
}

const (
	colDownloads  = 3
	colDeprecated = 4
	colStars      = 5
	colIssues     = 6
)

const notDeprecated = "None"

// renderTable lays out one row per record.
func renderTable(records []*inspect.Record) string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = recordRow(rec)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			switch col {
			case 0:
				return cell.Foreground(colorCyan)
			case colDeprecated:
				if records[row].Deprecated != nil {
					return cell.Foreground(colorRed)
				}
				return cell.Foreground(colorGreen)
			case colDownloads, colStars, colIssues:
				return cell.Align(lipgloss.Right)
			}
			return cell
		}).
		Render()
}

func recordRow(rec *inspect.Record) []string {
	downloads := github.NotAvailable
	if rec.Downloads != nil {
		downloads = formatCount(*rec.Downloads)
	}
	deprecated := notDeprecated
	if rec.Deprecated != nil {
		deprecated = *rec.Deprecated
	}
	return []string{
		rec.Name,
		rec.LatestVersion,
		rec.ReleaseTime,
		downloads,
		deprecated,
		countText(rec.Repo.Stars),
		countText(rec.Repo.OpenIssues),
		rec.Repo.LastUpdatedText(),
	}
}

func countText(p *int) string {
	if p == nil {
		return github.NotAvailable
	}
	return formatCount(int64(*p))
}

// formatCount renders n with thousands separators, e.g. "1,234,567".
func formatCount(n int64) string {
	return numbers.Sprintf("%d", n)
}
