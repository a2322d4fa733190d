package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const itemIndicator = "▌"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI escapes
}

// Frame is what a screen hands to the Model for drawing.
type Frame struct {
	Header []styledLine
	Lines  []styledLine
	// Loading, when set, is drawn after Lines next to the spinner.
	Loading   string
	Status    string
	StatusErr bool
	Help      []key.Binding
}

// View implements tea.Model. Only the current screen is drawn.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	current := m.stack.Current()
	if current == nil {
		return ""
	}
	frame := current.Render(m.width, m.env.bodyHeight())
	lines := make([]styledLine, 0, len(frame.Header)+len(frame.Lines)+4)
	lines = append(lines, frame.Header...)
	lines = append(lines, frame.Lines...)
	if frame.Loading != "" {
		lines = append(lines, styledLine{text: m.spinner.View() + " " + m.env.styles.Loading.Render(frame.Loading), raw: true})
	}
	if m.height > 0 {
		lines = limitHeight(lines, m.height-bottomRows, m.width)
	}
	lines = applyWidth(lines, m.width)

	var status styledLine
	if frame.Status != "" {
		status = styledLine{text: frame.Status, style: m.env.styles.Info}
		if frame.StatusErr {
			status.style = m.env.styles.Error
		}
	}
	footer := styledLine{}
	if len(frame.Help) > 0 {
		footer = styledLine{text: m.help.ShortHelpView(frame.Help), raw: true}
	}
	bottom := applyWidth([]styledLine{status, footer}, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// buildItemLine renders one list row with the cursor indicator.
func buildItemLine(e *env, label string, selected bool, width int) styledLine {
	lineStyle := e.styles.Item
	indicatorStyle := e.styles.ItemIndicator
	if selected {
		indicatorStyle = e.styles.SelectedItemIndicator
		lineStyle = e.styles.SelectedItem
	}
	fullText := itemIndicator + " " + label
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if ansi.StringWidth(line.text) > width {
				line.text = ansi.Truncate(line.text, width, "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

func textLines(text string, style *lipgloss.Style) []styledLine {
	parts := strings.Split(text, "\n")
	lines := make([]styledLine, len(parts))
	for i, part := range parts {
		lines[i] = styledLine{text: part, style: style}
	}
	return lines
}

func rawLines(text string) []styledLine {
	parts := strings.Split(strings.TrimRight(text, "\n"), "\n")
	lines := make([]styledLine, len(parts))
	for i, part := range parts {
		lines[i] = styledLine{text: part, raw: true}
	}
	return lines
}
