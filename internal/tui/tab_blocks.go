package tui

import (
	"fmt"
	"strings"

	"budgie/internal/cli"
	"budgie/internal/model"
	"budgie/internal/tui/components"
	"budgie/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// blocksState tracks the blocks tab state.
type blocksState struct {
	cursor      int
	searching   bool
	searchInput textinput.Model
	searchQuery string
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "name or description"
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// visibleBlocks returns blocks filtered by the current search query.
// Inactive blocks stay listed here so they can be toggled back on.
func (a App) visibleBlocks() []model.ExpenseBlock {
	blocks := a.tracker.Blocks()
	if a.blocks.searchQuery == "" {
		return blocks
	}

	q := strings.ToLower(a.blocks.searchQuery)
	var out []model.ExpenseBlock
	for _, b := range blocks {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Description), q) {
			out = append(out, b)
		}
	}
	return out
}

func (a App) selectedBlock() (model.ExpenseBlock, bool) {
	blocks := a.visibleBlocks()
	if a.blocks.cursor < 0 || a.blocks.cursor >= len(blocks) {
		return model.ExpenseBlock{}, false
	}
	return blocks[a.blocks.cursor], true
}

// updateBlocksSearch handles key events while in search mode.
func (a App) updateBlocksSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.blocks.searchQuery = strings.TrimSpace(a.blocks.searchInput.Value())
		a.blocks.searching = false
		a.blocks.cursor = 0
		return a, nil
	case "esc":
		a.blocks.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.blocks.searchInput, cmd = a.blocks.searchInput.Update(msg)
	return a, cmd
}

func (a App) handleBlocksKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "/":
		a.blocks.searching = true
		a.blocks.searchInput = newSearchInput()
		a.blocks.searchInput.Focus()
		return a, a.blocks.searchInput.Cursor.BlinkCmd(), true
	case "esc":
		if a.blocks.searchQuery != "" {
			a.blocks.searchQuery = ""
			a.blocks.cursor = 0
			return a, nil, true
		}
		return a, nil, false
	case "enter", "a":
		block, ok := a.selectedBlock()
		if !ok {
			return a, nil, true
		}
		if !block.IsActive {
			a.statusMsg = "Block is inactive"
			return a, nil, true
		}
		a.openForm(formDerive, a.newDeriveForm(block))
		return a, a.form.Init(), true
	case "n":
		a.openForm(formBlockNew, a.newBlockForm(nil))
		return a, a.form.Init(), true
	case "e":
		if block, ok := a.selectedBlock(); ok {
			a.openForm(formBlockEdit, a.newBlockForm(&block))
			return a, a.form.Init(), true
		}
		return a, nil, true
	case "t":
		if block, ok := a.selectedBlock(); ok {
			a.tracker.ToggleBlock(block.ID)
			a.statusMsg = "Toggled " + block.Name
		}
		return a, nil, true
	case "d":
		if block, ok := a.selectedBlock(); ok {
			a.tracker.DeleteBlock(block.ID)
			a.statusMsg = "Deleted " + block.Name
			a.setCursor(a.blocks.cursor)
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderBlocksTab(cw, contentH int) string {
	t := theme.Active
	sym := a.cfg.General.CurrencySymbol
	blocks := a.visibleBlocks()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	var b strings.Builder

	if a.blocks.searching {
		b.WriteString(components.ContentCard("Search", a.blocks.searchInput.View(), cw))
		b.WriteString("\n")
	} else if a.blocks.searchQuery != "" {
		b.WriteString(labelStyle.Render(fmt.Sprintf(" Filter: %q (Esc to clear)", a.blocks.searchQuery)))
		b.WriteString("\n")
	}

	// Left: block list. Right: selected block detail.
	halves := components.LayoutRow(cw, 2)
	listInnerW := components.CardInnerWidth(halves[0])

	var list strings.Builder
	if len(blocks) == 0 {
		list.WriteString(labelStyle.Render("No blocks match. Press [n] to create one."))
	} else {
		nameW := listInnerW - 16
		if nameW < 10 {
			nameW = 10
		}
		for i, blk := range blocks {
			status := "  "
			if !blk.IsActive {
				status = "○ "
			}
			line := fmt.Sprintf("%s%-*s %d tiers", status, nameW, truncStr(blk.Name, nameW), len(blk.PricingTiers))
			switch {
			case i == a.blocks.cursor:
				list.WriteString(markerStyle.Render("▸ "))
				list.WriteString(selStyle.Render(line))
			case !blk.IsActive:
				list.WriteString("  ")
				list.WriteString(dimStyle.Render(line))
			default:
				list.WriteString("  ")
				list.WriteString(rowStyle.Render(line))
			}
			list.WriteString("\n")
		}
	}

	var detail strings.Builder
	if block, ok := a.selectedBlock(); ok {
		detail.WriteString(labelStyle.Render("Category: ") + rowStyle.Render(block.Category) + "\n")
		if block.Description != "" {
			detail.WriteString(dimStyle.Render(block.Description) + "\n")
		}
		status := "active"
		if !block.IsActive {
			status = "inactive"
		}
		detail.WriteString(labelStyle.Render("Status:   ") + rowStyle.Render(status) + "\n")
		detail.WriteString(labelStyle.Render("Created:  ") + rowStyle.Render(cli.FormatDate(block.CreatedAt)) + "\n\n")
		detail.WriteString(labelStyle.Render("Pricing tiers") + "\n")
		for i, tier := range block.PricingTiers {
			detail.WriteString(rowStyle.Render(fmt.Sprintf("  %d. %-20s %10s",
				i, truncStr(tier.Range, 20), cli.FormatMoney(sym, tier.Price))))
			if tier.Type != "" && tier.Type != model.TierFixed {
				detail.WriteString(dimStyle.Render("  " + tier.Type))
			}
			detail.WriteString("\n")
		}
	} else {
		detail.WriteString(labelStyle.Render("Nothing selected."))
	}

	title := fmt.Sprintf("Blocks (%d)", len(blocks))
	var detailTitle string
	if block, ok := a.selectedBlock(); ok {
		detailTitle = block.Name
	}
	b.WriteString(components.CardRow([]string{
		components.ContentCard(title, list.String(), halves[0]),
		components.ContentCard(detailTitle, detail.String(), halves[1]),
	}))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render(" [enter]add expense [n]ew [e]dit [t]oggle [d]elete [/]search"))

	return b.String()
}
