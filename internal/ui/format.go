package ui

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

var titleCaser = cases.Title(language.English)

// Stars renders a difficulty as filled and empty stars, clamped to the valid range
func Stars(difficulty int) string {
	difficulty = min(max(difficulty, 0), domain.MaxDifficulty)
	return strings.Repeat(IconStar, difficulty) + strings.Repeat(IconNoStar, domain.MaxDifficulty-difficulty)
}

// ItemName turns an item id such as OAK_PLANKS into "Oak Planks"
func ItemName(itemID string) string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(itemID), "_", " "))
}

// CategoryLabel is the display name of a history category
func CategoryLabel(c domain.HistoryCategory) string {
	return titleCaser.String(string(c))
}

// CategoryIcon returns the icon shown next to history lines
func CategoryIcon(c domain.HistoryCategory) string {
	switch c {
	case domain.HistoryDaily:
		return IconDaily
	case domain.HistoryTimed:
		return IconDone
	case domain.HistoryStart:
		return IconTimer
	case domain.HistoryCancel:
		return IconWarn
	case domain.HistoryPurchase:
		return IconShop
	default:
		return IconScroll
	}
}

// Bar renders a fixed-width text progress bar for percent in [0,100]
func Bar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	percent = min(max(percent, 0), 100)
	filled := int(percent / 100 * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
