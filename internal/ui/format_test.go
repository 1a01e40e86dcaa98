package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

func TestStars(t *testing.T) {
	tests := []struct {
		difficulty int
		want       string
	}{
		{1, "★☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{0, "☆☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stars(tt.difficulty), "difficulty %d", tt.difficulty)
	}
}

func TestItemName(t *testing.T) {
	assert.Equal(t, "Oak Planks", ItemName("OAK_PLANKS"))
	assert.Equal(t, "Eye Of Ender", ItemName("EYE_OF_ENDER"))
	assert.Equal(t, "Stone", ItemName("STONE"))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Daily", CategoryLabel(domain.HistoryDaily))
	assert.Equal(t, "Purchase", CategoryLabel(domain.HistoryPurchase))
	assert.Equal(t, IconShop, CategoryIcon(domain.HistoryPurchase))
	assert.Equal(t, IconScroll, CategoryIcon("other"))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]", Bar(50, 10))
	assert.Equal(t, "[██████████]", Bar(150, 10))
	assert.Equal(t, "[░░░░░░░░░░]", Bar(-5, 10))
	assert.Empty(t, Bar(50, 0))
}
