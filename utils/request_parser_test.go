package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineItemsBulletedList(t *testing.T) {
	request := "- 200 sheets of A4 paper\n- 50 units of cardstock\n- 20 pieces of poster board"
	items := ParseLineItems(request)

	require.Len(t, items, 3)
	assert.Equal(t, 200, items[0].Quantity)
	assert.Equal(t, "A4 paper", items[0].RawDescription)
	assert.Equal(t, 50, items[1].Quantity)
	assert.Equal(t, "cardstock", items[1].RawDescription)
	assert.Equal(t, 20, items[2].Quantity)
	assert.Equal(t, "poster board", items[2].RawDescription)
}

func TestParseLineItemsBareSentence(t *testing.T) {
	items := ParseLineItems("I need 500 units of cardstock, 20 pieces of poster board")

	require.Len(t, items, 2)
	assert.Equal(t, 500, items[0].Quantity)
	assert.Equal(t, "cardstock", items[0].RawDescription)
	assert.Equal(t, 20, items[1].Quantity)
	assert.Equal(t, "poster board", items[1].RawDescription)
}

func TestParseLineItemsStripsParentheticals(t *testing.T) {
	items := ParseLineItems("200 sheets of A4 paper (80gsm)")

	require.Len(t, items, 1)
	assert.Equal(t, "A4 paper", items[0].RawDescription)
}

func TestParseLineItemsStripsColorDescriptors(t *testing.T) {
	items := ParseLineItems("- 100 sheets of white cardstock\n- 50 sheets of construction paper assorted colors")

	require.Len(t, items, 2)
	assert.Equal(t, "white cardstock", items[0].RawDescription)
	assert.Equal(t, "construction paper", items[1].RawDescription)
}

func TestParseLineItemsPreservesDuplicates(t *testing.T) {
	items := ParseLineItems("- 100 sheets of A4 paper\n- 100 sheets of A4 paper")

	require.Len(t, items, 2)
	assert.Equal(t, items[0], items[1])
}

func TestParseLineItemsTrimsTrailingPeriod(t *testing.T) {
	items := ParseLineItems("I'd like 30 units of glossy paper.")

	require.Len(t, items, 1)
	assert.Equal(t, "glossy paper", items[0].RawDescription)
}

func TestParseLineItemsNoMatches(t *testing.T) {
	assert.Empty(t, ParseLineItems("please send me some paper soon"))
	assert.Empty(t, ParseLineItems(""))
}

func TestParseLineItemsSingularUnits(t *testing.T) {
	items := ParseLineItems("1 sheet of poster board, 1 unit of cardstock")

	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}
