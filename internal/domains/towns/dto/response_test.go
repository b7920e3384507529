package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkCompleted(t *testing.T) {
	towns := []TownResponse{
		{ID: 1, Name: "Andover"},
		{ID: 2, Name: "Ansonia"},
		{ID: 3, Name: "Ashford"},
	}

	got := MarkCompleted(towns, []CompletedTownResponse{{TownID: 2}, {TownID: 3}})

	assert.False(t, got[0].Completed)
	assert.True(t, got[1].Completed)
	assert.True(t, got[2].Completed)

	for _, town := range towns {
		assert.False(t, town.Completed)
	}
}
