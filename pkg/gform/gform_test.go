package gform

import (
	"testing"
	"time"

	"github.com/bytebury/ctrunner/pkg/distance"
	"github.com/stretchr/testify/assert"
)

func TestForm_Answers(t *testing.T) {
	form := Run169()

	answers := form.Answers(Submission{
		RunnerID:  42,
		FirstName: "Jane",
		LastName:  "Runner",
		Town:      "Andover",
		RaceName:  "Hop River 5K",
		RaceDate:  time.Date(2025, time.June, 4, 9, 0, 0, 0, time.UTC),
		Miles:     distance.Kilometers(5).ToMiles(),
		LastTown:  true,
		Comment:   "hot day",
	})

	assert.Equal(t, "42", answers.Get("entry.1858653824"))
	assert.Equal(t, "New", answers.Get("entry.517872474"))
	assert.Equal(t, "Jane", answers.Get("entry.1421839249"))
	assert.Equal(t, "Runner", answers.Get("entry.390953767"))
	assert.Equal(t, "Andover", answers.Get("entry.1178659240"))
	assert.Equal(t, "2025", answers.Get("entry.1640631443_year"))
	assert.Equal(t, "06", answers.Get("entry.1640631443_month"))
	assert.Equal(t, "04", answers.Get("entry.1640631443_day"))
	assert.Equal(t, "3.1", answers.Get("entry.1543094814"))
	assert.Equal(t, "Hop River 5K", answers.Get("entry.1606581847"))
	assert.Equal(t, "Yes", answers.Get("entry.809023255"))
	assert.Equal(t, "No", answers.Get("entry.1292315262"))
	assert.Equal(t, "hot day", answers.Get("entry.1729945787"))
	assert.Len(t, answers, 13)
}

func TestForm_ResponseURL(t *testing.T) {
	assert.Equal(t,
		"https://docs.google.com/forms/d/e/1FAIpQLScHViJvQL0G_ZPuCZOIFNsBPthZwDSzbkgiFFeL93wp831diA/formResponse",
		Run169().ResponseURL())
}
