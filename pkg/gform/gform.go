// Package gform prefills the Run169 Towns Society "new town" Google Form.
package gform

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/bytebury/ctrunner/pkg/distance"
)

const baseURL = "https://docs.google.com/forms/d/e"

// Fields holds the entry ids of the form's questions.
type Fields struct {
	MemberID  string
	Action    string
	FirstName string
	LastName  string
	Town      string
	DateYear  string
	DateMonth string
	DateDay   string
	Distance  string
	RaceName  string
	LastTown  string
	NotifyAll string
	Comment   string
}

type Form struct {
	ID     string
	Fields Fields
}

// Run169 is the society's live form.
func Run169() Form {
	return Form{
		ID: "1FAIpQLScHViJvQL0G_ZPuCZOIFNsBPthZwDSzbkgiFFeL93wp831diA",
		Fields: Fields{
			MemberID:  "1858653824",
			Action:    "517872474",
			FirstName: "1421839249",
			LastName:  "390953767",
			Town:      "1178659240",
			DateYear:  "1640631443_year",
			DateMonth: "1640631443_month",
			DateDay:   "1640631443_day",
			Distance:  "1543094814",
			RaceName:  "1606581847",
			LastTown:  "809023255",
			NotifyAll: "1292315262",
			Comment:   "1729945787",
		},
	}
}

// Submission is one completed town as reported by a member.
type Submission struct {
	RunnerID  int64
	FirstName string
	LastName  string
	Town      string
	RaceName  string
	RaceDate  time.Time
	Miles     distance.Miles
	LastTown  bool
	Comment   string
}

func (f Form) ResponseURL() string {
	return fmt.Sprintf("%s/%s/formResponse", baseURL, f.ID)
}

// Answers maps s onto the form's entry.<id> keys.
func (f Form) Answers(s Submission) url.Values {
	v := url.Values{}

	set := func(id, value string) {
		v.Set("entry."+id, value)
	}

	set(f.Fields.MemberID, strconv.FormatInt(s.RunnerID, 10))
	set(f.Fields.Action, "New")
	set(f.Fields.FirstName, s.FirstName)
	set(f.Fields.LastName, s.LastName)
	set(f.Fields.Town, s.Town)
	set(f.Fields.DateYear, strconv.Itoa(s.RaceDate.Year()))
	set(f.Fields.DateMonth, fmt.Sprintf("%02d", int(s.RaceDate.Month())))
	set(f.Fields.DateDay, fmt.Sprintf("%02d", s.RaceDate.Day()))
	set(f.Fields.Distance, s.Miles.String())
	set(f.Fields.RaceName, s.RaceName)
	set(f.Fields.LastTown, yesNo(s.LastTown))
	set(f.Fields.NotifyAll, "No")
	set(f.Fields.Comment, s.Comment)

	return v
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}
