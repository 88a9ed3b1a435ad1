package session

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/testsupport/basedata"
)

func TestResolve(t *testing.T) {
	s := basedata.SampleSession()

	d := Resolve(s, "AAA")
	assert.Equal(t, "Alice Alpha", d.FullName)
	assert.Equal(t, "Team Red", d.TeamName)
	assert.Equal(t, "#E10600", d.TeamColor)
	assert.Equal(t, 1, d.Position)
	assert.False(t, d.DNF)

	// case insensitive abbreviation and car number both resolve
	assert.Equal(t, "AAA", Resolve(s, "aaa").Abbreviation)
	assert.Equal(t, "BBB", Resolve(s, "22").Abbreviation)

	// no full name on record: first and last name are joined
	assert.Equal(t, "Bob Beta", Resolve(s, "BBB").FullName)

	// unknown identifiers keep the raw input as display name
	unknown := Resolve(s, "ZZZ")
	assert.Equal(t, "ZZZ", unknown.Abbreviation)
	assert.Empty(t, unknown.TeamName)
}

func TestIsDNF(t *testing.T) {
	tests := []struct {
		name string
		row  model.ResultRow
		want bool
	}{
		{
			name: "classified finisher",
			row:  model.ResultRow{Abbreviation: "AAA", Position: 3, ClassifiedPosition: "3", Status: "Finished"},
			want: false,
		},
		{
			name: "retired code",
			row:  model.ResultRow{Abbreviation: "AAA", Position: 18, ClassifiedPosition: "R", Status: "Finished"},
			want: true,
		},
		{
			name: "disqualified code",
			row:  model.ResultRow{Abbreviation: "AAA", Position: 18, ClassifiedPosition: "D"},
			want: true,
		},
		{
			name: "status text",
			row:  model.ResultRow{Abbreviation: "AAA", Position: 15, ClassifiedPosition: "15", Status: "Accident"},
			want: true,
		},
		{
			name: "missing position",
			row:  model.ResultRow{Abbreviation: "AAA", Position: math.NaN(), ClassifiedPosition: "17"},
			want: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isDNF(tc.row))
		})
	}
}

func TestDriverChoices(t *testing.T) {
	got := DriverChoices(basedata.SampleSession())
	assert.Len(t, got, 2)
	// sorted by full name
	assert.Equal(t, "Alice Alpha", got[0].FullName)
	assert.Equal(t, "Bob Beta", got[1].FullName)
}

func TestTeamDrivers(t *testing.T) {
	got := TeamDrivers(basedata.SampleSession())
	assert.Equal(t, []string{"AAA"}, got["Team Red"])
	assert.Equal(t, []string{"BBB"}, got["Team Blue"])
}
