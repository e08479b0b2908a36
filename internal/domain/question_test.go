package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Whose autobiography is entitled Tom Hanks?", "tom"))
	assert.True(t, ContainsFold("anything", ""))
	assert.True(t, ContainsFold("", ""))
	assert.False(t, ContainsFold("Which planet is red?", "blue"))
}

func TestQuestionFilterMatches(t *testing.T) {
	science := 1
	term := "PLANET"
	q := Question{ID: 7, Question: "Which planet is red?", Answer: "Mars", Category: 1, Difficulty: 2}

	tests := []struct {
		name   string
		filter QuestionFilter
		want   bool
	}{
		{name: "zero filter", filter: QuestionFilter{}, want: true},
		{name: "category match", filter: QuestionFilter{CategoryID: &science}, want: true},
		{name: "category mismatch", filter: QuestionFilter{CategoryID: new(int)}, want: false},
		{name: "search ignores case", filter: QuestionFilter{SearchTerm: &term}, want: true},
		{name: "excluded", filter: QuestionFilter{ExcludeIDs: []int{3, 7}}, want: false},
		{name: "not excluded", filter: QuestionFilter{ExcludeIDs: []int{3}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(q))
		})
	}
}
