package analytics

import (
	"testing"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		purpose string
		want    models.CategoryID
	}{
		{name: "business keyword", purpose: "business expansion", want: models.CategoryBusiness},
		{name: "startup", purpose: "Tech Startup capital", want: models.CategoryBusiness},
		{name: "school fees", purpose: "School fees for term 2", want: models.CategoryEducation},
		{name: "university", purpose: "UNIVERSITY tuition", want: models.CategoryEducation},
		{name: "hospital", purpose: "hospital bill", want: models.CategoryMedical},
		{name: "medical", purpose: "medical bills", want: models.CategoryMedical},
		{name: "renovation", purpose: "home renovation", want: models.CategoryHome},
		{name: "house", purpose: "new house roof", want: models.CategoryHome},
		{name: "emergency", purpose: "Emergency travel", want: models.CategoryEmergency},
		{name: "business before emergency", purpose: "URGENT business loan", want: models.CategoryBusiness},
		{name: "business before home", purpose: "home business", want: models.CategoryBusiness},
		{name: "education before medical", purpose: "health education course", want: models.CategoryEducation},
		{name: "no keyword", purpose: "wedding", want: models.CategoryOther},
		{name: "empty", purpose: "", want: models.CategoryOther},
		{name: "whitespace", purpose: "   ", want: models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.purpose))
		})
	}
}

func TestClassify_Totality(t *testing.T) {
	known := make(map[models.CategoryID]bool)
	for _, id := range CategoryOrder {
		known[id] = true
	}
	inputs := []string{"", "x", "ü", "HOUSE", "school house", "\n", "enterprise-urgent", "healthy home"}
	for _, in := range inputs {
		assert.True(t, known[Classify(in)], "unexpected category for %q", in)
	}
}

func TestMatchesGroup(t *testing.T) {
	assert.True(t, MatchesGroup("home business", models.CategoryBusiness))
	assert.True(t, MatchesGroup("home business", models.CategoryHome))
	assert.False(t, MatchesGroup("home business", models.CategoryMedical))
	assert.False(t, MatchesGroup("anything", models.CategoryOther))
	assert.False(t, MatchesGroup("", models.CategoryBusiness))
}
