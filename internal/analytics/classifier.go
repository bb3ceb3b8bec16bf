// Package analytics derives the loan portfolio view of a savings group from a
// snapshot of its loans and members. Everything here is a pure function of its
// inputs: nothing is cached, logged or written back.
package analytics

import (
	"strings"

	"github.com/Dan9191/coop-loan-analytics/internal/models"
)

// purposeRule maps a keyword group to a category. Rules are tested in order.
type purposeRule struct {
	category models.CategoryID
	label    string
	keywords []string
}

var purposeRules = []purposeRule{
	{category: models.CategoryBusiness, label: "Business", keywords: []string{"business", "startup", "enterprise"}},
	{category: models.CategoryEducation, label: "Education", keywords: []string{"education", "school", "college", "university"}},
	{category: models.CategoryMedical, label: "Medical", keywords: []string{"medical", "health", "hospital"}},
	{category: models.CategoryHome, label: "Home", keywords: []string{"home", "house", "renovation"}},
	{category: models.CategoryEmergency, label: "Emergency", keywords: []string{"emergency", "urgent"}},
}

// CategoryOrder is the display order of purpose categories, "other" last
var CategoryOrder = []models.CategoryID{
	models.CategoryBusiness,
	models.CategoryEducation,
	models.CategoryMedical,
	models.CategoryHome,
	models.CategoryEmergency,
	models.CategoryOther,
}

// Classify maps free-text loan purpose to a category. The first matching
// keyword group wins; text matching nothing (including "") is "other".
func Classify(purpose string) models.CategoryID {
	text := strings.ToLower(purpose)
	for _, r := range purposeRules {
		if containsAny(text, r.keywords) {
			return r.category
		}
	}
	return models.CategoryOther
}

// MatchesGroup reports whether purpose contains any keyword of the category's
// group. Unlike Classify it is not exclusive: "home business" matches both
// business and home. "other" has no keywords and never matches.
func MatchesGroup(purpose string, category models.CategoryID) bool {
	text := strings.ToLower(purpose)
	for _, r := range purposeRules {
		if r.category == category {
			return containsAny(text, r.keywords)
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
