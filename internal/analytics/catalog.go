package analytics

import "github.com/Dan9191/coop-loan-analytics/internal/models"

// CategoryInfo is the descriptive metadata shown next to a purpose category
type CategoryInfo struct {
	Name         string
	Icon         string
	InterestRate float64 // Nominal annual rate, percent
	Term         string
	PopularIn    []string
}

// Catalog is a fixed lookup of category metadata keyed by category id
type Catalog map[models.CategoryID]CategoryInfo

// DefaultCatalog returns the cooperative's standard loan product sheet
func DefaultCatalog() Catalog {
	return Catalog{
		models.CategoryBusiness: {
			Name:         "Business Loans",
			Icon:         "briefcase",
			InterestRate: 12.5,
			Term:         "6-24 months",
			PopularIn:    []string{"Market traders", "Small retailers"},
		},
		models.CategoryEducation: {
			Name:         "Education Loans",
			Icon:         "graduation-cap",
			InterestRate: 8.0,
			Term:         "12-36 months",
			PopularIn:    []string{"Parents", "Young professionals"},
		},
		models.CategoryMedical: {
			Name:         "Medical Loans",
			Icon:         "heart-pulse",
			InterestRate: 6.5,
			Term:         "3-12 months",
			PopularIn:    []string{"Families", "Elderly members"},
		},
		models.CategoryHome: {
			Name:         "Home Improvement",
			Icon:         "home",
			InterestRate: 10.0,
			Term:         "12-48 months",
			PopularIn:    []string{"Homeowners", "Rural households"},
		},
		models.CategoryEmergency: {
			Name:         "Emergency Loans",
			Icon:         "alert-triangle",
			InterestRate: 5.0,
			Term:         "1-6 months",
			PopularIn:    []string{"All members"},
		},
		models.CategoryOther: {
			Name:         "Other Purposes",
			Icon:         "layers",
			InterestRate: 11.0,
			Term:         "3-24 months",
			PopularIn:    []string{"General use"},
		},
	}
}

// lookup returns metadata for id, falling back to a bare entry named after the id
func (c Catalog) lookup(id models.CategoryID) CategoryInfo {
	if info, ok := c[id]; ok {
		return info
	}
	return CategoryInfo{Name: string(id)}
}
