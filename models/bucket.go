package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Identifier layouts accepted for a daily bucket. Buckets created by
// this backend always use the long form; the short form exists because
// older clients wrote date-only identifiers.
const (
	BucketIDLayout     = "2006-01-02T15:04:05"
	BucketIDDateLayout = "2006-01-02"
)

// DailyBucket is a per-user container for one calendar day of tracked
// metrics. Its identity is the timestamp string recorded at creation,
// not the calendar date itself.
type DailyBucket struct {
	gorm.Model
	UserID     string `gorm:"index;not null"`
	Identifier string `gorm:"type:varchar(32);not null"`
}

// ParseIdentifier parses a bucket identifier in either accepted layout.
// Identifiers that parse in neither are not date buckets.
func ParseIdentifier(id string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{BucketIDLayout, BucketIDDateLayout} {
		if t, err := time.ParseInLocation(layout, id, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NutrientRecord holds the day's nutritional totals plus the burnt
// calories scalar. One record per bucket.
type NutrientRecord struct {
	gorm.Model
	BucketID uint `gorm:"uniqueIndex;not null"`

	Kcal          float64
	ProteinG      float64
	FatG          float64
	CarbohydrateG float64
	SaturatedFatG float64
	FiberG        float64
	CholesterolMg float64
	SugarG        float64
	BurntKcal     float64
}

// Nutrients is the wire shape of a nutrient record: named numeric
// fields keyed as the clients expect them.
type Nutrients map[string]float64

// NutrientKeys lists the eight aggregated fields, in response order.
var NutrientKeys = []string{
	"kcal",
	"protein_g",
	"fat_g",
	"carbohydrate_g",
	"saturated_fat_g",
	"fiber_g",
	"cholesterol_mg",
	"sugar_g",
}

// BurntKcalKey is the single scalar field written by the activity handlers.
const BurntKcalKey = "burnt_kcal"

// ZeroNutrients returns a map with every aggregated field set to zero.
func ZeroNutrients() Nutrients {
	n := make(Nutrients, len(NutrientKeys))
	for _, k := range NutrientKeys {
		n[k] = 0
	}
	return n
}

// Round1 rounds to one decimal place, the precision used everywhere a
// nutrient amount is stored or returned.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Rounded returns a copy with every field rounded to one decimal place.
func (n Nutrients) Rounded() Nutrients {
	out := make(Nutrients, len(n))
	for k, v := range n {
		out[k] = Round1(v)
	}
	return out
}

// Add sums other into n field-wise. Fields absent from n are created.
func (n Nutrients) Add(other Nutrients) {
	for k, v := range other {
		n[k] += v
	}
}

func (r *NutrientRecord) fields() map[string]*float64 {
	return map[string]*float64{
		"kcal":            &r.Kcal,
		"protein_g":       &r.ProteinG,
		"fat_g":           &r.FatG,
		"carbohydrate_g":  &r.CarbohydrateG,
		"saturated_fat_g": &r.SaturatedFatG,
		"fiber_g":         &r.FiberG,
		"cholesterol_mg":  &r.CholesterolMg,
		"sugar_g":         &r.SugarG,
		BurntKcalKey:      &r.BurntKcal,
	}
}

// Accumulate adds delta to the stored values field-wise, rounding each
// touched field to one decimal place. Unknown keys are ignored.
func (r *NutrientRecord) Accumulate(delta Nutrients) {
	ptrs := r.fields()
	for k, v := range delta {
		if p, ok := ptrs[k]; ok {
			*p = Round1(*p + v)
		}
	}
}

// Overwrite replaces only the given fields, leaving the rest untouched.
func (r *NutrientRecord) Overwrite(delta Nutrients) {
	ptrs := r.fields()
	for k, v := range delta {
		if p, ok := ptrs[k]; ok {
			*p = v
		}
	}
}

// ToNutrients flattens the record into its wire shape, burnt_kcal included.
func (r *NutrientRecord) ToNutrients() Nutrients {
	out := make(Nutrients, len(NutrientKeys)+1)
	for k, p := range r.fields() {
		out[k] = *p
	}
	return out
}
