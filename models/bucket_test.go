package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	loc := time.UTC

	ts, ok := ParseIdentifier("2025-05-28T20:56:45", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 5, 28, 20, 56, 45, 0, loc), ts)

	day, ok := ParseIdentifier("2025-05-28", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 5, 28, 0, 0, 0, 0, loc), day)

	for _, id := range []string{"notes", "", "2025/05/28", "28-05-2025", "2025-05-28T20:56"} {
		_, ok := ParseIdentifier(id, loc)
		assert.False(t, ok, "identifier %q should not parse", id)
	}
}

func TestAccumulateIsAssociative(t *testing.T) {
	var split, once NutrientRecord

	split.Accumulate(Nutrients{"kcal": 5})
	split.Accumulate(Nutrients{"kcal": 3})
	once.Accumulate(Nutrients{"kcal": 8})

	assert.Equal(t, once.Kcal, split.Kcal)
	assert.Equal(t, 8.0, split.Kcal)
}

func TestAccumulateRoundsToOneDecimal(t *testing.T) {
	var rec NutrientRecord
	rec.Accumulate(Nutrients{"protein_g": 1.26})
	assert.Equal(t, 1.3, rec.ProteinG)

	rec.Accumulate(Nutrients{"protein_g": 0.04})
	assert.Equal(t, 1.3, rec.ProteinG)
}

func TestAccumulateIgnoresUnknownKeys(t *testing.T) {
	var rec NutrientRecord
	rec.Accumulate(Nutrients{"caffeine_mg": 80, "kcal": 10})
	assert.Equal(t, 10.0, rec.Kcal)

	got := rec.ToNutrients()
	_, present := got["caffeine_mg"]
	assert.False(t, present)
}

func TestOverwriteLeavesOtherFieldsUntouched(t *testing.T) {
	rec := NutrientRecord{Kcal: 120, BurntKcal: 300}

	rec.Overwrite(Nutrients{BurntKcalKey: 450.5})

	assert.Equal(t, 450.5, rec.BurntKcal)
	assert.Equal(t, 120.0, rec.Kcal)
}

func TestToNutrientsCoversAllFields(t *testing.T) {
	rec := NutrientRecord{Kcal: 1, SugarG: 2, BurntKcal: 3}
	got := rec.ToNutrients()

	for _, k := range NutrientKeys {
		_, ok := got[k]
		assert.True(t, ok, "missing key %s", k)
	}
	assert.Equal(t, 1.0, got["kcal"])
	assert.Equal(t, 2.0, got["sugar_g"])
	assert.Equal(t, 3.0, got[BurntKcalKey])
}

func TestNutrientsAddAndRounded(t *testing.T) {
	totals := ZeroNutrients()
	totals.Add(Nutrients{"kcal": 52.04, "fiber_g": 2.38})
	totals.Add(Nutrients{"kcal": 89.02})

	rounded := totals.Rounded()
	assert.Equal(t, 141.1, rounded["kcal"])
	assert.Equal(t, 2.4, rounded["fiber_g"])
	assert.Equal(t, 0.0, rounded["sugar_g"])
}
