package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aandreu7/iNutriScan/models"
)

// MergeMode selects how MergeNutrients folds new values into the
// stored record.
type MergeMode int

const (
	// MergeAccumulate adds the delta to the stored values, rounding
	// each touched field to one decimal place.
	MergeAccumulate MergeMode = iota
	// MergeOverwrite replaces only the given fields, leaving the rest
	// untouched.
	MergeOverwrite
)

// BucketService implements the daily-bucket store: one bucket per user
// per calendar day, identified by the timestamp string recorded when
// the bucket was first created. Lookup is a scan over the user's
// buckets matching on the date component, so two concurrent calls can
// still race into creating two buckets for the same day; the
// read-modify-write of the record itself runs in a transaction.
type BucketService struct {
	db     *gorm.DB
	loc    *time.Location
	logger *zap.SugaredLogger

	now func() time.Time
}

func NewBucketService(db *gorm.DB, loc *time.Location, logger *zap.SugaredLogger) *BucketService {
	return &BucketService{db: db, loc: loc, logger: logger, now: time.Now}
}

func (s *BucketService) today() time.Time {
	return s.now().In(s.loc)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FindOrCreateTodayBucket returns the user's bucket for the current
// calendar day, creating one named after the current timestamp when
// none exists. Identifiers that parse in neither accepted layout are
// not date buckets and are skipped.
func (s *BucketService) FindOrCreateTodayBucket(userID string) (*models.DailyBucket, error) {
	var buckets []models.DailyBucket
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&buckets).Error; err != nil {
		return nil, fmt.Errorf("listing buckets for user %s: %w", userID, err)
	}

	today := s.today()
	for i := range buckets {
		t, ok := models.ParseIdentifier(buckets[i].Identifier, s.loc)
		if !ok {
			continue
		}
		if sameDate(t, today) {
			return &buckets[i], nil
		}
	}

	bucket := models.DailyBucket{
		UserID:     userID,
		Identifier: today.Format(models.BucketIDLayout),
	}
	if err := s.db.Create(&bucket).Error; err != nil {
		return nil, fmt.Errorf("creating bucket %s for user %s: %w", bucket.Identifier, userID, err)
	}
	s.logger.Infow("created daily bucket", "user_id", userID, "identifier", bucket.Identifier)
	return &bucket, nil
}

// MergeNutrients folds delta into the bucket's nutrient record,
// creating the record if absent.
func (s *BucketService) MergeNutrients(bucket *models.DailyBucket, delta models.Nutrients, mode MergeMode) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var rec models.NutrientRecord
		err := tx.Where("bucket_id = ?", bucket.ID).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = models.NutrientRecord{BucketID: bucket.ID}
		} else if err != nil {
			return fmt.Errorf("loading nutrient record for bucket %d: %w", bucket.ID, err)
		}

		switch mode {
		case MergeOverwrite:
			rec.Overwrite(delta)
		default:
			rec.Accumulate(delta)
		}

		if err := tx.Save(&rec).Error; err != nil {
			return fmt.Errorf("saving nutrient record for bucket %d: %w", bucket.ID, err)
		}
		return nil
	})
}

// TodayNutrients returns today's stored totals for the user, all
// zeroes when no bucket or record exists yet. Read-only.
func (s *BucketService) TodayNutrients(userID string) (models.Nutrients, error) {
	empty := models.ZeroNutrients()
	empty[models.BurntKcalKey] = 0

	var buckets []models.DailyBucket
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&buckets).Error; err != nil {
		return nil, fmt.Errorf("listing buckets for user %s: %w", userID, err)
	}

	today := s.today()
	for i := range buckets {
		t, ok := models.ParseIdentifier(buckets[i].Identifier, s.loc)
		if !ok || !sameDate(t, today) {
			continue
		}
		var rec models.NutrientRecord
		err := s.db.Where("bucket_id = ?", buckets[i].ID).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return empty, nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading nutrient record for bucket %d: %w", buckets[i].ID, err)
		}
		return rec.ToNutrients(), nil
	}
	return empty, nil
}

// PurgeExpiredBuckets deletes the record contents of every bucket
// dated strictly before today, across all users. The bucket rows
// themselves are left behind; non-date identifiers and today's or
// future buckets are untouched. Safe to re-run.
func (s *BucketService) PurgeExpiredBuckets() (int, error) {
	var buckets []models.DailyBucket
	if err := s.db.Find(&buckets).Error; err != nil {
		return 0, fmt.Errorf("listing buckets: %w", err)
	}

	today := s.today()
	deleted := 0
	for i := range buckets {
		t, ok := models.ParseIdentifier(buckets[i].Identifier, s.loc)
		if !ok {
			continue
		}
		if !t.Before(today) || sameDate(t, today) {
			continue
		}
		res := s.db.Where("bucket_id = ?", buckets[i].ID).Delete(&models.NutrientRecord{})
		if res.Error != nil {
			return deleted, fmt.Errorf("purging bucket %s: %w", buckets[i].Identifier, res.Error)
		}
		if res.RowsAffected > 0 {
			s.logger.Infow("purged expired bucket contents",
				"user_id", buckets[i].UserID, "identifier", buckets[i].Identifier)
			deleted += int(res.RowsAffected)
		}
	}
	return deleted, nil
}
