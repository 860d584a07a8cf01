package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// User profile attributes. Accounts are created by the auth frontend,
// not by this backend; handlers only read these rows to build the
// estimation prompt context and the daily balance.
type User struct {
	gorm.Model
	UserID string `gorm:"type:varchar(128);uniqueIndex;not null"`
	Name   string

	Age    *int
	Height *float64 // cm
	Weight *float64 // kg
	Sex    *bool    // true = male

	KcalTarget float64
}

// PhysicalData renders the profile attributes as prompt context for
// the calorie estimator. Only attributes that are actually set appear.
func (u *User) PhysicalData() string {
	var parts []string
	if u.Age != nil {
		parts = append(parts, fmt.Sprintf("Age: %d", *u.Age))
	}
	if u.Height != nil {
		parts = append(parts, fmt.Sprintf("Height: %g cm", *u.Height))
	}
	if u.Weight != nil {
		parts = append(parts, fmt.Sprintf("Weight: %g kg", *u.Weight))
	}
	if u.Sex != nil {
		sex := "female"
		if *u.Sex {
			sex = "male"
		}
		parts = append(parts, "Sex: "+sex)
	}
	return strings.Join(parts, ", ")
}
