package models

// Timing is the operating-hours window shared by hotels and restaurants.
type Timing struct {
	Start string `gorm:"column:start;size:32;not null" json:"start"`
	End   string `gorm:"column:end;size:32;not null" json:"end"`
}

type Hotel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Location    string `gorm:"size:255;not null" json:"location"`
	Timing      Timing `gorm:"embedded;embeddedPrefix:timing_" json:"timing"`
	Banner      string `gorm:"size:512;not null" json:"banner"`
}

type Restaurant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Location    string `gorm:"size:255;not null" json:"location"`
	Timing      Timing `gorm:"embedded;embeddedPrefix:timing_" json:"timing"`
	Banner      string `gorm:"size:512;not null" json:"banner"`
}
