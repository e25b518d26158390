package models

import "time"

// Saint is one celebration entry in the daily content record.
type Saint struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Rank string `json:"rank"`
	Bio  string `json:"bio"`
}

// Reading is one scripture reading with a bounded preview.
type Reading struct {
	Citation string `json:"citation"`
	Text     string `json:"text"`
	Preview  string `json:"preview"`
}

// Readings is the full set of Mass readings for one day. SecondReading
// is present only on Sundays and major feasts (see the daily module).
type Readings struct {
	FirstReading  Reading  `json:"firstReading"`
	Psalm         Reading  `json:"psalm"`
	SecondReading *Reading `json:"secondReading,omitempty"`
	Gospel        Reading  `json:"gospel"`
	Reflection    string   `json:"reflection"`
}

// DailyContentModel is the denormalized daily liturgical record, one
// row per civil date. Superseded in place on refresh, never deleted.
type DailyContentModel struct {
	Base
	Date        string    `json:"date"        gorm:"uniqueIndex;not null;type:char(10)"`
	Celebration string    `json:"celebration"`
	Saints      []Saint   `json:"saints"      gorm:"type:longtext;serializer:json"`
	Readings    Readings  `json:"readings"    gorm:"type:longtext;serializer:json"`
	Source      string    `json:"source"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (DailyContentModel) TableName() string { return "daily_contents" }
