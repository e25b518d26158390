package models

import "time"

// PageModel is a static site page (about, doctrine, prayers...).
type PageModel struct {
	Base
	Slug     string `json:"slug"     gorm:"uniqueIndex;not null"`
	Title    string `json:"title"    gorm:"not null"`
	Subtitle string `json:"subtitle"`
	Text     string `json:"text"     gorm:"type:longtext"` // markdown source
	Order    int    `json:"order"    gorm:"column:order_num;default:0"`
}

func (PageModel) TableName() string { return "pages" }

// NewsModel is a chaplaincy news article.
type NewsModel struct {
	Base
	Title       string    `json:"title"        gorm:"not null"`
	Text        string    `json:"text"         gorm:"type:longtext"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at" gorm:"index"`
}

func (NewsModel) TableName() string { return "news" }

// EventModel is an upcoming parish event.
type EventModel struct {
	Base
	Title       string    `json:"title"       gorm:"not null"`
	Description string    `json:"description" gorm:"type:longtext"`
	ImageURL    string    `json:"image_url"`
	Date        time.Time `json:"date"        gorm:"index"`
}

func (EventModel) TableName() string { return "events" }

// SocietyModel is a parish association or pious society.
type SocietyModel struct {
	Base
	Name     string `json:"name"     gorm:"not null"`
	Slug     string `json:"slug"     gorm:"uniqueIndex;not null"`
	Category string `json:"category"` // "Organization" | "Pious Society"
	Patron   string `json:"patron"`
	History  string `json:"history"  gorm:"type:longtext"`
	Purpose  string `json:"purpose"  gorm:"type:longtext"`
}

func (SocietyModel) TableName() string { return "societies" }

// ClergyModel is a clergy profile shown on the site.
type ClergyModel struct {
	Base
	Name         string `json:"name"          gorm:"not null"`
	Role         string `json:"role"`
	Bio          string `json:"bio"           gorm:"type:longtext"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
}

func (ClergyModel) TableName() string { return "clergy" }

// MassScheduleModel is one row of the recurring Mass timetable.
type MassScheduleModel struct {
	Base
	Day  string `json:"day"  gorm:"index;not null"` // e.g. "Sunday"
	Time string `json:"time" gorm:"not null"`       // e.g. "07:30"
	Type string `json:"type"`                       // e.g. "Sung Mass"
}

func (MassScheduleModel) TableName() string { return "mass_schedules" }
