package models

// Moderation states for publicly submitted records.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// PrayerRequestModel is a publicly submitted prayer intention. Only
// approved requests are shown on the prayer wall.
type PrayerRequestModel struct {
	Base
	Name      string `json:"name"`
	Intention string `json:"intention" gorm:"type:text;not null"`
	Status    string `json:"status"    gorm:"index;default:'pending'"`
}

func (PrayerRequestModel) TableName() string { return "prayer_requests" }

// DonationModel records a donation pledge made through the site. No
// payment processing happens here; Reference ties the pledge to the
// bank transfer the donor makes out of band.
type DonationModel struct {
	Base
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"  gorm:"default:'NGN'"`
	Purpose   string  `json:"purpose"`
	Message   string  `json:"message"   gorm:"type:text"`
	Reference string  `json:"reference" gorm:"uniqueIndex"`
	Received  bool    `json:"received"  gorm:"default:false"`
}

func (DonationModel) TableName() string { return "donations" }
