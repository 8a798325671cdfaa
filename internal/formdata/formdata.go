// formdata.go
//
// Multi-step job application form state service.
// Form payload value types shared by the API layer, the validation layer
// and the storage codec.

package formdata

// PersonalInfo holds the first wizard step. All fields are plain strings,
// normalized (trimmed, lower-cased email) by the validation layer before
// they reach storage.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// JobInterest holds the second wizard step selections. All identifiers
// reference seeded rows in the reference tables.
type JobInterest struct {
	CategoryIDs     []string `json:"categoryIds"`
	RoleIDs         []string `json:"roleIds"`
	LocationID      string   `json:"locationId,omitempty"`
	MandatorySkills []string `json:"mandatorySkills"`
	AdvantageSkills []string `json:"advantageSkills"`
}

// Notifications holds the third wizard step channel toggles. Call, SMS and
// WhatsApp are sub-channels of Phone; the validation layer clears them when
// Phone is off.
type Notifications struct {
	Email    bool `json:"email"`
	Phone    bool `json:"phone"`
	Call     bool `json:"call"`
	SMS      bool `json:"sms"`
	WhatsApp bool `json:"whatsapp"`
}

// FormData is the full draft payload persisted per session.
type FormData struct {
	PersonalInfo  PersonalInfo  `json:"personalInfo"`
	JobInterest   JobInterest   `json:"jobInterest"`
	Notifications Notifications `json:"notifications"`
}

// Normalized returns a copy with nil slices replaced by empty ones, so an
// absent list and an empty list compare and serialize identically.
func (d FormData) Normalized() FormData {
	d.JobInterest.CategoryIDs = nonNil(d.JobInterest.CategoryIDs)
	d.JobInterest.RoleIDs = nonNil(d.JobInterest.RoleIDs)
	d.JobInterest.MandatorySkills = nonNil(d.JobInterest.MandatorySkills)
	d.JobInterest.AdvantageSkills = nonNil(d.JobInterest.AdvantageSkills)
	return d
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
