// codec.go
//
// Multi-step job application form state service.
// XML codec for the stored form payload column. Encode/Decode form a
// lossless round trip for every FormData field; lists preserve order and
// absent elements decode to zero values.

package formdata

import (
	"encoding/xml"
	"fmt"
)

// xmlDocument mirrors FormData for the stored representation. Field order
// here is the element order in the column.
type xmlDocument struct {
	XMLName       xml.Name         `xml:"FormData"`
	PersonalInfo  xmlPersonalInfo  `xml:"PersonalInfo"`
	JobInterest   xmlJobInterest   `xml:"JobInterest"`
	Notifications xmlNotifications `xml:"Notifications"`
}

type xmlPersonalInfo struct {
	FirstName string `xml:"FirstName"`
	LastName  string `xml:"LastName"`
	Phone     string `xml:"Phone"`
	Email     string `xml:"Email"`
}

type xmlJobInterest struct {
	CategoryIDs     []string `xml:"CategoryIds>CategoryId"`
	RoleIDs         []string `xml:"RoleIds>RoleId"`
	LocationID      string   `xml:"LocationId"`
	MandatorySkills []string `xml:"MandatorySkills>Skill"`
	AdvantageSkills []string `xml:"AdvantageSkills>Skill"`
}

type xmlNotifications struct {
	Email    bool `xml:"Email"`
	Phone    bool `xml:"Phone"`
	Call     bool `xml:"Call"`
	SMS      bool `xml:"SMS"`
	WhatsApp bool `xml:"WhatsApp"`
}

// Encode serializes form data to the XML document stored in the
// form_data_xml column.
func Encode(data FormData) (string, error) {
	data = data.Normalized()

	doc := xmlDocument{
		PersonalInfo: xmlPersonalInfo(data.PersonalInfo),
		JobInterest: xmlJobInterest{
			CategoryIDs:     data.JobInterest.CategoryIDs,
			RoleIDs:         data.JobInterest.RoleIDs,
			LocationID:      data.JobInterest.LocationID,
			MandatorySkills: data.JobInterest.MandatorySkills,
			AdvantageSkills: data.JobInterest.AdvantageSkills,
		},
		Notifications: xmlNotifications(data.Notifications),
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode form data: %w", err)
	}

	return string(out), nil
}

// Decode parses a stored XML document back into form data. Unknown elements
// are ignored and missing elements default per field; malformed XML fails
// the whole decode.
func Decode(raw string) (FormData, error) {
	var doc xmlDocument
	if err := xml.Unmarshal([]byte(raw), &doc); err != nil {
		return FormData{}, fmt.Errorf("decode form data: %w", err)
	}

	data := FormData{
		PersonalInfo: PersonalInfo(doc.PersonalInfo),
		JobInterest: JobInterest{
			CategoryIDs:     doc.JobInterest.CategoryIDs,
			RoleIDs:         doc.JobInterest.RoleIDs,
			LocationID:      doc.JobInterest.LocationID,
			MandatorySkills: doc.JobInterest.MandatorySkills,
			AdvantageSkills: doc.JobInterest.AdvantageSkills,
		},
		Notifications: Notifications(doc.Notifications),
	}

	return data.Normalized(), nil
}
