package wedding

// ConvertedMember identifies one member promoted to a family.
type ConvertedMember struct {
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	FamilyID   string `json:"family_id"`
	FamilyName string `json:"family_name"`
	Plan       int    `json:"plan"`
}

// ConvertError records one member the converter could not process.
type ConvertError struct {
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	Error      string `json:"error"`
}

// Result summarizes a converter run.
type Result struct {
	Converted int               `json:"converted"`
	Failed    int               `json:"failed"`
	Members   []ConvertedMember `json:"members"`
	Errors    []ConvertError    `json:"errors"`
}
