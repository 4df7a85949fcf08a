package models

type CountriesResponse struct {
	Countries []string `json:"countries"`
}

type RepresentativeResponse struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PoliticalGroup string `json:"political_group"`
	NationalGroup  string `json:"national_group"`
}

type PreviewResponse struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type RecordSubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SendResponse struct {
	Success    bool   `json:"success"`
	MailtoLink string `json:"mailto_link"`
	MEPName    string `json:"mep_name"`
	MEPEmail   string `json:"mep_email"`
}

// ToRepresentativeResponses always returns a non-nil slice so an empty
// result encodes as [].
func ToRepresentativeResponses(reps []Representative) []RepresentativeResponse {
	out := make([]RepresentativeResponse, 0, len(reps))
	for _, rep := range reps {
		out = append(out, RepresentativeResponse{
			Name:           rep.Name,
			Email:          rep.Email,
			PoliticalGroup: rep.PoliticalGroup,
			NationalGroup:  rep.NationalGroup,
		})
	}
	return out
}
