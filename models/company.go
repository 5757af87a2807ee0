package models

// CompanyProfile is the identity printed on receipts and shown in settings.
type CompanyProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		Name:    "PT. SHA SOLO",
		Address: "Jl. Yosodipuro No. 21 Surakarta 57131",
		Phone:   "0271-644987 (Hunting) / 081-325-999-999",
		Email:   "sha@shasolo.com / marketing@shasolo.com",
		Website: "www.shasolo.com",
	}
}
