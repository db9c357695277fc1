package company

type CompanyResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	DeadlineTime string `json:"deadline_time"`
	SubsidyRate  string `json:"subsidy_rate"`
	IsActive     bool   `json:"is_active"`
}

type UpdateSettingsRequest struct {
	Name         string  `json:"name"`
	DeadlineTime string  `json:"deadline_time"`
	SubsidyRate  *string `json:"subsidy_rate"`
	IsActive     *bool   `json:"is_active"`
}
