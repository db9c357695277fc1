package registration

type RegisterCompanyRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	DeadlineTime  string `json:"deadline_time"`
	AdminName     string `json:"admin_name" binding:"required"`
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminPassword string `json:"admin_password" binding:"required,min=8"`
}

type RegisterCompanyResponse struct {
	CompanyID     string `json:"company_id"`
	CompanyCode   string `json:"company_code"`
	AdminUserID   string `json:"admin_user_id"`
	AdminUserCode string `json:"admin_user_code"`
}

type RegisterUserRequest struct {
	CompanyCode string `json:"company_code" binding:"required,len=3"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

type RegisterUserResponse struct {
	UserID    string `json:"user_id"`
	UserCode  string `json:"user_code"`
	CompanyID string `json:"company_id"`
}
