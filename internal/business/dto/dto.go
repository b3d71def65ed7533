package dto

type OnboardInput struct {
	Name               string `json:"name"`
	Address            string `json:"address"`
	Contact            string `json:"contact"`
	RegistrationNumber string `json:"registration_number"`
	AdminUsername      string `json:"admin_username"`
	AdminPassword      string `json:"admin_password"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
