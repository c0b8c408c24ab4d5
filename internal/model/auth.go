package model

type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required,min=1"`
	IsAdmin  bool   `json:"is_admin"`
}

type RegisterDeviceResponse struct {
	User      User   `json:"user"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
