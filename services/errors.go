package services

import "errors"

// error กลุ่ม business rule — controller ใช้ errors.Is แปลงเป็น HTTP status
var (
	ErrEmailRegistered     = errors.New("Email already registered")
	ErrApplicationNotFound = errors.New("Application not found")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidCredentials  = errors.New("Invalid admin credentials")
	ErrNoApplicationFound  = errors.New("No application found with this email")
	ErrMissingCredentials  = errors.New("Please provide either admin credentials (username/password) or applicant email")
)
