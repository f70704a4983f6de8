package main

import (
	"medportal/internal/domain/entity"
	"medportal/internal/usecase"
)

// demoAccounts lists the two well-known accounts printed on the demo
// login screen, one per role.
func demoAccounts() []*usecase.RegisterInput {
	return []*usecase.RegisterInput{
		{
			Role:            entity.RolePatient,
			FirstName:       "John",
			LastName:        "Doe",
			Username:        "johndoe",
			Email:           "john.doe@example.com",
			Password:        "password123",
			ConfirmPassword: "password123",
			AddressLine1:    "123 Main Street",
			City:            "New York",
			State:           "NY",
			PostalCode:      "10001",
			TermsAccepted:   true,
		},
		{
			Role:            entity.RoleProvider,
			FirstName:       "Dr. Jane",
			LastName:        "Smith",
			Username:        "drjanesmith",
			Email:           "jane.smith@hospital.com",
			Password:        "doctor123",
			ConfirmPassword: "doctor123",
			AddressLine1:    "456 Medical Center",
			City:            "Los Angeles",
			State:           "CA",
			PostalCode:      "90210",
			TermsAccepted:   true,
		},
	}
}
