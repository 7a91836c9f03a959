package copyrightdto

import "github.com/metalaloud/royalty-service/internal/domain"

type ListRegistrationsOutput struct {
	Registrations []*domain.CopyrightRegistration
}
