// Package service implements the contacts read and lead scoring operations.
package service

import (
	"context"
	"time"

	"sidebar_backend/internal/contacts/transport"
	"sidebar_backend/internal/domain"
	"sidebar_backend/platform/jobtread"
)

// ContactSource is the subset of the JobTread client this service needs.
type ContactSource interface {
	Contacts(ctx context.Context, grantKey string, filter jobtread.ContactsFilter) ([]jobtread.RawContact, error)
}

// Service reads contacts from JobTread and scores leads locally.
type Service struct {
	src ContactSource
}

// New creates the contacts service.
func New(src ContactSource) *Service {
	return &Service{src: src}
}

// List fetches contacts matching the filter.
func (s *Service) List(ctx context.Context, grantKey string, req transport.ListContactsRequest) (transport.ListContactsResponse, error) {
	rawContacts, err := s.src.Contacts(ctx, grantKey, jobtread.ContactsFilter{
		First:  req.First,
		Type:   req.Type,
		Search: req.Search,
	})
	if err != nil {
		return transport.ListContactsResponse{}, err
	}

	contacts := domain.NormalizeContacts(rawContacts)
	return transport.ListContactsResponse{Data: contacts, TotalCount: len(contacts)}, nil
}

// Score computes the lead-quality score for the submitted contact record.
// No upstream call is involved; the score is a pure function of the input.
func (s *Service) Score(req transport.ScoreLeadRequest) transport.LeadScoreResponse {
	data := req.ContactData
	if data.ID == "" {
		data.ID = req.ContactID
	}
	return ScoreLead(data, time.Now())
}
