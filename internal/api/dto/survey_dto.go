package dto

import (
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/validation"
)

// SurveyRequest carries the submitted form. Ratings are strings because
// they come from free-form inputs; "abc" must surface as a validation
// violation alongside the others, not as a decode failure.
type SurveyRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Gender     string `json:"gender"`
	Location   string `json:"location"`
	Quality    string `json:"quality"`
	Timeliness string `json:"timeliness"`
	Service    string `json:"service"`
	Overall    string `json:"overall"`
	Comments   string `json:"comments"`
}

// Form converts the request into the validator's input type.
func (r SurveyRequest) Form() validation.SurveyForm {
	return validation.SurveyForm{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Gender:     r.Gender,
		Location:   r.Location,
		Quality:    r.Quality,
		Timeliness: r.Timeliness,
		Service:    r.Service,
		Overall:    r.Overall,
		Comments:   r.Comments,
	}
}

// NewSampleForm maps a prefilled form back onto the request shape so the
// sample endpoint returns exactly what a client would submit.
func NewSampleForm(form validation.SurveyForm) SurveyRequest {
	return SurveyRequest{
		Name:       form.Name,
		Email:      form.Email,
		Phone:      form.Phone,
		Gender:     form.Gender,
		Location:   form.Location,
		Quality:    form.Quality,
		Timeliness: form.Timeliness,
		Service:    form.Service,
		Overall:    form.Overall,
		Comments:   form.Comments,
	}
}

// SurveyResponse is the wire form of one survey record.
type SurveyResponse struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Gender     string `json:"gender"`
	Location   string `json:"location"`
	Quality    int    `json:"quality"`
	Timeliness int    `json:"timeliness"`
	Service    int    `json:"service"`
	Overall    int    `json:"overall"`
	Comments   string `json:"comments"`
	Owner      string `json:"owner"`
}

// NewSurveyResponse maps a domain record.
func NewSurveyResponse(s domain.Survey) SurveyResponse {
	return SurveyResponse{
		ID:         s.ID,
		Timestamp:  s.Timestamp,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Gender:     s.Gender,
		Location:   s.Location,
		Quality:    s.Quality,
		Timeliness: s.Timeliness,
		Service:    s.Service,
		Overall:    s.Overall,
		Comments:   s.Comments,
		Owner:      s.Owner,
	}
}

// NewSurveyList maps a slice of domain records.
func NewSurveyList(records []domain.Survey) []SurveyResponse {
	out := make([]SurveyResponse, len(records))
	for i, s := range records {
		out[i] = NewSurveyResponse(s)
	}
	return out
}
