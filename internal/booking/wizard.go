package booking

import (
	"fmt"
	"strings"
	"time"
)

// Step is a page of the reservation modal.
type Step string

const (
	StepSelection  Step = "selection"
	StepScheduling Step = "scheduling"
	StepFinalize   Step = "finalize"
	// StepClosed is never stored; closing discards the session.
	StepClosed Step = "closed"
)

// Steps lists the wizard pages in order.
var Steps = []Step{StepSelection, StepScheduling, StepFinalize}

// Number is the 1-based position shown in the step indicator, 0 when closed.
func (s Step) Number() int {
	for i, step := range Steps {
		if step == s {
			return i + 1
		}
	}
	return 0
}

// Label is the indicator caption.
func (s Step) Label() string {
	switch s {
	case StepSelection:
		return "Selection"
	case StepScheduling:
		return "Scheduling"
	case StepFinalize:
		return "Finalize"
	default:
		return "Closed"
	}
}

// Details accumulates what the visitor entered. Nothing is validated.
type Details struct {
	ServiceID string `json:"service_id,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Session is one open reservation modal.
type Session struct {
	ID        string    `json:"id"`
	Step      Step      `json:"step"`
	Details   Details   `json:"details"`
	OpenedAt  time.Time `json:"opened_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession starts a wizard on the selection step.
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, Step: StepSelection, OpenedAt: now, UpdatedAt: now}
}

// SelectService records the treatment and moves to scheduling.
func (s *Session) SelectService(serviceID string) error {
	if err := s.require(StepSelection, "select service"); err != nil {
		return err
	}
	s.Details.ServiceID = strings.TrimSpace(serviceID)
	s.Step = StepScheduling
	return nil
}

// SetSchedule stores the preferred date and slot without leaving scheduling.
func (s *Session) SetSchedule(date, slot string) error {
	if err := s.require(StepScheduling, "set schedule"); err != nil {
		return err
	}
	s.Details.Date = strings.TrimSpace(date)
	s.Details.Time = strings.TrimSpace(slot)
	return nil
}

// Continue moves from scheduling to the contact form.
func (s *Session) Continue() error {
	if err := s.require(StepScheduling, "continue"); err != nil {
		return err
	}
	s.Step = StepFinalize
	return nil
}

// Back returns to service selection, keeping the current choice highlighted.
func (s *Session) Back() error {
	if err := s.require(StepScheduling, "back"); err != nil {
		return err
	}
	s.Step = StepSelection
	return nil
}

// SetContact stores the contact profile on the final step.
func (s *Session) SetContact(name, email, phone string) error {
	if err := s.require(StepFinalize, "set contact"); err != nil {
		return err
	}
	s.Details.Name = strings.TrimSpace(name)
	s.Details.Email = strings.TrimSpace(email)
	s.Details.Phone = strings.TrimSpace(phone)
	return nil
}

// Confirm ends the wizard from the final step. Nothing is submitted.
func (s *Session) Confirm() error {
	if err := s.require(StepFinalize, "confirm"); err != nil {
		return err
	}
	s.discard()
	return nil
}

// Close ends the wizard from any step and drops every field.
func (s *Session) Close() {
	s.discard()
}

func (s *Session) discard() {
	s.Step = StepClosed
	s.Details = Details{}
}

func (s *Session) require(step Step, action string) error {
	if s.Step != step {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, s.Step)
	}
	return nil
}
