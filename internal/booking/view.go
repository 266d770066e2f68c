package booking

import "github.com/wolfman30/tas-beauty-lounge/internal/catalog"

// StepIndicator is one entry of the 1-2-3 progress header.
type StepIndicator struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
	Done   bool   `json:"done"`
}

// View is the render model for the reservation modal.
type View struct {
	Session    *Session         `json:"session"`
	Indicators []StepIndicator  `json:"indicators"`
	Selected   *catalog.Service `json:"selected_service,omitempty"`
	Slots      []string         `json:"slots,omitempty"`
}

// Describe builds the modal render model for a session.
func (s *Service) Describe(session *Session) View {
	view := View{Session: session}
	current := session.Step.Number()
	for _, step := range Steps {
		n := step.Number()
		view.Indicators = append(view.Indicators, StepIndicator{
			Number: n,
			Label:  step.Label(),
			Active: n == current,
			Done:   n < current,
		})
	}
	if session.Details.ServiceID != "" {
		if svc, err := s.lookup.ByID(session.Details.ServiceID); err == nil {
			view.Selected = &svc
		}
	}
	if session.Step == StepScheduling {
		view.Slots = append([]string(nil), TimeSlots...)
	}
	return view
}
