package domain

import "time"

type Choice string

const (
	ChoiceYes   Choice = "yes"
	ChoiceMaybe Choice = "maybe"
	ChoiceNo    Choice = "no"
)

func ParseChoice(s string) (Choice, bool) {
	switch Choice(s) {
	case ChoiceYes, ChoiceMaybe, ChoiceNo:
		return Choice(s), true
	default:
		return "", false
	}
}

// Weight is the per-vote score contribution: yes 2, maybe 1, no 0.
func (c Choice) Weight() int {
	switch c {
	case ChoiceYes:
		return 2
	case ChoiceMaybe:
		return 1
	default:
		return 0
	}
}

// Vote is the current standing choice of one participant for one slot.
type Vote struct {
	EventID       string
	ParticipantID string
	SlotID        string
	Choice        Choice
	Comment       string
	UpdatedAt     time.Time
}
