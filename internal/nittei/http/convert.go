package http

import (
	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/pkg/nitteisdk"
)

func toEvent(e domain.Event) nitteisdk.Event {
	return nitteisdk.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		DurationMin: e.DurationMin,
		Timezone:    e.Timezone,
		DeadlineAt:  e.DeadlineAt,
		CreatedAt:   e.CreatedAt,
	}
}

func toSlots(slots []domain.Slot) []nitteisdk.Slot {
	out := make([]nitteisdk.Slot, len(slots))
	for i, s := range slots {
		out[i] = nitteisdk.Slot{ID: s.ID, Index: s.Index, StartAt: s.StartAt, EndAt: s.EndAt}
	}
	return out
}

// toParticipants never exposes invite tokens.
func toParticipants(ps []domain.Participant) []nitteisdk.Participant {
	out := make([]nitteisdk.Participant, len(ps))
	for i, p := range ps {
		out[i] = nitteisdk.Participant{
			ID:           p.ID,
			Name:         p.Name,
			Email:        p.Email,
			Role:         string(p.Role),
			InvitedAt:    p.InvitedAt,
			LastActiveAt: p.LastActiveAt,
		}
	}
	return out
}

func toInvites(invites []service.Invite) []nitteisdk.Invite {
	out := make([]nitteisdk.Invite, len(invites))
	for i, inv := range invites {
		out[i] = nitteisdk.Invite{
			ParticipantID: inv.ParticipantID,
			Name:          inv.Name,
			Email:         inv.Email,
			Role:          string(inv.Role),
			URL:           inv.URL,
		}
	}
	return out
}

func toVotes(votes []domain.Vote) []nitteisdk.Vote {
	out := make([]nitteisdk.Vote, len(votes))
	for i, v := range votes {
		out[i] = nitteisdk.Vote{
			ParticipantID: v.ParticipantID,
			SlotID:        v.SlotID,
			Choice:        string(v.Choice),
			Comment:       v.Comment,
			UpdatedAt:     v.UpdatedAt,
		}
	}
	return out
}

func toCounts(tallies []service.SlotTally) []nitteisdk.SlotCounts {
	out := make([]nitteisdk.SlotCounts, len(tallies))
	for i, t := range tallies {
		out[i] = nitteisdk.SlotCounts{
			SlotID:  t.Slot.ID,
			Index:   t.Slot.Index,
			StartAt: t.Slot.StartAt,
			EndAt:   t.Slot.EndAt,
			Yes:     t.Yes,
			Maybe:   t.Maybe,
			No:      t.No,
			Score:   t.Score,
		}
	}
	return out
}

func toDecision(d domain.Decision) nitteisdk.Decision {
	return nitteisdk.Decision{
		ID:        d.ID,
		SlotID:    d.SlotID,
		DecidedBy: string(d.DecidedBy),
		DecidedAt: d.DecidedAt,
		ICSUID:    d.ICSUID,
	}
}

func toSlotInputs(ranges []nitteisdk.SlotRange) []service.SlotInput {
	out := make([]service.SlotInput, len(ranges))
	for i, r := range ranges {
		out[i] = service.SlotInput{StartAt: r.StartAt, EndAt: r.EndAt}
	}
	return out
}
