package controllers

import "teranga_match/internal/models"

// publicUser is how other people's accounts appear on public endpoints:
// no email, no login timestamps.
type publicUser struct {
	ID      uint            `json:"id"`
	Role    models.UserRole `json:"role"`
	Profile *models.Profile `json:"profile,omitempty"`
}

func toPublicUser(u *models.User) *publicUser {
	if u == nil {
		return nil
	}
	return &publicUser{ID: u.ID, Role: u.Role, Profile: u.Profile}
}

type eventResponse struct {
	models.Event
	Organizer    *publicUser  `json:"organizer,omitempty"`
	Participants []publicUser `json:"participants,omitempty"`
}

func toEventResponse(e models.Event) eventResponse {
	out := eventResponse{Event: e, Organizer: toPublicUser(e.Organizer)}
	for i := range e.Participants {
		out.Participants = append(out.Participants, *toPublicUser(&e.Participants[i]))
	}
	return out
}

func toEventResponses(events []models.Event) []eventResponse {
	out := make([]eventResponse, len(events))
	for i, e := range events {
		out[i] = toEventResponse(e)
	}
	return out
}

type reviewResponse struct {
	models.Review
	Author *publicUser `json:"author,omitempty"`
}

func toReviewResponse(r models.Review) reviewResponse {
	return reviewResponse{Review: r, Author: toPublicUser(r.Author)}
}

func toReviewResponses(reviews []models.Review) []reviewResponse {
	out := make([]reviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = toReviewResponse(r)
	}
	return out
}
