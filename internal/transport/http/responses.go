package httptransport

import (
	"time"

	"condogate/internal/domain"
)

// Response DTOs keep wire shapes independent from domain structs.

type userResponse struct {
	ID         string `json:"id"`
	NationalID string `json:"national_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, NationalID: u.NationalID, Name: u.Name, Role: string(u.Role)}
}

type vehicleResponse struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Model string `json:"model"`
}

type personResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	NationalID string            `json:"national_id"`
	Type       string            `json:"type"`
	Subtype    string            `json:"subtype,omitempty"`
	HouseID    string            `json:"house_id"`
	Vehicles   []vehicleResponse `json:"vehicles"`
	CreatedAt  time.Time         `json:"created_at"`
}

func toPersonResponse(p domain.Person) personResponse {
	resp := personResponse{
		ID:         p.ID,
		Name:       p.Name,
		NationalID: p.NationalID,
		Type:       string(p.Type),
		HouseID:    p.HouseID,
		Vehicles:   make([]vehicleResponse, 0, len(p.Vehicles)),
		CreatedAt:  p.CreatedAt,
	}
	if p.Subtype != nil {
		resp.Subtype = string(*p.Subtype)
	}
	for _, v := range p.Vehicles {
		resp.Vehicles = append(resp.Vehicles, vehicleResponse{ID: v.ID, Plate: v.Plate, Model: v.Model})
	}
	return resp
}

type houseResponse struct {
	ID         string    `json:"id"`
	StreetType string    `json:"street_type"`
	StreetName string    `json:"street_name"`
	Number     string    `json:"number"`
	Address    string    `json:"address"`
	Residents  []string  `json:"residents"`
	Authorized []string  `json:"authorized"`
	CreatedAt  time.Time `json:"created_at"`
}

func toHouseResponse(h domain.House) houseResponse {
	residents := h.Residents
	if residents == nil {
		residents = []string{}
	}
	authorized := h.Authorized
	if authorized == nil {
		authorized = []string{}
	}
	return houseResponse{
		ID:         h.ID,
		StreetType: h.StreetType,
		StreetName: h.StreetName,
		Number:     h.Number,
		Address:    h.Address(),
		Residents:  residents,
		Authorized: authorized,
		CreatedAt:  h.CreatedAt,
	}
}

type accessEventResponse struct {
	ID           string    `json:"id"`
	PersonID     string    `json:"person_id"`
	PersonName   string    `json:"person_name"`
	VehicleID    string    `json:"vehicle_id,omitempty"`
	VehiclePlate string    `json:"vehicle_plate,omitempty"`
	Direction    string    `json:"direction"`
	Timestamp    time.Time `json:"timestamp"`
	HouseID      string    `json:"house_id"`
	HouseAddress string    `json:"house_address"`
}

func toAccessEventResponse(e domain.AccessEvent) accessEventResponse {
	return accessEventResponse{
		ID:           e.ID,
		PersonID:     e.PersonID,
		PersonName:   e.PersonName,
		VehicleID:    e.VehicleID,
		VehiclePlate: e.VehiclePlate,
		Direction:    string(e.Direction),
		Timestamp:    e.Timestamp,
		HouseID:      e.HouseID,
		HouseAddress: e.HouseAddress,
	}
}

func toAccessEventResponses(events []domain.AccessEvent) []accessEventResponse {
	responses := make([]accessEventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, toAccessEventResponse(event))
	}
	return responses
}

type deliveryResponse struct {
	ID            string     `json:"id"`
	RecipientID   string     `json:"recipient_id"`
	RecipientName string     `json:"recipient_name"`
	Kind          string     `json:"kind"`
	Observations  string     `json:"observations,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
}

func toDeliveryResponse(d domain.Delivery) deliveryResponse {
	return deliveryResponse{
		ID:            d.ID,
		RecipientID:   d.RecipientID,
		RecipientName: d.RecipientName,
		Kind:          d.Kind,
		Observations:  d.Observations,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		DeliveredAt:   d.DeliveredAt,
	}
}

type noticeResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	Viewed      bool      `json:"viewed"`
}

func toNoticeResponse(n domain.Notice, userID string) noticeResponse {
	return noticeResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Priority:    string(n.Priority),
		CreatedAt:   n.CreatedAt,
		Viewed:      n.ViewedByUser(userID),
	}
}

type occurrenceResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	Comments    string     `json:"comments,omitempty"`
}

func toOccurrenceResponse(o domain.Occurrence) occurrenceResponse {
	return occurrenceResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		ResolvedAt:  o.ResolvedAt,
		Comments:    o.Comments,
	}
}
