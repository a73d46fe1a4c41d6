package domain

import "time"

// Urgency is the ordered severity of a blood request: low < medium < high < critical.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

var urgencyRank = map[Urgency]int{
	UrgencyLow:      0,
	UrgencyMedium:   1,
	UrgencyHigh:     2,
	UrgencyCritical: 3,
}

func (u Urgency) Valid() bool {
	_, ok := urgencyRank[u]
	return ok
}

// Rank returns the ordinal position of the urgency, -1 for unknown values.
func (u Urgency) Rank() int {
	if rank, ok := urgencyRank[u]; ok {
		return rank
	}
	return -1
}

// IsUrgent reports whether the urgency is high or critical.
func (u Urgency) IsUrgent() bool {
	return u == UrgencyHigh || u == UrgencyCritical
}

// BloodType is one of the eight ABO/Rh groups.
type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"
)

// BloodTypes lists every accepted blood type in display order.
var BloodTypes = []BloodType{
	BloodAPos, BloodANeg,
	BloodBPos, BloodBNeg,
	BloodABPos, BloodABNeg,
	BloodOPos, BloodONeg,
}

func (b BloodType) Valid() bool {
	for _, t := range BloodTypes {
		if b == t {
			return true
		}
	}
	return false
}

// RequestStatus is the lifecycle state of a blood request. Newly created
// requests always start as pending.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestActive    RequestStatus = "active"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestExpired   RequestStatus = "expired"
)

// BloodRequest is a demand for donated blood placed by a requester.
type BloodRequest struct {
	ID            string        `json:"id"`
	RequesterID   string        `json:"requester_id"`
	RequesterName string        `json:"requester_name"`
	BloodType     BloodType     `json:"blood_type"`
	Quantity      int           `json:"quantity"`
	Urgency       Urgency       `json:"urgency"`
	Status        RequestStatus `json:"status"`
	Location      Location      `json:"location"`
	Notes         string        `json:"notes,omitempty"`
	ExpiresAt     *time.Time    `json:"expires_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
