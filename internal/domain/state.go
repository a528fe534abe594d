package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Price carries a catalog price exactly as received. Upstream data is not
// uniform: the catalog stores numbers while imported legacy listings carry
// currency-formatted strings such as "R$ 149,90". Both JSON forms are
// accepted and the original text is preserved.
type Price string

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' {
		var s string
		if err := jsonUnquote(data, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}
	*p = Price(data)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	// ParseFloat alone is too permissive here: it takes NaN, Inf, leading
	// zeros and digit underscores, none of which are JSON numbers. Emit the
	// raw bytes only when they are valid JSON on their own.
	raw := []byte(p)
	if _, err := strconv.ParseFloat(string(p), 64); err == nil && json.Valid(raw) {
		return raw, nil
	}
	return []byte(strconv.Quote(string(p))), nil
}

func jsonUnquote(data []byte, out *string) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	*out = s
	return nil
}

// CartItem is one line of the shopping cart. ID falls back to Name when the
// product has no stable identifier.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Key returns the cart identity of the item.
func (i CartItem) Key() string {
	if i.ID != "" {
		return i.ID
	}
	return i.Name
}

// CartState is the persisted cart snapshot.
type CartState struct {
	Items []CartItem `json:"items"`
}

// Contact message statuses.
const (
	ContactStatusNew        = "novo"
	ContactStatusInProgress = "em andamento"
	ContactStatusResolved   = "resolvido"
)

// ContactMessage is an inbound contact-form submission.
type ContactMessage struct {
	ID      string `json:"id" csv:"id"`
	Name    string `json:"name" csv:"name"`
	Email   string `json:"email" csv:"email"`
	Phone   string `json:"phone,omitempty" csv:"phone"`
	Subject string `json:"subject" csv:"subject"`
	Message string `json:"message" csv:"message"`
	Date    string `json:"date" csv:"date"` // ISO-8601 creation timestamp
	Status  string `json:"status" csv:"status"`
}

// ContactState is the persisted inbox snapshot.
type ContactState struct {
	Contacts []ContactMessage `json:"contacts"`
}

// AdminIdentity is the back-office operator identity held by the admin
// session container.
type AdminIdentity struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Photo    string `json:"photo"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type Measurement struct {
	Date    string  `json:"date"`
	Weight  float64 `json:"weight"`
	Height  float64 `json:"height"`
	BMI     float64 `json:"bmi"`
	BodyFat float64 `json:"bodyFat"`
	Chest   float64 `json:"chest"`
	Waist   float64 `json:"waist"`
	Arms    float64 `json:"arms"`
	Legs    float64 `json:"legs"`
}

type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
}

type Workout struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Day       string     `json:"day"`
	Exercises []Exercise `json:"exercises"`
}

// StudentIdentity is the student-portal identity with its nested mock
// training data.
type StudentIdentity struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Username      string        `json:"username"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	BirthDate     string        `json:"birthDate"`
	Plan          string        `json:"plan"`
	PlanStartDate string        `json:"planStartDate"`
	PlanEndDate   string        `json:"planEndDate"`
	Photo         string        `json:"photo"`
	Address       Address       `json:"address"`
	Measurements  []Measurement `json:"measurements"`
	Workouts      []Workout     `json:"workouts"`
}
