package contract

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is a single conversation message. History is an ordered, append-only
// sequence of turns owned by the caller; the agent works on its own copy.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Restaurant is an immutable catalog record. JSON tags match the on-disk
// catalog format.
type Restaurant struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Area      string            `json:"area"`
	Cuisine   string            `json:"cuisine"`
	Capacity  int               `json:"capacity"`
	Tables    []int             `json:"tables"`
	AvgSpend  int               `json:"avg_spend"`
	Rating    float64           `json:"rating"`
	Ambience  string            `json:"ambience"`
	OpenHours map[string]string `json:"open_hours"`
}

// StatusConfirmed is the only reservation status in the current scope.
const StatusConfirmed = "CONFIRMED"

// Reservation is an append-only booking record. Created exclusively through
// a successful booking and never mutated afterwards.
type Reservation struct {
	ID             string `json:"id"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PartySize      int    `json:"party_size"`
	Status         string `json:"status"`
}

// ToolInvocation is the structured request extracted from free-text model
// output. It is ephemeral and never persisted.
type ToolInvocation struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}
