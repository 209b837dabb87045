package dto

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// MessageResponse is the wire shape for every status message and error
// body: {"msg": "..."}.
type MessageResponse struct {
	Msg string `json:"msg"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
