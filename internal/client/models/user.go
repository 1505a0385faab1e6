package models

// Profile is the current user's account snapshot, fetched fresh on each
// screen entry and never persisted locally.
type Profile struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Image     string `json:"image"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	BirthDate string `json:"birthDate"`
}

// FullName joins the name parts, tolerating either being empty.
func (p *Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// AuthResult is the response to a successful login: the bearer token plus
// a few profile fields the server returns alongside it.
type AuthResult struct {
	AccessToken string `json:"accessToken"`
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Image       string `json:"image"`
}
