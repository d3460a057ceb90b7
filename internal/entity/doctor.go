package entity

// Doctor is one catalog entry loaded from the doctors file. PasswordHash is a
// bcrypt hash used only by the portal login and must never reach a response
// body.
type Doctor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// Display is the catalog string snapshotted into appointment records.
func (d Doctor) Display() string {
	return d.Name + " (" + d.Specialty + ")"
}

// DoctorLoginData is what the token middleware extracts from a portal JWT.
type DoctorLoginData struct {
	ID   string
	Name string
}
