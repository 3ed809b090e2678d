package identity

import "fmt"

// Patient maps to one entry of patients.json. Credentials live in the
// users collection, not on the patient record.
type Patient struct {
	PatientID string `json:"patient_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (p Patient) String() string {
	return fmt.Sprintf("ID: %s, Name: %s, Phone: %s, Email: %s",
		p.PatientID, p.Name, p.Phone, p.Email)
}
