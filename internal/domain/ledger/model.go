package ledger

import "fmt"

// Appointment statuses. Cancelled appointments stay in the collection
// and keep their id; only Scheduled ones hold a slot.
const (
	StatusScheduled = "Scheduled"
	StatusCancelled = "Cancelled"
)

// VisitType is constant for every front-desk booking.
const VisitType = "General Consultation"

// DefaultCondition is stored when the patient gives no reason.
const DefaultCondition = "N/A"

// Appointment maps to one entry of appointments.json. Date is
// "DD-MM-YYYY"; Time is one of the doctor's slot labels "HH:MM-HH:MM".
type Appointment struct {
	ID        int    `json:"id"`
	PatientID string `json:"patient_id"`
	DoctorID  int    `json:"doctor_id"`
	VisitType string `json:"visit_type"`
	Condition string `json:"condition"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

func (a Appointment) String() string {
	return fmt.Sprintf("ID: %d, Patient: %s, Doctor: %d, Date: %s, Time: %s, Status: %s",
		a.ID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Status)
}
