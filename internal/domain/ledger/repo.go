package ledger

// Repository is the persistence contract for the appointment ledger.
type Repository interface {
	Create(a Appointment) (Appointment, error)
	GetByID(id int) (Appointment, error)
	Update(a Appointment) error
	Delete(id int) error
	List() []Appointment
}
