package identity

// Repository is the persistence contract for patient records.
type Repository interface {
	Create(p Patient) error
	GetByID(patientID string) (Patient, error)
	List() []Patient
}
