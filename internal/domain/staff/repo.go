package staff

// Repository is the persistence contract for hospital staff records.
type Repository interface {
	Create(s Staff) (Staff, error)
	GetByID(id int) (Staff, error)
	Update(s Staff) error
	Delete(id int) error
	List() []Staff
}
