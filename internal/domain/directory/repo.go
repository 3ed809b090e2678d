package directory

// Repository is the persistence contract for the doctor roster.
type Repository interface {
	Create(d Doctor) (Doctor, error)
	GetByID(id int) (Doctor, error)
	Update(d Doctor) error
	Delete(id int) error
	List() []Doctor
}
