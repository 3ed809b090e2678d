package ledger

import (
	"github.com/rs/zerolog"

	"github.com/frontdesk/frontdesk/internal/platform/store"
)

type fileRepository struct {
	coll *store.Collection[Appointment]
}

// NewFileRepository opens the appointment collection at path.
func NewFileRepository(path string, log zerolog.Logger) Repository {
	return &fileRepository{
		coll: store.Open(path, log, func(a Appointment) int { return a.ID }),
	}
}

func (r *fileRepository) Create(a Appointment) (Appointment, error) {
	a.ID = r.coll.NextID()
	if err := r.coll.Append(a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (r *fileRepository) GetByID(id int) (Appointment, error) {
	for _, a := range r.coll.All() {
		if a.ID == id {
			return a, nil
		}
	}
	return Appointment{}, store.ErrNotFound
}

func (r *fileRepository) Update(a Appointment) error {
	appts := r.coll.All()
	for i := range appts {
		if appts[i].ID == a.ID {
			appts[i] = a
			return r.coll.Replace(appts)
		}
	}
	return store.ErrNotFound
}

func (r *fileRepository) Delete(id int) error {
	appts := r.coll.All()
	for i := range appts {
		if appts[i].ID == id {
			return r.coll.Replace(append(appts[:i], appts[i+1:]...))
		}
	}
	return store.ErrNotFound
}

func (r *fileRepository) List() []Appointment {
	return r.coll.All()
}
