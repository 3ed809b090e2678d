package directory

import (
	"github.com/rs/zerolog"

	"github.com/frontdesk/frontdesk/internal/platform/store"
)

type fileRepository struct {
	coll *store.Collection[Doctor]
}

// NewFileRepository opens the doctor collection at path. When the file
// does not exist yet, seed is written through as the initial roster.
func NewFileRepository(path string, log zerolog.Logger, seed []Doctor) (Repository, error) {
	coll := store.Open(path, log, func(d Doctor) int { return d.ID })
	if err := coll.SeedIfMissing(seed); err != nil {
		return nil, err
	}
	return &fileRepository{coll: coll}, nil
}

func (r *fileRepository) Create(d Doctor) (Doctor, error) {
	d.ID = r.coll.NextID()
	if err := r.coll.Append(d); err != nil {
		return Doctor{}, err
	}
	return d, nil
}

func (r *fileRepository) GetByID(id int) (Doctor, error) {
	for _, d := range r.coll.All() {
		if d.ID == id {
			return d, nil
		}
	}
	return Doctor{}, store.ErrNotFound
}

func (r *fileRepository) Update(d Doctor) error {
	doctors := r.coll.All()
	for i := range doctors {
		if doctors[i].ID == d.ID {
			doctors[i] = d
			return r.coll.Replace(doctors)
		}
	}
	return store.ErrNotFound
}

func (r *fileRepository) Delete(id int) error {
	doctors := r.coll.All()
	for i := range doctors {
		if doctors[i].ID == id {
			return r.coll.Replace(append(doctors[:i], doctors[i+1:]...))
		}
	}
	return store.ErrNotFound
}

func (r *fileRepository) List() []Doctor {
	return r.coll.All()
}
