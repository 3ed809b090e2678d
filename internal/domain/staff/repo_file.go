package staff

import (
	"github.com/rs/zerolog"

	"github.com/frontdesk/frontdesk/internal/platform/store"
)

type fileRepository struct {
	coll *store.Collection[Staff]
}

// NewFileRepository opens the staff collection at path, seeding it when
// the file does not exist yet.
func NewFileRepository(path string, log zerolog.Logger, seed []Staff) (Repository, error) {
	coll := store.Open(path, log, func(s Staff) int { return s.ID })
	if err := coll.SeedIfMissing(seed); err != nil {
		return nil, err
	}
	return &fileRepository{coll: coll}, nil
}

func (r *fileRepository) Create(s Staff) (Staff, error) {
	s.ID = r.coll.NextID()
	if err := r.coll.Append(s); err != nil {
		return Staff{}, err
	}
	return s, nil
}

func (r *fileRepository) GetByID(id int) (Staff, error) {
	for _, s := range r.coll.All() {
		if s.ID == id {
			return s, nil
		}
	}
	return Staff{}, store.ErrNotFound
}

func (r *fileRepository) Update(s Staff) error {
	members := r.coll.All()
	for i := range members {
		if members[i].ID == s.ID {
			members[i] = s
			return r.coll.Replace(members)
		}
	}
	return store.ErrNotFound
}

func (r *fileRepository) Delete(id int) error {
	members := r.coll.All()
	for i := range members {
		if members[i].ID == id {
			return r.coll.Replace(append(members[:i], members[i+1:]...))
		}
	}
	return store.ErrNotFound
}

func (r *fileRepository) List() []Staff {
	return r.coll.All()
}
