package identity

import (
	"github.com/rs/zerolog"

	"github.com/frontdesk/frontdesk/internal/platform/store"
)

type fileRepository struct {
	coll *store.Collection[Patient]
}

// NewFileRepository opens the patient collection at path.
func NewFileRepository(path string, log zerolog.Logger) Repository {
	return &fileRepository{coll: store.Open[Patient](path, log, nil)}
}

func (r *fileRepository) Create(p Patient) error {
	return r.coll.Append(p)
}

func (r *fileRepository) GetByID(patientID string) (Patient, error) {
	for _, p := range r.coll.All() {
		if p.PatientID == patientID {
			return p, nil
		}
	}
	return Patient{}, store.ErrNotFound
}

func (r *fileRepository) List() []Patient {
	return r.coll.All()
}
