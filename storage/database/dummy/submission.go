package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/daakhpc/StudentAdmissionSystem/core"
	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
)

type submissionRepository struct {
	db *submissionTable
}

var _ admission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *DB) admission.Repository {
	return &submissionRepository{db: db.submission}
}

// query returns all records, most recent first.
func (repo *submissionRepository) query() []admission.Submission {
	stored := make([]*storedSubmission, 0, len(repo.db.table))
	for _, sub := range repo.db.table {
		stored = append(stored, sub)
	}
	sort.Slice(stored, func(i, j int) bool {
		if stored[i].CreatedAt.Equal(stored[j].CreatedAt) {
			return stored[i].seq > stored[j].seq
		}
		return stored[i].CreatedAt.After(stored[j].CreatedAt)
	})

	subs := make([]admission.Submission, 0, len(stored))
	for _, sub := range stored {
		subs = append(subs, sub.Submission)
	}
	return subs
}

func (repo *submissionRepository) insert(sub admission.Submission) {
	repo.db.seq++
	repo.db.table[sub.ID] = &storedSubmission{Submission: sub, seq: repo.db.seq}
}

func (repo *submissionRepository) CheckCodeUniqueness(
	_ context.Context,
	code string,
	excluded []admission.Submission,
	_ ...core.DBExecutor,
) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, sub := range repo.db.table {
		if sub.Code != code {
			continue
		}
		isExcluded := false
		for _, excl := range excluded {
			if excl.ID == sub.ID {
				isExcluded = true
				break
			}
		}
		if !isExcluded {
			return admission.ErrCodeExists
		}
	}
	return nil
}

func (repo *submissionRepository) CreateSubmission(
	_ context.Context,
	sub admission.Submission,
	_ ...core.DBExecutor,
) (admission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	sub.ID = uuid.New().String()
	repo.insert(sub)
	return sub, nil
}

func (repo *submissionRepository) CreateSubmissions(
	_ context.Context,
	subs []admission.Submission,
	_ ...core.DBExecutor,
) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, sub := range subs {
		if sub.ID == "" {
			sub.ID = uuid.New().String()
		}
		repo.insert(sub)
	}
	return nil
}

func (repo *submissionRepository) QuerySubmissions(
	_ context.Context,
	ordering []core.DBOrdering,
	_ ...core.DBExecutor,
) ([]admission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	subs := repo.query()
	for i := len(ordering) - 1; i >= 0; i-- {
		ord := ordering[i]
		if ord.Field != "created_at" {
			continue
		}
		sort.SliceStable(subs, func(a, b int) bool {
			if ord.Ascending {
				return subs[a].CreatedAt.Before(subs[b].CreatedAt)
			}
			return subs[a].CreatedAt.After(subs[b].CreatedAt)
		})
	}
	return subs, nil
}

func (repo *submissionRepository) GetSubmissionByID(
	_ context.Context,
	id string,
	_ ...core.DBExecutor,
) (admission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sub, ok := repo.db.table[id]; ok {
		return sub.Submission, nil
	}
	return admission.Submission{}, admission.ErrNotFound
}

func (repo *submissionRepository) UpdateSubmission(
	_ context.Context,
	sub admission.Submission,
	_ ...core.DBExecutor,
) (admission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[sub.ID]
	if !ok {
		return admission.Submission{}, admission.ErrNotFound
	}
	orig.Submission = sub
	return sub, nil
}

func (repo *submissionRepository) DeleteSubmissionByID(
	_ context.Context,
	id string,
	_ ...core.DBExecutor,
) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	// deleting an absent row is fine
	delete(repo.db.table, id)
	return nil
}

func (repo *submissionRepository) DeleteAllSubmissions(_ context.Context, _ ...core.DBExecutor) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for id := range repo.db.table {
		if id == admission.DeleteAllSentinel {
			continue
		}
		delete(repo.db.table, id)
	}
	return nil
}
