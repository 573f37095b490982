package admission

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/daakhpc/StudentAdmissionSystem/core"
)

// DeleteAllSentinel is the impossible id used by delete-all statements so the
// query always carries a predicate.
const DeleteAllSentinel = "00000000-0000-0000-0000-000000000000"

var (
	// errors
	ErrNotFound   = errors.New("submission not found")
	ErrCodeExists = errors.New("a submission with this code already exists")
	ErrNoData     = errors.New("No data to back up.")
	ErrBadBackup  = errors.New("Backup file is not a valid JSON array.")
)

type (
	Repository interface {
		CheckCodeUniqueness(ctx context.Context, code string, excluded []Submission, exec ...core.DBExecutor) error
		CreateSubmission(ctx context.Context, sub Submission, exec ...core.DBExecutor) (Submission, error)
		// CreateSubmissions bulk-inserts records keeping their original ids
		// and timestamps. Used by restores.
		CreateSubmissions(ctx context.Context, subs []Submission, exec ...core.DBExecutor) error
		// QuerySubmissions returns all records; most recent first when no
		// ordering is given.
		QuerySubmissions(ctx context.Context, ordering []core.DBOrdering, exec ...core.DBExecutor) ([]Submission, error)
		GetSubmissionByID(ctx context.Context, id string, exec ...core.DBExecutor) (Submission, error)
		// UpdateSubmission returns ErrNotFound when no row changed.
		UpdateSubmission(ctx context.Context, sub Submission, exec ...core.DBExecutor) (Submission, error)
		// DeleteSubmissionByID succeeds trivially when the id is absent.
		DeleteSubmissionByID(ctx context.Context, id string, exec ...core.DBExecutor) error
		DeleteAllSubmissions(ctx context.Context, exec ...core.DBExecutor) error
	}

	Service interface {
		Create(ctx context.Context, in SubmissionInput) (Submission, error)
		QueryAll(ctx context.Context) ([]Submission, error)
		GetByID(ctx context.Context, id string) (Submission, error)
		Update(ctx context.Context, id string, in SubmissionInput) (Submission, error)
		Delete(ctx context.Context, id string) error
		// Backup serializes every record to an indented JSON array and
		// returns the bytes with a dated download filename.
		Backup(ctx context.Context) ([]byte, string, error)
		// Restore replaces the whole table with the given backup content in
		// one transaction and returns the number of restored records.
		Restore(ctx context.Context, data []byte) (int, error)
	}

	service struct {
		db      core.DB
		repo    Repository
		mailSvc core.EmailService
	}
)

var _ Service = (*service)(nil) // interface compliance check

func NewService(db core.DB, repo Repository, mailSvc core.EmailService) Service {
	return &service{
		db:      db,
		repo:    repo,
		mailSvc: mailSvc,
	}
}

func (svc *service) checkCodeUniqueness(ctx context.Context, code string, excluded ...Submission) error {
	if err := svc.repo.CheckCodeUniqueness(ctx, code, excluded); err != nil {
		if errors.Cause(err) == ErrCodeExists {
			return core.NewValidationError(err, core.FieldError{Field: "submission_id", Error: err.Error()})
		}
		return err
	}
	return nil
}

// newCode draws random 6-digit codes until one is free.
func (svc *service) newCode(ctx context.Context) (string, error) {
	for attempts := 0; attempts < 5; attempts++ {
		code := strconv.Itoa(100000 + rand.Intn(900000))
		err := svc.repo.CheckCodeUniqueness(ctx, code, nil)
		if err == nil {
			return code, nil
		}
		if errors.Cause(err) == ErrCodeExists {
			continue
		}
		return "", err
	}
	return "", errors.Wrap(ErrCodeExists, "generating submission code")
}

func (svc *service) Create(ctx context.Context, in SubmissionInput) (Submission, error) {
	sub := in.Submission()
	sub.CreatedAt = time.Now().UTC()

	if sub.Code == "" {
		code, err := svc.newCode(ctx)
		if err != nil {
			return Submission{}, err
		}
		sub.Code = code
	} else if err := svc.checkCodeUniqueness(ctx, sub.Code); err != nil {
		return Submission{}, err
	}

	sub, err := svc.repo.CreateSubmission(ctx, sub)
	if err != nil {
		return Submission{}, err
	}

	go svc.sendSubmissionMails(sub)
	return sub, nil
}

func (svc *service) QueryAll(ctx context.Context) ([]Submission, error) {
	return svc.repo.QuerySubmissions(ctx, nil)
}

func (svc *service) GetByID(ctx context.Context, id string) (Submission, error) {
	return svc.repo.GetSubmissionByID(ctx, id)
}

func (svc *service) Update(ctx context.Context, id string, in SubmissionInput) (Submission, error) {
	orig, err := svc.repo.GetSubmissionByID(ctx, id)
	if err != nil {
		return Submission{}, err
	}

	sub := in.Submission()
	sub.ID = orig.ID
	sub.Code = orig.Code // the code never changes after creation
	sub.CreatedAt = orig.CreatedAt
	return svc.repo.UpdateSubmission(ctx, sub)
}

func (svc *service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteSubmissionByID(ctx, id)
}

func (svc *service) Backup(ctx context.Context) ([]byte, string, error) {
	subs, err := svc.repo.QuerySubmissions(ctx, nil)
	if err != nil {
		return nil, "", err
	}
	if len(subs) == 0 {
		return nil, "", ErrNoData
	}

	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(err, "marshalling backup")
	}
	return data, BackupFilename(time.Now().UTC()), nil
}

func (svc *service) Restore(ctx context.Context, data []byte) (int, error) {
	// the content must be an actual JSON array before anything is wiped;
	// "null" also unmarshals into a nil slice without an error
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, core.NewValidationError(ErrBadBackup)
	}
	var subs []Submission
	if err := json.Unmarshal(trimmed, &subs); err != nil {
		return 0, core.NewValidationError(ErrBadBackup)
	}

	// wipe and reload in one transaction when a SQL handle is available
	var exec []core.DBExecutor
	var tx *sqlx.Tx
	if svc.db != nil {
		var err error
		if tx, err = svc.db.BeginTxx(ctx, nil); err != nil {
			return 0, errors.Wrap(err, "beginning restore transaction")
		}
		defer func() { _ = tx.Rollback() }()
		exec = []core.DBExecutor{tx}
	}

	if err := svc.repo.DeleteAllSubmissions(ctx, exec...); err != nil {
		return 0, err
	}
	if len(subs) > 0 {
		if err := svc.repo.CreateSubmissions(ctx, subs, exec...); err != nil {
			return 0, err
		}
	}
	if tx != nil {
		if err := tx.Commit(); err != nil {
			return 0, errors.Wrap(err, "committing restore transaction")
		}
	}
	return len(subs), nil
}
