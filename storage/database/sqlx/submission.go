package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/daakhpc/StudentAdmissionSystem/core"
	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
)

const submissionTable = "admission_submission"

var submissionColumns = []string{
	"id",
	"created_at",
	"submission_id",
	"user_data",
	"course",
	"candidate_name",
	"father_name",
	"mother_name",
	"aadhar_number",
	"sex",
	"dob",
	"nationality",
	"category",
	"email",
	"optional_phone_number",
	"postal_address",
	"permanent_address",
	"academic_records",
	"declaration",
	"photo_url",
	"documents_urls",
}

// submissionRow flattens a Submission for sqlx; nested structures live in
// jsonb columns.
type submissionRow struct {
	ID                  string      `db:"id"`
	CreatedAt           time.Time   `db:"created_at"`
	Code                string      `db:"submission_id"`
	UserData            []byte      `db:"user_data"`
	Course              string      `db:"course"`
	CandidateName       string      `db:"candidate_name"`
	FatherName          string      `db:"father_name"`
	MotherName          string      `db:"mother_name"`
	AadharNumber        string      `db:"aadhar_number"`
	Sex                 string      `db:"sex"`
	DOB                 string      `db:"dob"`
	Nationality         string      `db:"nationality"`
	Category            string      `db:"category"`
	Email               string      `db:"email"`
	OptionalPhoneNumber string      `db:"optional_phone_number"`
	PostalAddress       []byte      `db:"postal_address"`
	PermanentAddress    []byte      `db:"permanent_address"`
	AcademicRecords     []byte      `db:"academic_records"`
	Declaration         bool        `db:"declaration"`
	PhotoURL            null.String `db:"photo_url"`
	DocumentsURLs       []byte      `db:"documents_urls"`
}

type submissionRepository struct {
	exec core.DBExecutor
}

var _ admission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(exec core.DBExecutor) *submissionRepository {
	return &submissionRepository{exec: exec}
}

func (repo submissionRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 {
		return svcExec[0]
	}
	return repo.exec
}

func (repo submissionRepository) row(sub admission.Submission) (*submissionRow, error) {
	userData, err := json.Marshal(sub.Identity)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling user data")
	}
	postal, err := json.Marshal(sub.PostalAddress)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling postal address")
	}
	permanent, err := json.Marshal(sub.PermanentAddress)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling permanent address")
	}
	records := sub.AcademicRecords
	if records == nil {
		records = []admission.AcademicRecord{}
	}
	academics, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling academic records")
	}
	docs := sub.DocumentsURLs
	if docs == nil {
		docs = map[admission.DocumentType]null.String{}
	}
	documents, err := json.Marshal(docs)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling documents")
	}

	return &submissionRow{
		ID:                  sub.ID,
		CreatedAt:           sub.CreatedAt.UTC(),
		Code:                sub.Code,
		UserData:            userData,
		Course:              sub.Course,
		CandidateName:       sub.CandidateName,
		FatherName:          sub.FatherName,
		MotherName:          sub.MotherName,
		AadharNumber:        sub.AadharNumber,
		Sex:                 sub.Sex,
		DOB:                 sub.DOB,
		Nationality:         sub.Nationality,
		Category:            sub.Category,
		Email:               sub.Email,
		OptionalPhoneNumber: sub.OptionalPhoneNumber,
		PostalAddress:       postal,
		PermanentAddress:    permanent,
		AcademicRecords:     academics,
		Declaration:         sub.Declaration,
		PhotoURL:            sub.PhotoURL,
		DocumentsURLs:       documents,
	}, nil
}

func (repo submissionRepository) unrow(row *submissionRow) (admission.Submission, error) {
	sub := admission.Submission{
		ID:                  row.ID,
		CreatedAt:           row.CreatedAt,
		Code:                row.Code,
		Course:              row.Course,
		CandidateName:       row.CandidateName,
		FatherName:          row.FatherName,
		MotherName:          row.MotherName,
		AadharNumber:        row.AadharNumber,
		Sex:                 row.Sex,
		DOB:                 row.DOB,
		Nationality:         row.Nationality,
		Category:            row.Category,
		Email:               row.Email,
		OptionalPhoneNumber: row.OptionalPhoneNumber,
		Declaration:         row.Declaration,
		PhotoURL:            row.PhotoURL,
	}
	if err := json.Unmarshal(row.UserData, &sub.Identity); err != nil {
		return admission.Submission{}, errors.Wrap(err, "unmarshalling user data")
	}
	if err := json.Unmarshal(row.PostalAddress, &sub.PostalAddress); err != nil {
		return admission.Submission{}, errors.Wrap(err, "unmarshalling postal address")
	}
	if err := json.Unmarshal(row.PermanentAddress, &sub.PermanentAddress); err != nil {
		return admission.Submission{}, errors.Wrap(err, "unmarshalling permanent address")
	}
	if err := json.Unmarshal(row.AcademicRecords, &sub.AcademicRecords); err != nil {
		return admission.Submission{}, errors.Wrap(err, "unmarshalling academic records")
	}
	if err := json.Unmarshal(row.DocumentsURLs, &sub.DocumentsURLs); err != nil {
		return admission.Submission{}, errors.Wrap(err, "unmarshalling documents")
	}
	return sub, nil
}

func (repo submissionRepository) unrowSlice(rows []submissionRow) ([]admission.Submission, error) {
	subs := make([]admission.Submission, 0, len(rows))
	for i := range rows {
		sub, err := repo.unrow(&rows[i])
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// trapNoRowsErr maps psql "no rows" err to admission.ErrNotFound
func (repo submissionRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return admission.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo submissionRepository) CheckCodeUniqueness(
	ctx context.Context,
	code string,
	excluded []admission.Submission,
	exec ...core.DBExecutor,
) error {
	query := `SELECT EXISTS (SELECT 1 FROM admission_submission WHERE submission_id = $1)`
	args := []interface{}{code}
	if len(excluded) > 0 {
		ids := make([]string, 0, len(excluded))
		for _, sub := range excluded {
			ids = append(ids, sub.ID)
		}
		query = `SELECT EXISTS (SELECT 1 FROM admission_submission WHERE submission_id = $1 AND id <> ALL($2))`
		args = append(args, pq.Array(ids))
	}

	var exists bool
	if err := repo.getExec(exec).GetContext(ctx, &exists, query, args...); err != nil {
		return errors.Wrap(err, "checking submission code uniqueness")
	}
	if exists {
		return admission.ErrCodeExists
	}
	return nil
}

func insertQuery() string {
	cols := strings.Join(submissionColumns, ", ")
	binds := ":" + strings.Join(submissionColumns, ", :")
	return "INSERT INTO " + submissionTable + " (" + cols + ") VALUES (" + binds + ")"
}

func (repo submissionRepository) CreateSubmission(
	ctx context.Context,
	sub admission.Submission,
	exec ...core.DBExecutor,
) (admission.Submission, error) {
	sub.ID = uuid.New().String()
	row, err := repo.row(sub)
	if err != nil {
		return admission.Submission{}, err
	}
	if _, err := sqlx.NamedExecContext(ctx, repo.getExec(exec), insertQuery(), row); err != nil {
		return admission.Submission{}, errors.Wrap(err, "inserting submission")
	}
	return sub, nil
}

func (repo submissionRepository) CreateSubmissions(
	ctx context.Context,
	subs []admission.Submission,
	exec ...core.DBExecutor,
) error {
	e := repo.getExec(exec)
	query := insertQuery()
	for _, sub := range subs {
		if sub.ID == "" {
			sub.ID = uuid.New().String()
		}
		row, err := repo.row(sub)
		if err != nil {
			return err
		}
		if _, err := sqlx.NamedExecContext(ctx, e, query, row); err != nil {
			return errors.Wrap(err, "inserting submissions")
		}
	}
	return nil
}

func (repo submissionRepository) QuerySubmissions(
	ctx context.Context,
	ordering []core.DBOrdering,
	exec ...core.DBExecutor,
) ([]admission.Submission, error) {
	if len(ordering) == 0 {
		ordering = []core.DBOrdering{{Field: "created_at", Ascending: false}}
	}
	orderBy := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		orderBy = append(orderBy, ord.String())
	}
	query := "SELECT " + strings.Join(submissionColumns, ", ") + " FROM " + submissionTable +
		" ORDER BY " + strings.Join(orderBy, ", ")

	var rows []submissionRow
	if err := repo.getExec(exec).SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}
	return repo.unrowSlice(rows)
}

func (repo submissionRepository) GetSubmissionByID(
	ctx context.Context,
	id string,
	exec ...core.DBExecutor,
) (admission.Submission, error) {
	query := "SELECT " + strings.Join(submissionColumns, ", ") + " FROM " + submissionTable + " WHERE id = $1"

	var row submissionRow
	if err := repo.getExec(exec).GetContext(ctx, &row, query, id); err != nil {
		return admission.Submission{}, repo.trapNoRowsErr(err, "getting submission")
	}
	return repo.unrow(&row)
}

func (repo submissionRepository) UpdateSubmission(
	ctx context.Context,
	sub admission.Submission,
	exec ...core.DBExecutor,
) (admission.Submission, error) {
	row, err := repo.row(sub)
	if err != nil {
		return admission.Submission{}, err
	}

	sets := make([]string, 0, len(submissionColumns))
	for _, col := range submissionColumns {
		if col == "id" || col == "created_at" || col == "submission_id" {
			continue
		}
		sets = append(sets, col+" = :"+col)
	}
	query := "UPDATE " + submissionTable + " SET " + strings.Join(sets, ", ") + " WHERE id = :id"

	res, err := sqlx.NamedExecContext(ctx, repo.getExec(exec), query, row)
	if err != nil {
		return admission.Submission{}, errors.Wrap(err, "updating submission")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return admission.Submission{}, errors.Wrap(err, "updating submission")
	}
	if affected == 0 {
		return admission.Submission{}, admission.ErrNotFound
	}
	return sub, nil
}

func (repo submissionRepository) DeleteSubmissionByID(
	ctx context.Context,
	id string,
	exec ...core.DBExecutor,
) error {
	// an absent row is a trivial success, only matching rows are dropped
	if _, err := repo.getExec(exec).ExecContext(ctx, "DELETE FROM "+submissionTable+" WHERE id = $1", id); err != nil {
		return errors.Wrap(err, "deleting submission")
	}
	return nil
}

func (repo submissionRepository) DeleteAllSubmissions(ctx context.Context, exec ...core.DBExecutor) error {
	// delete-all always carries a predicate
	query := "DELETE FROM " + submissionTable + " WHERE id <> $1"
	if _, err := repo.getExec(exec).ExecContext(ctx, query, admission.DeleteAllSentinel); err != nil {
		return errors.Wrap(err, "deleting all submissions")
	}
	return nil
}
