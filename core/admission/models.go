package admission

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/daakhpc/StudentAdmissionSystem/core"
	"github.com/daakhpc/StudentAdmissionSystem/core/refdata"
)

// DocumentType is the closed set of optional document slots on a submission.
type DocumentType string

const (
	DocSignature             DocumentType = "signature"
	DocHighschoolMarksheet   DocumentType = "highschoolMarksheet"
	DocIntermediateMarksheet DocumentType = "intermediateMarksheet"
	DocAadharCard            DocumentType = "aadhar"
	DocDomicile              DocumentType = "domicile"
	DocTransferCertificate   DocumentType = "transferCertificate"
)

var DocumentTypes = []DocumentType{
	DocSignature,
	DocHighschoolMarksheet,
	DocIntermediateMarksheet,
	DocAadharCard,
	DocDomicile,
	DocTransferCertificate,
}

var documentLabels = map[DocumentType]string{
	DocSignature:             "Signature",
	DocHighschoolMarksheet:   "Highschool Marksheet",
	DocIntermediateMarksheet: "Intermediate Marksheet",
	DocAadharCard:            "Aadhar Card",
	DocDomicile:              "Domicile Certificate",
	DocTransferCertificate:   "Transfer Certificate",
}

func (dt DocumentType) Valid() bool {
	_, ok := documentLabels[dt]
	return ok
}

func (dt DocumentType) Label() string { return documentLabels[dt] }

// VerifiedIdentity is the phone-number-backed snapshot obtained from the
// verification widget. It is captured once and never re-derived.
type VerifiedIdentity struct {
	CountryCode string `json:"user_country_code" validate:"required"`
	PhoneNumber string `json:"user_phone_number" validate:"required"`
	FirstName   string `json:"user_first_name" validate:"required"`
	LastName    string `json:"user_last_name" validate:"required"`
}

// FormattedPhone renders the identity phone as "+CC NUMBER".
func (vi VerifiedIdentity) FormattedPhone() string {
	cc := strings.ReplaceAll(vi.CountryCode, "+", "")
	return "+" + cc + " " + vi.PhoneNumber
}

type Address struct {
	Line     string `json:"line" validate:"required"`
	State    string `json:"state" validate:"required"`
	District string `json:"district" validate:"required"`
}

type AcademicRecord struct {
	ID            int64  `json:"id"`
	ExamPassed    string `json:"examPassed" validate:"required"`
	Institution   string `json:"institution"`
	BoardUniv     string `json:"boardUniv"`
	Year          string `json:"year"`
	MaxMarks      string `json:"maxMarks"`
	ObtainedMarks string `json:"obtainedMarks"`
	Percentage    string `json:"percentage"`
}

// RecomputePercentage derives Percentage from the mark fields: obtained/max ×
// 100 to two decimals when both parse and max > 0, blank otherwise. Invalid
// input never raises an error, it only blanks the derived value.
func (r *AcademicRecord) RecomputePercentage() {
	max, errMax := strconv.ParseFloat(strings.TrimSpace(r.MaxMarks), 64)
	obtained, errObt := strconv.ParseFloat(strings.TrimSpace(r.ObtainedMarks), 64)
	if errMax != nil || errObt != nil || max <= 0 {
		r.Percentage = ""
		return
	}
	r.Percentage = fmt.Sprintf("%.2f", obtained/max*100)
}

// Submission is one persisted admissions record.
type Submission struct {
	ID                  string                       `json:"id"`
	CreatedAt           time.Time                    `json:"created_at"` // UTC
	Code                string                       `json:"submission_id"`
	Identity            VerifiedIdentity             `json:"user_data"`
	Course              string                       `json:"course"`
	CandidateName       string                       `json:"candidate_name"`
	FatherName          string                       `json:"father_name"`
	MotherName          string                       `json:"mother_name"`
	AadharNumber        string                       `json:"aadhar_number"`
	Sex                 string                       `json:"sex"`
	DOB                 string                       `json:"dob"`
	Nationality         string                       `json:"nationality"`
	Category            string                       `json:"category"`
	Email               string                       `json:"email"`
	OptionalPhoneNumber string                       `json:"optional_phone_number,omitempty"`
	PostalAddress       Address                      `json:"postal_address"`
	PermanentAddress    Address                      `json:"permanent_address"`
	AcademicRecords     []AcademicRecord             `json:"academic_records"`
	Declaration         bool                         `json:"declaration"`
	PhotoURL            null.String                  `json:"photo_url"`
	DocumentsURLs       map[DocumentType]null.String `json:"documents_urls"`
}

// HasSameAddress reports whether the permanent address is a copy of the
// postal one.
func (s Submission) HasSameAddress() bool {
	return s.PostalAddress == s.PermanentAddress
}

// SubmissionInput contains everything needed to create or edit a Submission;
// the storage id and creation timestamp are never caller-supplied.
type SubmissionInput struct {
	Code                string                       `json:"submission_id"`
	Identity            VerifiedIdentity             `json:"user_data"`
	Course              string                       `json:"course" validate:"required"`
	CandidateName       string                       `json:"candidate_name" validate:"required"`
	FatherName          string                       `json:"father_name" validate:"required"`
	MotherName          string                       `json:"mother_name" validate:"required"`
	AadharNumber        string                       `json:"aadhar_number"`
	Sex                 string                       `json:"sex" validate:"required"`
	DOB                 string                       `json:"dob" validate:"required,datetime=2006-01-02"`
	Nationality         string                       `json:"nationality" validate:"required"`
	Category            string                       `json:"category" validate:"required"`
	Email               string                       `json:"email" validate:"required,email"`
	OptionalPhoneNumber string                       `json:"optional_phone_number,omitempty"`
	PostalAddress       Address                      `json:"postal_address"`
	SameAddress         bool                         `json:"same_address"`
	PermanentAddress    Address                      `json:"permanent_address"`
	AcademicRecords     []AcademicRecord             `json:"academic_records" validate:"min=1,dive"`
	Declaration         bool                         `json:"declaration"`
	PhotoURL            null.String                  `json:"photo_url"`
	DocumentsURLs       map[DocumentType]null.String `json:"documents_urls"`
}

// Normalize cleans the payload the way the form does before any check runs:
// whitespace-trimmed names, lowered email, Aadhar stripped of non-digits,
// percentages rederived and the permanent address overwritten by the postal
// one while the same-address flag is on.
func (in *SubmissionInput) Normalize() {
	in.Code = core.CleanString(in.Code)
	in.Course = core.CleanString(in.Course)
	in.CandidateName = core.CleanString(in.CandidateName)
	in.FatherName = core.CleanString(in.FatherName)
	in.MotherName = core.CleanString(in.MotherName)
	in.AadharNumber = core.StripNonDigits(core.CleanString(in.AadharNumber))
	in.Sex = core.CleanString(in.Sex)
	in.DOB = core.CleanString(in.DOB)
	in.Nationality = core.CleanString(in.Nationality)
	in.Category = core.CleanString(in.Category)
	in.Email = core.CleanString(in.Email, true /* lower */)
	in.OptionalPhoneNumber = core.CleanString(in.OptionalPhoneNumber)

	if in.SameAddress {
		in.PermanentAddress = in.PostalAddress
	}

	for i := range in.AcademicRecords {
		in.AcademicRecords[i].RecomputePercentage()
	}

	if in.DocumentsURLs == nil {
		in.DocumentsURLs = make(map[DocumentType]null.String, len(DocumentTypes))
	}
}

func validateAddress(prefix string, addr Address, flds *[]core.FieldError) {
	if addr.State == "" {
		*flds = append(*flds, core.FieldError{Field: prefix + ".state", Error: "this field is required"})
	} else if !refdata.ValidState(addr.State) {
		*flds = append(*flds, core.FieldError{Field: prefix + ".state", Error: "unknown state"})
	} else if addr.District != "" && !refdata.ValidDistrict(addr.State, addr.District) {
		*flds = append(*flds, core.FieldError{Field: prefix + ".district", Error: "district does not belong to the selected state"})
	}
}

// Validate normalizes then checks the payload. It refuses the submission
// before any store call when the declaration is unchecked or the Aadhar rules
// fail, and enforces the static lookup tables.
func (in *SubmissionInput) Validate() error {
	in.Normalize()

	if err := core.Validate.Struct(in); err != nil {
		return err
	}

	var flds []core.FieldError

	if !in.Declaration {
		flds = append(flds, core.FieldError{Field: "declaration", Error: "You must agree to the declaration before submitting."})
	}
	if in.AadharNumber == "" {
		flds = append(flds, core.FieldError{Field: "aadhar_number", Error: "Aadhar Number is required."})
	} else if len(in.AadharNumber) != 12 {
		flds = append(flds, core.FieldError{Field: "aadhar_number", Error: "Aadhar Number must be exactly 12 digits."})
	}
	if !refdata.ValidCourse(in.Course) {
		flds = append(flds, core.FieldError{Field: "course", Error: "unknown course"})
	}
	if !refdata.ValidSex(in.Sex) {
		flds = append(flds, core.FieldError{Field: "sex", Error: "unknown sex"})
	}
	if !refdata.ValidCategory(in.Category) {
		flds = append(flds, core.FieldError{Field: "category", Error: "unknown category"})
	}
	validateAddress("postal_address", in.PostalAddress, &flds)
	if !in.SameAddress {
		validateAddress("permanent_address", in.PermanentAddress, &flds)
	}
	for _, rec := range in.AcademicRecords {
		if !refdata.ValidExamLevel(rec.ExamPassed) {
			flds = append(flds, core.FieldError{Field: "academic_records", Error: "unknown exam level"})
			break
		}
	}
	for dt := range in.DocumentsURLs {
		if !dt.Valid() {
			flds = append(flds, core.FieldError{Field: "documents_urls", Error: "unknown document type: " + string(dt)})
			break
		}
	}

	if flds != nil {
		return core.NewValidationError(nil, flds...)
	}
	return nil
}

// Submission builds the record from a validated input. The storage id and
// creation time are left for the repository/service to assign.
func (in SubmissionInput) Submission() Submission {
	docs := make(map[DocumentType]null.String, len(DocumentTypes))
	for _, dt := range DocumentTypes {
		docs[dt] = in.DocumentsURLs[dt]
	}
	return Submission{
		Code:                in.Code,
		Identity:            in.Identity,
		Course:              in.Course,
		CandidateName:       in.CandidateName,
		FatherName:          in.FatherName,
		MotherName:          in.MotherName,
		AadharNumber:        in.AadharNumber,
		Sex:                 in.Sex,
		DOB:                 in.DOB,
		Nationality:         in.Nationality,
		Category:            in.Category,
		Email:               in.Email,
		OptionalPhoneNumber: in.OptionalPhoneNumber,
		PostalAddress:       in.PostalAddress,
		PermanentAddress:    in.PermanentAddress,
		AcademicRecords:     in.AcademicRecords,
		Declaration:         in.Declaration,
		PhotoURL:            in.PhotoURL,
		DocumentsURLs:       docs,
	}
}

// InputFromSubmission rebuilds an edit payload from an existing record,
// mirroring how the form prefills itself.
func InputFromSubmission(sub Submission) SubmissionInput {
	return SubmissionInput{
		Code:                sub.Code,
		Identity:            sub.Identity,
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
		PostalAddress:       sub.PostalAddress,
		SameAddress:         sub.HasSameAddress(),
		PermanentAddress:    sub.PermanentAddress,
		AcademicRecords:     sub.AcademicRecords,
		Declaration:         sub.Declaration,
		PhotoURL:            sub.PhotoURL,
		DocumentsURLs:       sub.DocumentsURLs,
	}
}
