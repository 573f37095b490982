package admission

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/daakhpc/StudentAdmissionSystem/core"
)

func validInput() SubmissionInput {
	return SubmissionInput{
		Identity: VerifiedIdentity{
			CountryCode: "91",
			PhoneNumber: "9876543210",
			FirstName:   "Asha",
			LastName:    "Verma",
		},
		Course:        "Electrician (2 Year Diploma)",
		CandidateName: "Asha Verma",
		FatherName:    "Mahesh Verma",
		MotherName:    "Sita Devi",
		AadharNumber:  "123412341234",
		Sex:           "Female",
		DOB:           "2004-05-15",
		Nationality:   "Indian",
		Category:      "General",
		Email:         "asha@test.cd",
		PostalAddress: Address{
			Line:     "12 Civil Lines",
			State:    "Uttar Pradesh",
			District: "Agra",
		},
		SameAddress: true,
		AcademicRecords: []AcademicRecord{
			{ID: 1, ExamPassed: "High School", Year: "2020", MaxMarks: "600", ObtainedMarks: "480"},
		},
		Declaration: true,
	}
}

// fieldErrMsg digs the message for one field out of a validation error.
func fieldErrMsg(err error, field string) string {
	vErr, ok := errors.Cause(err).(*core.ValidationError)
	if !ok {
		return ""
	}
	for _, fld := range vErr.Fields {
		if fld.Field == field {
			return fld.Error
		}
	}
	return ""
}

func TestSubmissionInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmissionInput)
		field   string
		wantMsg string
	}{
		{name: "valid"},
		{
			name:    "unchecked declaration",
			mutate:  func(in *SubmissionInput) { in.Declaration = false },
			field:   "declaration",
			wantMsg: "You must agree to the declaration before submitting.",
		},
		{
			name:    "missing aadhar",
			mutate:  func(in *SubmissionInput) { in.AadharNumber = "" },
			field:   "aadhar_number",
			wantMsg: "Aadhar Number is required.",
		},
		{
			name:    "short aadhar",
			mutate:  func(in *SubmissionInput) { in.AadharNumber = "12345" },
			field:   "aadhar_number",
			wantMsg: "Aadhar Number must be exactly 12 digits.",
		},
		{
			name:   "spaced aadhar is normalized",
			mutate: func(in *SubmissionInput) { in.AadharNumber = " 1234 1234 1234 " },
		},
		{
			name:    "unknown course",
			mutate:  func(in *SubmissionInput) { in.Course = "Rocket Science" },
			field:   "course",
			wantMsg: "unknown course",
		},
		{
			name:    "unknown sex",
			mutate:  func(in *SubmissionInput) { in.Sex = "Yes" },
			field:   "sex",
			wantMsg: "unknown sex",
		},
		{
			name:    "unknown category",
			mutate:  func(in *SubmissionInput) { in.Category = "VIP" },
			field:   "category",
			wantMsg: "unknown category",
		},
		{
			name:    "unknown state",
			mutate:  func(in *SubmissionInput) { in.PostalAddress.State = "Atlantis" },
			field:   "postal_address.state",
			wantMsg: "unknown state",
		},
		{
			name:    "district from another state",
			mutate:  func(in *SubmissionInput) { in.PostalAddress.District = "Mumbai City" },
			field:   "postal_address.district",
			wantMsg: "district does not belong to the selected state",
		},
		{
			name: "permanent address checked when not shared",
			mutate: func(in *SubmissionInput) {
				in.SameAddress = false
				in.PermanentAddress = Address{Line: "Elsewhere", State: "Atlantis", District: "Deep"}
			},
			field:   "permanent_address.state",
			wantMsg: "unknown state",
		},
		{
			name:    "unknown exam level",
			mutate:  func(in *SubmissionInput) { in.AcademicRecords[0].ExamPassed = "Kindergarten" },
			field:   "academic_records",
			wantMsg: "unknown exam level",
		},
		{
			name: "unknown document type",
			mutate: func(in *SubmissionInput) {
				in.DocumentsURLs = map[DocumentType]null.String{"diploma": {}}
			},
			field:   "documents_urls",
			wantMsg: "unknown document type: diploma",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			err := in.Validate()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected an error")
			}
			if got := fieldErrMsg(err, tt.field); got != tt.wantMsg {
				t.Errorf("Validate() %s = %q, want %q", tt.field, got, tt.wantMsg)
			}
		})
	}
}

func TestSubmissionInput_Normalize(t *testing.T) {
	in := validInput()
	in.CandidateName = "  Asha Verma "
	in.Email = " Asha@Test.CD "
	in.AadharNumber = "1234-1234-1234"
	in.PermanentAddress = Address{Line: "stale", State: "stale", District: "stale"}

	in.Normalize()

	if in.CandidateName != "Asha Verma" {
		t.Errorf("CandidateName = %q", in.CandidateName)
	}
	if in.Email != "asha@test.cd" {
		t.Errorf("Email = %q", in.Email)
	}
	if in.AadharNumber != "123412341234" {
		t.Errorf("AadharNumber = %q", in.AadharNumber)
	}
	if in.PermanentAddress != in.PostalAddress {
		t.Errorf("PermanentAddress = %+v, want the postal one", in.PermanentAddress)
	}
	if pct := in.AcademicRecords[0].Percentage; pct != "80.00" {
		t.Errorf("Percentage = %q", pct)
	}
	if in.DocumentsURLs == nil {
		t.Error("DocumentsURLs not initialized")
	}
}

func TestAcademicRecord_RecomputePercentage(t *testing.T) {
	tests := []struct {
		name     string
		max, obt string
		want     string
	}{
		{name: "plain", max: "600", obt: "480", want: "80.00"},
		{name: "rounded", max: "900", obt: "300", want: "33.33"},
		{name: "decimal marks", max: "100", obt: "92.5", want: "92.50"},
		{name: "over max", max: "600", obt: "700", want: "116.67"},
		{name: "zero max", max: "0", obt: "480", want: ""},
		{name: "negative max", max: "-600", obt: "480", want: ""},
		{name: "garbage max", max: "lots", obt: "480", want: ""},
		{name: "garbage marks", max: "600", obt: "some", want: ""},
		{name: "both empty", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := AcademicRecord{MaxMarks: tt.max, ObtainedMarks: tt.obt, Percentage: "stale"}
			rec.RecomputePercentage()
			if rec.Percentage != tt.want {
				t.Errorf("Percentage = %q, want %q", rec.Percentage, tt.want)
			}
		})
	}
}
