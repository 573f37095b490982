package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	. "github.com/daakhpc/StudentAdmissionSystem/apps/api/echo"
	"github.com/daakhpc/StudentAdmissionSystem/core"
	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
	emailsvc "github.com/daakhpc/StudentAdmissionSystem/services/email"
)

func resetDB(t *testing.T) {
	t.Helper()
	if err := repo.DeleteAllSubmissions(context.Background()); err != nil {
		t.Fatalf("resetDB(): %v", err)
	}
	emailsvc.SentMessages = emailsvc.SentMessages[:0]
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// newFileRequest builds a multipart request with one file part.
func newFileRequest(t *testing.T, method, path, token, filename string, content []byte) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("newFileRequest(): %v", err)
	}
	if _, err = part.Write(content); err != nil {
		t.Fatalf("newFileRequest(): %v", err)
	}
	if err = w.Close(); err != nil {
		t.Fatalf("newFileRequest(): %v", err)
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func getToken(t *testing.T) string {
	claims := GetAdminClaims(core.Conf.AdminEmail)
	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

// newSubmissionInput returns a fully valid application payload.
func newSubmissionInput(candidate string) admission.SubmissionInput {
	return admission.SubmissionInput{
		Identity: admission.VerifiedIdentity{
			CountryCode: "91",
			PhoneNumber: "9876543210",
			FirstName:   "Test",
			LastName:    "User",
		},
		Course:        "Electrician (2 Year Diploma)",
		CandidateName: candidate,
		FatherName:    "Ram Prasad",
		MotherName:    "Sita Devi",
		AadharNumber:  "123412341234",
		Sex:           "Male",
		DOB:           "2004-05-15",
		Nationality:   "Indian",
		Category:      "General",
		Email:         "candidate@test.cd",
		PostalAddress: admission.Address{
			Line:     "12 Civil Lines",
			State:    "Uttar Pradesh",
			District: "Agra",
		},
		SameAddress: true,
		AcademicRecords: []admission.AcademicRecord{
			{
				ID:            1,
				ExamPassed:    "High School",
				Institution:   "Govt Inter College",
				BoardUniv:     "UP Board (Board of High School and Intermediate Education Uttar Pradesh)",
				Year:          "2020",
				MaxMarks:      "600",
				ObtainedMarks: "480",
			},
		},
		Declaration: true,
	}
}

// createSubmission seeds one record straight into the repository.
func createSubmission(t *testing.T, code, candidate, father, course string, createdAt time.Time) admission.Submission {
	t.Helper()

	in := newSubmissionInput(candidate)
	in.FatherName = father
	in.Course = course
	if err := in.Validate(); err != nil {
		t.Fatalf("createSubmission(): %v", err)
	}

	sub := in.Submission()
	sub.ID = uuid.New().String()
	sub.Code = code
	sub.CreatedAt = createdAt.UTC()
	if err := repo.CreateSubmissions(context.Background(), []admission.Submission{sub}); err != nil {
		t.Fatalf("createSubmission(): %v", err)
	}
	return sub
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return false, nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
