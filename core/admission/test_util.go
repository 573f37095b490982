package admission

import (
	"context"
	"time"

	"github.com/daakhpc/StudentAdmissionSystem/core"
)

type serviceMock struct {
	service
}

// NewServiceMock returns a Service whose notification mails are sent
// synchronously so tests can assert on them.
func NewServiceMock(db core.DB, repo Repository, mailSvc core.EmailService) Service {
	return &serviceMock{
		service: service{
			db:      db,
			repo:    repo,
			mailSvc: mailSvc,
		},
	}
}

func (svc *serviceMock) Create(ctx context.Context, in SubmissionInput) (Submission, error) {
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

	// run synchronously
	svc.sendSubmissionMails(sub)
	return sub, nil
}
