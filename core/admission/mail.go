package admission

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/daakhpc/StudentAdmissionSystem/core"
)

// sendSubmissionMails notifies the applicant and the site admin of a new
// submission. Failures are the mail service's problem; a lost email never
// fails the submission.
func (svc *service) sendSubmissionMails(sub Submission) {
	if svc.mailSvc == nil {
		return
	}
	msgs := []*core.EmailMessage{newConfirmationMessage(sub)}
	if admin := core.Conf.AdminEmail; admin != "" {
		msgs = append(msgs, newAdminNotificationMessage(sub, admin))
	}
	svc.mailSvc.SendMessages(msgs...)
}

func newConfirmationMessage(sub Submission) *core.EmailMessage {
	body := new(strings.Builder)
	fmt.Fprintf(body, "Dear %s,\n\n", sub.CandidateName)
	fmt.Fprintf(body, "Your application for %s has been received.\n", sub.Course)
	fmt.Fprintf(body, "Your submission number is %s. Keep it safe; you will need it for any follow-up.\n", sub.Code)
	return &core.EmailMessage{
		To:      []mail.Address{{Name: sub.CandidateName, Address: sub.Email}},
		Subject: "Application received - " + sub.Code,
		BodyStr: body.String(),
	}
}

func newAdminNotificationMessage(sub Submission, admin string) *core.EmailMessage {
	body := fmt.Sprintf(
		"A new application was submitted.\n\nSubmission No.: %s\nCandidate: %s\nCourse: %s\nPhone: %s\n",
		sub.Code, sub.CandidateName, sub.Course, sub.Identity.FormattedPhone(),
	)
	return &core.EmailMessage{
		To:      []mail.Address{{Address: admin}},
		Subject: "New application " + sub.Code,
		BodyStr: body,
	}
}
