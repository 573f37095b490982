package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
)

// list prints the stored submissions, optionally narrowed the same way the
// dashboard narrows them.
func (cli *commandLine) list(search, course string) error {
	subs, err := cli.svc.QueryAll(context.Background())
	if err != nil {
		return err
	}

	params := admission.ListParams{Search: search, Course: course}
	params.Clean(len(subs) + 1) // a single page holding everything
	page := admission.ApplyListView(subs, params)

	if page.Total == 0 {
		color.Yellow("No submissions found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Submission No.", "Candidate", "Father", "Course", "Phone", "Submitted"})
	for _, sub := range page.Items {
		table.Append([]string{
			sub.Code,
			sub.CandidateName,
			sub.FatherName,
			sub.Course,
			sub.Identity.FormattedPhone(),
			sub.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()

	color.Green(fmt.Sprintf("%d submission(s)", page.Total))
	return nil
}
