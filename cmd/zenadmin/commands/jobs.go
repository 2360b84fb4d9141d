package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

const jobsScreenPath = "/dashboard/view-jobs"

// JobListAction fetches and renders the job listings screen.
func JobListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, jobsScreenPath); err != nil {
		return err
	}

	controller := appCtx.Container.Jobs
	if err := controller.Load(ctx); err != nil {
		return err
	}

	displayJobsTable(controller.Screen().Snapshot())
	return nil
}

// JobAddAction submits the add-job form.
func JobAddAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, "/dashboard/add-job"); err != nil {
		return err
	}

	draft, err := jobDraftFromFlags(cmd)
	if err != nil {
		return err
	}

	created, err := appCtx.Container.Jobs.Create(ctx, draft)
	if err != nil {
		return err
	}

	fmt.Printf("Created job %d: %s\n", created.ID, created.Title)
	return nil
}

// JobUpdateAction replaces a posting. The API uses full replace, so the
// same flag set as add is required.
func JobUpdateAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, jobsScreenPath); err != nil {
		return err
	}

	draft, err := jobDraftFromFlags(cmd)
	if err != nil {
		return err
	}

	updated, err := appCtx.Container.Jobs.Update(ctx, int64(cmd.Int("id")), draft)
	if err != nil {
		return err
	}

	fmt.Printf("Updated job %d: %s\n", updated.ID, updated.Title)
	return nil
}

// JobStatusAction marks a posting Open or Closed.
func JobStatusAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, jobsScreenPath); err != nil {
		return err
	}

	controller := appCtx.Container.Jobs
	if err := controller.Load(ctx); err != nil {
		return err
	}

	updated, err := controller.SetStatus(ctx, int64(cmd.Int("id")), domain.JobStatus(cmd.String("status")))
	if err != nil {
		return err
	}

	fmt.Printf("Job %d is now %s\n", updated.ID, updated.Status)
	return nil
}

// JobDeleteAction removes a posting.
func JobDeleteAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, jobsScreenPath); err != nil {
		return err
	}

	if err := appCtx.Container.Jobs.Delete(ctx, int64(cmd.Int("id"))); err != nil {
		return err
	}

	fmt.Printf("Deleted job %d\n", cmd.Int("id"))
	return nil
}

// jobDraftFromFlags assembles the submit payload from the command line,
// parsing the salary string the same way the edit form does.
func jobDraftFromFlags(cmd *cli.Command) (domain.JobDraft, error) {
	salary, err := domain.ParseSalaryRange(cmd.String("salary"))
	if err != nil {
		return domain.JobDraft{}, err
	}

	return domain.JobDraft{
		Title:      cmd.String("title"),
		CompanyID:  int64(cmd.Int("company-id")),
		CategoryID: int64(cmd.Int("category-id")),
		Salary:     salary,
		Status:     domain.JobStatus(cmd.String("status")),
		Schedule:   cmd.String("schedule"),
		Type:       cmd.String("type"),
		Location:   cmd.String("location"),
		Deadline:   cmd.String("deadline"),
		Benefits: domain.Benefits{
			HealthInsurance: cmd.Bool("health-insurance"),
			PaidLeave:       cmd.Bool("paid-leave"),
			RemoteWork:      cmd.Bool("remote-work"),
			RetirementPlan:  cmd.Bool("retirement-plan"),
			Other:           cmd.String("benefits-other"),
		},
		ResumeRequired:      cmd.Bool("resume-required"),
		CoverLetterRequired: cmd.Bool("cover-letter-required"),
		Featured:            cmd.Bool("featured"),
	}, nil
}

// displayJobsTable renders the listings snapshot.
func displayJobsTable(jobs []domain.Job) {
	if len(jobs) == 0 {
		fmt.Println("No jobs found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Company", "Category", "Salary", "Applications", "Status")

	for _, job := range jobs {
		table.Append(
			fmt.Sprintf("%d", job.ID),
			job.Title,
			job.Company.Name,
			job.Category.Name,
			job.SalaryRange,
			fmt.Sprintf("%d", job.ApplicantCount),
			string(job.Status),
		)
	}

	table.Render()
}
